package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/ports"
)

const (
	defaultArchiveTable = "harvested_articles"
	archiveBatchSize    = 100
)

var archiveColumns = []string{
	"title",
	"source",
	"processed_at",
	"keyword_score",
	"keyword_categories",
	"full_content",
	"summary_content",
	"categories",
	"publish_date",
	"author",
}

// SQLArchive appends kept records to a Postgres table.
type SQLArchive struct {
	db    *sql.DB
	table string
	psql  sq.StatementBuilderType
}

var _ ports.RecordArchive = (*SQLArchive)(nil)

// NewSQLArchive wires a sql.DB implementation.
func NewSQLArchive(db *sql.DB, table string) *SQLArchive {
	if table == "" {
		table = defaultArchiveTable
	}
	return &SQLArchive{
		db:    db,
		table: table,
		psql:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveRecords inserts records in multi-row batches.
func (a *SQLArchive) SaveRecords(ctx context.Context, records []domain.AIRecord) error {
	if a.db == nil || len(records) == 0 {
		return nil
	}

	for start := 0; start < len(records); start += archiveBatchSize {
		end := min(start+archiveBatchSize, len(records))

		query, args, err := a.insertBatch(records[start:end])
		if err != nil {
			return fmt.Errorf("%w: build archive insert: %v", domain.ErrIO, err)
		}
		if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: archive records: %v", domain.ErrIO, err)
		}
	}
	return nil
}

func (a *SQLArchive) insertBatch(records []domain.AIRecord) (string, []interface{}, error) {
	insert := a.psql.Insert(a.table).Columns(archiveColumns...)
	for _, r := range records {
		breakdown, err := json.Marshal(r.KeywordCategories)
		if err != nil {
			return "", nil, fmt.Errorf("marshal categories of %s: %w", r.Source, err)
		}
		insert = insert.Values(
			r.Title,
			r.Source,
			r.Timestamp,
			r.KeywordScore,
			string(breakdown),
			nullable(r.FullContent),
			nullable(r.SummaryContent),
			pq.StringArray(r.Categories),
			nullable(r.PublishDate),
			nullable(r.Author),
		)
	}
	return insert.ToSql()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
