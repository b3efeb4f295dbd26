package ports

import (
	"context"
	"time"

	"FeedHarvester/internal/domain"
)

// FeedSource retrieves and parses one syndication feed.
type FeedSource interface {
	FetchFeed(ctx context.Context, url string) ([]domain.FeedItem, error)
}

// PageSource downloads the raw HTML of an article page.
type PageSource interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}

// ContentExtractor resolves the plain-text body of an article URL.
// Implementations never fail; problems yield empty content.
type ContentExtractor interface {
	ExtractURL(ctx context.Context, url string) domain.ExtractedContent
}

// RecordSink durably writes the kept records.
type RecordSink interface {
	WriteRecords(ctx context.Context, records []domain.AIRecord) error
}

// ReportSink writes the human-readable run summary.
type ReportSink interface {
	WriteReport(ctx context.Context, all, kept []domain.AIRecord) error
}

// RecordArchive keeps a queryable history of kept records.
type RecordArchive interface {
	SaveRecords(ctx context.Context, records []domain.AIRecord) error
}

// Notifier streams run digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
