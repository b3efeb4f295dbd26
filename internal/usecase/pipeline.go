package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/logging"
	"FeedHarvester/internal/ports"
	"FeedHarvester/internal/scoring"
)

// telegramLimit is the maximum message length accepted by Telegram.
const telegramLimit = 4096

// PipelineConfig holds the run-time switches of the harvest.
type PipelineConfig struct {
	Feeds             []string
	MaxEntriesPerFeed int
	Threshold         int
	Flags             domain.RecordFlags
	Concurrency       int
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Feeds     ports.FeedSource
	Extractor ports.ContentExtractor
	Scorer    *scoring.Scorer
	Records   ports.RecordSink
	Report    ports.ReportSink
	Archive   ports.RecordArchive
	Notifier  ports.Notifier
	Logger    *slog.Logger
	Now       func() time.Time
}

// Pipeline implements the harvest workflow: feeds, extraction, scoring,
// filtering and output.
type Pipeline struct {
	cfg       PipelineConfig
	feeds     ports.FeedSource
	extractor ports.ContentExtractor
	scorer    *scoring.Scorer
	records   ports.RecordSink
	report    ports.ReportSink
	archive   ports.RecordArchive
	notifier  ports.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// RunSummary describes the outcome of one run.
type RunSummary struct {
	RunID string
	Total int
	Kept  int
}

// NewPipeline constructs the orchestration component.
func NewPipeline(cfg PipelineConfig, deps PipelineDeps) *Pipeline {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	scorer := deps.Scorer
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	return &Pipeline{
		cfg:       cfg,
		feeds:     deps.Feeds,
		extractor: deps.Extractor,
		scorer:    scorer,
		records:   deps.Records,
		report:    deps.Report,
		archive:   deps.Archive,
		notifier:  deps.Notifier,
		logger:    logger,
		now:       now,
	}
}

// Run performs one complete harvest. Per-feed and per-article failures are
// degraded and logged; sink failures are logged and do not fail the run.
func (p *Pipeline) Run(ctx context.Context) (RunSummary, error) {
	summary := RunSummary{RunID: uuid.NewString()}
	ctx = logging.WithAttrs(ctx, "run_id", summary.RunID)
	log := logging.FromContext(ctx, p.logger)

	if p.feeds == nil {
		return summary, fmt.Errorf("feed source is not configured")
	}

	log.Info("harvest started", "feeds", len(p.cfg.Feeds))

	items, err := p.collectItems(ctx, log)
	if err != nil {
		return summary, err
	}
	if len(items) == 0 {
		log.Info("no articles found in feeds")
		return summary, nil
	}

	log.Info("processing articles", "count", len(items))
	records, err := p.processItems(ctx, items)
	if err != nil {
		return summary, err
	}

	kept := FilterByScore(records, p.cfg.Threshold, p.cfg.Flags.FilterByKeywords)
	summary.Total = len(records)
	summary.Kept = len(kept)

	p.publish(ctx, log, records, kept)

	log.Info("harvest finished", "kept", summary.Kept, "total", summary.Total)
	return summary, nil
}

// collectItems fetches every feed concurrently and flattens the results in
// feed order. A failed feed contributes no items.
func (p *Pipeline) collectItems(ctx context.Context, log *slog.Logger) ([]domain.FeedItem, error) {
	perFeed := make([][]domain.FeedItem, len(p.cfg.Feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i, feedURL := range p.cfg.Feeds {
		i, feedURL := i, feedURL
		g.Go(func() error {
			log.Debug("fetching feed", "url", feedURL)
			items, err := p.feeds.FetchFeed(gctx, feedURL)
			if err != nil {
				log.Warn("feed fetch failed", "url", feedURL, "error", err)
				return nil
			}
			if len(items) > p.cfg.MaxEntriesPerFeed {
				items = items[:p.cfg.MaxEntriesPerFeed]
			}
			perFeed[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("collect feeds: %w", err)
	}

	var all []domain.FeedItem
	for _, items := range perFeed {
		all = append(all, items...)
	}
	return all, nil
}

// processItems runs fetch, extract, score and assemble for every item
// concurrently. Results keep the input order.
func (p *Pipeline) processItems(ctx context.Context, items []domain.FeedItem) ([]domain.AIRecord, error) {
	records := make([]domain.AIRecord, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			records[i] = p.processItem(gctx, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process articles: %w", err)
	}
	return records, nil
}

func (p *Pipeline) processItem(ctx context.Context, item domain.FeedItem) domain.AIRecord {
	var extracted string
	if p.cfg.Flags.ExtractFullContent && p.extractor != nil && item.Link != "" {
		extracted = p.extractor.ExtractURL(ctx, item.Link).Text
	}

	var score domain.ScoreResult
	if p.cfg.Flags.FilterByKeywords {
		score = p.scorer.Score(AnalysisText(item, extracted))
	}

	return Assemble(item, extracted, score, p.cfg.Flags, p.now())
}

func (p *Pipeline) publish(ctx context.Context, log *slog.Logger, all, kept []domain.AIRecord) {
	if p.records != nil {
		if err := p.records.WriteRecords(ctx, kept); err != nil {
			log.Error("save records failed", "error", err)
		}
	}

	if p.report != nil {
		if err := p.report.WriteReport(ctx, all, kept); err != nil {
			log.Error("write report failed", "error", err)
		}
	}

	if p.archive != nil && len(kept) > 0 {
		if err := p.archive.SaveRecords(ctx, kept); err != nil {
			log.Error("archive records failed", "error", err)
		}
	}

	if p.notifier != nil && len(kept) > 0 {
		if err := p.notifier.PublishDigest(ctx, BuildDigest(all, kept)); err != nil {
			log.Error("publish digest failed", "error", err)
		}
	}
}

// BuildDigest renders a short chat message listing the kept articles.
func BuildDigest(all, kept []domain.AIRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d articles kept\n\n", len(kept), len(all))
	for _, r := range kept {
		fmt.Fprintf(&b, "- %s\nScore: %d\n%s\n\n", r.Title, r.KeywordScore, r.Source)
	}
	return truncateRunes(strings.TrimSpace(b.String()), telegramLimit)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
