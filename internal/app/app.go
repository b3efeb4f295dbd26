package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"FeedHarvester/internal/config"
	"FeedHarvester/internal/extract"
	"FeedHarvester/internal/infrastructure/feed"
	"FeedHarvester/internal/infrastructure/page"
	"FeedHarvester/internal/infrastructure/scheduler"
	"FeedHarvester/internal/infrastructure/storage"
	"FeedHarvester/internal/infrastructure/telegram"
	"FeedHarvester/internal/logging"
	"FeedHarvester/internal/ports"
	"FeedHarvester/internal/scoring"
	"FeedHarvester/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
	db        *sql.DB
}

// New builds the application from a validated configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := &http.Client{Timeout: cfg.HTTP.Timeout}

	feeds := feed.NewGofeedSource(client, cfg.HTTP.UserAgent)
	pages := page.NewHTTPFetcher(client, cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	resolver := extract.NewProfileResolver(cfg.Sites, cfg.DefaultSite)
	extractor := extract.NewExtractor(pages, resolver, baseLogger.With("component", "extractor"))

	application := &Application{cfg: cfg, logger: baseLogger}

	var archive ports.RecordArchive
	if cfg.Archive.DSN != "" {
		db, err := sql.Open("postgres", cfg.Archive.DSN)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		application.db = db
		archive = storage.NewSQLArchive(db, cfg.Archive.Table)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.Enabled() {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	application.pipeline = usecase.NewPipeline(usecase.PipelineConfig{
		Feeds:             cfg.Feeds,
		MaxEntriesPerFeed: cfg.Harvest.MaxEntries(),
		Threshold:         cfg.Harvest.Threshold(),
		Flags:             cfg.Harvest.Flags(),
		Concurrency:       cfg.Harvest.Concurrency,
	}, usecase.PipelineDeps{
		Feeds:     feeds,
		Extractor: extractor,
		Scorer:    scoring.NewScorer(cfg.Taxonomy()),
		Records:   storage.NewJSONLWriter(cfg.Output.DataPath()),
		Report:    storage.NewReportWriter(cfg.Output.ReportPath(), time.Now),
		Archive:   archive,
		Notifier:  notifier,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	application.scheduler = usecase.NewScheduler(
		scheduler.NewIntervalScheduler(cfg.Harvest.FetchInterval),
		application.pipeline,
		baseLogger.With("component", "scheduler"),
	)

	return application, nil
}

// RunOnce performs a single harvest.
func (a *Application) RunOnce(ctx context.Context) (usecase.RunSummary, error) {
	return a.pipeline.Run(ctx)
}

// Run harvests immediately and then every fetch interval until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info("harvester started",
		"feeds", len(a.cfg.Feeds),
		"interval", a.cfg.Harvest.FetchInterval,
		"data", a.cfg.Output.DataPath(),
		"archive", a.db != nil,
		"telegram", a.cfg.Notifications.Telegram.Enabled(),
	)

	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	a.logger.Info("shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.scheduler.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop scheduler: %w", err)
	}
	return nil
}

func (a *Application) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("close archive", "error", err)
	}
}
