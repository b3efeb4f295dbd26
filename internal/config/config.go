package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"FeedHarvester/internal/domain"
)

const (
	configPathEnv     = "FEED_HARVESTER_CONFIG"
	outputDirEnv      = "FEED_HARVESTER_OUTPUT_DIR"
	logLevelEnv       = "FEED_HARVESTER_LOG_LEVEL"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Feeds         []string             `yaml:"feeds"`
	Harvest       HarvestConfig        `yaml:"harvest"`
	HTTP          HTTPConfig           `yaml:"http"`
	Output        OutputConfig         `yaml:"output"`
	Logging       LoggingConfig        `yaml:"logging"`
	Archive       ArchiveConfig        `yaml:"archive"`
	Notifications NotificationConfig   `yaml:"notifications"`
	Sites         []domain.SiteProfile `yaml:"sites"`
	DefaultSite   domain.SiteProfile   `yaml:"defaultProfile"`
	Keywords      Taxonomy             `yaml:"keywords"`
}

// HarvestConfig mirrors the behavioural switches of a harvest run.
type HarvestConfig struct {
	FetchInterval         time.Duration `yaml:"fetchInterval"`
	MaxEntriesPerFeed     *int          `yaml:"maxEntriesPerFeed"`
	IncludeContent        *bool         `yaml:"includeContent"`
	IncludeCategories     *bool         `yaml:"includeCategories"`
	IncludePublishDate    *bool         `yaml:"includePublishDate"`
	ExtractFullContent    *bool         `yaml:"extractFullContent"`
	FilterByKeywords      *bool         `yaml:"filterByKeywords"`
	KeywordScoreThreshold *int          `yaml:"keywordScoreThreshold"`
	Concurrency           int           `yaml:"concurrency"`
}

// HTTPConfig tunes outbound requests for feeds and pages.
type HTTPConfig struct {
	UserAgent string        `yaml:"userAgent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// OutputConfig locates the JSONL data file and the text report.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	DataFile   string `yaml:"dataFile"`
	ReportFile string `yaml:"reportFile"`
}

// DataPath is the full path of the JSONL file.
func (o OutputConfig) DataPath() string {
	return filepath.Join(o.Dir, o.DataFile)
}

// ReportPath is the full path of the text report.
func (o OutputConfig) ReportPath() string {
	return filepath.Join(o.Dir, o.ReportFile)
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ArchiveConfig enables the optional SQL archive when DSN is set.
type ArchiveConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Enabled reports whether both credentials are present.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Taxonomy returns the keyword taxonomy in declaration order.
func (c Config) Taxonomy() domain.Taxonomy {
	return domain.Taxonomy(c.Keywords)
}

// MaxEntries is the per-feed item cap.
func (h HarvestConfig) MaxEntries() int { return derefInt(h.MaxEntriesPerFeed) }

// Threshold is the minimum keyword score a record needs to be kept.
func (h HarvestConfig) Threshold() int { return derefInt(h.KeywordScoreThreshold) }

// Flags collapses the optional switches into plain booleans.
func (h HarvestConfig) Flags() domain.RecordFlags {
	return domain.RecordFlags{
		IncludeContent:     derefBool(h.IncludeContent),
		IncludeCategories:  derefBool(h.IncludeCategories),
		IncludePublishDate: derefBool(h.IncludePublishDate),
		ExtractFullContent: derefBool(h.ExtractFullContent),
		FilterByKeywords:   derefBool(h.FilterByKeywords),
	}
}

// Load reads .env and YAML configuration (if present), applies environment
// overrides and validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadBytes parses YAML over the defaults and validates it.
func LoadBytes(raw []byte) (Config, error) {
	fileCfg, err := Parse(raw)
	if err != nil {
		return Config{}, err
	}
	cfg := mergeConfig(defaultConfig(), fileCfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Archive.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error

	if len(c.Feeds) == 0 {
		errs = append(errs, errors.New("no feeds configured"))
	}
	if c.Harvest.FetchInterval <= 0 {
		errs = append(errs, errors.New("fetchInterval must be positive"))
	}
	if c.Harvest.MaxEntries() < 0 {
		errs = append(errs, errors.New("maxEntriesPerFeed must be >= 0"))
	}
	if c.Harvest.Concurrency <= 0 {
		errs = append(errs, errors.New("concurrency must be positive"))
	}
	if c.Harvest.Flags().FilterByKeywords && len(c.Keywords) == 0 {
		errs = append(errs, errors.New("keyword filtering enabled with an empty taxonomy"))
	}
	for _, site := range c.Sites {
		if strings.TrimSpace(site.Name) == "" {
			errs = append(errs, errors.New("site profile without match"))
		}
		if err := validateProfile(site); err != nil {
			errs = append(errs, err)
		}
	}
	if err := validateProfile(c.DefaultSite); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func validateProfile(p domain.SiteProfile) error {
	name := p.Name
	if name == "" {
		name = "default"
	}
	if len(p.ArticleSelectors) == 0 {
		return fmt.Errorf("profile %s: no articleSelectors", name)
	}
	if strings.TrimSpace(p.ParagraphSelector) == "" {
		return fmt.Errorf("profile %s: empty paragraphSelector", name)
	}
	if p.MinParagraphLength < 0 {
		return fmt.Errorf("profile %s: negative minParagraphLength", name)
	}
	return nil
}

func mergeConfig(base, override Config) Config {
	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	h := override.Harvest
	if h.FetchInterval != 0 {
		base.Harvest.FetchInterval = h.FetchInterval
	}
	if h.MaxEntriesPerFeed != nil {
		base.Harvest.MaxEntriesPerFeed = h.MaxEntriesPerFeed
	}
	if h.IncludeContent != nil {
		base.Harvest.IncludeContent = h.IncludeContent
	}
	if h.IncludeCategories != nil {
		base.Harvest.IncludeCategories = h.IncludeCategories
	}
	if h.IncludePublishDate != nil {
		base.Harvest.IncludePublishDate = h.IncludePublishDate
	}
	if h.ExtractFullContent != nil {
		base.Harvest.ExtractFullContent = h.ExtractFullContent
	}
	if h.FilterByKeywords != nil {
		base.Harvest.FilterByKeywords = h.FilterByKeywords
	}
	if h.KeywordScoreThreshold != nil {
		base.Harvest.KeywordScoreThreshold = h.KeywordScoreThreshold
	}
	if h.Concurrency != 0 {
		base.Harvest.Concurrency = h.Concurrency
	}

	if override.HTTP.UserAgent != "" {
		base.HTTP.UserAgent = override.HTTP.UserAgent
	}
	if override.HTTP.Timeout != 0 {
		base.HTTP.Timeout = override.HTTP.Timeout
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.DataFile != "" {
		base.Output.DataFile = override.Output.DataFile
	}
	if override.Output.ReportFile != "" {
		base.Output.ReportFile = override.Output.ReportFile
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Archive.DSN != "" {
		base.Archive.DSN = override.Archive.DSN
	}
	if override.Archive.Table != "" {
		base.Archive.Table = override.Archive.Table
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Sites != nil {
		base.Sites = override.Sites
	}
	if len(override.DefaultSite.ArticleSelectors) > 0 || override.DefaultSite.ParagraphSelector != "" {
		base.DefaultSite = override.DefaultSite
	}
	if override.Keywords != nil {
		base.Keywords = override.Keywords
	}

	return base
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefBool(v *bool) bool {
	return v != nil && *v
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
