package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Feeds, 4)
	assert.Equal(t, time.Hour, cfg.Harvest.FetchInterval)
	assert.Equal(t, 50, cfg.Harvest.MaxEntries())
	assert.Equal(t, 1, cfg.Harvest.Threshold())
	assert.True(t, cfg.Harvest.Flags().FilterByKeywords)
	assert.Equal(t, []string{"technology", "politics", "economy", "culture"}, cfg.Taxonomy().Names())
	assert.Equal(t, filepath.Join("output", "ai_training_data.jsonl"), cfg.Output.DataPath())
}

func TestLoadBytesKeepsTaxonomyOrder(t *testing.T) {
	t.Parallel()

	raw := []byte(`
keywords:
  zeta: ["z1"]
  alpha: ["a1", "a2 phrase"]
  mid: ["m"]
`)
	cfg, err := LoadBytes(raw)
	require.NoError(t, err)

	tax := cfg.Taxonomy()
	require.Len(t, tax, 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tax.Names())
	assert.Equal(t, []string{"a1", "a2 phrase"}, tax[1].Keywords)
}

func TestLoadBytesPartialOverride(t *testing.T) {
	t.Parallel()

	raw := []byte(`
harvest:
  fetchInterval: 15m
  maxEntriesPerFeed: 0
  filterByKeywords: false
  keywordScoreThreshold: 3
output:
  dir: /tmp/harvest
sites:
  - match: blog.example.com
    articleSelectors: [".post"]
    paragraphSelector: p
    minParagraphLength: 10
`)
	cfg, err := LoadBytes(raw)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Harvest.FetchInterval)
	assert.Equal(t, 0, cfg.Harvest.MaxEntries())
	assert.False(t, cfg.Harvest.Flags().FilterByKeywords)
	assert.True(t, cfg.Harvest.Flags().IncludeContent)
	assert.Equal(t, 3, cfg.Harvest.Threshold())
	assert.Equal(t, "/tmp/harvest", cfg.Output.Dir)
	assert.Equal(t, "rapport.txt", cfg.Output.ReportFile)
	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, "blog.example.com", cfg.Sites[0].Name)
	assert.Equal(t, "default", cfg.DefaultSite.Name)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"negative max entries":  "harvest:\n  maxEntriesPerFeed: -1\n",
		"empty selectors":       "sites:\n  - match: x.org\n    paragraphSelector: p\n",
		"profile without match": "sites:\n  - articleSelectors: [main]\n    paragraphSelector: p\n",
		"empty taxonomy":        "keywords: {}\n",
		"negative interval":     "harvest:\n  fetchInterval: -1s\n",
	}
	for name, raw := range cases {
		_, err := LoadBytes([]byte(raw))
		assert.Error(t, err, name)
	}
}

func TestTaxonomyMustBeMapping(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("keywords:\n  - a\n  - b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feeds: [\"https://example.org/rss.xml\"]\n"), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv(outputDirEnv, filepath.Join(dir, "out"))
	t.Setenv(telegramTokenEnv, "token")
	t.Setenv(telegramChatIDEnv, "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org/rss.xml"}, cfg.Feeds)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Output.Dir)
	assert.True(t, cfg.Notifications.Telegram.Enabled())
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
