package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrFetch marks a feed or page that could not be retrieved.
	ErrFetch = errors.New("fetch failed")
	// ErrParse marks a document that could not be turned into a traversable structure.
	ErrParse = errors.New("parse failed")
	// ErrIO marks a persistence or report write failure.
	ErrIO = errors.New("io failed")
)

// FeedItem is one syndicated entry as delivered by a feed source.
type FeedItem struct {
	Title           string
	Link            string
	ContentEncoded  string
	Content         string
	ContentSnippet  string
	Description     string
	Categories      []string
	Published       string
	PublishedParsed *time.Time
	Author          string
}

// ExtractedContent is the plain-text body resolved from an article page.
type ExtractedContent struct {
	Text   string
	Domain string
	Length int
}

// KeywordCount is a single keyword phrase with its occurrence count.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordMatch is the per-category part of a score.
type KeywordMatch struct {
	Category string         `json:"-"`
	Score    int            `json:"score"`
	Keywords []KeywordCount `json:"keywords"`
}

// CategoryBreakdown lists matched categories in taxonomy order.
// It marshals to a JSON object keyed by category name.
type CategoryBreakdown []KeywordMatch

// Get returns the match for a category, if the category scored.
func (c CategoryBreakdown) Get(category string) (KeywordMatch, bool) {
	for _, m := range c {
		if m.Category == category {
			return m, true
		}
	}
	return KeywordMatch{}, false
}

// Names returns the matched category names in order.
func (c CategoryBreakdown) Names() []string {
	names := make([]string, 0, len(c))
	for _, m := range c {
		names = append(names, m.Category)
	}
	return names
}

// MarshalJSON keeps taxonomy order, which a Go map would lose.
func (c CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Category)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ScoreResult is the outcome of scoring a text against a taxonomy.
type ScoreResult struct {
	Total      int
	Categories CategoryBreakdown
}

// AIRecord is the normalized, persisted form of a harvested article.
type AIRecord struct {
	Title             string            `json:"title"`
	Source            string            `json:"source"`
	Timestamp         string            `json:"timestamp"`
	KeywordScore      int               `json:"keywordScore"`
	KeywordCategories CategoryBreakdown `json:"keywordCategories"`
	FullContent       string            `json:"fullContent,omitempty"`
	SummaryContent    string            `json:"summaryContent,omitempty"`
	Categories        []string          `json:"categories,omitempty"`
	PublishDate       string            `json:"publishDate,omitempty"`
	Author            string            `json:"author,omitempty"`
}

// SiteProfile tells the extractor where article text lives on a site.
type SiteProfile struct {
	Name               string   `yaml:"match"`
	ArticleSelectors   []string `yaml:"articleSelectors"`
	ParagraphSelector  string   `yaml:"paragraphSelector"`
	MinParagraphLength int      `yaml:"minParagraphLength"`
}

// RecordFlags selects the optional parts of an AIRecord.
type RecordFlags struct {
	IncludeContent     bool
	IncludeCategories  bool
	IncludePublishDate bool
	ExtractFullContent bool
	FilterByKeywords   bool
}
