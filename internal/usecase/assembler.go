package usecase

import (
	"time"

	"FeedHarvester/internal/domain"
)

// isoTimestamp is ISO-8601 with millisecond precision.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

// textCandidate supplies one candidate for the text to analyse.
type textCandidate func(item domain.FeedItem, extracted string) string

// analysisChain lists text sources in precedence order; the first non-empty wins.
var analysisChain = []textCandidate{
	func(_ domain.FeedItem, extracted string) string { return extracted },
	func(item domain.FeedItem, _ string) string { return item.ContentEncoded },
	func(item domain.FeedItem, _ string) string { return item.Content },
	func(item domain.FeedItem, _ string) string { return item.ContentSnippet },
	func(item domain.FeedItem, _ string) string { return item.Description },
}

// summaryChain is the analysis chain without the extracted page text.
var summaryChain = analysisChain[1:]

func firstNonEmpty(chain []textCandidate, item domain.FeedItem, extracted string) string {
	for _, candidate := range chain {
		if text := candidate(item, extracted); text != "" {
			return text
		}
	}
	return ""
}

// AnalysisText selects the text an article is scored on.
func AnalysisText(item domain.FeedItem, extracted string) string {
	return firstNonEmpty(analysisChain, item, extracted)
}

// SummaryText selects the feed-provided summary of an article.
func SummaryText(item domain.FeedItem) string {
	return firstNonEmpty(summaryChain, item, "")
}

// Assemble merges feed metadata, extracted text and a score into a record
// stamped with the capture time now.
func Assemble(item domain.FeedItem, extracted string, score domain.ScoreResult, flags domain.RecordFlags, now time.Time) domain.AIRecord {
	record := domain.AIRecord{
		Title:             item.Title,
		Source:            item.Link,
		Timestamp:         now.UTC().Format(isoTimestamp),
		KeywordScore:      score.Total,
		KeywordCategories: score.Categories,
		FullContent:       extracted,
	}
	if record.KeywordCategories == nil {
		record.KeywordCategories = domain.CategoryBreakdown{}
	}

	if flags.IncludeContent {
		record.SummaryContent = SummaryText(item)
	}

	if flags.IncludeCategories && len(item.Categories) > 0 {
		record.Categories = append([]string(nil), item.Categories...)
	}

	if flags.IncludePublishDate && item.Published != "" {
		record.PublishDate = item.Published
	}

	record.Author = item.Author

	return record
}
