package report

import (
	"fmt"
	"strings"
	"time"

	"FeedHarvester/internal/domain"
)

// Build renders the plain-text summary of a run: totals, kept articles per
// category and one block per kept article.
func Build(all, kept []domain.AIRecord, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("RSS FEED HARVEST REPORT\n")
	fmt.Fprintf(&b, "Date: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total articles fetched: %d\n", len(all))
	fmt.Fprintf(&b, "Articles kept after filtering: %d\n\n", len(kept))

	b.WriteString("KEPT ARTICLES BY CATEGORY:\n")
	for _, c := range CategoryCounts(kept) {
		fmt.Fprintf(&b, "- %s: %d articles\n", c.Category, c.Count)
	}

	b.WriteString("\nKEPT ARTICLE DETAILS:\n")
	for i, r := range kept {
		fmt.Fprintf(&b, "%d. %q (Score: %d)\n", i+1, r.Title, r.KeywordScore)
		fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(r.KeywordCategories.Names(), ", "))
		fmt.Fprintf(&b, "   Source: %s\n\n", r.Source)
	}

	return b.String()
}

// CategoryCount is the number of kept records a category matched.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryCounts tallies categories in order of first appearance.
func CategoryCounts(records []domain.AIRecord) []CategoryCount {
	index := map[string]int{}
	var counts []CategoryCount
	for _, r := range records {
		for _, m := range r.KeywordCategories {
			i, ok := index[m.Category]
			if !ok {
				i = len(counts)
				index[m.Category] = i
				counts = append(counts, CategoryCount{Category: m.Category})
			}
			counts[i].Count++
		}
	}
	return counts
}
