package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/ports"
)

// GofeedSource fetches RSS/Atom feeds over HTTP and parses them with gofeed.
type GofeedSource struct {
	client    *http.Client
	userAgent string
}

var _ ports.FeedSource = (*GofeedSource)(nil)

// NewGofeedSource wires an HTTP client; a nil client gets a 20s timeout.
func NewGofeedSource(client *http.Client, userAgent string) *GofeedSource {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if userAgent == "" {
		userAgent = "FeedHarvester/1.0"
	}
	return &GofeedSource{client: client, userAgent: userAgent}
}

// FetchFeed downloads feedURL and converts its entries to feed items.
func (s *GofeedSource) FetchFeed(ctx context.Context, feedURL string) ([]domain.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request feed: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned %s", domain.ErrFetch, resp.Status)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed feed: %v", domain.ErrFetch, err)
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		items = append(items, toFeedItem(item))
	}
	return items, nil
}

func toFeedItem(item *gofeed.Item) domain.FeedItem {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	return domain.FeedItem{
		Title:           strings.TrimSpace(item.Title),
		Link:            strings.TrimSpace(item.Link),
		ContentEncoded:  item.Content,
		Content:         content,
		ContentSnippet:  stripHTML(content),
		Description:     item.Description,
		Categories:      item.Categories,
		Published:       item.Published,
		PublishedParsed: item.PublishedParsed,
		Author:          authorName(item),
	}
}

func authorName(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

// stripHTML returns the text content of an HTML fragment.
func stripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
