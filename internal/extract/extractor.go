package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/logging"
	"FeedHarvester/internal/ports"
)

// Extractor downloads article pages and pulls their body text using the
// profile of the page's site.
type Extractor struct {
	pages    ports.PageSource
	resolver *ProfileResolver
	logger   *slog.Logger
}

var _ ports.ContentExtractor = (*Extractor)(nil)

// NewExtractor wires a page source and a profile resolver.
func NewExtractor(pages ports.PageSource, resolver *ProfileResolver, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{pages: pages, resolver: resolver, logger: log}
}

// ExtractURL fetches rawURL and returns its article text. Fetch and parse
// failures are logged and produce empty content.
func (e *Extractor) ExtractURL(ctx context.Context, rawURL string) domain.ExtractedContent {
	log := logging.FromContext(ctx, e.logger)
	content, err := e.extractURL(ctx, rawURL)
	if err != nil {
		log.Warn("content extraction failed", "url", rawURL, "error", err)
		return content
	}
	log.Debug("content extracted", "domain", content.Domain, "chars", content.Length)
	return content
}

func (e *Extractor) extractURL(ctx context.Context, rawURL string) (domain.ExtractedContent, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return domain.ExtractedContent{}, fmt.Errorf("%w: invalid url: %v", domain.ErrParse, err)
	}
	host := parsed.Hostname()
	if host == "" {
		return domain.ExtractedContent{}, fmt.Errorf("%w: url %q has no host", domain.ErrParse, rawURL)
	}

	content := domain.ExtractedContent{Domain: NormalizeHost(host)}
	if e.pages == nil {
		return content, fmt.Errorf("%w: page source is not configured", domain.ErrFetch)
	}

	body, err := e.pages.FetchPage(ctx, rawURL)
	if err != nil {
		return content, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return content, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	content.Text = Extract(doc, e.resolver.Resolve(host))
	content.Length = utf8.RuneCountInString(content.Text)
	return content, nil
}

// Extract returns the best-effort article text of doc:
//  1. the first container matched by profile.ArticleSelectors, reduced to its
//     paragraphs, or to its whole text when it has no paragraph text;
//  2. without a container, every paragraph in the document longer than
//     profile.MinParagraphLength.
//
// Whitespace runs are collapsed to single spaces.
func Extract(doc *goquery.Document, profile domain.SiteProfile) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder
	if container := findContainer(doc, profile.ArticleSelectors); container != nil {
		container.Find(profile.ParagraphSelector).Each(func(_ int, p *goquery.Selection) {
			b.WriteString(p.Text())
			b.WriteString("\n\n")
		})
		if strings.TrimSpace(b.String()) == "" {
			return collapseWhitespace(container.Text())
		}
		return collapseWhitespace(b.String())
	}

	doc.Find(profile.ParagraphSelector).Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		if utf8.RuneCountInString(text) > profile.MinParagraphLength {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	})
	return collapseWhitespace(b.String())
}

func findContainer(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if strings.TrimSpace(sel) == "" {
			continue
		}
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
