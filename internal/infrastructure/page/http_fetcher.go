package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/ports"
)

// maxPageBytes caps how much of a page body is read.
const maxPageBytes = 5 << 20

// HTTPFetcher downloads article pages.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

var _ ports.PageSource = (*HTTPFetcher)(nil)

// NewHTTPFetcher wires an HTTP client. timeout bounds every single fetch;
// zero leaves only the client's own timeout.
func NewHTTPFetcher(client *http.Client, userAgent string, timeout time.Duration) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if userAgent == "" {
		userAgent = "FeedHarvester/1.0"
	}
	return &HTTPFetcher{client: client, userAgent: userAgent, timeout: timeout}
}

// FetchPage returns the raw HTML body of pageURL.
func (f *HTTPFetcher) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request page: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: page returned %s", domain.ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read page: %v", domain.ErrFetch, err)
	}
	return body, nil
}
