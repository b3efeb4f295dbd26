package storage

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/ports"
	"FeedHarvester/internal/report"
)

// ReportWriter renders and stores the plain-text run report.
type ReportWriter struct {
	path string
	now  func() time.Time
}

var _ ports.ReportSink = (*ReportWriter)(nil)

// NewReportWriter targets path; a nil clock means time.Now.
func NewReportWriter(path string, now func() time.Time) *ReportWriter {
	if now == nil {
		now = time.Now
	}
	return &ReportWriter{path: path, now: now}
}

// WriteReport replaces the report file with a summary of all and kept.
func (w *ReportWriter) WriteReport(ctx context.Context, all, kept []domain.AIRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	text := report.Build(all, kept, w.now())
	return writeFile(w.path, func(buf *bufio.Writer) error {
		_, err := buf.WriteString(text)
		return err
	})
}
