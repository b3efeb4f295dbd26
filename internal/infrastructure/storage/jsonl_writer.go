package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"FeedHarvester/internal/domain"
	"FeedHarvester/internal/ports"
)

// JSONLWriter stores records as one JSON object per line.
type JSONLWriter struct {
	path string
}

var _ ports.RecordSink = (*JSONLWriter)(nil)

// NewJSONLWriter targets path; parent directories are created on write.
func NewJSONLWriter(path string) *JSONLWriter {
	return &JSONLWriter{path: path}
}

// Path returns the target file.
func (w *JSONLWriter) Path() string { return w.path }

// WriteRecords replaces the file with records.
func (w *JSONLWriter) WriteRecords(ctx context.Context, records []domain.AIRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	return writeFile(w.path, func(buf *bufio.Writer) error {
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		for i := range records {
			if err := enc.Encode(&records[i]); err != nil {
				return fmt.Errorf("encode record %d: %w", i, err)
			}
		}
		return nil
	})
}

// writeFile creates parent directories, writes through a temp file and
// renames it over path so readers never see a partial file.
func writeFile(path string, fill func(*bufio.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", domain.ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrIO, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	buf := bufio.NewWriter(tmp)
	if err := fill(buf); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := buf.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: flush %s: %v", domain.ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrIO, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", domain.ErrIO, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %v", domain.ErrIO, path, err)
	}
	return nil
}
