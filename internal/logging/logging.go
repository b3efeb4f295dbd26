package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a console slog.Logger with provided level string.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler).With("service", "feedharvester")
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

type attrsKey struct{}

// WithAttrs returns a context carrying log attributes that FromContext
// attaches to any logger, e.g. the run_id of a harvest.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	prev, _ := ctx.Value(attrsKey{}).([]any)
	merged := append(append([]any(nil), prev...), args...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

// FromContext decorates base with the attributes stored in ctx.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	args, _ := ctx.Value(attrsKey{}).([]any)
	if len(args) == 0 {
		return base
	}
	return base.With(args...)
}
