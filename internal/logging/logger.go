// Package logging provides the structured logger shared by the advising commands.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with catalog-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a text Logger writing to w at the given level.
// If w is nil, logs go to stderr.
func New(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// Discard creates a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// The empty string maps to warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// WithSource tags the logger with the catalog source being read.
func (l *Logger) WithSource(path string) *Logger {
	return &Logger{Logger: l.Logger.With("source", path)}
}

// LogInsert logs the outcome of one index insert.
func (l *Logger) LogInsert(ctx context.Context, line int, id string, inserted bool) {
	if inserted {
		l.DebugContext(ctx, "course inserted", "line", line, "id", id)
		return
	}
	l.DebugContext(ctx, "duplicate course skipped", "line", line, "id", id)
}

// LogMalformed logs a rejected input line. Callers report it to the user, so
// it stays below the default warn level.
func (l *Logger) LogMalformed(ctx context.Context, line int, err error) {
	l.InfoContext(ctx, "malformed line skipped", "line", line, "error", err)
}

// LogLoad logs the end of a catalog load.
func (l *Logger) LogLoad(ctx context.Context, accepted, inserted, duplicates, malformed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "catalog load failed",
			"accepted", accepted,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "catalog loaded",
		"accepted", accepted,
		"inserted", inserted,
		"duplicates", duplicates,
		"malformed", malformed,
	)
}
