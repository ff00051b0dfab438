package logging

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// ActionLogger provides logging functionality for demonstration runs
type ActionLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger ActionLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) ActionLogger {
	if logger, ok := ctx.Value(loggerKey).(ActionLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// levelRank orders log levels for threshold filtering
var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// FilteredLogger drops entries below a minimum level before delegating
// to the wrapped logger. Unknown levels pass through unfiltered.
type FilteredLogger struct {
	inner ActionLogger
	min   int
}

// NewFilteredLogger creates a logger that only forwards entries at or
// above minLevel (debug < info < warn < error)
func NewFilteredLogger(inner ActionLogger, minLevel string) *FilteredLogger {
	min, ok := levelRank[minLevel]
	if !ok {
		min = levelRank["info"]
	}
	return &FilteredLogger{inner: inner, min: min}
}

// Log forwards the entry when its level meets the threshold
func (l *FilteredLogger) Log(level, message string, metadata map[string]interface{}) {
	if rank, ok := levelRank[level]; ok && rank < l.min {
		return
	}
	l.inner.Log(level, message, metadata)
}

// WriterLogger writes log lines to an io.Writer. Used by the CLI in
// verbose mode; effects still flow through the effect sink, this only
// carries diagnostics.
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

// Log writes a single "[LEVEL] message key=value" line
func (l *WriterLogger) Log(level, message string, metadata map[string]interface{}) {
	line := fmt.Sprintf("[%s] %s", level, message)
	if len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, metadata[k])
		}
	}
	fmt.Fprintln(l.w, line)
}
