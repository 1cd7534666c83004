// Package logging provides the zerolog setup shared by all gasfocus
// commands: console or file output, component-scoped loggers, and ULID
// trace IDs carried on the context.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// Format selects "console" (human-readable) or "json" output.
	Format string

	// File, when non-empty, appends JSON logs to the given path instead of
	// writing to stderr.
	File string
}

// Result reports what New actually configured, so the caller can close the
// file handle and warn when a file could not be opened.
type Result struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. When cfg.File cannot be opened the logger
// falls back to stderr and Result.FallbackReason explains why.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var result Result
	var out io.Writer = os.Stderr

	if cfg.File != "" {
		file, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			result.FallbackReason = openErr.Error()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
			out = file
		}
	}

	// Console formatting only makes sense on a terminal stream; file logs
	// stay machine-readable JSON.
	if cfg.Format != "json" && !result.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// NewTraceID generates a ULID trace identifier for one command invocation.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID attaches a trace ID to the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID on ctx, generating one when absent.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok && id != "" {
		return id
	}
	return NewTraceID()
}
