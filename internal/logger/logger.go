// Package logger provides postpipe's structured logger: charm/log with
// helpers for the pipeline's recurring events.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "postpipe",
	})
	return &Logger{Logger: l}
}

// NewFromString creates a logger from a level name such as "debug".
// Unknown names fall back to info.
func NewFromString(w io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return NewWithLevel(w, lvl)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, format string, strict bool) {
	l.Debug("config loaded",
		"path", path,
		"format", format,
		"strict_blocks", strict)
}

// Discovered logs the result of blog index discovery
func (l *Logger) Discovered(index string, posts int) {
	l.Info("posts discovered",
		"index", index,
		"posts", posts)
}

// PostNormalized logs a post that went through the pipeline
func (l *Logger) PostNormalized(source, dest string, changed bool, duration time.Duration) {
	l.Info("post normalized",
		"source", source,
		"dest", dest,
		"changed", changed,
		"duration", duration.Round(time.Microsecond))
}

// PostFailed logs an error for a specific post
func (l *Logger) PostFailed(source string, err error) {
	l.Error("post failed",
		"source", source,
		"error", err)
}
