package common

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Used as the default so library code can log
// unconditionally without forcing output on the host application.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used by all engine packages. Passing nil
// restores the no-op default. Safe for concurrent use.
//
// Parameters:
//   - l: the logger to install, or nil to silence engine logging
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the currently installed engine logger.
//
// Returns:
//   - *slog.Logger: the active logger, never nil
func Logger() *slog.Logger {
	return logger.Load()
}
