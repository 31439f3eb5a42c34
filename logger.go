package fb

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels,
// so disabled calls never format their arguments.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is returned by Logger while no logger is set.
var silent = slog.New(nopHandler{})

// logger holds the package-wide logger; nil means silent.
var logger atomic.Pointer[slog.Logger]

// SetLogger configures the package-wide logger used by engines created
// without WithLogger. By default, fb produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to silence fb again.
//
// Log levels used by fb:
//   - [slog.LevelDebug]: runes drawn as .notdef
//   - [slog.LevelInfo]: device opened, font loaded
//   - [slog.LevelWarn]: device geometry query failed, fallback profile used
//
// Example:
//
//	fb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the current package-wide logger. It never returns nil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
