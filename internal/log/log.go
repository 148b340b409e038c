// Package log provides leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"io"
	"log/slog"
	"math"

	"github.com/mattn/go-isatty"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError

	discard Level = math.MaxInt32
)

// Logger is a leveled logger.
type Logger struct {
	*slog.Logger

	h *handler
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
//
// Output is colored if w is a terminal.
func New(w io.Writer) *Logger {
	return newLogger(&handler{
		W:     w,
		Level: Info,
		Color: isTerminal(w),
	})
}

func newLogger(h *handler) *Logger {
	return &Logger{Logger: slog.New(h), h: h}
}

// Level reports the minimum level of messages written by this logger.
func (l *Logger) Level() Level {
	return l.h.Level
}

// WithLevel builds a copy of this logger that writes messages at or above
// the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h := *l.h
	h.Level = lvl
	return newLogger(&h)
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
//
// Names nest: a logger named "b" built from a logger named "a"
// is named "a.b".
func (l *Logger) WithName(name string) *Logger {
	h := *l.h
	if len(h.name) > 0 {
		h.name += "."
	}
	h.name += name
	return newLogger(&h)
}

// OmitEmpty builds an attribute using the given constructor function,
// but if the value is the zero value for its type,
// it skips the attribute.
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{} // ignore
	}
	return fn(name, value)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}
