// Package logger wraps zerolog with component-tagged helpers.
//
// Everything is written to a caller-supplied writer, normally stderr, because
// stdout carries the MCP protocol.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a component-scoped structured logger. The zero value is not
// usable; use New or Nop.
type Logger struct {
	zl zerolog.Logger
}

// New returns a logger writing JSON lines to w at level. With console set,
// output is formatted for humans with zerolog.ConsoleWriter.
func New(w io.Writer, level zerolog.Level, console bool) *Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// give info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Component returns a child logger that tags every event with component.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Enabled reports whether events at level are written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.zl.GetLevel() <= level && level != zerolog.Disabled
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	l.zl.Error().Err(err).Fields(fields).Msg(msg)
}
