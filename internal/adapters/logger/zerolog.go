// Package logger implements ports.Logger on top of zerolog.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/huku-dev/vela-sub000/internal/ports"
)

// ZeroLogger implements the ports.Logger interface using zerolog.
type ZeroLogger struct {
	log zerolog.Logger
}

// ParseLevel converts a string level to a zerolog level, defaulting to
// info for unrecognized values.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a zerolog-backed logger writing to os.Stderr.
func New(level zerolog.Level, component string) *ZeroLogger {
	return NewWithWriter(level, component, os.Stderr)
}

// NewWithWriter creates a zerolog-backed logger writing to w.
func NewWithWriter(level zerolog.Level, component string, w io.Writer) *ZeroLogger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()
	return &ZeroLogger{log: zl}
}

var _ ports.Logger = (*ZeroLogger)(nil)

func (l *ZeroLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.emit(l.log.Debug(), msg, fields)
}

func (l *ZeroLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.emit(l.log.Info(), msg, fields)
}

func (l *ZeroLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.emit(l.log.Warn(), msg, fields)
}

func (l *ZeroLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	l.emit(l.log.Error().Err(err), msg, fields)
}

func (l *ZeroLogger) emit(ev *zerolog.Event, msg string, fields []map[string]interface{}) {
	if len(fields) > 0 && fields[0] != nil {
		ev = ev.Fields(fields[0])
	}
	ev.Msg(msg)
}
