package reporting

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel selects the minimum severity the logger emits.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat selects between human-oriented console lines and JSON lines
// for machine consumers, mirroring ReportFormat's text/json split.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig configures a Logger. A nil Output falls back to stdout; an
// unrecognized or empty Level falls back to info.
type LoggerConfig struct {
	Level  LogLevel
	Format LogFormat
	Output io.Writer
}

// Logger is a thin zerolog wrapper carrying the battery's logging
// conventions: a message plus alternating key-value fields, used by the
// CLI for sequence loading and by report persistence and rendering.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a Logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format != LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(string(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// Debug logs at debug level with alternating key-value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	emit(l.zl.Debug(), msg, fields)
}

// Info logs at info level with alternating key-value fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	emit(l.zl.Info(), msg, fields)
}

// Warn logs at warn level with alternating key-value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	emit(l.zl.Warn(), msg, fields)
}

// Error logs at error level with alternating key-value fields.
func (l *Logger) Error(msg string, fields ...interface{}) {
	emit(l.zl.Error(), msg, fields)
}

// emit attaches alternating key-value fields to the event. A non-string
// key is logged under a positional name, and a trailing key without a
// value is kept under "extra" rather than dropped.
func emit(ev *zerolog.Event, msg string, fields []interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("field%d", i)
		}
		ev = ev.Interface(key, fields[i+1])
	}
	if len(fields)%2 != 0 {
		ev = ev.Interface("extra", fields[len(fields)-1])
	}
	ev.Msg(msg)
}
