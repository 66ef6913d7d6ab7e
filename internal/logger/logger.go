// Package logger provides a simple logging interface for lanwatch components.
// It lets packages emit debug, info, warn, and error messages without being
// coupled to a concrete backend; the default implementation writes zerolog
// console output to stderr.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zlog implements Logger on top of a zerolog.Logger.
type zlog struct {
	zl zerolog.Logger
}

// New creates a zerolog-backed logger writing console-formatted lines to w.
// The component tag is attached to every message when non-empty. Debug
// messages are dropped unless debug is true.
func New(w io.Writer, component string, debug bool) Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	ctx := zerolog.New(cw).Level(level).With().Timestamp()
	if component != "" {
		ctx = ctx.Str("comp", component)
	}
	return &zlog{zl: ctx.Logger()}
}

// NewEnvLogger creates a stderr logger that enables debug output when the
// LANWATCH_DEBUG environment variable is set. The component tag is attached
// to every message (e.g., "discovery" or "monitor").
func NewEnvLogger(component string) Logger {
	return New(os.Stderr, component, os.Getenv("LANWATCH_DEBUG") != "")
}

func (l *zlog) Debug(format string, args ...interface{}) { l.zl.Debug().Msgf(format, args...) }
func (l *zlog) Info(format string, args ...interface{})  { l.zl.Info().Msgf(format, args...) }
func (l *zlog) Warn(format string, args ...interface{})  { l.zl.Warn().Msgf(format, args...) }
func (l *zlog) Error(format string, args ...interface{}) { l.zl.Error().Msgf(format, args...) }

// noopLogger implements Logger but discards all messages.
// Used by the dashboard path, where stderr output would corrupt the TUI.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// Record is a single captured log message.
type Record struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Exported for use in test assertions.
type BufferLogger struct {
	Records []Record
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Records: make([]Record, 0)}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.append("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.append("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.append("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.append("error", format, args) }

func (l *BufferLogger) append(level, format string, args []interface{}) {
	l.Records = append(l.Records, Record{Level: level, Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, r := range l.Records {
		if r.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Records = l.Records[:0]
}

// defaultLogger is the package-level default logger.
var defaultLogger = NewEnvLogger("")

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
// Useful for tests or to configure logging globally.
func SetDefault(l Logger) {
	defaultLogger = l
}
