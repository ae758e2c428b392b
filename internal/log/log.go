// Package log provides a leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Level specifies the level of logging.
type Level int

// Supported log levels.
const (
	Debug Level = iota - 1
	Info
	Error

	// discard is higher than all other levels.
	// Nothing is logged at this level.
	discard
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return strconv.Itoa(int(l))
	}
}

// Discard is a logger that discards all its operations.
var Discard = New(io.Discard).WithLevel(discard)

// Logger writes messages at or above a set level to an io.Writer.
// The zero value of Logger is not usable; use New.
type Logger struct {
	w     io.Writer
	level Level
	name  string
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return &Logger{w: w, level: Info}
}

// Level reports the minimum level this logger reports at.
func (l *Logger) Level() Level {
	return l.level
}

// WithLevel builds a new logger that logs messages at or above the provided
// level. The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithLevel(lvl Level) *Logger {
	out := *l
	out.level = lvl
	return &out
}

// WithName builds a new logger with the provided name. Messages logged to it
// are prefixed with this name. The returned logger is safe to use
// concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	if len(out.name) > 0 {
		name = out.name + "." + name
	}
	out.name = name
	return &out
}

// Logf logs a printf-style message at the provided level. Trailing newlines
// are dropped; the message always ends with exactly one.
func (l *Logger) Logf(lvl Level, format string, args ...interface{}) {
	if lvl < l.level {
		return
	}

	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if len(l.name) > 0 {
		msg = "[" + l.name + "] " + msg
	}
	fmt.Fprintln(l.w, msg)
}

// Debugf logs a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(Debug, format, args...)
}

// Infof logs a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(Info, format, args...)
}

// Errorf logs a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(Error, format, args...)
}
