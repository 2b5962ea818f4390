package logger

import (
	"fmt"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
)

// Logger is a lightweight value that stamps records with a producer tag and
// hands them to a hub. It is immutable and safe for concurrent use; copy it
// freely.
type Logger struct {
	hub *dispatch.Sinker
	tag string
}

// New creates a logger that dispatches through hub under the given tag.
func New(hub *dispatch.Sinker, tag string) Logger {
	return Logger{hub: hub, tag: tag}
}

// Tag returns the producer identity attached to records from this logger.
func (l Logger) Tag() string {
	return l.tag
}

// Log dispatches a pre-formatted message at the given level. The severity
// threshold is checked opportunistically here to skip record construction;
// the hub re-checks centrally at fan-out.
func (l Logger) Log(level core.Level, msg string) {
	if l.hub == nil || !core.Enabled(level, l.hub.Level()) {
		return
	}
	l.hub.Dispatch(core.NewRecord(level, l.tag, msg))
}

// Logf formats and dispatches a message at the given level. Formatting is
// skipped entirely when the level is filtered out.
func (l Logger) Logf(level core.Level, format string, args ...any) {
	if l.hub == nil || !core.Enabled(level, l.hub.Level()) {
		return
	}
	l.hub.Dispatch(core.NewRecord(level, l.tag, fmt.Sprintf(format, args...)))
}

// Error logs an error message
func (l Logger) Error(msg string) { l.Log(core.LevelError, msg) }

// Warn logs a warning message
func (l Logger) Warn(msg string) { l.Log(core.LevelWarning, msg) }

// Info logs an informational message
func (l Logger) Info(msg string) { l.Log(core.LevelInfo, msg) }

// Debug logs a debug message
func (l Logger) Debug(msg string) { l.Log(core.LevelDebug, msg) }

// Verbose logs a verbose trace message
func (l Logger) Verbose(msg string) { l.Log(core.LevelVerbose, msg) }

// Errorf logs an error message with formatting
func (l Logger) Errorf(format string, args ...any) { l.Logf(core.LevelError, format, args...) }

// Warnf logs a warning message with formatting
func (l Logger) Warnf(format string, args ...any) { l.Logf(core.LevelWarning, format, args...) }

// Infof logs an informational message with formatting
func (l Logger) Infof(format string, args ...any) { l.Logf(core.LevelInfo, format, args...) }

// Debugf logs a debug message with formatting
func (l Logger) Debugf(format string, args ...any) { l.Logf(core.LevelDebug, format, args...) }

// Verbosef logs a verbose trace message with formatting
func (l Logger) Verbosef(format string, args ...any) { l.Logf(core.LevelVerbose, format, args...) }
