package core

import "strings"

// Level represents the severity of a log record. Levels are ordered by
// increasing verbosity: LevelNone disables all output, LevelError is the
// most severe message level and LevelVerbose the chattiest.
type Level int8

const (
	// LevelNone disables all output when used as a threshold
	LevelNone Level = iota
	// LevelError for error messages
	LevelError
	// LevelWarning for warning messages
	LevelWarning
	// LevelInfo for general informational messages (default)
	LevelInfo
	// LevelDebug for detailed debugging information
	LevelDebug
	// LevelVerbose for very chatty trace output
	LevelVerbose
)

// Enabled reports whether a message of the given level passes the threshold.
// A message passes iff its level is at most as verbose as the threshold.
func Enabled(level, threshold Level) bool {
	return level <= threshold
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelVerbose:
		return "VERBOSE"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-letter code used by the native log line
// convention ("E (123) TAG: message").
func (l Level) Letter() byte {
	switch l {
	case LevelError:
		return 'E'
	case LevelWarning:
		return 'W'
	case LevelInfo:
		return 'I'
	case LevelDebug:
		return 'D'
	case LevelVerbose:
		return 'V'
	default:
		return 'N'
	}
}

// LevelFromLetter maps a single-letter severity code to its Level.
// The second return value is false for unrecognized codes.
func LevelFromLetter(c byte) (Level, bool) {
	switch c {
	case 'E':
		return LevelError, true
	case 'W':
		return LevelWarning, true
	case 'I':
		return LevelInfo, true
	case 'D':
		return LevelDebug, true
	case 'V':
		return LevelVerbose, true
	default:
		return LevelNone, false
	}
}

// ParseLevel converts a string to a Level. Unknown strings parse as LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return LevelNone
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarning
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	case "VERBOSE", "TRACE":
		return LevelVerbose
	default:
		return LevelInfo
	}
}
