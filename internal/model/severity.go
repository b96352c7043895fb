package model

import "strings"

// Level is the ordinal severity of a log line. Higher values are more severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Tokens recognized in log lines, in canonical form. WARNING folds into
// WARN and CRITICAL folds into FATAL; the synonyms share one rank.
var levelTokens = map[string]Level{
	"TRACE":    LevelTrace,
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARN":     LevelWarn,
	"WARNING":  LevelWarn,
	"ERROR":    LevelError,
	"FATAL":    LevelFatal,
	"CRITICAL": LevelFatal,
}

// ParseLevel maps a severity token to its Level. Matching is
// case-insensitive; the second return is false for unrecognized tokens.
func ParseLevel(token string) (Level, bool) {
	l, ok := levelTokens[strings.ToUpper(strings.TrimSpace(token))]
	return l, ok
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
