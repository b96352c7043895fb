package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Lom209/logsplit/internal/model"
)

// severityRe matches a whole-word severity token anywhere in a line,
// case-insensitively. Leftmost match wins when a line carries several.
var severityRe = regexp.MustCompile(`(?i)\b(TRACE|DEBUG|INFO|WARN|WARNING|ERROR|FATAL|CRITICAL)\b`)

// ExtractSeverity scans a raw log line for a severity token. It returns the
// rank, the token in canonical uppercase form, and whether one was found.
func ExtractSeverity(line string) (model.Level, string, bool) {
	match := severityRe.FindString(line)
	if match == "" {
		return 0, "", false
	}
	token := strings.ToUpper(match)
	level, ok := model.ParseLevel(token)
	if !ok {
		return 0, "", false
	}
	return level, token, true
}

// ---------------------------------------------------------------------------
// Timestamp extraction
// ---------------------------------------------------------------------------

// timestampPattern pairs a regex with the layouts its matched substring can
// parse as. Layouts with milliseconds come first.
type timestampPattern struct {
	re      *regexp.Regexp
	layouts []string
}

// timestampPatterns are tried in order; the first regex match wins and only
// that pattern's layouts are attempted. A layout failure yields no timestamp
// rather than falling through to a later pattern.
var timestampPatterns = []timestampPattern{
	{
		re:      regexp.MustCompile(`\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}(?:\.\d{3})?`),
		layouts: []string{"2006-01-02 15:04:05.000", "2006-01-02 15:04:05"},
	},
	{
		re:      regexp.MustCompile(`\d{4}/\d{2}/\d{2}\s+\d{2}:\d{2}:\d{2}(?:\.\d{3})?`),
		layouts: []string{"2006/01/02 15:04:05.000", "2006/01/02 15:04:05"},
	},
	{
		re:      regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2}:\d{2}(?:\.\d{3})?`),
		layouts: []string{"01/02/2006 15:04:05.000", "01/02/2006 15:04:05"},
	},
}

// ExtractTimestamp scans a raw log line for a timestamp in one of the known
// textual formats. The second return is false when no pattern matches or the
// matched substring fails to parse.
func ExtractTimestamp(line string) (time.Time, bool) {
	for _, p := range timestampPatterns {
		match := p.re.FindString(line)
		if match == "" {
			continue
		}
		for _, layout := range p.layouts {
			if t, err := time.Parse(layout, match); err == nil {
				return t, true
			}
		}
		// Matched substring parses with none of the family's layouts
		// (e.g. repeated whitespace between date and time). Treated as
		// absent; later patterns are not retried.
		return time.Time{}, false
	}
	return time.Time{}, false
}

// ---------------------------------------------------------------------------
// Range boundaries
// ---------------------------------------------------------------------------

// boundaryLayouts accepted for --start/--end values, tried in order.
var boundaryLayouts = []string{
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseBoundary parses a user-supplied range boundary. The first layout that
// succeeds wins.
func ParseBoundary(s string) (time.Time, error) {
	for _, layout := range boundaryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", s)
}
