// Package logfmt reads and writes the daily log file format: TOML metadata
// and [[timeline]] blocks, decorated with derived comment-only values and
// aligned key columns. Derived lines are written with a leading "--" and
// rewritten into comments in a final pass, so the parser can ignore them.
package logfmt

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/faffage/faff/internal/domain"
)

const Version = "1.1"

const (
	formatBare    = "HH:mm"
	formatOffset  = "HH:mmZ"
	derivedPrefix = "--"
	emptyTimeline = "# Timeline is empty."
)

var headerLines = []string{
	"# This is a Faff-format log file - see faffage.com for details.",
	"# It has been generated but can be edited manually.",
	"# Changes to rows starting with '#' will not be saved.",
}

var derivedValueRe = regexp.MustCompile(`(?m)^--([a-zA-Z_-][a-zA-Z0-9_-]*\s*=\s*.+)$`)

// Encode serializes a log. trackers maps tracker ids to human-readable
// labels, emitted as inline comments next to the ids they describe.
func Encode(log domain.Log, trackers map[string]string) string {
	lines := slices.Clone(headerLines)

	lines = append(lines,
		fmt.Sprintf("version = %q", Version),
		fmt.Sprintf("date = %q", log.Date),
		fmt.Sprintf("timezone = %q", log.Timezone),
	)

	dateFormat := formatBare
	if domain.DateHasDSTEvent(log.Date, log.Timezone) {
		dateFormat = formatOffset
	}
	lines = append(lines, fmt.Sprintf("%sdate_format = %q", derivedPrefix, dateFormat))

	if len(log.Timeline) == 0 {
		lines = append(lines, "", emptyTimeline)
	} else {
		sorted := slices.Clone(log.Timeline)
		slices.SortStableFunc(sorted, func(a, b domain.Session) int {
			return a.Start.Compare(b.Start)
		})
		for _, session := range sorted {
			lines = append(lines, "", "[[timeline]]")
			lines = appendSessionLines(lines, session, trackers, dateFormat)
		}
	}

	text := strings.Join(lines, "\n")
	return alignEquals(commentifyDerivedValues(text))
}

func appendSessionLines(lines []string, session domain.Session, trackers map[string]string, dateFormat string) []string {
	intent := session.Intent
	if intent.Alias != "" {
		lines = append(lines, fmt.Sprintf("alias = %q", intent.Alias))
	}
	if intent.Role != "" {
		lines = append(lines, fmt.Sprintf("role = %q", intent.Role))
	}
	if intent.Objective != "" {
		lines = append(lines, fmt.Sprintf("objective = %q", intent.Objective))
	}
	if intent.Action != "" {
		lines = append(lines, fmt.Sprintf("action = %q", intent.Action))
	}
	if intent.Subject != "" {
		lines = append(lines, fmt.Sprintf("subject = %q", intent.Subject))
	}

	switch {
	case len(intent.Trackers) == 1:
		id := intent.Trackers[0]
		if label, ok := trackers[id]; ok {
			lines = append(lines, fmt.Sprintf("trackers = %q # %s", id, label))
		} else {
			lines = append(lines, fmt.Sprintf("trackers = %q", id))
		}
	case len(intent.Trackers) > 1:
		lines = append(lines, "trackers = [")
		for _, id := range intent.Trackers {
			if label, ok := trackers[id]; ok {
				lines = append(lines, fmt.Sprintf("   %q, # %s", id, label))
			} else {
				lines = append(lines, fmt.Sprintf("   %q,", id))
			}
		}
		lines = append(lines, "]")
	}

	lines = append(lines, fmt.Sprintf("start = %q", formatTime(session.Start, dateFormat)))

	if !session.End.IsZero() {
		lines = append(lines, fmt.Sprintf("end = %q", formatTime(session.End, dateFormat)))
		lines = append(lines, fmt.Sprintf("%sduration = %q", derivedPrefix, FormatDuration(session.End.Sub(session.Start))))
	}

	if session.Note != "" {
		lines = append(lines, fmt.Sprintf("note = %q", session.Note))
	}

	return lines
}

func formatTime(t time.Time, dateFormat string) string {
	if dateFormat == formatOffset {
		return t.Format("15:04-0700")
	}
	return t.Format("15:04")
}

// FormatDuration spells out a duration in words: "2 hours, 15 minutes and
// 45 seconds". Zero-valued clauses are dropped and word forms follow the
// count.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var clauses []string
	if hours > 0 {
		clauses = append(clauses, fmt.Sprintf("%d %s", hours, plural(hours, "hour")))
	}
	if minutes > 0 {
		clauses = append(clauses, fmt.Sprintf("%d %s", minutes, plural(minutes, "minute")))
	}
	if seconds > 0 || len(clauses) == 0 {
		clauses = append(clauses, fmt.Sprintf("%d %s", seconds, plural(seconds, "second")))
	}

	switch len(clauses) {
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		return strings.Join(clauses[:len(clauses)-1], ", ") + " and " + clauses[len(clauses)-1]
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// commentifyDerivedValues rewrites every "--key = value" line into a
// "# key = value" comment.
func commentifyDerivedValues(text string) string {
	return derivedValueRe.ReplaceAllString(text, "# $1")
}

// alignEquals right-pads keys so every "key = value" line shares one column
// for the equals sign. Comment lines are left alone and do not count toward
// the column width.
func alignEquals(text string) string {
	lines := strings.Split(text, "\n")

	maxKey := 0
	for _, line := range lines {
		if key, _, ok := splitKeyValue(line); ok {
			maxKey = max(maxKey, len(key))
		}
	}

	aligned := make([]string, 0, len(lines))
	for _, line := range lines {
		if key, value, ok := splitKeyValue(line); ok {
			aligned = append(aligned, fmt.Sprintf("%-*s = %s", maxKey, key, value))
		} else {
			aligned = append(aligned, line)
		}
	}

	return strings.Join(aligned, "\n")
}

func splitKeyValue(line string) (key, value string, ok bool) {
	if !strings.Contains(line, "=") || strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
		return "", "", false
	}
	before, after, _ := strings.Cut(line, "=")
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}

type logSchema struct {
	Date     string           `toml:"date"`
	Timezone string           `toml:"timezone"`
	Timeline []map[string]any `toml:"timeline"`
}

// Decode parses a log file. Comment lines and unknown or derived keys are
// ignored; session times are resolved against the file's own date and
// timezone, honoring any explicit offsets left in hand-edited files.
func Decode(text string) (domain.Log, error) {
	var schema logSchema
	if err := toml.Unmarshal([]byte(text), &schema); err != nil {
		return domain.Log{}, err
	}

	if schema.Date == "" {
		return domain.Log{}, fmt.Errorf("missing %q field", "date")
	}
	date, err := domain.ParseDate(schema.Date)
	if err != nil {
		return domain.Log{}, err
	}

	if schema.Timezone == "" {
		return domain.Log{}, fmt.Errorf("missing %q field", "timezone")
	}
	timezone, err := time.LoadLocation(schema.Timezone)
	if err != nil {
		return domain.Log{}, fmt.Errorf("invalid timezone %q: %w", schema.Timezone, err)
	}

	timeline := make([]domain.Session, 0, len(schema.Timeline))
	for i, entry := range schema.Timeline {
		session, err := decodeSession(entry, date, timezone)
		if err != nil {
			return domain.Log{}, fmt.Errorf("timeline entry %d: %w", i, err)
		}
		timeline = append(timeline, session)
	}

	return domain.NewLog(date, timezone, timeline), nil
}

func decodeSession(entry map[string]any, date domain.Date, timezone *time.Location) (domain.Session, error) {
	intent := domain.NewIntent(
		stringField(entry, "alias"),
		stringField(entry, "role"),
		stringField(entry, "objective"),
		stringField(entry, "action"),
		stringField(entry, "subject"),
		stringListField(entry, "trackers"),
	)

	startStr := stringField(entry, "start")
	if startStr == "" {
		return domain.Session{}, fmt.Errorf("missing %q field", "start")
	}
	start, err := domain.ParseLogTime(date, timezone, startStr)
	if err != nil {
		return domain.Session{}, err
	}

	var end time.Time
	if endStr := stringField(entry, "end"); endStr != "" {
		end, err = domain.ParseLogTime(date, timezone, endStr)
		if err != nil {
			return domain.Session{}, err
		}
	}

	return domain.NewSession(intent, start, end, stringField(entry, "note")), nil
}

// stringField extracts a string-valued key; any other shape reads as absent.
func stringField(entry map[string]any, key string) string {
	if s, ok := entry[key].(string); ok {
		return s
	}
	return ""
}

// stringListField extracts a key holding either a single string or a list of
// strings.
func stringListField(entry map[string]any, key string) []string {
	switch v := entry[key].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
