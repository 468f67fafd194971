package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var offsetTimeRe = regexp.MustCompile(`^(\d{2}):(\d{2})([+-])(\d{2})(\d{2})$`)

// CombineDateTime resolves a calendar date, a timezone, and a bare HH:MM
// clock string into a single instant. Strings carrying an explicit UTC offset
// are rejected; offsets are only ever produced on output, where a DST event
// makes bare times ambiguous.
func CombineDateTime(date Date, loc *time.Location, clock string) (time.Time, error) {
	if strings.ContainsAny(clock, "+-zZ") {
		return time.Time{}, fmt.Errorf("fixed-offset time %q: %w", clock, ErrInvalidTimeFormat)
	}

	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, ErrInvalidTimeFormat)
	}

	return ResolveLocal(date, loc, parsed.Hour(), parsed.Minute(), 0)
}

// ParseLogTime resolves a time string read back from a log file. Unlike
// CombineDateTime it honors an explicit HH:MM±HHMM offset, which the encoder
// emits on dates with a DST event and which hand-edited files may carry.
func ParseLogTime(date Date, loc *time.Location, value string) (time.Time, error) {
	m := offsetTimeRe.FindStringSubmatch(value)
	if m == nil {
		return CombineDateTime(date, loc, value)
	}

	parsed, err := time.Parse("15:04-0700", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, ErrInvalidTimeFormat)
	}

	t := time.Date(date.Year, date.Month, date.Day,
		parsed.Hour(), parsed.Minute(), 0, 0, parsed.Location())
	return t.In(loc), nil
}

// ResolveLocal maps a local wall-clock reading onto the unique instant it
// names in loc. During DST transitions a wall-clock reading can name zero
// instants (spring-forward gap) or two (fall-back fold); both cases fail with
// ErrAmbiguousTime because the reading alone cannot identify an instant.
func ResolveLocal(date Date, loc *time.Location, hour, minute, second int) (time.Time, error) {
	t := time.Date(date.Year, date.Month, date.Day, hour, minute, second, 0, loc)

	// time.Date silently normalizes nonexistent wall clocks, so a changed
	// reading means the requested one sits in a spring-forward gap.
	if !wallEquals(t, date, hour, minute, second) {
		return time.Time{}, fmt.Errorf("nonexistent local time %s %02d:%02d in %s: %w",
			date, hour, minute, loc, ErrAmbiguousTime)
	}

	// Detect a fall-back fold: if a nearby instant sits on the other side of
	// an offset change, shifting t by the offset delta lands on a second,
	// distinct instant with the same wall-clock reading.
	_, offset := t.Zone()
	for _, probe := range []time.Duration{-3 * time.Hour, 3 * time.Hour} {
		_, other := t.Add(probe).Zone()
		if other == offset {
			continue
		}
		alt := t.Add(time.Duration(offset-other) * time.Second)
		if !alt.Equal(t) && wallEquals(alt, date, hour, minute, second) {
			return time.Time{}, fmt.Errorf("ambiguous local time %s %02d:%02d in %s: %w",
				date, hour, minute, loc, ErrAmbiguousTime)
		}
	}

	return t, nil
}

func wallEquals(t time.Time, date Date, hour, minute, second int) bool {
	return DateOf(t) == date && t.Hour() == hour && t.Minute() == minute && t.Second() == second
}

// DateHasDSTEvent reports whether the UTC offset changes over the course of
// the given date: true on spring-forward and fall-back days. The codec uses
// this to decide whether serialized times need an explicit offset suffix.
func DateHasDSTEvent(date Date, loc *time.Location) bool {
	start := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, loc)
	end := time.Date(date.Year, date.Month, date.Day, 23, 59, 0, 0, loc)

	_, startOffset := start.Zone()
	_, endOffset := end.Zone()
	return startOffset != endOffset
}
