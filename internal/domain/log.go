package domain

import (
	"fmt"
	"slices"
	"time"
)

// Log is one calendar date's ordered timeline of sessions. At most the last
// timeline entry may be open; every append preserves that invariant by
// stopping the active session first. Updates are functional: methods return a
// new Log and leave the receiver untouched.
type Log struct {
	Date     Date
	Timezone *time.Location
	Timeline []Session
}

func NewLog(date Date, timezone *time.Location, timeline []Session) Log {
	return Log{Date: date, Timezone: timezone, Timeline: timeline}
}

// ActiveSession returns the open session, if any. Only the last timeline
// entry can be open.
func (l Log) ActiveSession() (Session, bool) {
	if len(l.Timeline) == 0 {
		return Session{}, false
	}
	last := l.Timeline[len(l.Timeline)-1]
	if last.IsOpen() {
		return last, true
	}
	return Session{}, false
}

// AppendSession adds a session to the timeline. An active session is first
// stopped at the new session's start time.
func (l Log) AppendSession(session Session) Log {
	timeline := slices.Clone(l.Timeline)
	if _, ok := l.ActiveSession(); ok {
		last := len(timeline) - 1
		timeline[last] = timeline[last].WithEnd(session.Start)
	}
	timeline = append(timeline, session)
	return NewLog(l.Date, l.Timezone, timeline)
}

// StopActiveSession sets the end time of the last timeline entry. The entry
// is overwritten even if it was already closed.
func (l Log) StopActiveSession(stopTime time.Time) (Log, error) {
	if len(l.Timeline) == 0 {
		return Log{}, ErrNoTimelineEntries
	}
	timeline := slices.Clone(l.Timeline)
	last := len(timeline) - 1
	timeline[last] = timeline[last].WithEnd(stopTime)
	return NewLog(l.Date, l.Timezone, timeline), nil
}

// IsClosed reports whether every timeline entry has an end time.
func (l Log) IsClosed() bool {
	for _, session := range l.Timeline {
		if session.IsOpen() {
			return false
		}
	}
	return true
}

// TotalRecordedTime sums the duration of every session. An open session runs
// until now when the log is for today, and until 23:59:59 local otherwise.
func (l Log) TotalRecordedTime(now time.Time) (time.Duration, error) {
	var total time.Duration

	local := now.In(l.Timezone)
	for _, session := range l.Timeline {
		end := session.End
		if end.IsZero() {
			if DateOf(local) == l.Date {
				end = local
			} else {
				var err error
				end, err = ResolveLocal(l.Date, l.Timezone, 23, 59, 59)
				if err != nil {
					return 0, fmt.Errorf("end of day %s in %s: %w", l.Date, l.Timezone, ErrAmbiguousDatetime)
				}
			}
		}
		total += end.Sub(session.Start)
	}

	return total, nil
}
