package domain

import "time"

// Session is one contiguous interval of work with its Intent. A zero End
// means the session is still open. Sessions never mutate: closing one
// produces a new value.
type Session struct {
	Intent Intent
	Start  time.Time
	End    time.Time
	Note   string
}

func NewSession(intent Intent, start time.Time, end time.Time, note string) Session {
	return Session{Intent: intent, Start: start, End: end, Note: note}
}

func (s Session) IsOpen() bool { return s.End.IsZero() }

// WithEnd returns a copy of the session closed at end.
func (s Session) WithEnd(end time.Time) Session {
	s.End = end
	return s
}

func (s Session) Duration() (time.Duration, error) {
	if s.End.IsZero() {
		return 0, ErrMissingEnd
	}
	if s.End.Before(s.Start) {
		return 0, ErrEndBeforeStart
	}
	return s.End.Sub(s.Start), nil
}
