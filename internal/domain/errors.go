package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("time must be a bare HH:MM string")
	ErrAmbiguousTime     = errors.New("ambiguous or nonexistent local time")
	ErrAmbiguousDatetime = errors.New("ambiguous datetime during DST transition")
	ErrNoTimelineEntries = errors.New("no timeline entries to stop")
	ErrMissingEnd        = errors.New("session has no end time")
	ErrEndBeforeStart    = errors.New("session end time is before start time")
	ErrNoActiveSession   = errors.New("no active session")
	ErrTrackerNotFound   = errors.New("tracker not found")
	ErrLogNotFound       = errors.New("log not found")
)

// ParseError attributes a malformed log or plan payload to the file or date
// it came from.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
