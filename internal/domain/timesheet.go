package domain

import "time"

// Timesheet is the audience-facing projection of a log. Compilation, signing,
// and submission live behind the audience port; the core only stores and
// lists compiled sheets.
type Timesheet struct {
	AudienceID string
	Date       Date
	Entries    []TimesheetEntry
}

type TimesheetEntry struct {
	Intent Intent
	Start  time.Time
	End    time.Time
	Note   string
}
