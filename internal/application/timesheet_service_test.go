package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faffage/faff/internal/adapters/storage/memory"
	"github.com/faffage/faff/internal/domain"
)

func sampleTimesheet(audienceID string, date domain.Date) domain.Timesheet {
	start := time.Date(date.Year, date.Month, date.Day, 9, 0, 0, 0, time.UTC)
	return domain.Timesheet{
		AudienceID: audienceID,
		Date:       date,
		Entries: []domain.TimesheetEntry{
			{
				Intent: domain.NewIntent("work", "engineer", "platform", "build", "acme", []string{"local:T-1"}),
				Start:  start,
				End:    start.Add(90 * time.Minute),
				Note:   "focus",
			},
		},
	}
}

func TestWriteAndGetTimesheet(t *testing.T) {
	service := NewTimesheetService(memory.New())
	date := domain.NewDate(2025, time.June, 10)

	require.NoError(t, service.WriteTimesheet(sampleTimesheet("acme", date)))

	got, found, err := service.GetTimesheet("acme", date)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "acme", got.AudienceID)
	assert.Equal(t, date, got.Date)
	require.Len(t, got.Entries, 1)

	entry := got.Entries[0]
	assert.Equal(t, "work", entry.Intent.Alias)
	assert.Equal(t, []string{"local:T-1"}, entry.Intent.Trackers)
	assert.Equal(t, "focus", entry.Note)
	assert.True(t, entry.End.Sub(entry.Start) == 90*time.Minute)
}

func TestGetTimesheetMissing(t *testing.T) {
	service := NewTimesheetService(memory.New())

	_, found, err := service.GetTimesheet("acme", domain.NewDate(2025, time.June, 10))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTimesheetOpenEndSurvivesRoundTrip(t *testing.T) {
	service := NewTimesheetService(memory.New())
	date := domain.NewDate(2025, time.June, 10)

	sheet := sampleTimesheet("acme", date)
	sheet.Entries[0].End = time.Time{}
	require.NoError(t, service.WriteTimesheet(sheet))

	got, found, err := service.GetTimesheet("acme", date)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Entries[0].End.IsZero())
}

func TestListTimesheets(t *testing.T) {
	service := NewTimesheetService(memory.New())
	june10 := domain.NewDate(2025, time.June, 10)
	june11 := domain.NewDate(2025, time.June, 11)

	require.NoError(t, service.WriteTimesheet(sampleTimesheet("acme", june10)))
	require.NoError(t, service.WriteTimesheet(sampleTimesheet("globex", june10)))
	require.NoError(t, service.WriteTimesheet(sampleTimesheet("acme", june11)))

	all, err := service.ListTimesheets(domain.Date{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := service.ListTimesheets(june10)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, sheet := range filtered {
		assert.Equal(t, june10, sheet.Date)
	}
}

func TestListTimesheetsEmpty(t *testing.T) {
	service := NewTimesheetService(memory.New())

	sheets, err := service.ListTimesheets(domain.Date{})
	require.NoError(t, err)
	assert.Empty(t, sheets)
}
