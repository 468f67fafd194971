package application

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/ports"
)

// TimesheetService stores and lists compiled timesheets. Compilation and
// submission belong to the audience port; this service only owns the
// on-disk records under the timesheet directory.
type TimesheetService struct {
	storage ports.Storage
}

func NewTimesheetService(storage ports.Storage) *TimesheetService {
	return &TimesheetService{storage: storage}
}

type timesheetEntrySchema struct {
	Alias     string   `json:"alias,omitempty"`
	Role      string   `json:"role,omitempty"`
	Objective string   `json:"objective,omitempty"`
	Action    string   `json:"action,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Trackers  []string `json:"trackers,omitempty"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Note      string   `json:"note,omitempty"`
}

type timesheetSchema struct {
	AudienceID string                 `json:"audience_id"`
	Date       string                 `json:"date"`
	Entries    []timesheetEntrySchema `json:"entries"`
}

// WriteTimesheet persists a compiled timesheet as
// <audience>.<YYYY-MM-DD>.json.
func (s *TimesheetService) WriteTimesheet(timesheet domain.Timesheet) error {
	if err := s.storage.CreateDirAll(s.storage.TimesheetDir()); err != nil {
		return fmt.Errorf("create timesheet directory: %w", err)
	}

	schema := timesheetSchema{
		AudienceID: timesheet.AudienceID,
		Date:       timesheet.Date.String(),
		Entries:    make([]timesheetEntrySchema, 0, len(timesheet.Entries)),
	}
	for _, entry := range timesheet.Entries {
		schema.Entries = append(schema.Entries, timesheetEntrySchema{
			Alias:     entry.Intent.Alias,
			Role:      entry.Intent.Role,
			Objective: entry.Intent.Objective,
			Action:    entry.Intent.Action,
			Subject:   entry.Intent.Subject,
			Trackers:  entry.Intent.Trackers,
			Start:     formatEntryTime(entry.Start),
			End:       formatEntryTime(entry.End),
			Note:      entry.Note,
		})
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timesheet for %s on %s: %w", timesheet.AudienceID, timesheet.Date, err)
	}

	path := ports.TimesheetFilePath(s.storage, timesheet.AudienceID, timesheet.Date)
	if err := s.storage.WriteBytes(path, data); err != nil {
		return fmt.Errorf("write timesheet %s: %w", path, err)
	}
	return nil
}

// GetTimesheet loads the stored timesheet for an audience and date. Returns
// false when none exists.
func (s *TimesheetService) GetTimesheet(audienceID string, date domain.Date) (domain.Timesheet, bool, error) {
	path := ports.TimesheetFilePath(s.storage, audienceID, date)
	if !s.storage.Exists(path) {
		return domain.Timesheet{}, false, nil
	}

	data, err := s.storage.ReadBytes(path)
	if err != nil {
		return domain.Timesheet{}, false, fmt.Errorf("read timesheet %s: %w", path, err)
	}

	timesheet, err := decodeTimesheet(data)
	if err != nil {
		return domain.Timesheet{}, false, &domain.ParseError{Source: path, Err: err}
	}
	return timesheet, true, nil
}

// ListTimesheets returns every stored timesheet, newest-date last; a
// non-zero date filters to that date only.
func (s *TimesheetService) ListTimesheets(date domain.Date) ([]domain.Timesheet, error) {
	pattern := "*.json"
	if !date.IsZero() {
		pattern = fmt.Sprintf("*.%s.json", date)
	}

	files, err := s.storage.ListFiles(s.storage.TimesheetDir(), pattern)
	if err != nil {
		return nil, fmt.Errorf("list timesheet files: %w", err)
	}

	var timesheets []domain.Timesheet
	for _, path := range files {
		stem := strings.TrimSuffix(filepath.Base(path), ".json")
		audienceID, dateStr, ok := strings.Cut(stem, ".")
		if !ok {
			continue
		}
		fileDate, err := domain.ParseDate(dateStr)
		if err != nil {
			continue
		}

		timesheet, found, err := s.GetTimesheet(audienceID, fileDate)
		if err != nil {
			return nil, err
		}
		if found {
			timesheets = append(timesheets, timesheet)
		}
	}

	return timesheets, nil
}

func decodeTimesheet(data []byte) (domain.Timesheet, error) {
	var schema timesheetSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.Timesheet{}, err
	}

	date, err := domain.ParseDate(schema.Date)
	if err != nil {
		return domain.Timesheet{}, err
	}

	timesheet := domain.Timesheet{AudienceID: schema.AudienceID, Date: date}
	for i, entry := range schema.Entries {
		start, err := parseEntryTime(entry.Start)
		if err != nil {
			return domain.Timesheet{}, fmt.Errorf("entry %d start: %w", i, err)
		}
		end, err := parseEntryTime(entry.End)
		if err != nil {
			return domain.Timesheet{}, fmt.Errorf("entry %d end: %w", i, err)
		}
		timesheet.Entries = append(timesheet.Entries, domain.TimesheetEntry{
			Intent: domain.NewIntent(entry.Alias, entry.Role, entry.Objective, entry.Action, entry.Subject, entry.Trackers),
			Start:  start,
			End:    end,
			Note:   entry.Note,
		})
	}
	return timesheet, nil
}

func formatEntryTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(time.RFC3339)
}

func parseEntryTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
