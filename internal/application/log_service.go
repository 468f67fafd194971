package application

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/logfmt"
	"github.com/faffage/faff/internal/ports"
)

// LogService owns daily log persistence and the start/stop operations on
// top of it. Read-modify-write is not transactional: concurrent writers
// targeting the same date race and the last write wins; serializing writes
// per date is the caller's concern.
type LogService struct {
	storage  ports.Storage
	timezone *time.Location
	clock    ports.Clock
}

func NewLogService(storage ports.Storage, timezone *time.Location, clock ports.Clock) *LogService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &LogService{storage: storage, timezone: timezone, clock: clock}
}

func (s *LogService) Timezone() *time.Location { return s.timezone }

// Now returns the current time in the workspace timezone.
func (s *LogService) Now() time.Time { return s.clock.Now().In(s.timezone) }

// Today returns the current date in the workspace timezone.
func (s *LogService) Today() domain.Date { return domain.DateOf(s.Now()) }

func (s *LogService) Exists(date domain.Date) bool {
	return s.storage.Exists(ports.LogFilePath(s.storage, date))
}

func (s *LogService) ReadRaw(date domain.Date) (string, error) {
	text, err := s.storage.ReadString(ports.LogFilePath(s.storage, date))
	if err != nil {
		return "", fmt.Errorf("read log for %s: %w", date, err)
	}
	return text, nil
}

func (s *LogService) WriteRaw(date domain.Date, contents string) error {
	if err := s.storage.WriteString(ports.LogFilePath(s.storage, date), contents); err != nil {
		return fmt.Errorf("write log for %s: %w", date, err)
	}
	return nil
}

// GetLog loads and parses the log for date. Returns ErrLogNotFound when no
// log file exists for that date.
func (s *LogService) GetLog(date domain.Date) (domain.Log, error) {
	path := ports.LogFilePath(s.storage, date)
	if !s.storage.Exists(path) {
		return domain.Log{}, fmt.Errorf("log for %s: %w", date, domain.ErrLogNotFound)
	}

	text, err := s.storage.ReadString(path)
	if err != nil {
		return domain.Log{}, fmt.Errorf("read log for %s: %w", date, err)
	}

	log, err := logfmt.Decode(text)
	if err != nil {
		return domain.Log{}, &domain.ParseError{Source: path, Err: err}
	}
	return log, nil
}

// GetLogOrCreate loads the log for date, or returns a fresh empty log in the
// workspace timezone when none exists.
func (s *LogService) GetLogOrCreate(date domain.Date) (domain.Log, error) {
	log, err := s.GetLog(date)
	if err != nil {
		if errors.Is(err, domain.ErrLogNotFound) {
			return domain.NewLog(date, s.timezone, nil), nil
		}
		return domain.Log{}, err
	}
	return log, nil
}

// WriteLog serializes and persists a log. trackers supplies the labels for
// the codec's tracker comments.
func (s *LogService) WriteLog(log domain.Log, trackers map[string]string) error {
	return s.WriteRaw(log.Date, logfmt.Encode(log, trackers))
}

// ListLogs returns the dates of every stored log, ascending.
func (s *LogService) ListLogs() ([]domain.Date, error) {
	files, err := s.storage.ListFiles(s.storage.LogDir(), "*.toml")
	if err != nil {
		return nil, fmt.Errorf("list log files: %w", err)
	}

	var dates []domain.Date
	for _, path := range files {
		stem := strings.TrimSuffix(filepath.Base(path), ".toml")
		if date, err := domain.ParseDate(stem); err == nil {
			dates = append(dates, date)
		}
	}

	slices.SortFunc(dates, domain.Date.Compare)
	return dates, nil
}

// DeleteLog removes the log for date. Returns ErrLogNotFound when there is
// nothing to delete.
func (s *LogService) DeleteLog(date domain.Date) error {
	path := ports.LogFilePath(s.storage, date)
	if !s.storage.Exists(path) {
		return fmt.Errorf("log for %s: %w", date, domain.ErrLogNotFound)
	}
	if err := s.storage.Delete(path); err != nil {
		return fmt.Errorf("delete log for %s: %w", date, err)
	}
	return nil
}

// StartIntent opens a new session for intent at the current time, stopping
// any active session. Intent trackers must all be present in trackers, the
// tracker set resolved from today's plans.
func (s *LogService) StartIntent(intent domain.Intent, note string, trackers map[string]string) error {
	if missing := missingTrackers(intent, trackers); len(missing) > 0 {
		return fmt.Errorf("no tracker %s in today's plans: %w",
			strings.Join(missing, ", "), domain.ErrTrackerNotFound)
	}

	now := s.Now()
	log, err := s.GetLogOrCreate(domain.DateOf(now))
	if err != nil {
		return err
	}

	session := domain.NewSession(intent, now, time.Time{}, note)
	return s.WriteLog(log.AppendSession(session), trackers)
}

// StopCurrent closes the active session at the current time. Returns
// ErrNoActiveSession when today's log has no open session.
func (s *LogService) StopCurrent(trackers map[string]string) error {
	now := s.Now()
	log, err := s.GetLogOrCreate(domain.DateOf(now))
	if err != nil {
		return err
	}

	if _, ok := log.ActiveSession(); !ok {
		return domain.ErrNoActiveSession
	}

	stopped, err := log.StopActiveSession(now)
	if err != nil {
		return err
	}
	return s.WriteLog(stopped, trackers)
}

func missingTrackers(intent domain.Intent, trackers map[string]string) []string {
	var missing []string
	for _, id := range intent.Trackers {
		if _, ok := trackers[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
