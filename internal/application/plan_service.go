package application

import (
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/planfmt"
	"github.com/faffage/faff/internal/ports"
)

// LocalPlanSource is the source name reserved for the hand-maintained plan.
const LocalPlanSource = "local"

var planFileRe = regexp.MustCompile(`^(.+?)\.(\d{8})\.toml$`)

// PlanService finds, merges, and caches the plans applicable to a date, and
// projects aggregate vocabularies and trackers across them. Resolution is
// memoized per exact query date; any plan write clears the whole cache.
type PlanService struct {
	storage ports.Storage

	mu    sync.RWMutex
	cache map[domain.Date]map[string]domain.Plan
}

func NewPlanService(storage ports.Storage) *PlanService {
	return &PlanService{
		storage: storage,
		cache:   make(map[domain.Date]map[string]domain.Plan),
	}
}

// GetPlans resolves the plans valid on date, keyed by source. For each
// source the plan file with the largest date stamp not after the query date
// is selected, then filtered again by its own validity window; when several
// selected files for one source survive, the latest valid_from wins.
func (s *PlanService) GetPlans(date domain.Date) (map[string]domain.Plan, error) {
	s.mu.RLock()
	cached, ok := s.cache[date]
	s.mu.RUnlock()
	if ok {
		return maps.Clone(cached), nil
	}

	plans, err := s.loadPlansForDate(date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[date] = plans
	s.mu.Unlock()

	return maps.Clone(plans), nil
}

func (s *PlanService) loadPlansForDate(date domain.Date) (map[string]domain.Plan, error) {
	files, err := s.planFilesForDate(date)
	if err != nil {
		return nil, err
	}

	plans := make(map[string]domain.Plan)
	for _, path := range files {
		text, err := s.storage.ReadString(path)
		if err != nil {
			return nil, fmt.Errorf("read plan file %s: %w", path, err)
		}

		plan, err := planfmt.Decode(text)
		if err != nil {
			return nil, &domain.ParseError{Source: path, Err: err}
		}

		if !plan.ValidOn(date) {
			continue
		}

		if existing, ok := plans[plan.Source]; !ok || plan.ValidFrom.After(existing.ValidFrom) {
			plans[plan.Source] = plan
		}
	}

	return plans, nil
}

// planFilesForDate picks, per source, the plan file whose date stamp is the
// largest value not after the query date. Files stamped later are ignored.
func (s *PlanService) planFilesForDate(date domain.Date) ([]string, error) {
	files, err := s.storage.ListFiles(s.storage.PlanDir(), "*.toml")
	if err != nil {
		return nil, fmt.Errorf("list plan files: %w", err)
	}

	type candidate struct {
		stamp domain.Date
		path  string
	}
	bySource := make(map[string]candidate)

	for _, path := range files {
		m := planFileRe.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			continue
		}
		stamp, err := domain.ParseCompactDate(m[2])
		if err != nil || stamp.After(date) {
			continue
		}
		source := m[1]
		if existing, ok := bySource[source]; !ok || stamp.After(existing.stamp) {
			bySource[source] = candidate{stamp: stamp, path: path}
		}
	}

	paths := make([]string, 0, len(bySource))
	for _, c := range bySource {
		paths = append(paths, c.path)
	}
	slices.Sort(paths)
	return paths, nil
}

// Intents returns every intent template across the plans valid on date,
// de-duplicated and ordered by alias.
func (s *PlanService) Intents(date domain.Date) ([]domain.Intent, error) {
	plans, err := s.GetPlans(date)
	if err != nil {
		return nil, err
	}

	var intents []domain.Intent
	for _, source := range sortedSources(plans) {
		for _, intent := range plans[source].Intents {
			duplicate := slices.ContainsFunc(intents, intent.Equal)
			if !duplicate {
				intents = append(intents, intent)
			}
		}
	}

	slices.SortStableFunc(intents, func(a, b domain.Intent) int {
		return strings.Compare(a.Alias, b.Alias)
	})
	return intents, nil
}

// Roles returns the roles usable on date: plan-level roles prefixed with
// their source, plus unprefixed roles carried by intent templates, sorted
// and de-duplicated.
func (s *PlanService) Roles(date domain.Date) ([]string, error) {
	return s.vocabulary(date,
		func(p domain.Plan) []string { return p.Roles },
		func(i domain.Intent) string { return i.Role })
}

func (s *PlanService) Objectives(date domain.Date) ([]string, error) {
	return s.vocabulary(date,
		func(p domain.Plan) []string { return p.Objectives },
		func(i domain.Intent) string { return i.Objective })
}

func (s *PlanService) Actions(date domain.Date) ([]string, error) {
	return s.vocabulary(date,
		func(p domain.Plan) []string { return p.Actions },
		func(i domain.Intent) string { return i.Action })
}

func (s *PlanService) Subjects(date domain.Date) ([]string, error) {
	return s.vocabulary(date,
		func(p domain.Plan) []string { return p.Subjects },
		func(i domain.Intent) string { return i.Subject })
}

func (s *PlanService) vocabulary(date domain.Date, fromPlan func(domain.Plan) []string, fromIntent func(domain.Intent) string) ([]string, error) {
	plans, err := s.GetPlans(date)
	if err != nil {
		return nil, err
	}

	var terms []string
	for _, plan := range plans {
		for _, term := range fromPlan(plan) {
			terms = append(terms, plan.Source+":"+term)
		}
		for _, intent := range plan.Intents {
			if term := fromIntent(intent); term != "" {
				terms = append(terms, term)
			}
		}
	}

	slices.Sort(terms)
	return slices.Compact(terms), nil
}

// Trackers aggregates tracker labels across the plans valid on date, keyed
// by "source:trackerID".
func (s *PlanService) Trackers(date domain.Date) (map[string]string, error) {
	plans, err := s.GetPlans(date)
	if err != nil {
		return nil, err
	}

	trackers := make(map[string]string)
	for _, plan := range plans {
		for id, label := range plan.Trackers {
			trackers[plan.Source+":"+id] = label
		}
	}
	return trackers, nil
}

// PlanByTrackerID returns the plan whose tracker map contains id. When the
// same raw id appears in several plans, sources are scanned in lexicographic
// order and the first match wins.
func (s *PlanService) PlanByTrackerID(id string, date domain.Date) (domain.Plan, error) {
	plans, err := s.GetPlans(date)
	if err != nil {
		return domain.Plan{}, err
	}

	for _, source := range sortedSources(plans) {
		plan := plans[source]
		if _, ok := plan.Trackers[id]; ok {
			return plan, nil
		}
	}

	return domain.Plan{}, fmt.Errorf("tracker id %q in plans for %s: %w", id, date, domain.ErrTrackerNotFound)
}

// LocalPlan returns the "local" plan valid on date, or an empty one rooted
// at date when none exists yet.
func (s *PlanService) LocalPlan(date domain.Date) (domain.Plan, error) {
	plans, err := s.GetPlans(date)
	if err != nil {
		return domain.Plan{}, err
	}

	if plan, ok := plans[LocalPlanSource]; ok {
		return plan, nil
	}
	return domain.Plan{Source: LocalPlanSource, ValidFrom: date}, nil
}

// WritePlan persists a plan under <source>.<YYYYMMDD>.toml and invalidates
// the resolution cache.
func (s *PlanService) WritePlan(plan domain.Plan) error {
	if err := s.storage.CreateDirAll(s.storage.PlanDir()); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}

	text, err := planfmt.Encode(plan)
	if err != nil {
		return err
	}

	path := ports.PlanFilePath(s.storage, plan.Source, plan.ValidFrom)
	if err := s.storage.WriteString(path, text); err != nil {
		return fmt.Errorf("write plan file %s: %w", path, err)
	}

	s.ClearCache()
	return nil
}

func (s *PlanService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.cache)
}

func sortedSources(plans map[string]domain.Plan) []string {
	return slices.Sorted(maps.Keys(plans))
}
