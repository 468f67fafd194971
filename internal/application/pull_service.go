package application

import (
	"context"
	"fmt"

	"github.com/faffage/faff/internal/config"
	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/ports"
)

// PullService fetches plans from configured remotes and persists them
// through the plan service. Remote implementations are plugins registered at
// wiring time, keyed by plugin name.
type PullService struct {
	plans   *PlanService
	remotes map[string]ports.PlanRemote
}

func NewPullService(plans *PlanService, remotes map[string]ports.PlanRemote) *PullService {
	return &PullService{plans: plans, remotes: remotes}
}

// Pull fetches the plan for date from one configured remote, stamps it with
// the remote's name, folds in the remote's default vocabulary where the plan
// carries none, and writes it.
func (s *PullService) Pull(ctx context.Context, remote config.PlanRemote, date domain.Date) (domain.Plan, error) {
	impl, ok := s.remotes[remote.Plugin]
	if !ok {
		return domain.Plan{}, fmt.Errorf("plan remote %q: plugin %q is not registered", remote.Name, remote.Plugin)
	}

	plan, err := impl.PullPlan(ctx, date)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("pull plan from %q: %w", remote.Name, err)
	}

	plan.Source = remote.Name
	if len(plan.Roles) == 0 {
		plan.Roles = remote.Defaults.Roles
	}
	if len(plan.Objectives) == 0 {
		plan.Objectives = remote.Defaults.Objectives
	}
	if len(plan.Actions) == 0 {
		plan.Actions = remote.Defaults.Actions
	}
	if plan.ValidFrom.IsZero() {
		plan.ValidFrom = date
	}

	if err := s.plans.WritePlan(plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}
