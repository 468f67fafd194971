package ports

import (
	"context"

	"github.com/faffage/faff/internal/domain"
)

// PlanRemote pulls a plan from an external system (an issue tracker, a
// scheduling service). Implementations are integration plugins registered at
// wiring time; the core only consumes this contract.
type PlanRemote interface {
	PullPlan(ctx context.Context, date domain.Date) (domain.Plan, error)
}

// Audience compiles a day's log into a timesheet for one recipient and
// submits it. Canonicalization and signing happen behind this boundary.
type Audience interface {
	CompileTimesheet(ctx context.Context, log domain.Log) (domain.Timesheet, error)
	SubmitTimesheet(ctx context.Context, timesheet domain.Timesheet) error
}
