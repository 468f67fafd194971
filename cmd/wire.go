package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	statusadapter "github.com/faffage/faff/internal/adapters/render/status"
	"github.com/faffage/faff/internal/adapters/storage/fs"
	"github.com/faffage/faff/internal/application"
	"github.com/faffage/faff/internal/config"
	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/ports"
)

type app struct {
	config         config.Config
	storage        ports.Storage
	logs           *application.LogService
	plans          *application.PlanService
	timesheets     *application.TimesheetService
	pull           *application.PullService
	audiences      map[string]ports.Audience
	statusRenderer func(domain.Log, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	storage, err := fs.New(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire storage: %w", err)
	}

	cfg, err := config.Load(storage)
	if err != nil {
		return nil, fmt.Errorf("load workspace config: %w", err)
	}

	clock := ports.SystemClock{}
	plans := application.NewPlanService(storage)

	// Plan remote and audience plugins register here once host bindings
	// provide them; the core ships none.
	remotes := map[string]ports.PlanRemote{}
	audiences := map[string]ports.Audience{}

	return &app{
		config:         cfg,
		storage:        storage,
		logs:           application.NewLogService(storage, cfg.Timezone, clock),
		plans:          plans,
		timesheets:     application.NewTimesheetService(storage),
		pull:           application.NewPullService(plans, remotes),
		audiences:      audiences,
		statusRenderer: statusadapter.Render,
		now:            func() time.Time { return clock.Now().In(cfg.Timezone) },
	}, nil
}
