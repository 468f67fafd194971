package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	statusadapter "github.com/faffage/faff/internal/adapters/render/status"
	"github.com/faffage/faff/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var date string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the day's recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			log, err := app.logs.GetLogOrCreate(logDate)
			if err != nil {
				return err
			}

			return writeLogOutput(cmd, app, log, asJSON)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Log date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeLogOutput(cmd *cobra.Command, app *app, log domain.Log, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newLogView(log))
	}

	rendered, err := app.statusRenderer(log, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func resolveDateFlag(app *app, value string) (domain.Date, error) {
	if value == "" {
		return app.logs.Today(), nil
	}
	return domain.ParseDate(value)
}

func resolveOptionalDateFlag(value string) (domain.Date, error) {
	if value == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(value)
}

type logView struct {
	Date     string        `json:"date"`
	Timezone string        `json:"timezone"`
	Timeline []sessionView `json:"timeline"`
}

type sessionView struct {
	Alias     string   `json:"alias"`
	Role      string   `json:"role,omitempty"`
	Objective string   `json:"objective,omitempty"`
	Action    string   `json:"action,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Trackers  []string `json:"trackers,omitempty"`
	Start     string   `json:"start"`
	End       string   `json:"end,omitempty"`
	Note      string   `json:"note,omitempty"`
}

func newLogView(log domain.Log) logView {
	view := logView{
		Date:     log.Date.String(),
		Timezone: log.Timezone.String(),
		Timeline: []sessionView{},
	}

	for _, session := range log.Timeline {
		entry := sessionView{
			Alias:     session.Intent.Alias,
			Role:      session.Intent.Role,
			Objective: session.Intent.Objective,
			Action:    session.Intent.Action,
			Subject:   session.Intent.Subject,
			Trackers:  session.Intent.Trackers,
			Start:     session.Start.Format(time.RFC3339),
			Note:      session.Note,
		}
		if !session.End.IsZero() {
			entry.End = session.End.Format(time.RFC3339)
		}
		view.Timeline = append(view.Timeline, entry)
	}

	return view
}
