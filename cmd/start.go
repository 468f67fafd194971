package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faffage/faff/internal/domain"
)

func newStartCmd(app *app) *cobra.Command {
	var alias string
	var role string
	var objective string
	var action string
	var subject string
	var trackers []string
	var note string

	cmd := &cobra.Command{
		Use:   "start [alias]",
		Short: "Start a work session, stopping any active one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && alias == "" {
				alias = args[0]
			}

			known, err := app.plans.Trackers(app.logs.Today())
			if err != nil {
				return err
			}

			intent := domain.NewIntent(alias, role, objective, action, subject, trackers)
			if err := app.logs.StartIntent(intent, note, known); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started %q\n", intent.Alias)
			return nil
		},
	}

	cmd.Flags().StringVar(&alias, "alias", "", "Short label for the session")
	cmd.Flags().StringVar(&role, "role", "", "Role the session is worked in")
	cmd.Flags().StringVar(&objective, "objective", "", "Objective the session advances")
	cmd.Flags().StringVar(&action, "action", "", "Kind of work being done")
	cmd.Flags().StringVar(&subject, "subject", "", "Who or what the work is for")
	cmd.Flags().StringArrayVar(&trackers, "tracker", nil, "Tracker ID to book against (repeatable)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note for the session")

	return cmd
}
