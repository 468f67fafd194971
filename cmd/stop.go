package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			known, err := app.plans.Trackers(app.logs.Today())
			if err != nil {
				return err
			}

			if err := app.logs.StopCurrent(known); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Stopped")
			return nil
		},
	}
}
