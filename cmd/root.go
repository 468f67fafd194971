package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "faff",
		Short:         "faff: track work sessions against dated plans",
		Long:          "faff records your day as time-boxed sessions in plain-text logs, and resolves the roles, objectives, and trackers you may book against from dated plan files.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newVersionCmd(), newInitCmd())

	app, err := wireApp()
	if err != nil {
		// Workspace commands need a wired app. Keep init and version
		// usable and surface the wiring failure on invocation.
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newLogCmd(app),
		newPlanCmd(app),
		newTimesheetCmd(app),
	)

	return rootCmd
}
