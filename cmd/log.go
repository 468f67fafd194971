package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faffage/faff/internal/ports"
)

func newLogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect and manage daily log files",
	}

	cmd.AddCommand(
		newLogShowCmd(app),
		newLogListCmd(app),
		newLogPathCmd(app),
		newLogDeleteCmd(app),
	)

	return cmd
}

func newLogShowCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a log file as stored on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			raw, err := app.logs.ReadRaw(logDate)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), raw)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Log date as YYYY-MM-DD (default: today)")

	return cmd
}

func newLogListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dates that have a log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dates, err := app.logs.ListLogs()
			if err != nil {
				return err
			}

			for _, date := range dates {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), date)
			}

			return nil
		},
	}
}

func newLogPathCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of a log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ports.LogFilePath(app.storage, logDate))
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Log date as YYYY-MM-DD (default: today)")

	return cmd
}

func newLogDeleteCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			if err := app.logs.DeleteLog(logDate); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted log for %s\n", logDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Log date as YYYY-MM-DD (default: today)")

	return cmd
}
