package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faffage/faff/internal/config"
	"github.com/faffage/faff/internal/ports"
)

func newTimesheetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Compile and submit timesheets for configured audiences",
	}

	cmd.AddCommand(
		newTimesheetListCmd(app),
		newTimesheetCompileCmd(app),
		newTimesheetSubmitCmd(app),
	)

	return cmd
}

func newTimesheetListCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List compiled timesheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := resolveOptionalDateFlag(date)
			if err != nil {
				return err
			}

			timesheets, err := app.timesheets.ListTimesheets(filter)
			if err != nil {
				return err
			}

			for _, timesheet := range timesheets {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%d entries)\n",
					timesheet.AudienceID, timesheet.Date, len(timesheet.Entries))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only timesheets for this date (YYYY-MM-DD)")

	return cmd
}

func newTimesheetCompileCmd(app *app) *cobra.Command {
	var date string
	var audienceName string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a day's log into a timesheet for an audience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			_, impl, err := resolveAudience(app, audienceName)
			if err != nil {
				return err
			}

			log, err := app.logs.GetLog(logDate)
			if err != nil {
				return err
			}

			timesheet, err := impl.CompileTimesheet(cmd.Context(), log)
			if err != nil {
				return fmt.Errorf("compile timesheet for %q: %w", audienceName, err)
			}

			timesheet.AudienceID = audienceName
			timesheet.Date = logDate
			if err := app.timesheets.WriteTimesheet(timesheet); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Compiled timesheet for %q covering %s (%d entries)\n",
				audienceName, logDate, len(timesheet.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Log date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&audienceName, "audience", "", "Configured audience name")
	_ = cmd.MarkFlagRequired("audience")

	return cmd
}

func newTimesheetSubmitCmd(app *app) *cobra.Command {
	var date string
	var audienceName string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a compiled timesheet to its audience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sheetDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			_, impl, err := resolveAudience(app, audienceName)
			if err != nil {
				return err
			}

			timesheet, found, err := app.timesheets.GetTimesheet(audienceName, sheetDate)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no compiled timesheet for %q on %s; run timesheet compile first", audienceName, sheetDate)
			}

			if err := impl.SubmitTimesheet(cmd.Context(), timesheet); err != nil {
				return fmt.Errorf("submit timesheet to %q: %w", audienceName, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted timesheet for %q covering %s\n", audienceName, sheetDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Timesheet date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&audienceName, "audience", "", "Configured audience name")
	_ = cmd.MarkFlagRequired("audience")

	return cmd
}

func resolveAudience(app *app, name string) (config.Audience, ports.Audience, error) {
	for _, audience := range app.config.Audiences {
		if audience.Name != name {
			continue
		}
		impl, ok := app.audiences[audience.Plugin]
		if !ok {
			return config.Audience{}, nil, fmt.Errorf("audience %q: plugin %q is not registered", name, audience.Plugin)
		}
		return audience, impl, nil
	}
	return config.Audience{}, nil, fmt.Errorf("no audience named %q is configured", name)
}
