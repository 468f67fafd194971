package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faffage/faff/internal/adapters/storage/fs"
)

const defaultConfigTemplate = `timezone = %q
`

func newInitCmd() *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .faff workspace in the current directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := time.LoadLocation(timezone); err != nil {
				return fmt.Errorf("unknown timezone %q: %w", timezone, err)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			storage, err := fs.Init(cwd)
			if err != nil {
				return err
			}

			for _, dir := range []string{storage.LogDir(), storage.PlanDir(), storage.IdentityDir(), storage.TimesheetDir()} {
				if err := storage.CreateDirAll(dir); err != nil {
					return err
				}
			}

			if err := storage.WriteString(storage.ConfigFile(), fmt.Sprintf(defaultConfigTemplate, timezone)); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace in %s\n", storage.RootDir())
			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", defaultTimezone(), "IANA timezone logs are recorded in")

	return cmd
}

func defaultTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	return "UTC"
}
