package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faffage/faff/internal/application"
	"github.com/faffage/faff/internal/domain"
)

func newPlanCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect and manage dated plans",
	}

	cmd.AddCommand(
		newPlanInitCmd(app),
		newPlanListCmd(app),
		newPlanVocabCmd(app, "roles", "List roles valid on a date", app.plans.Roles),
		newPlanVocabCmd(app, "objectives", "List objectives valid on a date", app.plans.Objectives),
		newPlanVocabCmd(app, "actions", "List actions valid on a date", app.plans.Actions),
		newPlanVocabCmd(app, "subjects", "List subjects valid on a date", app.plans.Subjects),
		newPlanTrackersCmd(app),
		newPlanIntentsCmd(app),
		newPlanAddIntentCmd(app),
		newPlanPullCmd(app),
	)

	return cmd
}

func newPlanInitCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty local plan valid from a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			plans, err := app.plans.GetPlans(planDate)
			if err != nil {
				return err
			}
			if plan, ok := plans[application.LocalPlanSource]; ok {
				return fmt.Errorf("a local plan valid from %s already covers %s", plan.ValidFrom, planDate)
			}

			plan := domain.Plan{Source: application.LocalPlanSource, ValidFrom: planDate}
			if err := app.plans.WritePlan(plan); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created local plan valid from %s\n", plan.ValidFrom)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Validity start as YYYY-MM-DD (default: today)")

	return cmd
}

func newPlanListCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plan sources valid on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			plans, err := app.plans.GetPlans(planDate)
			if err != nil {
				return err
			}

			sources := make([]string, 0, len(plans))
			for source := range plans {
				sources = append(sources, source)
			}
			sort.Strings(sources)

			for _, source := range sources {
				plan := plans[source]
				window := plan.ValidFrom.String()
				if !plan.ValidUntil.IsZero() {
					window += " to " + plan.ValidUntil.String()
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%d intents, %d trackers)\n",
					source, window, len(plan.Intents), len(plan.Trackers))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Resolution date as YYYY-MM-DD (default: today)")

	return cmd
}

func newPlanVocabCmd(app *app, use, short string, load func(domain.Date) ([]string, error)) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			terms, err := load(planDate)
			if err != nil {
				return err
			}

			for _, term := range terms {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), term)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Resolution date as YYYY-MM-DD (default: today)")

	return cmd
}

func newPlanTrackersCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "trackers",
		Short: "List tracker IDs valid on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			trackers, err := app.plans.Trackers(planDate)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(trackers))
			for id := range trackers {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, trackers[id])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Resolution date as YYYY-MM-DD (default: today)")

	return cmd
}

func newPlanIntentsCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "intents",
		Short: "List reusable intents valid on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			intents, err := app.plans.Intents(planDate)
			if err != nil {
				return err
			}

			for _, intent := range intents {
				line := intent.Alias
				if len(intent.Trackers) > 0 {
					line += "\t" + strings.Join(intent.Trackers, ", ")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Resolution date as YYYY-MM-DD (default: today)")

	return cmd
}

func newPlanAddIntentCmd(app *app) *cobra.Command {
	var alias string
	var role string
	var objective string
	var action string
	var subject string
	var trackers []string

	cmd := &cobra.Command{
		Use:   "add-intent",
		Short: "Add a reusable intent to the local plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := app.logs.Today()

			plan, err := app.plans.LocalPlan(today)
			if err != nil {
				return err
			}

			intent := domain.NewIntent(alias, role, objective, action, subject, trackers)
			if err := app.plans.WritePlan(plan.AddIntent(intent)); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %q to the local plan\n", intent.Alias)
			return nil
		},
	}

	cmd.Flags().StringVar(&alias, "alias", "", "Short label for the intent")
	cmd.Flags().StringVar(&role, "role", "", "Role the intent is worked in")
	cmd.Flags().StringVar(&objective, "objective", "", "Objective the intent advances")
	cmd.Flags().StringVar(&action, "action", "", "Kind of work being done")
	cmd.Flags().StringVar(&subject, "subject", "", "Who or what the work is for")
	cmd.Flags().StringArrayVar(&trackers, "tracker", nil, "Tracker ID to book against (repeatable)")

	return cmd
}

func newPlanPullCmd(app *app) *cobra.Command {
	var date string
	var remoteName string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull plans from configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planDate, err := resolveDateFlag(app, date)
			if err != nil {
				return err
			}

			remotes := app.config.PlanRemotes
			if remoteName != "" {
				remotes = nil
				for _, remote := range app.config.PlanRemotes {
					if remote.Name == remoteName {
						remotes = append(remotes, remote)
					}
				}
				if len(remotes) == 0 {
					return fmt.Errorf("no plan remote named %q is configured", remoteName)
				}
			}

			if len(remotes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No plan remotes configured.")
				return nil
			}

			for _, remote := range remotes {
				plan, err := app.pull.Pull(cmd.Context(), remote, planDate)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pulled plan %q valid from %s\n", plan.Source, plan.ValidFrom)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&remoteName, "remote", "", "Pull from one named remote only")

	return cmd
}
