package cli

import (
	"context"
	"fmt"

	"github.com/martagraells/extraplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var monthly bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show what the plan costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := app.Plan.Snapshot(ctx)
			if err != nil {
				return err
			}
			summary, err := app.Reports.Financial(ctx, monthly)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSummary(plan, summary, monthly))
			return nil
		},
	}

	cmd.Flags().BoolVar(&monthly, "monthly", false, "Spread per-term prices over 3 months into the monthly column")

	return cmd
}

func newConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Check the plan for schedule conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := app.Reports.Conflicts(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderConflicts(conflicts))
			return nil
		},
	}
}
