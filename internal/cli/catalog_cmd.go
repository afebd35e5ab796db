package cli

import (
	"context"
	"fmt"

	"github.com/martagraells/extraplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var forKid string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the weekly activity offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := app.Plan.Snapshot(ctx)
			if err != nil {
				return err
			}

			cat := app.Catalog
			if forKid != "" {
				childID, err := resolveChildID(ctx, app, forKid)
				if err != nil {
					return err
				}
				child := plan.ChildByID(childID)
				cat = cat.EligibleFor(child)
				fmt.Printf("Activities open to %s (%s):\n\n", child.Name, child.Grade)
			}

			fmt.Print(formatter.RenderCatalog(cat, plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&forKid, "for", "", "Only show activities the given kid's grade allows")

	return cmd
}
