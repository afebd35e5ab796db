package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/martagraells/extraplan/internal/service"
	"github.com/spf13/cobra"
)

func newAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ACTIVITY KID",
		Short: "Sign a kid up for an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID, childID, err := resolvePair(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.Plan.Assign(ctx, activityID, childID); err != nil {
				if errors.Is(err, service.ErrNotEligible) {
					return fmt.Errorf("%w\nSee `extraplan catalog --for %s` for the open activities", err, args[1])
				}
				return err
			}

			fmt.Printf("Assigned %s to %s\n", args[1], app.Catalog.ByID(activityID).Name)
			return nil
		},
	}
}

func newUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign ACTIVITY KID",
		Short: "Take a kid off an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID, childID, err := resolvePair(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.Plan.Unassign(ctx, activityID, childID); err != nil {
				return err
			}

			fmt.Printf("Removed %s from %s\n", args[1], app.Catalog.ByID(activityID).Name)
			return nil
		},
	}
}

func resolvePair(ctx context.Context, app *App, activityArg, kidArg string) (activityID, childID string, err error) {
	activityID, err = resolveActivityID(app, activityArg)
	if err != nil {
		return "", "", err
	}
	childID, err = resolveChildID(ctx, app, kidArg)
	if err != nil {
		return "", "", err
	}
	return activityID, childID, nil
}
