package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/martagraells/extraplan/internal/cli/formatter"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/spf13/cobra"
)

func newKidCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kid",
		Short: "Manage the kid roster",
	}

	cmd.AddCommand(
		newKidAddCmd(app),
		newKidListCmd(app),
		newKidRemoveCmd(app),
	)

	return cmd
}

func newKidAddCmd(app *App) *cobra.Command {
	var name, color string
	var grade domain.Grade

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a kid to the roster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				name = args[0]
			}

			// Without a name and grade on the command line, fall back to an
			// interactive form when a terminal is attached.
			if name == "" || grade == "" {
				if !app.interactive() {
					return fmt.Errorf("NAME and --grade are required in non-interactive mode")
				}
				if err := runKidAddForm(&name, &grade); err != nil {
					return err
				}
			}

			child, err := app.Roster.AddChild(context.Background(), name, grade, color)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %s (%s) [%s]\n",
				formatter.KidSwatch(child.Color), child.Name, child.Grade, child.DisplayID())
			return nil
		},
	}

	addGradeFlag(cmd.Flags(), &grade)
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex, e.g. #8ec07c); defaults to a palette color")

	return cmd
}

func runKidAddForm(name *string, grade *domain.Grade) error {
	gradeStr := string(*grade)

	options := make([]huh.Option[string], len(domain.GradeScale))
	for i, g := range domain.GradeScale {
		options[i] = huh.NewOption(string(g), string(g))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Aina").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Grade").
				Options(options...).
				Value(&gradeStr),
		),
	).WithTheme(extraplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*grade = domain.Grade(gradeStr)
	return nil
}

func newKidListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			children, err := app.Roster.ListChildren(context.Background())
			if err != nil {
				return err
			}

			if len(children) == 0 {
				fmt.Println("No kids yet. Add one with `extraplan kid add`.")
				return nil
			}

			var rows [][]string
			for _, c := range children {
				rows = append(rows, []string{
					formatter.KidSwatch(c.Color) + " " + c.Name,
					string(c.Grade),
					formatter.Dim(c.DisplayID()),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"Kid", "Grade", "ID"}, rows))
			return nil
		},
	}
}

func newKidRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove KID",
		Short: "Remove a kid and all their assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roster.RemoveChild(ctx, childID); err != nil {
				return err
			}
			fmt.Printf("Removed kid %s\n", childID)
			return nil
		},
	}
}
