package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Export and import the whole plan as JSON",
	}

	cmd.AddCommand(
		newPlanExportCmd(app),
		newPlanImportCmd(app),
	)

	return cmd
}

func newPlanExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan as JSON to stdout or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Transfer.Export(context.Background())
			if err != nil {
				return err
			}
			data, err := doc.Serialize()
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing plan file: %w", err)
			}
			fmt.Printf("Exported plan to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored plan with the plan in FILE",
		Long: "Replace the stored plan with the plan in FILE. The import is all or\n" +
			"nothing: on any validation error the current plan is left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan file: %w", err)
			}

			result, err := app.Transfer.Import(context.Background(), raw)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d kids and %d assignments\n", result.Children, result.Assignments)
			if result.Upgraded {
				fmt.Println("Note: some kids had no grade and were defaulted to 1st; review with `extraplan kid list`.")
			}
			return nil
		},
	}
}
