package cli

import (
	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds the catalog and service interfaces the commands run against.
type App struct {
	Catalog  *catalog.Catalog
	Roster   service.RosterService
	Plan     service.PlanService
	Reports  service.ReportService
	Transfer service.TransferService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the board are only offered when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "extraplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "extraplan",
		Short: "Family extracurricular activity planner",
		Long: "Plan the family's extracurricular activities: keep a kid roster,\n" +
			"assign kids to the school's offer, and get cost and schedule-conflict\n" +
			"reports.",
	}

	root.AddCommand(
		newKidCmd(app),
		newCatalogCmd(app),
		newAssignCmd(app),
		newUnassignCmd(app),
		newSummaryCmd(app),
		newConflictsCmd(app),
		newPlanCmd(app),
		newBoardCmd(app),
	)

	return root
}
