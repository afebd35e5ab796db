package service

import (
	"testing"

	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/db"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/repository"
	"github.com/martagraells/extraplan/internal/testutil"
)

// testCatalog is a small fixed offer exercising every pricing rule.
func testCatalog() *catalog.Catalog {
	return catalog.New([]*domain.Activity{
		testutil.NewTestActivity("chess", domain.Monday, domain.SlotMidday,
			testutil.WithTime("12:45-13:45"), testutil.WithGrades("2nd-6th")),
		testutil.NewTestActivity("judo", domain.Tuesday, domain.SlotMidday,
			testutil.WithTime("13:00-14:00"), testutil.WithGrades("1st-6th")),
		testutil.NewTestActivity("english-mon", domain.Monday, domain.SlotAfternoon,
			testutil.WithGrades("I4/I5-2nd"), testutil.WithMaterials(40, "unicor-english")),
		testutil.NewTestActivity("english-wed", domain.Wednesday, domain.SlotAfternoon,
			testutil.WithGrades("I4/I5-2nd"), testutil.WithMaterials(40, "unicor-english")),
		testutil.NewTestActivity("psycho-mon", domain.Monday, domain.SlotAfternoon,
			testutil.WithGrades("I3-I5"), testutil.WithTermPrice(75), testutil.WithBundle("psycho")),
		testutil.NewTestActivity("psycho-thu", domain.Thursday, domain.SlotAfternoon,
			testutil.WithGrades("I3-I5"), testutil.WithTermPrice(75), testutil.WithBundle("psycho")),
		testutil.NewTestActivity("crafts", domain.Monday, domain.SlotMidday,
			testutil.WithGrades("")),
	})
}

type testServices struct {
	roster   RosterService
	plan     PlanService
	reports  ReportService
	transfer TransferService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	children := repository.NewSQLiteChildRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	cat := testCatalog()
	plan := NewPlanService(cat, children, assignments)
	return testServices{
		roster:   NewRosterService(children),
		plan:     plan,
		reports:  NewReportService(cat, plan),
		transfer: NewTransferService(plan, uow),
	}
}
