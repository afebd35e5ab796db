package formatter

import (
	"fmt"
	"strings"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/finance"
)

// RenderSummary renders the financial report: one row per child in roster
// order plus a totals row. With normalized set, the monthly column already
// includes term amounts spread over three months and is labeled as such.
func RenderSummary(plan *domain.Plan, summary *finance.Summary, normalized bool) string {
	monthlyHeader := "Monthly"
	if normalized {
		monthlyHeader = "Monthly (norm.)"
	}
	headers := []string{"Kid", "Grade", monthlyHeader, "Per term", "Materials (one-time)"}

	var rows [][]string
	for _, c := range plan.Children {
		totals := summary.PerChild[c.ID]
		if totals == nil {
			totals = &finance.ChildTotals{}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", KidSwatch(c.Color), c.Name),
			string(c.Grade),
			Money(totals.Monthly),
			Money(totals.Term),
			Money(totals.Materials),
		})
	}
	rows = append(rows, []string{
		Bold("Total"),
		"",
		Bold(Money(summary.TotalMonthly)),
		Bold(Money(summary.TotalTerm)),
		Bold(Money(summary.TotalMaterials)),
	})

	var b strings.Builder
	b.WriteString(Header("Costs"))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	if normalized {
		b.WriteString(Dim("Per-term prices are spread over 3 months in the monthly column.") + "\n")
	}
	return b.String()
}
