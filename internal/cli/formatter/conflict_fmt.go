package formatter

import (
	"fmt"
	"strings"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/schedule"
)

// RenderConflicts renders the schedule-conflict report, one line per
// colliding pair, in engine order.
func RenderConflicts(conflicts []schedule.Conflict) string {
	var b strings.Builder
	b.WriteString(Header("Schedule conflicts"))
	b.WriteString("\n")

	if len(conflicts) == 0 {
		b.WriteString(StyleGreen.Render("No conflicts.") + "\n")
		return b.String()
	}

	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("%s %s %s: %s %s\n",
			StyleRed.Render("✗"),
			Bold(c.Child.Name),
			Dim(fmt.Sprintf("(%s, %s)", c.Day.Label(), c.Slot.Label())),
			describeActivity(c.ActivityA),
			Dim("overlaps ")+describeActivity(c.ActivityB),
		))
	}
	b.WriteString(Dim(fmt.Sprintf("%d conflicting pair(s).", len(conflicts))) + "\n")
	return b.String()
}

func describeActivity(a *domain.Activity) string {
	if a.Time == "" {
		return fmt.Sprintf("%s %s", a.Name, Dim("(whole slot)"))
	}
	return fmt.Sprintf("%s %s", a.Name, Dim("("+a.Time+")"))
}
