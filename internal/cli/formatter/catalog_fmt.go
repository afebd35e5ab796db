package formatter

import (
	"fmt"
	"strings"

	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/eligibility"
)

// RenderCatalog renders the weekly offer grouped by day and slot. When a
// plan is given, each activity line also shows which kids are assigned and
// flags kids whose grade doesn't match.
func RenderCatalog(cat *catalog.Catalog, plan *domain.Plan) string {
	var b strings.Builder
	for _, day := range domain.Weekdays {
		dayWritten := false
		for _, slot := range domain.Slots {
			cell := cat.ForDaySlot(day, slot)
			if len(cell) == 0 {
				continue
			}
			if !dayWritten {
				b.WriteString(Header(day.Label()))
				b.WriteString("\n")
				dayWritten = true
			}
			b.WriteString(StyleBlue.Render(slot.Label()) + "\n")
			for _, a := range cell {
				b.WriteString("  " + activityLine(a, plan))
			}
		}
		if dayWritten {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func activityLine(a *domain.Activity, plan *domain.Plan) string {
	timeStr := a.Time
	if timeStr == "" {
		timeStr = "whole slot"
	}
	line := fmt.Sprintf("%s %s  %s  %s  %s",
		Bold(a.Name),
		Dim("["+a.ID+"]"),
		Dim(timeStr),
		gradesLabel(a),
		priceLabel(a),
	)
	if plan != nil {
		if tags := assignedTags(a, plan); tags != "" {
			line += "  " + tags
		}
	}
	return line + "\n"
}

func gradesLabel(a *domain.Activity) string {
	if strings.TrimSpace(a.Grades) == "" {
		return StylePurple.Render("all grades")
	}
	return StylePurple.Render(a.Grades)
}

func priceLabel(a *domain.Activity) string {
	var label string
	if a.Bundled() {
		label = "75/135 €/term bundle"
	} else if a.Billing == domain.BillingTerm {
		label = MoneyPer(a.Price, "term")
	} else {
		label = MoneyPer(a.Price, "month")
	}
	if a.MaterialsFee > 0 {
		label += fmt.Sprintf(" +%s materials", Money(a.MaterialsFee))
	}
	return StyleYellow.Render(label)
}

func assignedTags(a *domain.Activity, plan *domain.Plan) string {
	var tags []string
	for _, childID := range plan.Assignments[a.ID] {
		child := plan.ChildByID(childID)
		if child == nil {
			continue
		}
		tag := KidSwatch(child.Color) + " " + child.Name
		if !eligibility.IsEligible(a, child) {
			// Imported plans may carry out-of-grade assignments; show them
			// rather than hiding them.
			tag += StyleRed.Render("!")
		}
		tags = append(tags, tag)
	}
	return strings.Join(tags, "  ")
}
