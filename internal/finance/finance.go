// Package finance aggregates the monetary cost of a plan: recurring
// monthly and per-term prices, one-time materials fees deduplicated by
// key, and tiered bundle pricing.
package finance

import "github.com/martagraells/extraplan/internal/domain"

// Bundle tariff: flat per-term fee by number of bundle days selected,
// capped at the two-day rate.
const (
	bundleOneDayTerm = 75.0
	bundleTwoDayTerm = 135.0
	monthsPerTerm    = 3.0
)

// ChildTotals holds one child's accumulated costs.
type ChildTotals struct {
	Monthly   float64
	Term      float64
	Materials float64
}

// Summary is the full financial picture of a plan.
type Summary struct {
	PerChild       map[string]*ChildTotals // keyed by child ID
	TotalMonthly   float64
	TotalTerm      float64
	TotalMaterials float64
}

// Compute walks every (activity, assigned child) pair and produces the
// summary. With normalizeMonthly set, per-term amounts additionally
// contribute amount/3 to the monthly column, approximating a term as three
// months. Assignments referencing unknown activities or children are
// skipped: imported plans may carry them and reports must tolerate that.
func Compute(plan *domain.Plan, index map[string]*domain.Activity, normalizeMonthly bool) *Summary {
	s := &Summary{PerChild: make(map[string]*ChildTotals)}
	for _, c := range plan.Children {
		s.PerChild[c.ID] = &ChildTotals{}
	}

	// Pre-scan: count bundle selections per child. All bundle activities
	// share one fee schedule, so only the count matters.
	bundleCount := make(map[string]int)
	for activityID, childIDs := range plan.Assignments {
		act := index[activityID]
		if act == nil || !act.Bundled() {
			continue
		}
		for _, childID := range childIDs {
			if _, ok := s.PerChild[childID]; ok {
				bundleCount[childID]++
			}
		}
	}

	chargedMaterials := make(map[string]map[string]bool) // child ID -> materials key
	for activityID, childIDs := range plan.Assignments {
		act := index[activityID]
		if act == nil {
			continue
		}
		for _, childID := range childIDs {
			totals, ok := s.PerChild[childID]
			if !ok {
				continue
			}

			if act.MaterialsFee > 0 && act.MaterialsKey != "" {
				if chargedMaterials[childID] == nil {
					chargedMaterials[childID] = make(map[string]bool)
				}
				if !chargedMaterials[childID][act.MaterialsKey] {
					chargedMaterials[childID][act.MaterialsKey] = true
					totals.Materials += act.MaterialsFee
				}
			}

			if act.Bundled() {
				continue // priced exclusively via the bundle tier below
			}

			switch act.Billing {
			case domain.BillingMonthly:
				totals.Monthly += act.Price
			case domain.BillingTerm:
				totals.Term += act.Price
				if normalizeMonthly {
					totals.Monthly += act.Price / monthsPerTerm
				}
			}
		}
	}

	for childID, count := range bundleCount {
		fee := bundleOneDayTerm
		if count >= 2 {
			fee = bundleTwoDayTerm
		}
		totals := s.PerChild[childID]
		totals.Term += fee
		if normalizeMonthly {
			totals.Monthly += fee / monthsPerTerm
		}
	}

	for _, totals := range s.PerChild {
		s.TotalMonthly += totals.Monthly
		s.TotalTerm += totals.Term
		s.TotalMaterials += totals.Materials
	}
	return s
}
