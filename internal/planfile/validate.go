package planfile

import (
	"fmt"

	"github.com/martagraells/extraplan/internal/domain"
)

// Validate checks a parsed document and returns every problem found.
// Import applies a valid document wholesale or not at all, so callers want
// the full list, not the first failure.
func Validate(d *Document) []error {
	var errs []error

	kidIDs := make(map[string]bool, len(d.Kids))
	for i, k := range d.Kids {
		prefix := fmt.Sprintf("kids[%d]", i)
		if k.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if kidIDs[k.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, k.ID))
		} else {
			kidIDs[k.ID] = true
		}
		if k.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if _, ok := domain.ParseGrade(k.Grade); !ok {
			errs = append(errs, fmt.Errorf("%s: unrecognized grade %q", prefix, k.Grade))
		}
	}

	for activityID, childIDs := range d.Assignments {
		if activityID == "" {
			errs = append(errs, fmt.Errorf("assignments: empty activity id"))
		}
		seen := make(map[string]bool, len(childIDs))
		for _, childID := range childIDs {
			if !kidIDs[childID] {
				errs = append(errs, fmt.Errorf("assignments[%s]: unknown kid id %q", activityID, childID))
			}
			if seen[childID] {
				errs = append(errs, fmt.Errorf("assignments[%s]: duplicate kid id %q", activityID, childID))
			}
			seen[childID] = true
		}
	}

	return errs
}
