package schedule

import "github.com/martagraells/extraplan/internal/domain"

// Slot-wide fallback windows used when an activity has no parseable time of
// its own. Deliberately wider than any real session so that two untimed
// activities in the same slot always collide.
var slotFallbacks = map[domain.Slot]TimeRange{
	domain.SlotMidday:    {Start: 12*60 + 30, End: 14*60 + 40}, // 12:30-14:40
	domain.SlotAfternoon: {Start: 16*60 + 30, End: 18 * 60},    // 16:30-18:00
}

// Conflict is one same-child, same-day, same-slot collision between two
// assigned activities.
type Conflict struct {
	Child     *domain.Child
	Day       domain.Weekday
	Slot      domain.Slot
	ActivityA *domain.Activity
	ActivityB *domain.Activity
}

// FindConflicts enumerates every conflicting activity pair per child.
// Result order is deterministic: roster order, Monday..Friday, midday then
// afternoon, catalog pair order. An activity whose own time string fails to
// parse conflicts with every slot-mate (fail-safe over-reporting).
func FindConflicts(plan *domain.Plan, activities []*domain.Activity) []Conflict {
	var conflicts []Conflict
	for _, child := range plan.Children {
		for _, day := range domain.Weekdays {
			for _, slot := range domain.Slots {
				var assigned []*domain.Activity
				for _, act := range activities {
					if act.Day == day && act.Slot == slot && plan.Assigned(act.ID, child.ID) {
						assigned = append(assigned, act)
					}
				}
				for i := 0; i < len(assigned); i++ {
					for j := i + 1; j < len(assigned); j++ {
						if collides(assigned[i], assigned[j], slot) {
							conflicts = append(conflicts, Conflict{
								Child:     child,
								Day:       day,
								Slot:      slot,
								ActivityA: assigned[i],
								ActivityB: assigned[j],
							})
						}
					}
				}
			}
		}
	}
	return conflicts
}

// collides resolves each activity's effective range and tests overlap.
// A time string that is present but unparseable counts as a collision.
func collides(a, b *domain.Activity, slot domain.Slot) bool {
	ra, okA := effectiveRange(a, slot)
	rb, okB := effectiveRange(b, slot)
	if !okA || !okB {
		return true
	}
	return ra.Overlaps(rb)
}

// effectiveRange returns the activity's own range when parseable, the slot
// fallback when no time is given, and ok=false when a time is given but
// malformed.
func effectiveRange(a *domain.Activity, slot domain.Slot) (TimeRange, bool) {
	if a.Time == "" {
		return slotFallbacks[slot], true
	}
	return ParseRange(a.Time)
}
