package domain

// Plan is the root aggregate the engines compute over: the child roster in
// insertion order plus the assignment map. Engines only read it; mutations
// go through the plan service.
type Plan struct {
	Children    []*Child
	Assignments map[string][]string // activity ID -> child IDs, insertion order
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{Assignments: make(map[string][]string)}
}

// ChildByID returns the roster entry with the given ID, or nil.
func (p *Plan) ChildByID(id string) *Child {
	for _, c := range p.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Assigned reports whether the child is on the activity's assignment list.
func (p *Plan) Assigned(activityID, childID string) bool {
	for _, id := range p.Assignments[activityID] {
		if id == childID {
			return true
		}
	}
	return false
}

// AssignedActivities returns the activity IDs the child is assigned to, in
// no particular order.
func (p *Plan) AssignedActivities(childID string) []string {
	var ids []string
	for activityID, childIDs := range p.Assignments {
		for _, id := range childIDs {
			if id == childID {
				ids = append(ids, activityID)
				break
			}
		}
	}
	return ids
}
