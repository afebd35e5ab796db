// Package eligibility answers whether a child's grade satisfies an
// activity's free-text grade expression. Expressions are a tiny
// comma-separated mini-language of single grades, /-alternatives and
// dash-ranges; parsing and evaluation are split so each is testable alone.
package eligibility

import "github.com/martagraells/extraplan/internal/domain"

// IsEligible reports whether the child may be assigned to the activity.
// An expression with no usable clauses admits everyone: an unspecified
// constraint is permissive, not an error.
func IsEligible(activity *domain.Activity, child *domain.Child) bool {
	rank, ok := child.Grade.Rank()
	if !ok {
		// Unknown grade on the child side can never satisfy a concrete
		// constraint, but an unconstrained activity still admits it.
		return len(Parse(activity.Grades)) == 0
	}
	clauses := Parse(activity.Grades)
	if len(clauses) == 0 {
		return true
	}
	for _, c := range clauses {
		if matches(c, rank) {
			return true
		}
	}
	return false
}

func matches(c Clause, rank int) bool {
	switch c := c.(type) {
	case Alternatives:
		for _, r := range c.Ranks {
			if r == rank {
				return true
			}
		}
	case Range:
		return c.Start <= rank && rank <= c.End
	}
	return false
}
