package service

import (
	"context"
	"errors"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/finance"
	"github.com/martagraells/extraplan/internal/planfile"
	"github.com/martagraells/extraplan/internal/schedule"
)

// ErrNotEligible is returned when an assignment is blocked by the grade
// constraint. The plan is left unchanged.
var ErrNotEligible = errors.New("child is not eligible for this activity")

// ErrUnknownActivity is returned when an activity ID is not in the catalog.
var ErrUnknownActivity = errors.New("unknown activity")

type RosterService interface {
	AddChild(ctx context.Context, name string, grade domain.Grade, color string) (*domain.Child, error)
	ListChildren(ctx context.Context) ([]*domain.Child, error)
	RemoveChild(ctx context.Context, id string) error
}

type PlanService interface {
	// Snapshot returns the current plan aggregate: roster in insertion
	// order plus the assignment map.
	Snapshot(ctx context.Context) (*domain.Plan, error)
	// Eligible reports whether the child may be assigned to the activity,
	// without mutating anything.
	Eligible(ctx context.Context, activityID, childID string) (bool, error)
	// Assign adds the child to the activity, gated by eligibility.
	// Assigning an existing pair is a no-op.
	Assign(ctx context.Context, activityID, childID string) error
	// Unassign removes the pair. Always permitted, even for assignments an
	// import created against the grade constraint.
	Unassign(ctx context.Context, activityID, childID string) error
	// Toggle assigns or unassigns and reports whether the pair is assigned
	// afterwards.
	Toggle(ctx context.Context, activityID, childID string) (bool, error)
}

type ReportService interface {
	Financial(ctx context.Context, normalizeMonthly bool) (*finance.Summary, error)
	Conflicts(ctx context.Context) ([]schedule.Conflict, error)
}

// ImportResult summarizes an applied plan import.
type ImportResult struct {
	Children    int
	Assignments int
	// Upgraded is set when legacy kid records without a grade were
	// defaulted; the stored plan already holds the corrected form.
	Upgraded bool
}

type TransferService interface {
	Export(ctx context.Context) (*planfile.Document, error)
	// Import validates the raw document and replaces the stored plan
	// atomically. On any error the previous plan remains in effect.
	Import(ctx context.Context, raw []byte) (*ImportResult, error)
}
