package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/martagraells/extraplan/internal/domain"
)

// ChildOption customizes a test child.
type ChildOption func(*domain.Child)

// WithGrade sets the child's grade.
func WithGrade(g domain.Grade) ChildOption {
	return func(c *domain.Child) { c.Grade = g }
}

// WithColor sets the child's display color.
func WithColor(color string) ChildOption {
	return func(c *domain.Child) { c.Color = color }
}

// WithCreatedAt pins the creation timestamp, useful for asserting roster
// order.
func WithCreatedAt(t time.Time) ChildOption {
	return func(c *domain.Child) { c.CreatedAt = t }
}

// NewTestChild builds a child with sane defaults.
func NewTestChild(name string, opts ...ChildOption) *domain.Child {
	c := &domain.Child{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#a3d977",
		Grade:     domain.Grade2nd,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActivityOption customizes a test activity.
type ActivityOption func(*domain.Activity)

// WithTime sets the activity's time range string.
func WithTime(timeRange string) ActivityOption {
	return func(a *domain.Activity) { a.Time = timeRange }
}

// WithGrades sets the eligibility expression.
func WithGrades(expr string) ActivityOption {
	return func(a *domain.Activity) { a.Grades = expr }
}

// WithTermPrice makes the activity per-term billed at the given price.
func WithTermPrice(price float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Price = price
		a.Billing = domain.BillingTerm
	}
}

// WithMaterials attaches a one-time materials fee under the given key.
func WithMaterials(fee float64, key string) ActivityOption {
	return func(a *domain.Activity) {
		a.MaterialsFee = fee
		a.MaterialsKey = key
	}
}

// WithBundle marks the activity as bundle-priced.
func WithBundle(key string) ActivityOption {
	return func(a *domain.Activity) { a.BundleKey = key }
}

// NewTestActivity builds a monthly-billed activity with sane defaults.
func NewTestActivity(id string, day domain.Weekday, slot domain.Slot, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:      id,
		Name:    id,
		Day:     day,
		Slot:    slot,
		Price:   30,
		Billing: domain.BillingMonthly,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
