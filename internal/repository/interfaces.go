package repository

import (
	"context"
	"errors"

	"github.com/martagraells/extraplan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type ChildRepo interface {
	Create(ctx context.Context, c *domain.Child) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	List(ctx context.Context) ([]*domain.Child, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type AssignmentRepo interface {
	Add(ctx context.Context, activityID, childID string) error
	Remove(ctx context.Context, activityID, childID string) error
	Exists(ctx context.Context, activityID, childID string) (bool, error)
	ListAll(ctx context.Context) (map[string][]string, error)
	DeleteAll(ctx context.Context) error
}
