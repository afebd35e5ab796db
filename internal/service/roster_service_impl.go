package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/repository"
)

// defaultPalette cycles through kid card colors when none is chosen.
var defaultPalette = []string{
	"#a3d977", "#77b5d9", "#d9a377", "#c77dd9", "#d97788", "#77d9c4",
}

type rosterService struct {
	children repository.ChildRepo
}

func NewRosterService(children repository.ChildRepo) RosterService {
	return &rosterService{children: children}
}

func (s *rosterService) AddChild(ctx context.Context, name string, grade domain.Grade, color string) (*domain.Child, error) {
	if name == "" {
		return nil, fmt.Errorf("child name is required")
	}
	if _, ok := grade.Rank(); !ok {
		return nil, fmt.Errorf("unrecognized grade %q", grade)
	}
	if color == "" {
		existing, err := s.children.List(ctx)
		if err != nil {
			return nil, err
		}
		color = defaultPalette[len(existing)%len(defaultPalette)]
	}

	c := &domain.Child{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		Grade:     grade,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.children.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *rosterService) ListChildren(ctx context.Context) ([]*domain.Child, error) {
	return s.children.List(ctx)
}

// RemoveChild deletes the roster entry; the repository cascade clears the
// child from every assignment list.
func (s *rosterService) RemoveChild(ctx context.Context, id string) error {
	return s.children.Delete(ctx, id)
}
