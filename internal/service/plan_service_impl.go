package service

import (
	"context"
	"fmt"

	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/eligibility"
	"github.com/martagraells/extraplan/internal/repository"
)

type planService struct {
	catalog     *catalog.Catalog
	children    repository.ChildRepo
	assignments repository.AssignmentRepo
}

func NewPlanService(cat *catalog.Catalog, children repository.ChildRepo, assignments repository.AssignmentRepo) PlanService {
	return &planService{catalog: cat, children: children, assignments: assignments}
}

func (s *planService) Snapshot(ctx context.Context) (*domain.Plan, error) {
	children, err := s.children.List(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{Children: children, Assignments: assignments}, nil
}

func (s *planService) Eligible(ctx context.Context, activityID, childID string) (bool, error) {
	act := s.catalog.ByID(activityID)
	if act == nil {
		return false, fmt.Errorf("activity %q: %w", activityID, ErrUnknownActivity)
	}
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return false, err
	}
	return eligibility.IsEligible(act, child), nil
}

func (s *planService) Assign(ctx context.Context, activityID, childID string) error {
	act := s.catalog.ByID(activityID)
	if act == nil {
		return fmt.Errorf("activity %q: %w", activityID, ErrUnknownActivity)
	}
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return err
	}
	if !eligibility.IsEligible(act, child) {
		return fmt.Errorf("%s (%s) on %q [%s]: %w",
			child.Name, child.Grade, act.Name, act.Grades, ErrNotEligible)
	}
	return s.assignments.Add(ctx, activityID, childID)
}

func (s *planService) Unassign(ctx context.Context, activityID, childID string) error {
	return s.assignments.Remove(ctx, activityID, childID)
}

func (s *planService) Toggle(ctx context.Context, activityID, childID string) (bool, error) {
	assigned, err := s.assignments.Exists(ctx, activityID, childID)
	if err != nil {
		return false, err
	}
	if assigned {
		if err := s.Unassign(ctx, activityID, childID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Assign(ctx, activityID, childID); err != nil {
		return false, err
	}
	return true, nil
}
