package service

import (
	"context"
	"fmt"
	"time"

	"github.com/martagraells/extraplan/internal/db"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/planfile"
	"github.com/martagraells/extraplan/internal/repository"
)

type transferService struct {
	plan PlanService
	uow  db.UnitOfWork
}

func NewTransferService(plan PlanService, uow db.UnitOfWork) TransferService {
	return &transferService{plan: plan, uow: uow}
}

func (s *transferService) Export(ctx context.Context) (*planfile.Document, error) {
	snapshot, err := s.plan.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return planfile.FromPlan(snapshot), nil
}

// Import parses and validates the document, then replaces the stored plan
// inside one transaction. Validation failure or any write error leaves the
// previous plan untouched.
func (s *transferService) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	doc, upgraded, err := planfile.Parse(raw)
	if err != nil {
		return nil, err
	}
	if errs := planfile.Validate(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	var assignmentCount int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		children := repository.NewSQLiteChildRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)

		// Whole-plan replace: imports never merge.
		if err := assignments.DeleteAll(ctx); err != nil {
			return err
		}
		if err := children.DeleteAll(ctx); err != nil {
			return err
		}

		now := time.Now().UTC()
		for i, kid := range doc.Kids {
			grade, _ := domain.ParseGrade(kid.Grade)
			child := &domain.Child{
				ID:    kid.ID,
				Name:  kid.Name,
				Color: kid.Color,
				Grade: grade,
				// Spread timestamps so roster order survives re-export.
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			}
			if err := children.Create(ctx, child); err != nil {
				return fmt.Errorf("importing kid %q: %w", kid.Name, err)
			}
		}

		for activityID, childIDs := range doc.Assignments {
			for _, childID := range childIDs {
				if err := assignments.Add(ctx, activityID, childID); err != nil {
					return fmt.Errorf("importing assignment %s/%s: %w", activityID, childID, err)
				}
				assignmentCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Children:    len(doc.Kids),
		Assignments: assignmentCount,
		Upgraded:    upgraded,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
