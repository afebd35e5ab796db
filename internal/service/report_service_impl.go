package service

import (
	"context"

	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/finance"
	"github.com/martagraells/extraplan/internal/schedule"
)

type reportService struct {
	catalog *catalog.Catalog
	plan    PlanService
}

func NewReportService(cat *catalog.Catalog, plan PlanService) ReportService {
	return &reportService{catalog: cat, plan: plan}
}

func (s *reportService) Financial(ctx context.Context, normalizeMonthly bool) (*finance.Summary, error) {
	snapshot, err := s.plan.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return finance.Compute(snapshot, s.catalog.Index(), normalizeMonthly), nil
}

func (s *reportService) Conflicts(ctx context.Context) ([]schedule.Conflict, error) {
	snapshot, err := s.plan.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.FindConflicts(snapshot, s.catalog.Activities), nil
}
