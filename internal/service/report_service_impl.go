package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/alexanderramin/sitepace/internal/repository"
)

type reportService struct {
	projects repository.ProjectRepo
	items    repository.WorkItemRepo
	entries  repository.ProgressEntryRepo
	observer UseCaseObserver
}

func NewReportService(
	projects repository.ProjectRepo,
	items repository.WorkItemRepo,
	entries repository.ProgressEntryRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		projects: projects,
		items:    items,
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) BuildReport(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectCode}
	defer func() { observeUseCase(ctx, s.observer, "progress-report", startedAt, err, fields) }()

	if req.ProjectCode == "" {
		return nil, fmt.Errorf("project code is required")
	}

	project, err := s.projects.GetByCode(ctx, req.ProjectCode)
	if err != nil {
		return nil, fmt.Errorf("resolving project %q: %w", req.ProjectCode, err)
	}

	snap, err := loadSnapshot(ctx, s.projects, s.items, s.entries)
	if err != nil {
		return nil, err
	}

	now := resolveNow(req.Now)
	period, granularity, err := resolvePeriod(req, now)
	if err != nil {
		return nil, err
	}
	fields["period"] = period.Key

	items := snap.itemsForProject(*project)
	report := engine.BuildReport(items, snap.Entries, period, granularity, req.Combined)
	fields["rows"] = len(report.Rows())

	return &app.ReportResponse{
		Project:  project,
		Report:   report,
		Warnings: snap.linkageWarnings(),
	}, nil
}

func resolvePeriod(req app.ReportRequest, now time.Time) (engine.Period, domain.Granularity, error) {
	granularity := req.Granularity
	if granularity == "" {
		granularity = domain.GranWeekly
	}

	if granularity == domain.GranCustom {
		if req.CustomStart == nil || req.CustomEnd == nil {
			return engine.Period{}, granularity, fmt.Errorf("custom granularity requires both start and end dates")
		}
		return engine.CustomPeriod(*req.CustomStart, *req.CustomEnd), granularity, nil
	}

	anchor := now
	if req.Date != nil {
		anchor = engine.DateOnly(*req.Date)
	}
	return engine.PeriodOf(anchor, granularity), granularity, nil
}
