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

type lookAheadService struct {
	projects repository.ProjectRepo
	items    repository.WorkItemRepo
	entries  repository.ProgressEntryRepo
	calendar engine.Calendar
	observer UseCaseObserver
}

func NewLookAheadService(
	projects repository.ProjectRepo,
	items repository.WorkItemRepo,
	entries repository.ProgressEntryRepo,
	calendar engine.Calendar,
	observers ...UseCaseObserver,
) LookAheadService {
	return &lookAheadService{
		projects: projects,
		items:    items,
		entries:  entries,
		calendar: calendar,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *lookAheadService) BuildLookAhead(ctx context.Context, req app.LookAheadRequest) (resp *app.LookAheadResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "look-ahead", startedAt, err, fields) }()

	snap, err := loadSnapshot(ctx, s.projects, s.items, s.entries)
	if err != nil {
		return nil, err
	}

	now := resolveNow(req.Now)

	scope := snap.Projects
	if req.ProjectCode != "" {
		p, err := s.projects.GetByCode(ctx, req.ProjectCode)
		if err != nil {
			return nil, fmt.Errorf("resolving project %q: %w", req.ProjectCode, err)
		}
		scope = []domain.Project{*p}
	}

	var views []engine.ProjectLookAhead
	for _, p := range scope {
		la := engine.BuildProjectLookAhead(p, snap.itemsForProject(p), snap.Entries, now, s.calendar)
		if !la.HasRemainingWork() {
			continue
		}
		views = append(views, la)
	}
	fields["projects"] = len(views)

	return &app.LookAheadResponse{
		Projects: views,
		Warnings: snap.linkageWarnings(),
	}, nil
}
