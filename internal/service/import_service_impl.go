package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/importer"
	"github.com/alexanderramin/sitepace/internal/repository"
)

type importService struct {
	projects repository.ProjectRepo
	items    repository.WorkItemRepo
	entries  repository.ProgressEntryRepo
	observer UseCaseObserver
}

func NewImportService(
	projects repository.ProjectRepo,
	items repository.WorkItemRepo,
	entries repository.ProgressEntryRepo,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		projects: projects,
		items:    items,
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, snapshot *importer.SnapshotImport) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "import-snapshot", startedAt, err, fields) }()

	if errs := importer.ValidateSnapshot(snapshot); len(errs) > 0 {
		return nil, fmt.Errorf("invalid snapshot: %w", errors.Join(errs...))
	}

	converted := importer.Convert(snapshot)

	for _, p := range converted.Projects {
		if err := s.projects.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("importing project %q: %w", p.Code, err)
		}
	}
	for _, w := range converted.WorkItems {
		if err := s.items.Create(ctx, w); err != nil {
			return nil, fmt.Errorf("importing work item %q: %w", w.Description, err)
		}
	}
	if err := s.entries.CreateBatch(ctx, converted.Entries); err != nil {
		return nil, fmt.Errorf("importing progress entries: %w", err)
	}

	fields["projects"] = len(converted.Projects)
	fields["work_items"] = len(converted.WorkItems)
	fields["entries"] = len(converted.Entries)

	return &app.ImportResult{
		ProjectCount:  len(converted.Projects),
		WorkItemCount: len(converted.WorkItems),
		EntryCount:    len(converted.Entries),
		Warnings:      converted.Warnings,
	}, nil
}
