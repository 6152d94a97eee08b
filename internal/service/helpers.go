package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/samber/lo"
)

// snapshot is the full dataset the reconciliation engine works on. Services
// load it once per use case so every derived figure sees the same data.
type snapshot struct {
	Projects []domain.Project
	Items    []domain.WorkItem
	Entries  []domain.ProgressEntry
}

func loadSnapshot(
	ctx context.Context,
	projects repository.ProjectRepo,
	items repository.WorkItemRepo,
	entries repository.ProgressEntryRepo,
) (*snapshot, error) {
	ps, err := projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	ws, err := items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading work items: %w", err)
	}
	es, err := entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress entries: %w", err)
	}
	return &snapshot{
		Projects: lo.Map(ps, func(p *domain.Project, _ int) domain.Project { return *p }),
		Items:    lo.Map(ws, func(w *domain.WorkItem, _ int) domain.WorkItem { return *w }),
		Entries:  lo.Map(es, func(e *domain.ProgressEntry, _ int) domain.ProgressEntry { return *e }),
	}, nil
}

// itemsForProject keeps the work items that belong to the project under the
// loose linkage rules, preserving stored order.
func (s *snapshot) itemsForProject(p domain.Project) []domain.WorkItem {
	return lo.Filter(s.Items, func(w domain.WorkItem, _ int) bool {
		return engine.ItemBelongsToProject(w, p)
	})
}

// linkageWarnings reports records whose project reference resolves to no
// known project. Such records still flow through matching, they just can
// never contribute to a report, so the caller surfaces them instead of
// silently dropping data.
func (s *snapshot) linkageWarnings() []string {
	known := make(map[string]bool, len(s.Projects)*2)
	for _, p := range s.Projects {
		known[engine.NormalizeProjectCode(p.Code)] = true
		known[engine.NormalizeProjectCode(p.FullCode())] = true
	}

	var warnings []string
	for _, w := range s.Items {
		if !recordLinked(known, w.ProjectCode, w.ProjectFullCode) {
			warnings = append(warnings, fmt.Sprintf("work item %q references unknown project code %q", w.Description, firstNonEmpty(w.ProjectCode, w.ProjectFullCode)))
		}
	}
	for _, e := range s.Entries {
		if !recordLinked(known, e.ProjectCode, e.ProjectFullCode) {
			warnings = append(warnings, fmt.Sprintf("progress entry %s references unknown project code %q", e.Date.Format("2006-01-02"), firstNonEmpty(e.ProjectCode, e.ProjectFullCode)))
		}
	}
	return warnings
}

func recordLinked(known map[string]bool, code, fullCode string) bool {
	if code == "" && fullCode == "" {
		return false
	}
	if code != "" && known[engine.NormalizeProjectCode(code)] {
		return true
	}
	return fullCode != "" && known[engine.NormalizeProjectCode(fullCode)]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return engine.DateOnly(*override)
	}
	return engine.DateOnly(time.Now().UTC())
}
