package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// ValidateSnapshot checks the snapshot for structural errors before
// conversion. Returns every error found, not just the first; soft problems
// (unparsable quantities, unknown input types) are left for Convert, which
// repairs or drops the record with a warning instead.
func ValidateSnapshot(snapshot *SnapshotImport) []error {
	var errs []error

	codes := make(map[string]bool)
	for i, p := range snapshot.Projects {
		errs = append(errs, validateProject(i, p, codes)...)
	}
	for i, w := range snapshot.WorkItems {
		errs = append(errs, validateWorkItem(i, w)...)
	}
	for i, e := range snapshot.Entries {
		errs = append(errs, validateEntry(i, e)...)
	}

	return errs
}

func validateProject(i int, p ProjectImport, codes map[string]bool) []error {
	var errs []error

	probe := domain.Project{Code: p.Code, SubCode: p.SubCode}
	if err := probe.ValidateCode(); err != nil {
		errs = append(errs, fmt.Errorf("projects[%d]: %w", i, err))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("projects[%d]: name is required", i))
	}
	if p.Status != "" && !domain.ValidProjectStatuses[domain.ProjectStatus(p.Status)] {
		errs = append(errs, fmt.Errorf("projects[%d]: unknown status %q", i, p.Status))
	}
	full := probe.FullCode()
	if codes[full] {
		errs = append(errs, fmt.Errorf("projects[%d]: duplicate project code %q", i, full))
	}
	codes[full] = true

	return errs
}

func validateWorkItem(i int, w WorkItemImport) []error {
	var errs []error

	if w.ProjectCode == "" && w.ProjectFullCode == "" {
		errs = append(errs, fmt.Errorf("work_items[%d]: project_code is required", i))
	}
	if w.Description == "" && w.Activity == "" {
		errs = append(errs, fmt.Errorf("work_items[%d]: description is required", i))
	}
	for name, raw := range map[string]*string{
		"deadline":           w.Deadline,
		"planned_start":      w.PlannedStart,
		"actual_start":       w.ActualStart,
		"planned_completion": w.PlannedCompletion,
		"actual_completion":  w.ActualCompletion,
	} {
		if raw == nil || *raw == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", *raw); err != nil {
			errs = append(errs, fmt.Errorf("work_items[%d]: %s: invalid date %q (expected YYYY-MM-DD)", i, name, *raw))
		}
	}

	return errs
}

func validateEntry(i int, e EntryImport) []error {
	var errs []error

	if e.ProjectCode == "" && e.ProjectFullCode == "" {
		errs = append(errs, fmt.Errorf("progress_entries[%d]: project_code is required", i))
	}
	if e.Activity == "" && e.Description == "" {
		errs = append(errs, fmt.Errorf("progress_entries[%d]: activity is required", i))
	}
	if e.Date == nil && e.EntryDate == nil {
		errs = append(errs, fmt.Errorf("progress_entries[%d]: date is required", i))
	}

	return errs
}
