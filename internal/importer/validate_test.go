package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot_Valid(t *testing.T) {
	errs := ValidateSnapshot(validMinimalSnapshot())
	assert.Empty(t, errs)
}

func TestValidateSnapshot_CollectsAllErrors(t *testing.T) {
	snapshot := &SnapshotImport{
		Projects: []ProjectImport{
			{Code: "", Name: ""},
			{Code: "C 102", Name: "Bad Code", Status: "paused"},
		},
		WorkItems: []WorkItemImport{
			{ProjectCode: "", Description: ""},
		},
		Entries: []EntryImport{
			{ProjectCode: "C-102", Activity: ""},
		},
	}

	errs := ValidateSnapshot(snapshot)

	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}

	assert.GreaterOrEqual(t, len(errs), 6)
	assert.Contains(t, joined, "projects[0]")
	assert.Contains(t, joined, "unknown status")
	assert.Contains(t, joined, "work_items[0]")
	assert.Contains(t, joined, "progress_entries[0]")
}

func TestValidateSnapshot_DuplicateProjectCode(t *testing.T) {
	snapshot := &SnapshotImport{
		Projects: []ProjectImport{
			{Code: "C-102", Name: "First"},
			{Code: "C-102", Name: "Second"},
			{Code: "C-102", SubCode: "A", Name: "Distinct full code"},
		},
	}

	errs := ValidateSnapshot(snapshot)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate project code")
}

func TestValidateSnapshot_BadWorkItemDate(t *testing.T) {
	snapshot := &SnapshotImport{
		WorkItems: []WorkItemImport{
			{ProjectCode: "C-102", Description: "Excavation", Deadline: ptrStr("03-2026")},
		},
	}

	errs := ValidateSnapshot(snapshot)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "deadline")
}

func ptrStr(s string) *string {
	return &s
}
