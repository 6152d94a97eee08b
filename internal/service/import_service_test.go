package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/sitepace/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_PersistsSnapshot(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	snapshot := &importer.SnapshotImport{
		Projects: []importer.ProjectImport{
			{Code: "C-102", Name: "Coastal Road", Status: "on_going"},
		},
		WorkItems: []importer.WorkItemImport{
			{ProjectCode: "C-102", Description: "Excavation", Zone: "Zone 2", TotalUnits: 400.0},
		},
		Entries: []importer.EntryImport{
			{ProjectCode: "C-102", Activity: "Excavation", InputType: "actual", Date: "2026-03-10", Quantity: 40.0},
			{ProjectCode: "C-102", Activity: "Excavation", InputType: "planned", Date: "2026-03-10", Quantity: "oops"},
		},
	}

	svc := NewImportService(repos.projects, repos.items, repos.entries)

	result, err := svc.ImportSnapshot(ctx, snapshot)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ProjectCount)
	assert.Equal(t, 1, result.WorkItemCount)
	assert.Equal(t, 2, result.EntryCount)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unparsable quantity")

	p, err := repos.projects.GetByCode(ctx, "C-102")
	require.NoError(t, err)
	assert.Equal(t, "Coastal Road", p.Name)

	items, err := repos.items.ListByProjectCode(ctx, "C-102")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 400.0, items[0].TotalUnits)

	entries, err := repos.entries.ListByProjectCode(ctx, "C-102")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImportService_RejectsInvalidSnapshot(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewImportService(repos.projects, repos.items, repos.entries)

	snapshot := &importer.SnapshotImport{
		Projects: []importer.ProjectImport{{Code: "", Name: ""}},
	}

	_, err := svc.ImportSnapshot(context.Background(), snapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot")
}
