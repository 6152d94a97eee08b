package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookAheadService_ExcludesFinishedProjects(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("C-102", "Coastal Road")))
	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("B-7", "Bridge Rehab")))

	require.NoError(t, repos.items.Create(ctx, testutil.NewTestWorkItem("C-102", "Excavation")))
	require.NoError(t, repos.items.Create(ctx, testutil.NewTestWorkItem("B-7", "Deck repair", testutil.WithCompleted())))

	entry := testutil.NewTestEntry("C-102", "Excavation", "actual", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 30)
	require.NoError(t, repos.entries.Create(ctx, entry))

	svc := NewLookAheadService(repos.projects, repos.items, repos.entries, repos.calendar)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.BuildLookAhead(ctx, app.LookAheadRequest{Now: &now})
	require.NoError(t, err)

	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "C-102", resp.Projects[0].Project.Code)
	require.Len(t, resp.Projects[0].Activities, 1)
	assert.Equal(t, 70.0, resp.Projects[0].Activities[0].RemainingUnits)
}

func TestLookAheadService_ScopedToProjectCode(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("C-102", "Coastal Road")))
	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("B-7", "Bridge Rehab")))
	require.NoError(t, repos.items.Create(ctx, testutil.NewTestWorkItem("C-102", "Excavation")))
	require.NoError(t, repos.items.Create(ctx, testutil.NewTestWorkItem("B-7", "Deck repair")))

	svc := NewLookAheadService(repos.projects, repos.items, repos.entries, repos.calendar)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.BuildLookAhead(ctx, app.LookAheadRequest{ProjectCode: "B-7", Now: &now})
	require.NoError(t, err)

	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "B-7", resp.Projects[0].Project.Code)
}

func TestLookAheadService_UnknownScopeFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewLookAheadService(repos.projects, repos.items, repos.entries, repos.calendar)

	_, err := svc.BuildLookAhead(context.Background(), app.LookAheadRequest{ProjectCode: "NOPE"})
	assert.Error(t, err)
}
