package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/testutil"
)

func TestProjectRepo_CreateAndGetByCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("C-102", "Harbor Road", testutil.WithContract("SAR", 2500000))
	require.NoError(t, repo.Create(ctx, proj))

	// Case-insensitive lookup.
	fetched, err := repo.GetByCode(ctx, "c-102")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Harbor Road", fetched.Name)
	assert.Equal(t, domain.ProjectOnGoing, fetched.Status)
	assert.InDelta(t, 2500000.0, fetched.ContractAmount, 1e-9)
}

func TestProjectRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	_, err := repo.GetByCode(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkItemRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	w := testutil.NewTestWorkItem("C-102", "Excavation works",
		testutil.WithZone("Zone-1"),
		testutil.WithScope(500, "m3"),
		testutil.WithRate(12.5),
		testutil.WithPlannedStart(start),
	)
	require.NoError(t, repo.Create(ctx, w))

	fetched, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Excavation works", fetched.Description)
	assert.Equal(t, "Zone-1", fetched.Zone)
	assert.InDelta(t, 500.0, fetched.TotalUnits, 1e-9)
	assert.InDelta(t, 12.5, fetched.Rate, 1e-9)
	require.NotNil(t, fetched.PlannedStart)
	assert.Equal(t, start, *fetched.PlannedStart)
	assert.Nil(t, fetched.Deadline)
	assert.False(t, fetched.Completed)

	fetched.Completed = true
	fetched.ActualUnits = 500
	require.NoError(t, repo.Update(ctx, fetched))

	again, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)
	assert.InDelta(t, 500.0, again.ActualUnits, 1e-9)
}

func TestWorkItemRepo_ListByProjectCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("C-102", "Excavation")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("C-102", "Blockwork")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("C-200", "Paving")))

	items, err := repo.ListByProjectCode(ctx, "C-102")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestProgressEntryRepo_CreateBatchAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressEntryRepo(db)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []*domain.ProgressEntry{
		testutil.NewTestEntry("C-102", "Excavation", "actual", day, 10),
		testutil.NewTestEntry("C-102", "Excavation", "planned", day.AddDate(0, 0, 1), 20),
		testutil.NewTestEntry("C-200", "Paving", "actual", day, 5),
	}
	require.NoError(t, repo.CreateBatch(ctx, entries))

	got, err := repo.ListByProjectCode(ctx, "C-102")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by entry date.
	assert.Equal(t, day, got[0].Date)
	assert.InDelta(t, 10.0, got[0].Quantity, 1e-9)
	assert.Equal(t, "planned", got[1].InputType)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
