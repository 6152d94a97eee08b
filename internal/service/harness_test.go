package service

import (
	"testing"

	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/alexanderramin/sitepace/internal/testutil"
)

type testRepos struct {
	projects *repository.SQLiteProjectRepo
	items    *repository.SQLiteWorkItemRepo
	entries  *repository.SQLiteProgressEntryRepo
	calendar engine.Calendar
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		projects: repository.NewSQLiteProjectRepo(database),
		items:    repository.NewSQLiteWorkItemRepo(database),
		entries:  repository.NewSQLiteProgressEntryRepo(database),
		calendar: engine.DefaultCalendar(),
	}
}
