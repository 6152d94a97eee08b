package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/alexanderramin/sitepace/internal/service"
	"github.com/alexanderramin/sitepace/internal/teatest"
	"github.com/alexanderramin/sitepace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	items := repository.NewSQLiteWorkItemRepo(database)
	entries := repository.NewSQLiteProgressEntryRepo(database)
	cal := engine.DefaultCalendar()

	return &App{
		Projects:  service.NewProjectService(projects),
		Items:     service.NewWorkItemService(items),
		Entries:   service.NewEntryService(entries),
		Reports:   service.NewReportService(projects, items, entries),
		LookAhead: service.NewLookAheadService(projects, items, entries, cal),
		Forecast:  service.NewForecastService(projects, items, entries, cal),
		Import:    service.NewImportService(projects, items, entries),
	}
}

func seedReportData(t *testing.T, cliApp *App) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, cliApp.Projects.Create(ctx, testutil.NewTestProject("C-102", "Coastal Road")))
	require.NoError(t, cliApp.Items.Create(ctx, testutil.NewTestWorkItem("C-102", "Excavation", testutil.WithZone("Zone 2"))))

	// One entry in W11 2026 (Mar 9-15), one in W10.
	require.NoError(t, cliApp.Entries.Record(ctx,
		testutil.NewTestEntry("C-102", "Excavation", "actual", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 40)))
	require.NoError(t, cliApp.Entries.Record(ctx,
		testutil.NewTestEntry("C-102", "Excavation", "actual", time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 10)))
}

func browserRequest() app.ReportRequest {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return app.ReportRequest{
		ProjectCode: "C-102",
		Granularity: domain.GranWeekly,
		Date:        &date,
	}
}

func TestReportBrowser_LoadsInitialPeriod(t *testing.T) {
	cliApp := newTestApp(t)
	seedReportData(t, cliApp)

	d := teatest.New(t, newReportBrowser(cliApp, browserRequest()), teatest.WithSize(120, 40))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "W11 2026")
	assert.Contains(t, view, "Excavation")
	assert.Contains(t, view, "C-102  COASTAL ROAD")
}

func TestReportBrowser_NavigatesPeriods(t *testing.T) {
	cliApp := newTestApp(t)
	seedReportData(t, cliApp)

	d := teatest.New(t, newReportBrowser(cliApp, browserRequest()), teatest.WithSize(120, 40))
	d.DrainInit()

	d.PressLeft()
	assert.Contains(t, d.View(), "W10 2026")

	d.PressRight()
	d.PressRight()
	assert.Contains(t, d.View(), "W12 2026")
}

func TestReportBrowser_CyclesGranularity(t *testing.T) {
	cliApp := newTestApp(t)
	seedReportData(t, cliApp)

	d := teatest.New(t, newReportBrowser(cliApp, browserRequest()), teatest.WithSize(120, 40))
	d.DrainInit()

	d.PressKey('g')
	assert.Contains(t, d.View(), "March 2026")

	d.PressKey('g')
	assert.Contains(t, d.View(), "2026-03-10")
}

func TestReportBrowser_TogglesCombined(t *testing.T) {
	cliApp := newTestApp(t)
	seedReportData(t, cliApp)

	d := teatest.New(t, newReportBrowser(cliApp, browserRequest()), teatest.WithSize(120, 40))
	d.DrainInit()

	d.PressKey('c')
	assert.Contains(t, d.View(), "zones combined")

	d.PressKey('c')
	assert.NotContains(t, d.View(), "zones combined")
}

func TestReportBrowser_Quits(t *testing.T) {
	cliApp := newTestApp(t)
	seedReportData(t, cliApp)

	d := teatest.New(t, newReportBrowser(cliApp, browserRequest()), teatest.WithSize(120, 40))
	d.DrainInit()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
