package app

import (
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
)

// ReportRequest selects the project, cut-off period, and matching mode for a
// backward-looking progress report. Now overrides the wall clock in tests.
type ReportRequest struct {
	ProjectCode string
	Granularity domain.Granularity

	// Date selects the period containing it. Defaults to Now.
	Date *time.Time

	// CustomStart/CustomEnd define the period for GranCustom.
	CustomStart *time.Time
	CustomEnd   *time.Time

	// Combined merges zones of the same activity into single rows.
	Combined bool

	Now *time.Time
}

type ReportResponse struct {
	Project  *domain.Project
	Report   engine.ProgressReport
	Warnings []string
}

// LookAheadRequest scopes the completion forecast. Empty ProjectCode covers
// every project with remaining work.
type LookAheadRequest struct {
	ProjectCode string
	Now         *time.Time
}

type LookAheadResponse struct {
	Projects []engine.ProjectLookAhead
	Warnings []string
}

// ForecastRequest lays out the monetary forecast horizon.
type ForecastRequest struct {
	Granularity domain.Granularity
	Horizon     int
	Now         *time.Time
}

type ForecastResponse struct {
	Table    engine.ForecastTable
	Warnings []string
}

// ImportResult summarizes a snapshot import: accepted counts plus per-record
// warnings for rows that were repaired or dropped.
type ImportResult struct {
	ProjectCount  int
	WorkItemCount int
	EntryCount    int
	Warnings      []string
}
