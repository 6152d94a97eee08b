package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sitepace/internal/domain"
)

func typedEntry(inputType string, d time.Time, qty float64) domain.ProgressEntry {
	return domain.ProgressEntry{
		ProjectCode:         "C-102",
		ActivityDescription: "Blockwork",
		Zone:                "1",
		InputType:           inputType,
		Date:                d,
		Quantity:            qty,
	}
}

func TestAggregateItem_ZoneScenario(t *testing.T) {
	// Work item total=100 zone "1"; one actual entry of 10 tagged "Zone-1".
	w := item("C-102", "Blockwork", "1")
	e := entry("C-102", "Blockwork", "Zone-1")
	require.True(t, MatchesItem(e, w))

	p := PeriodOf(e.Date, domain.GranWeekly)
	row := AggregateItem(w, []domain.ProgressEntry{e}, p, domain.GranWeekly)

	assert.InDelta(t, 10.0, row.CumulativeActual, 1e-9)
	assert.InDelta(t, 90.0, row.Balance, 1e-9)
	assert.InDelta(t, 10.0, row.PeriodActual, 1e-9)
}

func TestAggregateItem_PeriodBuckets(t *testing.T) {
	w := item("C-102", "Blockwork", "1")
	w.TotalUnits = 200
	entries := []domain.ProgressEntry{
		typedEntry("actual", date(2026, 2, 24), 7),   // W9
		typedEntry("actual", date(2026, 3, 3), 10),   // W10, previous period
		typedEntry("actual", date(2026, 3, 10), 5),   // W11, chosen period
		typedEntry("planned", date(2026, 3, 10), 20), // W11
	}

	p := PeriodOf(date(2026, 3, 11), domain.GranWeekly) // W11: Mar 9-15
	row := AggregateItem(w, entries, p, domain.GranWeekly)

	assert.InDelta(t, 5.0, row.PeriodActual, 1e-9)
	assert.InDelta(t, 20.0, row.PeriodPlanned, 1e-9)
	assert.InDelta(t, 10.0, row.PreviousActual, 1e-9)
	assert.InDelta(t, 17.0, row.BeforeActual, 1e-9)
	assert.InDelta(t, 22.0, row.CumulativeActual, 1e-9)
	assert.InDelta(t, 20.0, row.CumulativePlanned, 1e-9)
	assert.InDelta(t, 178.0, row.Balance, 1e-9)

	// Adjacent, non-overlapping periods partition history exactly.
	assert.InDelta(t, row.CumulativeActual, row.BeforeActual+row.PeriodActual, 1e-9)

	assert.InDelta(t, 25.0, row.PeriodProgressPct, 1e-9)      // 5/20
	assert.InDelta(t, 110.0, row.CumulativeProgressPct, 1e-9) // 22/20
	assert.InDelta(t, 10.0, row.PlannedScopePct, 1e-9)        // 20/200
}

func TestAggregateItem_ZeroDenominatorsAreZero(t *testing.T) {
	w := item("C-102", "Blockwork", "1")
	w.TotalUnits = 0
	e := typedEntry("actual", date(2026, 3, 10), 5)

	p := PeriodOf(e.Date, domain.GranWeekly)
	row := AggregateItem(w, []domain.ProgressEntry{e}, p, domain.GranWeekly)

	assert.Zero(t, row.PeriodProgressPct)     // no planned in period
	assert.Zero(t, row.CumulativeProgressPct) // no planned at all
	assert.Zero(t, row.PlannedScopePct)       // total scope is zero
}

func TestAggregateItem_InputTypeNormalization(t *testing.T) {
	w := item("C-102", "Blockwork", "1")
	entries := []domain.ProgressEntry{
		typedEntry("Planned ", date(2026, 3, 10), 20), // classifies as planned
		typedEntry(" ACTUAL", date(2026, 3, 10), 5),   // classifies as actual
		typedEntry("forecast", date(2026, 3, 10), 99), // excluded, never guessed
	}

	p := PeriodOf(date(2026, 3, 10), domain.GranWeekly)
	row := AggregateItem(w, entries, p, domain.GranWeekly)

	assert.InDelta(t, 20.0, row.CumulativePlanned, 1e-9)
	assert.InDelta(t, 5.0, row.CumulativeActual, 1e-9)
}

func TestBuildReport_GroupingAndOrder(t *testing.T) {
	items := []domain.WorkItem{
		item("C-102", "Blockwork", "2"),
		item("C-102", "Excavation", "1"),
		item("C-102", "Plastering", "1"),
	}
	items[0].Division = "Civil"
	items[1].Division = "Civil"
	items[2].Division = "Finishes"

	p := PeriodOf(date(2026, 3, 11), domain.GranWeekly)
	report := BuildReport(items, nil, p, domain.GranWeekly, false)

	require.Len(t, report.Groups, 3)
	assert.Equal(t, "1", report.Groups[0].Zone)
	assert.Equal(t, "Civil", report.Groups[0].Division)
	assert.Equal(t, "1", report.Groups[1].Zone)
	assert.Equal(t, "Finishes", report.Groups[1].Division)
	assert.Equal(t, "2", report.Groups[2].Zone)
	assert.Len(t, report.Rows(), 3)
}

func TestBuildReport_CombinedMergesZones(t *testing.T) {
	items := []domain.WorkItem{
		item("C-102", "Blockwork", "1"),
		item("C-102", "Blockwork", "2"),
	}
	entries := []domain.ProgressEntry{
		typedEntry("actual", date(2026, 3, 10), 5), // zone "1"
	}
	zone2 := typedEntry("actual", date(2026, 3, 10), 7)
	zone2.Zone = "Zone 2"
	entries = append(entries, zone2)

	p := PeriodOf(date(2026, 3, 11), domain.GranWeekly)

	split := BuildReport(items, entries, p, domain.GranWeekly, false)
	rows := split.Rows()
	require.Len(t, rows, 2)
	// Each zone only sees its own entry.
	assert.Equal(t, "1", rows[0].Zone)
	assert.InDelta(t, 5.0, rows[0].CumulativeActual, 1e-9)
	assert.Equal(t, "2", rows[1].Zone)
	assert.InDelta(t, 7.0, rows[1].CumulativeActual, 1e-9)

	combined := BuildReport(items, entries, p, domain.GranWeekly, true)
	require.Len(t, combined.Groups, 1)
	for _, row := range combined.Rows() {
		assert.InDelta(t, 12.0, row.CumulativeActual, 1e-9)
		assert.Equal(t, "", row.Zone)
	}
}

func TestBuildReport_Idempotent(t *testing.T) {
	items := []domain.WorkItem{
		item("C-102", "Blockwork", "1"),
		item("C-102", "Excavation", "2"),
	}
	entries := []domain.ProgressEntry{
		typedEntry("actual", date(2026, 3, 3), 10),
		typedEntry("planned", date(2026, 3, 10), 20),
	}
	p := PeriodOf(date(2026, 3, 11), domain.GranWeekly)

	first := BuildReport(items, entries, p, domain.GranWeekly, false)
	second := BuildReport(items, entries, p, domain.GranWeekly, false)
	assert.Equal(t, first, second)
}
