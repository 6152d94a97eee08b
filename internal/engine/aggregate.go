package engine

import (
	"sort"

	"github.com/samber/lo"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// ItemProgress is one backward-looking report row: a work item's quantities
// reconciled against the chosen period.
type ItemProgress struct {
	Item     domain.WorkItem
	Zone     string
	Division string

	// Quantities for the chosen period and its history.
	PeriodPlanned  float64
	PeriodActual   float64
	PreviousActual float64 // in the immediately preceding period
	BeforeActual   float64 // strictly before the period start, all history

	// Running totals over the full matched set, date-independent.
	CumulativePlanned float64
	CumulativeActual  float64
	Balance           float64 // total scope minus cumulative actual

	// Percentages. Each is 0 when its denominator is 0, never NaN.
	PeriodProgressPct     float64 // period actual vs period planned
	CumulativeProgressPct float64 // cumulative actual vs cumulative planned
	PlannedScopePct       float64 // cumulative planned vs total scope
}

// AggregateItem reconciles a work item's matched entries against a period.
// Entries with unparsable input types contribute nothing; unparsable
// quantities were already zeroed at the ingestion boundary. The computation
// is pure and idempotent: same snapshot and period, same output.
func AggregateItem(w domain.WorkItem, matched []domain.ProgressEntry, p Period, g domain.Granularity) ItemProgress {
	prev := PreviousPeriod(p, g)

	row := ItemProgress{
		Item:     w,
		Zone:     NormalizeZone(w.Zone),
		Division: w.Division,
	}

	for _, e := range matched {
		t, err := domain.ParseInputType(e.InputType)
		if err != nil {
			continue
		}
		d := DateOnly(e.Date)

		switch t {
		case domain.InputPlanned:
			row.CumulativePlanned += e.Quantity
			if p.Contains(d) {
				row.PeriodPlanned += e.Quantity
			}
		case domain.InputActual:
			row.CumulativeActual += e.Quantity
			if p.Contains(d) {
				row.PeriodActual += e.Quantity
			}
			if prev.Contains(d) {
				row.PreviousActual += e.Quantity
			}
			if d.Before(p.Start) {
				row.BeforeActual += e.Quantity
			}
		}
	}

	row.Balance = w.TotalUnits - row.CumulativeActual
	row.PeriodProgressPct = safePct(row.PeriodActual, row.PeriodPlanned)
	row.CumulativeProgressPct = safePct(row.CumulativeActual, row.CumulativePlanned)
	row.PlannedScopePct = safePct(row.CumulativePlanned, w.TotalUnits)
	return row
}

// safePct returns num/den as a percentage, 0 when den is 0.
func safePct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

// ReportGroup is a zone+division section of a report.
type ReportGroup struct {
	Zone     string
	Division string
	Rows     []ItemProgress
}

// ProgressReport is the backward-looking output: rows grouped by zone then
// division, groups sorted by zone then division label, row order inside a
// group following the input work item order.
type ProgressReport struct {
	Granularity domain.Granularity
	Period      Period
	Combined    bool
	Groups      []ReportGroup
}

// Rows flattens the report back to row order across groups.
func (r ProgressReport) Rows() []ItemProgress {
	return lo.FlatMap(r.Groups, func(g ReportGroup, _ int) []ItemProgress {
		return g.Rows
	})
}

type reportGroupKey struct {
	Zone     string
	Division string
}

// BuildReport matches every entry to its work item and aggregates the
// matched sets over the period. In combined mode zones of the same activity
// are merged: matching is zone-agnostic and all rows land in one group per
// division.
func BuildReport(items []domain.WorkItem, entries []domain.ProgressEntry, p Period, g domain.Granularity, combined bool) ProgressReport {
	rows := make([]ItemProgress, 0, len(items))
	for _, w := range items {
		matched := MatchedEntries(entries, w, combined)
		row := AggregateItem(w, matched, p, g)
		if combined {
			row.Zone = ""
		}
		rows = append(rows, row)
	}

	grouped := lo.GroupBy(rows, func(row ItemProgress) reportGroupKey {
		return reportGroupKey{Zone: row.Zone, Division: row.Division}
	})
	keys := lo.Keys(grouped)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Zone != keys[j].Zone {
			return keys[i].Zone < keys[j].Zone
		}
		return keys[i].Division < keys[j].Division
	})

	groups := make([]ReportGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, ReportGroup{Zone: k.Zone, Division: k.Division, Rows: grouped[k]})
	}

	return ProgressReport{
		Granularity: g,
		Period:      p,
		Combined:    combined,
		Groups:      groups,
	}
}
