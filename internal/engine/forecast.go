package engine

import (
	"time"

	"github.com/samber/lo"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// ForecastRow is one project's period-bucketed forecast revenue.
type ForecastRow struct {
	Project             domain.Project
	PerPeriodValue      []float64 // parallel to ForecastTable.Periods
	TotalRemainingValue float64
	Completion          *time.Time
}

// ForecastTable is the portfolio-level monetary forecast.
type ForecastTable struct {
	Periods         []Period
	Rows            []ForecastRow
	PerPeriodTotals []float64
	PortfolioTotal  float64
}

// BuildForecastTable projects remaining scope into money over a horizon of
// consecutive periods starting at now. Per activity and period the raw
// quantity is working days x productivity, capped at what the activity has
// left and zeroed once its predicted completion falls before the period
// start. Projects with no remaining work are excluded.
func BuildForecastTable(projects []domain.Project, items []domain.WorkItem, entries []domain.ProgressEntry, now time.Time, g domain.Granularity, horizon int, cal Calendar) ForecastTable {
	if horizon <= 0 {
		horizon = 1
	}
	periods := PeriodsFrom(now, g, horizon)

	table := ForecastTable{
		Periods:         periods,
		PerPeriodTotals: make([]float64, len(periods)),
	}

	for _, p := range projects {
		pla := BuildProjectLookAhead(p, items, entries, now, cal)
		if !pla.HasRemainingWork() {
			continue
		}

		row := ForecastRow{
			Project:        p,
			PerPeriodValue: make([]float64, len(periods)),
			Completion:     pla.LatestCompletion,
		}

		for _, la := range pla.Activities {
			if la.State == domain.StateCompleted {
				continue
			}
			rate := la.Item.ContractRate()
			row.TotalRemainingValue += la.RemainingUnits * rate
			if la.Productivity <= 0 {
				// Undeterminable pace: no quantity can be bucketed,
				// the remaining value still counts toward the total.
				continue
			}

			remaining := la.RemainingUnits
			for i, period := range periods {
				if remaining <= 0 {
					break
				}
				if la.PredictedCompletion != nil && la.PredictedCompletion.Before(period.Start) {
					break
				}
				qty := float64(cal.WorkingDaysInPeriod(period)) * la.Productivity
				if qty > remaining {
					qty = remaining
				}
				remaining -= qty
				row.PerPeriodValue[i] += qty * rate
			}
		}

		table.Rows = append(table.Rows, row)
		for i, v := range row.PerPeriodValue {
			table.PerPeriodTotals[i] += v
		}
	}

	table.PortfolioTotal = lo.SumBy(table.Rows, func(r ForecastRow) float64 {
		return r.TotalRemainingValue
	})
	return table
}
