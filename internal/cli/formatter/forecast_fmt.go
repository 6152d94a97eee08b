package formatter

import (
	"strings"

	"github.com/alexanderramin/sitepace/internal/app"
)

// Forecast renders the portfolio cash-flow table: one column per period,
// one row per project, plus per-period and portfolio totals.
func Forecast(resp *app.ForecastResponse) string {
	table := resp.Table
	if len(table.Rows) == 0 {
		return Dim("No remaining work to forecast.")
	}

	headers := make([]string, 0, len(table.Periods)+3)
	headers = append(headers, "Project")
	for _, p := range table.Periods {
		headers = append(headers, p.Key)
	}
	headers = append(headers, "Remaining", "Completion")

	rows := make([][]string, 0, len(table.Rows)+1)
	for _, r := range table.Rows {
		row := make([]string, 0, len(headers))
		row = append(row, Bold(r.Project.FullCode()))
		for _, v := range r.PerPeriodValue {
			row = append(row, moneyCell(v))
		}
		row = append(row, Money(r.TotalRemainingValue), DatePtr(r.Completion))
		rows = append(rows, row)
	}

	totals := make([]string, 0, len(headers))
	totals = append(totals, StyleHeader.Render("TOTAL"))
	for _, v := range table.PerPeriodTotals {
		totals = append(totals, Bold(Money(v)))
	}
	totals = append(totals, Bold(Money(table.PortfolioTotal)), "")
	rows = append(rows, totals)

	var b strings.Builder
	b.WriteString(Header("Cash-flow forecast"))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func moneyCell(v float64) string {
	if v == 0 {
		return StyleDim.Render("--")
	}
	return Money(v)
}
