package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/engine"
)

var reportHeaders = []string{
	"Activity", "Plan", "Actual", "Prev", "Cum Plan", "Cum Actual", "Balance", "Progress",
}

// Report renders a full progress report: project header, period label, and
// one table per zone+division group.
func Report(resp *app.ReportResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  %s", resp.Project.FullCode(), resp.Project.Name)))
	b.WriteString("\n")
	b.WriteString(Bold(resp.Report.Period.Label))
	if resp.Report.Combined {
		b.WriteString(Dim("  ·  zones combined"))
	}
	b.WriteString("\n")

	if len(resp.Report.Groups) == 0 {
		b.WriteString("\n" + Dim("No work items matched this project."))
		return b.String()
	}

	for _, group := range resp.Report.Groups {
		b.WriteString("\n" + StylePurple.Render(groupLabel(group)) + "\n")
		b.WriteString(reportGroupTable(group))
	}

	return b.String()
}

func groupLabel(g engine.ReportGroup) string {
	zone := g.Zone
	if zone == "" {
		zone = "All zones"
	}
	if g.Division == "" {
		return zone
	}
	return fmt.Sprintf("%s · %s", zone, g.Division)
}

func reportGroupTable(g engine.ReportGroup) string {
	rows := make([][]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		rows = append(rows, []string{
			r.Item.Description,
			Qty(r.PeriodPlanned),
			Qty(r.PeriodActual),
			Qty(r.PreviousActual),
			Qty(r.CumulativePlanned),
			Qty(r.CumulativeActual),
			Qty(r.Balance),
			PctStyled(r.CumulativeProgressPct),
		})
	}
	return RenderTable(reportHeaders, rows)
}
