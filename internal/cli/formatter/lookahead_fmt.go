package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/engine"
)

// LookAhead renders per-project completion forecasts.
func LookAhead(resp *app.LookAheadResponse) string {
	if len(resp.Projects) == 0 {
		return Dim("No projects with remaining work.")
	}

	var b strings.Builder
	for i, p := range resp.Projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(projectLookAhead(p))
	}
	return b.String()
}

func projectLookAhead(p engine.ProjectLookAhead) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  %s", p.Project.FullCode(), p.Project.Name)))
	b.WriteString("\n")
	if p.LatestCompletion != nil {
		b.WriteString(Bold("Projected completion: ") + Date(*p.LatestCompletion))
	} else {
		b.WriteString(Dim("Projected completion undeterminable: no observed productivity"))
	}
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(p.Activities))
	for _, a := range p.Activities {
		rows = append(rows, []string{
			a.Item.Description,
			StateIndicator(a.State),
			Qty(a.RemainingUnits),
			paceCell(a),
			remainingDaysCell(a),
			DatePtr(a.PredictedCompletion),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Activity", "State", "Remaining", "Pace/day", "Days Left", "Completion"},
		rows,
	))

	return b.String()
}

func paceCell(a engine.ActivityLookAhead) string {
	if a.Productivity <= 0 {
		return StyleDim.Render("--")
	}
	cell := fmt.Sprintf("%.2f", a.Productivity)
	if a.ActualProductivity <= 0 && a.PlannedProductivity > 0 {
		return cell + Dim(" (plan)")
	}
	return cell
}

func remainingDaysCell(a engine.ActivityLookAhead) string {
	if a.RemainingWorkingDays == nil {
		return StyleDim.Render("--")
	}
	return fmt.Sprintf("%d", *a.RemainingWorkingDays)
}
