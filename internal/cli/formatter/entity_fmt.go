package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// ProjectTable renders the project register.
func ProjectTable(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects. Add one with: sitepace project add")
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		amount := StyleDim.Render("--")
		if p.ContractAmount > 0 {
			amount = fmt.Sprintf("%s %s", p.Currency, Money(p.ContractAmount))
		}
		rows = append(rows, []string{
			Bold(p.FullCode()),
			p.Name,
			StatusPill(p.Status),
			p.Division,
			amount,
		})
	}

	return RenderTable([]string{"Code", "Name", "Status", "Division", "Contract"}, rows)
}

// ProjectDetail renders one project header plus its bill of quantities.
func ProjectDetail(p *domain.Project, items []*domain.WorkItem) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  %s", p.FullCode(), p.Name)))
	b.WriteString("\n")
	b.WriteString(StatusPill(p.Status))
	if p.Division != "" {
		b.WriteString(Dim("  ·  ") + p.Division)
	}
	if p.ContractAmount > 0 {
		b.WriteString(Dim("  ·  ") + fmt.Sprintf("%s %s", p.Currency, Money(p.ContractAmount)))
	}
	b.WriteString("\n\n")
	b.WriteString(WorkItemTable(items))

	return b.String()
}

// WorkItemTable renders bill-of-quantities lines with progress bars.
func WorkItemTable(items []*domain.WorkItem) string {
	if len(items) == 0 {
		return Dim("No work items.")
	}

	rows := make([][]string, 0, len(items))
	for _, w := range items {
		zone := w.Zone
		if zone == "" {
			zone = StyleDim.Render("--")
		}
		rows = append(rows, []string{
			TruncID(w.ID),
			w.Description,
			zone,
			fmt.Sprintf("%s %s", Qty(w.TotalUnits), w.Unit),
			RenderProgress(w.ProgressPercent()/100, 10),
		})
	}

	return RenderTable([]string{"ID", "Activity", "Zone", "Scope", "Progress"}, rows)
}

// EntryTable renders the raw progress log.
func EntryTable(entries []*domain.ProgressEntry) string {
	if len(entries) == 0 {
		return Dim("No progress entries.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		zone := e.Zone
		if zone == "" {
			zone = StyleDim.Render("--")
		}
		typeCell := StyleBlue.Render(e.InputType)
		if e.IsActual() {
			typeCell = StyleGreen.Render(e.InputType)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			Date(e.Date),
			domain.CoalesceStr(e.ProjectFullCode, e.ProjectCode),
			e.ActivityDescription,
			zone,
			typeCell,
			Qty(e.Quantity),
		})
	}

	return RenderTable([]string{"ID", "Date", "Project", "Activity", "Zone", "Type", "Qty"}, rows)
}
