package cli

import (
	"github.com/alexanderramin/sitepace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Items     service.WorkItemService
	Entries   service.EntryService
	Reports   service.ReportService
	LookAhead service.LookAheadService
	Forecast  service.ForecastService
	Import    service.ImportService

	// DefaultGranularity and ForecastHorizon come from configuration and
	// apply when the corresponding flag is not set.
	DefaultGranularity string
	ForecastHorizon    int

	// IsInteractive reports whether stdin is an interactive terminal.
	// Forms and the report browser are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "sitepace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitepace",
		Short: "Site progress reconciliation and forecasting",
	}

	root.AddCommand(
		newProjectCmd(app),
		newItemCmd(app),
		newEntryCmd(app),
		newReportCmd(app),
		newLookAheadCmd(app),
		newForecastCmd(app),
		newImportCmd(app),
	)

	return root
}
