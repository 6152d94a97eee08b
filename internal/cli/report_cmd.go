package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReportCmd(cliApp *App) *cobra.Command {
	var granularity, date, from, to string
	var combined, browse bool

	cmd := &cobra.Command{
		Use:   "report <project-code>",
		Short: "Progress report for one project and period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.ReportRequest{
				ProjectCode: args[0],
				Combined:    combined,
			}

			g, err := parseGranularityFlag(cliApp, granularity)
			if err != nil {
				return err
			}
			req.Granularity = g

			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
				}
				req.Date = &d
			}
			if from != "" || to != "" {
				start, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from %q: expected YYYY-MM-DD", from)
				}
				end, err := time.Parse("2006-01-02", to)
				if err != nil {
					return fmt.Errorf("invalid --to %q: expected YYYY-MM-DD", to)
				}
				req.Granularity = domain.GranCustom
				req.CustomStart = &start
				req.CustomEnd = &end
			}

			if browse && cliApp.interactive() {
				model := newReportBrowser(cliApp, req)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			resp, err := cliApp.Reports.BuildReport(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Report(resp))
			formatter.PrintWarnings(resp.Warnings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "daily, weekly, or monthly")
	cmd.Flags().StringVar(&date, "date", "", "Any date inside the reporting period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "Custom period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Custom period end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&combined, "combined", false, "Merge zones of the same activity")
	cmd.Flags().BoolVar(&browse, "browse", false, "Open the interactive report browser")

	return cmd
}

func parseGranularityFlag(cliApp *App, raw string) (domain.Granularity, error) {
	if raw == "" {
		raw = cliApp.DefaultGranularity
	}
	if raw == "" {
		return domain.GranWeekly, nil
	}
	return domain.ParseGranularity(raw)
}
