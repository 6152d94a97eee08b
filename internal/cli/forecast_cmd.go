package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newForecastCmd(cliApp *App) *cobra.Command {
	var granularity, asOf string
	var horizon int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project remaining work into money over coming periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGranularityFlag(cliApp, granularity)
			if err != nil {
				return err
			}

			req := app.ForecastRequest{
				Granularity: g,
				Horizon:     horizon,
			}
			if req.Horizon <= 0 {
				req.Horizon = cliApp.ForecastHorizon
			}
			if asOf != "" {
				d, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", asOf)
				}
				req.Now = &d
			}

			resp, err := cliApp.Forecast.BuildForecast(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Forecast(resp))
			formatter.PrintWarnings(resp.Warnings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "daily, weekly, or monthly")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Number of forecast periods")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Forecast from this date instead of today (YYYY-MM-DD)")

	return cmd
}
