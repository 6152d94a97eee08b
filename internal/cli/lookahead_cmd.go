package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLookAheadCmd(cliApp *App) *cobra.Command {
	var project, asOf string

	cmd := &cobra.Command{
		Use:   "lookahead",
		Short: "Predict completion dates from observed productivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.LookAheadRequest{ProjectCode: project}

			if asOf != "" {
				d, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", asOf)
				}
				req.Now = &d
			}

			resp, err := cliApp.LookAhead.BuildLookAhead(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.LookAhead(resp))
			formatter.PrintWarnings(resp.Warnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Limit to one project code")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate as of this date instead of today (YYYY-MM-DD)")

	return cmd
}
