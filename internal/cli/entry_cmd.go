package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Record and inspect progress entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryListCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var project, activity, zone, inputType, date string
	var quantity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a progress entry",
		Long:  "Record one planned or actual quantity. Without flags on an interactive terminal, opens a form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if project == "" && activity == "" && app.interactive() {
				form := newEntryForm()
				if err := form.Run(); err != nil {
					return err
				}
				project = form.Project
				activity = form.Activity
				zone = form.Zone
				inputType = form.InputType
				date = form.Date
				q, err := strconv.ParseFloat(form.Quantity, 64)
				if err != nil {
					return fmt.Errorf("invalid quantity %q", form.Quantity)
				}
				quantity = q
			}

			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
			}

			e := &domain.ProgressEntry{
				ProjectCode:         project,
				ActivityDescription: activity,
				Zone:                zone,
				InputType:           inputType,
				Date:                day,
				Quantity:            quantity,
			}
			if err := app.Entries.Record(cmd.Context(), e); err != nil {
				return err
			}

			fmt.Printf("Recorded %s %.2f for %q on %s\n", e.InputType, e.Quantity, e.ActivityDescription, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project code")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity description")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone label")
	cmd.Flags().StringVar(&inputType, "type", "actual", "Input type (planned or actual)")
	cmd.Flags().StringVar(&date, "date", time.Now().UTC().Format("2006-01-02"), "Entry date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&quantity, "qty", 0, "Quantity")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List progress entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []*domain.ProgressEntry
			var err error
			if project != "" {
				entries, err = app.Entries.ListByProjectCode(cmd.Context(), project)
			} else {
				entries, err = app.Entries.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.EntryTable(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Limit to one project code")
	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a progress entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}
