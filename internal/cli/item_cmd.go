package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage bill-of-quantities work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemCompleteCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var project, description, zone, division, unit string
	var total, planned, rate, value float64
	var deadline, plannedStart, plannedEnd string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work item to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &domain.WorkItem{
				ProjectCode:  project,
				Description:  description,
				Zone:         zone,
				Division:     division,
				Unit:         unit,
				TotalUnits:   total,
				PlannedUnits: planned,
				Rate:         rate,
				TotalValue:   value,
			}

			var err error
			if w.Deadline, err = optionalDateFlag("deadline", deadline); err != nil {
				return err
			}
			if w.PlannedStart, err = optionalDateFlag("planned-start", plannedStart); err != nil {
				return err
			}
			if w.PlannedCompletion, err = optionalDateFlag("planned-end", plannedEnd); err != nil {
				return err
			}

			if err := app.Items.Create(cmd.Context(), w); err != nil {
				return err
			}

			fmt.Printf("Added %q to %s\n", w.Description, w.ProjectCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project code")
	cmd.Flags().StringVar(&description, "desc", "", "Activity description")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone label (e.g. 'Zone 2')")
	cmd.Flags().StringVar(&division, "division", "", "Division")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure (e.g. m3)")
	cmd.Flags().Float64Var(&total, "total", 0, "Total contracted units")
	cmd.Flags().Float64Var(&planned, "planned", 0, "Planned units to date")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Unit rate")
	cmd.Flags().Float64Var(&value, "value", 0, "Total contract value of the line")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&plannedStart, "planned-start", "", "Planned start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&plannedEnd, "planned-end", "", "Planned completion (YYYY-MM-DD)")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("desc")

	return cmd
}

func optionalDateFlag(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, raw)
	}
	return &t, nil
}

func newItemListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []*domain.WorkItem
			var err error
			if project != "" {
				items, err = app.Items.ListByProjectCode(cmd.Context(), project)
			} else {
				items, err = app.Items.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.WorkItemTable(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Limit to one project code")
	return cmd
}

func newItemCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a work item completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.MarkCompleted(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Marked completed")
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}
