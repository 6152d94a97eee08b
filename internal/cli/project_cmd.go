package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProject accepts a project code, full code, or UUID prefix.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project code is required")
	}

	if p, err := app.Projects.GetByCode(ctx, input); err == nil {
		return p, nil
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if strings.EqualFold(p.FullCode(), input) {
			return p, nil
		}
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectStatusCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var code, subCode, name, status, division, currency string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Code:           strings.ToUpper(code),
				SubCode:        strings.ToUpper(subCode),
				Name:           name,
				Status:         domain.ProjectStatus(status),
				Division:       division,
				Currency:       currency,
				ContractAmount: amount,
			}
			if status != "" && !domain.ValidProjectStatuses[p.Status] {
				return fmt.Errorf("unknown status %q", status)
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.FullCode())
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Project code (e.g. C-102)")
	cmd.Flags().StringVar(&subCode, "sub", "", "Sub-contract code (e.g. A)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&status, "status", "", "Status (upcoming, site_preparation, on_going, completed, on_hold, cancelled)")
	cmd.Flags().StringVar(&division, "division", "", "Division")
	cmd.Flags().StringVar(&currency, "currency", "", "Contract currency")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Contract amount")
	cmd.MarkFlagRequired("code")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatter.ProjectTable(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one project with its work items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			items, err := app.Items.ListByProjectCode(cmd.Context(), p.Code)
			if err != nil {
				return err
			}
			fmt.Println(formatter.ProjectDetail(p, items))
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <code> <status>",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			status := domain.ProjectStatus(args[1])
			if !domain.ValidProjectStatuses[status] {
				return fmt.Errorf("unknown status %q", args[1])
			}
			p.Status = status
			if err := app.Projects.Update(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Project %s is now %s\n", p.FullCode(), status)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <code>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted project %s\n", p.FullCode())
			return nil
		},
	}
}
