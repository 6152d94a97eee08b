package cli

import (
	"fmt"

	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a site-data snapshot",
		Long:  "Import projects, work items, and progress entries from a JSON snapshot file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := importer.LoadSnapshotFile(args[0])
			if err != nil {
				return err
			}

			result, err := app.Import.ImportSnapshot(cmd.Context(), snapshot)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d projects, %d work items, %d entries\n",
				result.ProjectCount, result.WorkItemCount, result.EntryCount)
			formatter.PrintWarnings(result.Warnings)
			return nil
		},
	}
}
