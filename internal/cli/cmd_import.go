package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a workplan file into the record store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportWorkplan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d sources, %d goals, %d objectives, %d activities, %d sessions\n",
				result.SourceCount, result.GoalCount, result.ObjectiveCount,
				result.ActivityCount, result.SessionCount)
			return nil
		},
	}
}
