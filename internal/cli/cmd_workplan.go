package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

func newWorkplanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workplan",
		Short: "Browse workplan records",
	}
	cmd.AddCommand(newWorkplanListCmd(app))
	return cmd
}

func newWorkplanListCmd(app *App) *cobra.Command {
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records of one hierarchy level",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := domain.ParseLevel(levelFlag)
			if !ok {
				return fmt.Errorf("unknown level %q (expected workplanSource, goal, objective or activity)", levelFlag)
			}
			records, err := app.Workplans.ListLevel(cmd.Context(), level)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", rec.RecordID, rec.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&levelFlag, "level", string(domain.LevelWorkplanSource), "hierarchy level to list")
	return cmd
}
