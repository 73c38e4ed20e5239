package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func newSummarizeCmd(app *App) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Run the summarization worker over pending report requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if once {
				return app.Worker.Drain(cmd.Context())
			}
			err := app.Worker.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "drain the queue and exit instead of polling")
	return cmd
}
