package cli

import (
	"github.com/spf13/cobra"

	"github.com/CalebGreaves/tta-summary-dev/internal/service"
	"github.com/CalebGreaves/tta-summary-dev/internal/summarize"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workplans service.WorkplanService
	Reports   service.ReportService
	Import    service.ImportService
	Worker    *summarize.Worker

	// Styled enables lipgloss output; wired from a terminal check in main.
	Styled bool
}

// NewRootCmd creates the top-level "ttasum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ttasum",
		Short:         "Workplan report scoping and T/TA summarization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newWorkplanCmd(app),
		newReportCmd(app),
		newSummarizeCmd(app),
	)

	return root
}
