package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CalebGreaves/tta-summary-dev/internal/cli/formatter"
	"github.com/CalebGreaves/tta-summary-dev/internal/codec"
	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/render"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
	"github.com/CalebGreaves/tta-summary-dev/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build and track scoped workplan reports",
	}
	cmd.AddCommand(
		newReportBuildCmd(app),
		newReportRequestCmd(app),
		newReportListCmd(app),
		newReportStatusCmd(app),
		newReportShowCmd(app),
	)
	return cmd
}

// selectionFlags binds the shared scope flags and parses them into a
// ReportSelection.
type selectionFlags struct {
	topLevel    string
	topID       string
	bottomLevel string
	from        string
	to          string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	f.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("top-level")
	_ = cmd.MarkFlagRequired("top-id")
	_ = cmd.MarkFlagRequired("bottom-level")
}

func (f *selectionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.topLevel, "top-level", "", "type of the starting record")
	fs.StringVar(&f.topID, "top-id", "", "id of the starting record")
	fs.StringVar(&f.bottomLevel, "bottom-level", "", "deepest level to show; lower levels roll up")
	fs.StringVar(&f.from, "from", "", "range start (2006-01-02)")
	fs.StringVar(&f.to, "to", "", "range end (2006-01-02)")
}

func (f *selectionFlags) parse() (service.ReportSelection, error) {
	var sel service.ReportSelection
	var ok bool
	if sel.TopLevel, ok = domain.ParseLevel(f.topLevel); !ok {
		return sel, fmt.Errorf("unknown top level %q", f.topLevel)
	}
	if sel.BottomLevel, ok = domain.ParseLevel(f.bottomLevel); !ok {
		return sel, fmt.Errorf("unknown bottom level %q", f.bottomLevel)
	}
	sel.TopLevelID = f.topID
	var err error
	if sel.Range, err = domain.ParseDateRange(f.from, f.to); err != nil {
		return sel, fmt.Errorf("parsing date range: %w", err)
	}
	return sel, nil
}

func newReportBuildCmd(app *App) *cobra.Command {
	var flags selectionFlags
	var format string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a report tree and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.parse()
			if err != nil {
				return err
			}
			tree, err := app.Reports.BuildTree(cmd.Context(), sel)
			if err != nil {
				return err
			}
			if tree == nil {
				return service.ErrRecordGone
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(tree, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "compact":
				data, err := codec.EncodeJSON(tree)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
			case "markdown":
				fmt.Fprint(out, render.Markdown(tree))
			case "tree":
				fmt.Fprint(out, formatter.RenderTree(formatter.HierarchyItems(tree), app.Styled))
			default:
				return fmt.Errorf("unknown format %q (expected json, compact, markdown or tree)", format)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "tree", "output format: json, compact, markdown or tree")
	return cmd
}

func newReportRequestCmd(app *App) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Snapshot a report tree and queue it for summarization",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.parse()
			if err != nil {
				return err
			}
			req, err := app.Reports.CreateRequest(cmd.Context(), sel)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued report request %s\n", req.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newReportListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List report requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := app.Reports.ListRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No report requests.")
				return nil
			}
			for _, req := range reqs {
				status := string(req.Status)
				if app.Styled {
					status = formatter.StatusStyle(status).Render(status)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s  %s/%s → %s\n",
					req.ID, status, req.TopLevel, req.TopLevelID, req.BottomLevel)
			}
			return nil
		},
	}
}

func newReportStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show the status of a report request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.Reports.GetRequest(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no report request with id %s", args[0])
				}
				return err
			}
			status := string(req.Status)
			if app.Styled {
				status = formatter.StatusStyle(status).Render(status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", req.ID, status)
			if req.Status == domain.ReportFailed && req.ErrorText != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", req.ErrorText)
			}
			return nil
		},
	}
}

func newReportShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a finished report's markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.Reports.GetRequest(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no report request with id %s", args[0])
				}
				return err
			}
			if req.Status != domain.ReportDone {
				return fmt.Errorf("report request %s is %s, not done", req.ID, req.Status)
			}
			fmt.Fprint(cmd.OutOrStdout(), req.Summary)
			return nil
		},
	}
}
