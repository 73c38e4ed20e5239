package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/CalebGreaves/tta-summary-dev/internal/cli"
	"github.com/CalebGreaves/tta-summary-dev/internal/db"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/llm"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
	"github.com/CalebGreaves/tta-summary-dev/internal/service"
	"github.com/CalebGreaves/tta-summary-dev/internal/summarize"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ttasum/ttasum.db
	dbPath := os.Getenv("TTASUM_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ttasum", "ttasum.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the builder's data source
	recordRepo := repository.NewSQLiteRecordRepo(database)
	reportRepo := repository.NewSQLiteReportRequestRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	hierCfg := hierarchy.DefaultConfig()
	builder := hierarchy.NewBuilder(repository.NewRecordDataSource(recordRepo), hierCfg)

	// Wire the LLM-backed summarizer (disabled config means markdown-only
	// fallback output)
	llmCfg := llm.LoadConfig()
	var client llm.LLMClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}
	worker := summarize.NewWorker(reportRepo, summarize.NewService(client), pollInterval(), os.Stderr)

	app := &cli.App{
		Workplans: service.NewWorkplanService(recordRepo),
		Reports:   service.NewReportService(builder, reportRepo),
		Import:    service.NewImportService(hierCfg, uow),
		Worker:    worker,
		Styled:    isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// pollInterval reads the worker polling interval from the environment,
// defaulting to 2s.
func pollInterval() time.Duration {
	if v := os.Getenv("TTASUM_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return 2 * time.Second
}
