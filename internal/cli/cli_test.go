package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalebGreaves/tta-summary-dev/internal/cli"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
	"github.com/CalebGreaves/tta-summary-dev/internal/service"
	"github.com/CalebGreaves/tta-summary-dev/internal/summarize"
	"github.com/CalebGreaves/tta-summary-dev/internal/testutil"
)

func newTestApp(t *testing.T) (*cli.App, *repository.SQLiteRecordRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteRecordRepo(database)
	reports := repository.NewSQLiteReportRequestRepo(database)
	cfg := hierarchy.DefaultConfig()
	builder := hierarchy.NewBuilder(repository.NewRecordDataSource(records), cfg)

	return &cli.App{
		Workplans: service.NewWorkplanService(records),
		Reports:   service.NewReportService(builder, reports),
		Import:    service.NewImportService(cfg, testutil.NewTestUoW(database)),
		Worker:    summarize.NewWorker(reports, summarize.NewService(nil), time.Second, nil),
	}, records
}

func runCommand(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seedWorkplan(t *testing.T, records *repository.SQLiteRecordRepo) *repository.StoredRecord {
	t.Helper()
	ctx := context.Background()
	src := testutil.NewSourceRecord("Annual Plan")
	goal := testutil.NewGoalRecord("Goal One", src.RecordID)
	objective := testutil.NewObjectiveRecord("Objective 1.1", goal.RecordID)
	activity := testutil.NewActivityRecord("Activity A", objective.RecordID,
		testutil.WithActivityDates(t, "2024-01-10", "2024-02-20"))
	sess := testutil.NewSessionRecord(t, "Kickoff session", "2024-01-15", activity.RecordID)
	for _, rec := range []*repository.StoredRecord{src, goal, objective, activity, sess} {
		require.NoError(t, records.Create(ctx, rec))
	}
	return src
}

func TestWorkplanListCmd(t *testing.T) {
	app, records := newTestApp(t)
	seedWorkplan(t, records)

	out, err := runCommand(t, app, "workplan", "list", "--level", "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal One")

	out, err = runCommand(t, app, "workplan", "list", "--level", "activity")
	require.NoError(t, err)
	assert.Contains(t, out, "Activity A")

	_, err = runCommand(t, app, "workplan", "list", "--level", "milestone")
	assert.Error(t, err)
}

func TestReportBuildCmd_Markdown(t *testing.T) {
	app, records := newTestApp(t)
	src := seedWorkplan(t, records)

	out, err := runCommand(t, app, "report", "build",
		"--top-level", "workplanSource", "--top-id", src.RecordID,
		"--bottom-level", "goal", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Annual Plan")
	assert.Contains(t, out, "## Goal One")
	assert.Contains(t, out, "- Kickoff session")
}

func TestReportBuildCmd_Tree(t *testing.T) {
	app, records := newTestApp(t)
	src := seedWorkplan(t, records)

	out, err := runCommand(t, app, "report", "build",
		"--top-level", "workplanSource", "--top-id", src.RecordID,
		"--bottom-level", "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "Annual Plan")
	assert.Contains(t, out, "└─ Goal One [ 1 session ]")
}

func TestReportBuildCmd_RecordGone(t *testing.T) {
	app, records := newTestApp(t)
	seedWorkplan(t, records)

	_, err := runCommand(t, app, "report", "build",
		"--top-level", "goal", "--top-id", "deleted",
		"--bottom-level", "activity")
	assert.ErrorIs(t, err, service.ErrRecordGone)
}

func TestReportRequestThenSummarizeOnce(t *testing.T) {
	app, records := newTestApp(t)
	src := seedWorkplan(t, records)

	out, err := runCommand(t, app, "report", "request",
		"--top-level", "workplanSource", "--top-id", src.RecordID,
		"--bottom-level", "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "Queued report request")

	out, err = runCommand(t, app, "report", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")

	_, err = runCommand(t, app, "summarize", "--once")
	require.NoError(t, err)

	out, err = runCommand(t, app, "report", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "done")
}

func TestImportCmd(t *testing.T) {
	app, _ := newTestApp(t)

	content := `sources:
  - ref: src-1
    name: Annual Plan
    goals:
      - ref: g1
        name: Goal One
`
	path := filepath.Join(t.TempDir(), "workplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runCommand(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 sources, 1 goals")
}
