package summarize

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalebGreaves/tta-summary-dev/internal/codec"
	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/llm"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
	"github.com/CalebGreaves/tta-summary-dev/internal/testutil"
)

// fakeClient scripts the LLM response for a test.
type fakeClient struct {
	text string
	err  error
}

func (c *fakeClient) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.text, Model: "fake"}, nil
}

func (c *fakeClient) Available(_ context.Context) bool { return c.err == nil }

func compactTree(t *testing.T) string {
	t.Helper()
	out, err := codec.EncodeJSON(&domain.HierarchyNode{
		Type:       domain.LevelGoal,
		RecordName: "Goal One",
		TTASessions: []domain.SessionRef{
			{Summary: "Kickoff session"},
		},
	})
	require.NoError(t, err)
	return out
}

func enqueueRequest(t *testing.T, reports repository.ReportRequestRepo, tree string) *domain.ReportRequest {
	t.Helper()
	now := time.Now().UTC()
	req := &domain.ReportRequest{
		ID:          uuid.New().String(),
		TopLevel:    domain.LevelGoal,
		TopLevelID:  "g1",
		BottomLevel: domain.LevelGoal,
		Status:      domain.ReportPending,
		CompactTree: tree,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, reports.Create(context.Background(), req))
	return req
}

func TestService_SummarizeWithClient(t *testing.T) {
	svc := NewService(&fakeClient{text: "Narrative report."})

	out, err := svc.Summarize(context.Background(), &domain.HierarchyNode{
		Type:       domain.LevelGoal,
		RecordName: "Goal One",
	})
	require.NoError(t, err)
	assert.Equal(t, "Narrative report.", out)
}

func TestService_SummarizeNilClientFallsBack(t *testing.T) {
	svc := NewService(nil)

	out, err := svc.Summarize(context.Background(), &domain.HierarchyNode{
		Type:        domain.LevelGoal,
		RecordName:  "Goal One",
		TTASessions: []domain.SessionRef{{Summary: "Kickoff session"}},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "# Goal One")
	assert.Contains(t, out, "- Kickoff session")
}

func TestService_SummarizeUnavailableFallsBack(t *testing.T) {
	svc := NewService(&fakeClient{err: llm.ErrOllamaUnavailable})

	out, err := svc.Summarize(context.Background(), &domain.HierarchyNode{
		Type:       domain.LevelGoal,
		RecordName: "Goal One",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "# Goal One")
}

func TestService_SummarizePropagatesOtherErrors(t *testing.T) {
	svc := NewService(&fakeClient{err: llm.ErrTimeout})

	_, err := svc.Summarize(context.Background(), &domain.HierarchyNode{
		Type:       domain.LevelGoal,
		RecordName: "Goal One",
	})
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestWorker_DrainCompletesRequest(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))
	req := enqueueRequest(t, reports, compactTree(t))

	var log bytes.Buffer
	w := NewWorker(reports, NewService(&fakeClient{text: "Narrative report."}), time.Second, &log)
	require.NoError(t, w.Drain(context.Background()))

	got, err := reports.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportDone, got.Status)
	assert.Equal(t, "Narrative report.", got.Summary)
	assert.Empty(t, got.ErrorText)
	assert.Contains(t, log.String(), req.ID)
}

func TestWorker_DrainEmptiesQueue(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))
	first := enqueueRequest(t, reports, compactTree(t))
	second := enqueueRequest(t, reports, compactTree(t))

	w := NewWorker(reports, NewService(nil), time.Second, nil)
	require.NoError(t, w.Drain(context.Background()))

	for _, id := range []string{first.ID, second.ID} {
		got, err := reports.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.ReportDone, got.Status)
	}
}

func TestWorker_EmptyQueueIsNoOp(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))

	w := NewWorker(reports, NewService(nil), time.Second, nil)
	require.NoError(t, w.Drain(context.Background()))
}

func TestWorker_GenerationFailureMarksFailed(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))
	req := enqueueRequest(t, reports, compactTree(t))

	genErr := errors.New("model exploded")
	w := NewWorker(reports, NewService(&fakeClient{err: genErr}), time.Second, nil)
	require.NoError(t, w.Drain(context.Background()))

	got, err := reports.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFailed, got.Status)
	assert.Contains(t, got.ErrorText, "model exploded")
	assert.Empty(t, got.Summary)
}

func TestWorker_BadSnapshotMarksFailed(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))
	req := enqueueRequest(t, reports, "{not json")

	w := NewWorker(reports, NewService(nil), time.Second, nil)
	require.NoError(t, w.Drain(context.Background()))

	got, err := reports.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFailed, got.Status)
	assert.Contains(t, got.ErrorText, "decoding tree snapshot")
}

func TestWorker_RunStopsOnContextCancel(t *testing.T) {
	reports := repository.NewSQLiteReportRequestRepo(testutil.NewTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := NewWorker(reports, NewService(nil), 10*time.Millisecond, nil)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
