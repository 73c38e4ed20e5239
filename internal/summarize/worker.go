package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/codec"
	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

// Worker polls the report-request queue and summarizes pending requests,
// moving each through pending → running → done/failed. The tree core stays
// synchronous; all asynchrony lives here.
type Worker struct {
	reports  repository.ReportRequestRepo
	svc      *Service
	interval time.Duration
	logw     io.Writer
}

// NewWorker creates a Worker polling at the given interval. logw may be nil
// to discard progress lines.
func NewWorker(reports repository.ReportRequestRepo, svc *Service, interval time.Duration, logw io.Writer) *Worker {
	if logw == nil {
		logw = io.Discard
	}
	return &Worker{reports: reports, svc: svc, interval: interval, logw: logw}
}

// Run drains the queue, then keeps polling until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.Drain(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Drain processes pending requests until the queue is empty.
func (w *Worker) Drain(ctx context.Context) error {
	for {
		processed, err := w.processNext(ctx)
		if err != nil {
			return err
		}
		if !processed {
			return nil
		}
	}
}

// processNext claims and summarizes the oldest pending request. Generation
// failures mark the request failed rather than stopping the worker.
func (w *Worker) processNext(ctx context.Context) (bool, error) {
	req, err := w.reports.NextPending(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	req.Status = domain.ReportRunning
	req.UpdatedAt = time.Now().UTC()
	if err := w.reports.Update(ctx, req); err != nil {
		return false, err
	}
	fmt.Fprintf(w.logw, "summarizing report request %s\n", req.ID)

	summary, genErr := w.generate(ctx, req)
	req.UpdatedAt = time.Now().UTC()
	if genErr != nil {
		req.Status = domain.ReportFailed
		req.ErrorText = genErr.Error()
		fmt.Fprintf(w.logw, "report request %s failed: %v\n", req.ID, genErr)
	} else {
		req.Status = domain.ReportDone
		req.Summary = summary
		req.ErrorText = ""
		fmt.Fprintf(w.logw, "report request %s done\n", req.ID)
	}
	if err := w.reports.Update(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Worker) generate(ctx context.Context, req *domain.ReportRequest) (string, error) {
	tree, err := codec.DecodeJSON(req.CompactTree)
	if err != nil {
		return "", fmt.Errorf("decoding tree snapshot: %w", err)
	}
	return w.svc.Summarize(ctx, tree)
}
