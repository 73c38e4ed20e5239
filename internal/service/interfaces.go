package service

import (
	"context"
	"errors"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

// ErrInvalidSelection indicates a report selection with unknown levels or a
// bottom level above the top level.
var ErrInvalidSelection = errors.New("invalid report selection")

// ErrRecordGone indicates the selected top-level record no longer exists.
// The selector UI routes users back to re-selection on this error.
var ErrRecordGone = errors.New("selected record no longer exists")

// ReportSelection is the user's report scope: a starting record, a bottom
// level of detail and an optional date range.
type ReportSelection struct {
	TopLevel    domain.Level
	TopLevelID  string
	BottomLevel domain.Level
	Range       domain.DateRange
}

// Validate checks that both levels are known and that the bottom level is
// the same as or below the top level.
func (s ReportSelection) Validate() error {
	if !s.TopLevel.Valid() || !s.BottomLevel.Valid() {
		return ErrInvalidSelection
	}
	if s.TopLevel.Rank() > s.BottomLevel.Rank() {
		return ErrInvalidSelection
	}
	return nil
}

type ReportService interface {
	// BuildTree constructs the report tree for a selection without
	// persisting anything. A nil tree means the selected record is gone.
	BuildTree(ctx context.Context, sel ReportSelection) (*domain.HierarchyNode, error)

	// CreateRequest builds the tree, snapshots it in compact form and
	// enqueues a pending report request for asynchronous summarization.
	CreateRequest(ctx context.Context, sel ReportSelection) (*domain.ReportRequest, error)

	GetRequest(ctx context.Context, id string) (*domain.ReportRequest, error)
	ListRequests(ctx context.Context) ([]*domain.ReportRequest, error)
}

type WorkplanService interface {
	// ListLevel returns all records of one hierarchy level, ordered by name.
	ListLevel(ctx context.Context, level domain.Level) ([]*repository.StoredRecord, error)
}

// ImportResult holds the outcome of a workplan import.
type ImportResult struct {
	SourceCount    int
	GoalCount      int
	ObjectiveCount int
	ActivityCount  int
	SessionCount   int
}

type ImportService interface {
	ImportWorkplan(ctx context.Context, filePath string) (*ImportResult, error)
}
