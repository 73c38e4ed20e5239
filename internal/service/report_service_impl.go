package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CalebGreaves/tta-summary-dev/internal/codec"
	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

type reportService struct {
	builder *hierarchy.Builder
	reports repository.ReportRequestRepo
}

// NewReportService creates a ReportService over the given builder and
// report-request store.
func NewReportService(builder *hierarchy.Builder, reports repository.ReportRequestRepo) ReportService {
	return &reportService{builder: builder, reports: reports}
}

func (s *reportService) BuildTree(ctx context.Context, sel ReportSelection) (*domain.HierarchyNode, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return s.builder.Build(ctx, sel.TopLevel, sel.TopLevelID, sel.BottomLevel, sel.Range)
}

func (s *reportService) CreateRequest(ctx context.Context, sel ReportSelection) (*domain.ReportRequest, error) {
	tree, err := s.BuildTree(ctx, sel)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrRecordGone
	}

	compact, err := codec.EncodeJSON(tree)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &domain.ReportRequest{
		ID:          uuid.New().String(),
		TopLevel:    sel.TopLevel,
		TopLevelID:  sel.TopLevelID,
		BottomLevel: sel.BottomLevel,
		Range:       sel.Range,
		Status:      domain.ReportPending,
		CompactTree: compact,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.reports.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *reportService) GetRequest(ctx context.Context, id string) (*domain.ReportRequest, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *reportService) ListRequests(ctx context.Context) ([]*domain.ReportRequest, error) {
	return s.reports.List(ctx)
}
