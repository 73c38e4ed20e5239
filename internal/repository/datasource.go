package repository

import (
	"context"
	"errors"

	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
)

// RecordDataSource adapts the SQLite record store to the builder's
// DataSource contract: missing records become (nil, nil) and missing link
// fields become empty results, so the builder stays free of storage
// concerns.
type RecordDataSource struct {
	records RecordRepo
}

// NewRecordDataSource wraps a RecordRepo as a hierarchy.DataSource.
func NewRecordDataSource(records RecordRepo) *RecordDataSource {
	return &RecordDataSource{records: records}
}

var _ hierarchy.DataSource = (*RecordDataSource)(nil)

func (s *RecordDataSource) Get(ctx context.Context, c hierarchy.Collection, id string) (hierarchy.Record, error) {
	rec, err := s.records.GetByID(ctx, string(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *RecordDataSource) LinkedTo(ctx context.Context, c hierarchy.Collection, linkField, parentID string) ([]hierarchy.Record, error) {
	records, err := s.records.ListLinkedTo(ctx, string(c), linkField, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]hierarchy.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	return out, nil
}
