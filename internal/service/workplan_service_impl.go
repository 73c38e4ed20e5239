package service

import (
	"context"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

type workplanService struct {
	records repository.RecordRepo
}

// NewWorkplanService creates a WorkplanService over the record store.
func NewWorkplanService(records repository.RecordRepo) WorkplanService {
	return &workplanService{records: records}
}

func (s *workplanService) ListLevel(ctx context.Context, level domain.Level) ([]*repository.StoredRecord, error) {
	coll, ok := hierarchy.CollectionForLevel(level)
	if !ok {
		return nil, ErrInvalidSelection
	}
	return s.records.ListByCollection(ctx, string(coll))
}
