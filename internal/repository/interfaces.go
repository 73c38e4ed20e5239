package repository

import (
	"context"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// StoredRecord is one row of the generic record store together with its
// typed fields and link lists. It satisfies hierarchy.Record.
type StoredRecord struct {
	RecordID   string
	Collection string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Strings    map[string]string
	Dates      map[string]time.Time
	LinkLists  map[string][]string
}

func (r *StoredRecord) ID() string          { return r.RecordID }
func (r *StoredRecord) DisplayName() string { return r.Name }

func (r *StoredRecord) StringField(fieldID string) string {
	return r.Strings[fieldID]
}

func (r *StoredRecord) DateField(fieldID string) *time.Time {
	if t, ok := r.Dates[fieldID]; ok {
		return &t
	}
	return nil
}

func (r *StoredRecord) Links(fieldID string) []string {
	return r.LinkLists[fieldID]
}

type RecordRepo interface {
	Create(ctx context.Context, rec *StoredRecord) error
	GetByID(ctx context.Context, collection, id string) (*StoredRecord, error)
	ListByCollection(ctx context.Context, collection string) ([]*StoredRecord, error)
	ListLinkedTo(ctx context.Context, collection, linkField, parentID string) ([]*StoredRecord, error)
	CountByCollection(ctx context.Context, collection string) (int, error)
	Delete(ctx context.Context, id string) error
}

type ReportRequestRepo interface {
	Create(ctx context.Context, req *domain.ReportRequest) error
	GetByID(ctx context.Context, id string) (*domain.ReportRequest, error)
	List(ctx context.Context) ([]*domain.ReportRequest, error)
	NextPending(ctx context.Context) (*domain.ReportRequest, error)
	Update(ctx context.Context, req *domain.ReportRequest) error
}
