package service

import (
	"context"

	"github.com/CalebGreaves/tta-summary-dev/internal/db"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/importer"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

type importService struct {
	cfg hierarchy.Config
	uow db.UnitOfWork
}

// NewImportService creates an ImportService writing records with the field
// ids of the given hierarchy configuration.
func NewImportService(cfg hierarchy.Config, uow db.UnitOfWork) ImportService {
	return &importService{cfg: cfg, uow: uow}
}

// ImportWorkplan loads, validates and persists a workplan file. All records
// are inserted within a single transaction, so a broken file leaves the
// store untouched.
func (s *importService) ImportWorkplan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSchema(filePath)
	if err != nil {
		return nil, err
	}
	if err := importer.ValidateImportSchema(schema); err != nil {
		return nil, err
	}
	records, err := importer.Convert(schema, s.cfg)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		for _, rec := range records {
			if err := txRecords.Create(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, rec := range records {
		switch hierarchy.Collection(rec.Collection) {
		case hierarchy.CollectionWorkplanSources:
			result.SourceCount++
		case hierarchy.CollectionGoals:
			result.GoalCount++
		case hierarchy.CollectionObjectives:
			result.ObjectiveCount++
		case hierarchy.CollectionActivities:
			result.ActivityCount++
		case hierarchy.CollectionTTASessions:
			result.SessionCount++
		}
	}
	return result, nil
}
