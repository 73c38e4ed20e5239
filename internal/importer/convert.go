package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

// Convert transforms a validated ImportSchema into stored records ready for
// persistence, in parent-before-child order. Call ValidateImportSchema
// first; Convert assumes the schema is valid. Link and data field ids follow
// the given hierarchy configuration, so imported data is readable by a
// builder using the same configuration.
func Convert(schema *ImportSchema, cfg hierarchy.Config) ([]*repository.StoredRecord, error) {
	now := time.Now().UTC()
	var records []*repository.StoredRecord
	refMap := make(map[string]string) // ref -> record id

	newRecord := func(ref, collection, name string) *repository.StoredRecord {
		id := uuid.New().String()
		refMap[ref] = id
		rec := &repository.StoredRecord{
			RecordID:   id,
			Collection: collection,
			Name:       name,
			CreatedAt:  now,
			UpdatedAt:  now,
			Strings:    make(map[string]string),
			Dates:      make(map[string]time.Time),
			LinkLists:  make(map[string][]string),
		}
		records = append(records, rec)
		return rec
	}

	setDate := func(rec *repository.StoredRecord, fieldID, value string) error {
		if value == "" {
			return nil
		}
		t, err := time.Parse(domain.DateLayout, value)
		if err != nil {
			return fmt.Errorf("parsing date for %s: %w", rec.Name, err)
		}
		rec.Dates[fieldID] = t
		return nil
	}

	convertActivity := func(a ActivityImport, objectiveID string) error {
		rec := newRecord(a.Ref, string(hierarchy.CollectionActivities), a.Name)
		rec.LinkLists[cfg.ActivitiesToObjectiveLink] = []string{objectiveID}
		if a.Status != "" {
			rec.Strings[cfg.ActivityStatusField] = a.Status
		}
		if a.Comments != "" {
			rec.Strings[cfg.ActivityCommentsField] = a.Comments
		}
		if err := setDate(rec, cfg.ActivityStartField, a.StartDate); err != nil {
			return err
		}
		return setDate(rec, cfg.ActivityEndField, a.EndDate)
	}

	convertObjective := func(o ObjectiveImport, parentLink, parentID string) error {
		rec := newRecord(o.Ref, string(hierarchy.CollectionObjectives), o.Name)
		rec.LinkLists[parentLink] = []string{parentID}
		for _, a := range o.Activities {
			if err := convertActivity(a, rec.RecordID); err != nil {
				return err
			}
		}
		return nil
	}

	for _, src := range schema.Sources {
		srcRec := newRecord(src.Ref, string(hierarchy.CollectionWorkplanSources), src.Name)
		for _, g := range src.Goals {
			goalRec := newRecord(g.Ref, string(hierarchy.CollectionGoals), g.Name)
			goalRec.LinkLists[cfg.GoalsToSourceLink] = []string{srcRec.RecordID}
			for _, o := range g.Objectives {
				if err := convertObjective(o, cfg.ObjectivesToGoalLink, goalRec.RecordID); err != nil {
					return nil, err
				}
			}
		}
		// Skip-level objectives link straight to the source.
		for _, o := range src.Objectives {
			if err := convertObjective(o, cfg.ObjectivesToSourceLink, srcRec.RecordID); err != nil {
				return nil, err
			}
		}
	}

	for i, s := range schema.Sessions {
		ref := fmt.Sprintf("session-%d", i)
		rec := newRecord(ref, string(hierarchy.CollectionTTASessions), "")
		rec.LinkLists[cfg.SessionsToActivityLink] = []string{refMap[s.ActivityRef]}
		rec.Strings[cfg.SessionSummaryField] = s.Summary
		if err := setDate(rec, cfg.SessionDateField, s.Date); err != nil {
			return nil, err
		}
	}

	return records, nil
}
