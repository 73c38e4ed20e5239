package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/hierarchy"
	"github.com/CalebGreaves/tta-summary-dev/internal/repository"
)

// fixture builders create stored records with the default hierarchy field
// ids, so tests can exercise the SQLite-backed data source end to end.

var cfg = hierarchy.DefaultConfig()

// MustDate parses a 2006-01-02 date or fails the test.
func MustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func newRecord(collection hierarchy.Collection, name string) *repository.StoredRecord {
	now := time.Now().UTC()
	return &repository.StoredRecord{
		RecordID:   uuid.New().String(),
		Collection: string(collection),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
		Strings:    make(map[string]string),
		Dates:      make(map[string]time.Time),
		LinkLists:  make(map[string][]string),
	}
}

// NewSourceRecord creates a workplan source record.
func NewSourceRecord(name string) *repository.StoredRecord {
	return newRecord(hierarchy.CollectionWorkplanSources, name)
}

// NewGoalRecord creates a goal linked to a source.
func NewGoalRecord(name, sourceID string) *repository.StoredRecord {
	rec := newRecord(hierarchy.CollectionGoals, name)
	rec.LinkLists[cfg.GoalsToSourceLink] = []string{sourceID}
	return rec
}

// NewObjectiveRecord creates an objective linked to a goal.
func NewObjectiveRecord(name, goalID string) *repository.StoredRecord {
	rec := newRecord(hierarchy.CollectionObjectives, name)
	rec.LinkLists[cfg.ObjectivesToGoalLink] = []string{goalID}
	return rec
}

// NewSkipLevelObjectiveRecord creates an objective linked directly to a
// source, exercising the skip-level path.
func NewSkipLevelObjectiveRecord(name, sourceID string) *repository.StoredRecord {
	rec := newRecord(hierarchy.CollectionObjectives, name)
	rec.LinkLists[cfg.ObjectivesToSourceLink] = []string{sourceID}
	return rec
}

// ActivityOption mutates an activity record under construction.
type ActivityOption func(*repository.StoredRecord)

// WithActivityDates sets the activity's start and end dates.
func WithActivityDates(t *testing.T, start, end string) ActivityOption {
	return func(rec *repository.StoredRecord) {
		rec.Dates[cfg.ActivityStartField] = MustDate(t, start)
		rec.Dates[cfg.ActivityEndField] = MustDate(t, end)
	}
}

// WithActivityStatus sets the Board Plan status field.
func WithActivityStatus(status string) ActivityOption {
	return func(rec *repository.StoredRecord) {
		rec.Strings[cfg.ActivityStatusField] = status
	}
}

// WithActivityComments sets the Board Plan comments field.
func WithActivityComments(comments string) ActivityOption {
	return func(rec *repository.StoredRecord) {
		rec.Strings[cfg.ActivityCommentsField] = comments
	}
}

// NewActivityRecord creates an activity linked to an objective.
func NewActivityRecord(name, objectiveID string, opts ...ActivityOption) *repository.StoredRecord {
	rec := newRecord(hierarchy.CollectionActivities, name)
	rec.LinkLists[cfg.ActivitiesToObjectiveLink] = []string{objectiveID}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}

// NewSessionRecord creates a T/TA session linked to one or more activities.
// date may be empty for a dateless session.
func NewSessionRecord(t *testing.T, summary, date string, activityIDs ...string) *repository.StoredRecord {
	rec := newRecord(hierarchy.CollectionTTASessions, "")
	rec.Strings[cfg.SessionSummaryField] = summary
	if date != "" {
		rec.Dates[cfg.SessionDateField] = MustDate(t, date)
	}
	rec.LinkLists[cfg.SessionsToActivityLink] = activityIDs
	return rec
}
