package hierarchy

import (
	"context"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// Collection names one of the five record collections the builder reads.
type Collection string

const (
	CollectionWorkplanSources Collection = "workplanSources"
	CollectionGoals           Collection = "goals"
	CollectionObjectives      Collection = "objectives"
	CollectionActivities      Collection = "activities"
	CollectionTTASessions     Collection = "ttaSessions"
)

// CollectionForLevel maps a hierarchy level to the collection holding records
// of that level.
func CollectionForLevel(l domain.Level) (Collection, bool) {
	switch l {
	case domain.LevelWorkplanSource:
		return CollectionWorkplanSources, true
	case domain.LevelGoal:
		return CollectionGoals, true
	case domain.LevelObjective:
		return CollectionObjectives, true
	case domain.LevelActivity:
		return CollectionActivities, true
	default:
		return "", false
	}
}

// Record is the builder's view of a stored record: identity, a resolvable
// display name, and typed field access. Implementations return zero values
// for unknown field ids so that misconfigured fields degrade to "no value".
type Record interface {
	ID() string
	DisplayName() string
	StringField(fieldID string) string
	DateField(fieldID string) *time.Time
	Links(fieldID string) []string
}

// DataSource is read access to the record collections. Get returns (nil, nil)
// when no record with the given id exists; LinkedTo returns the records of a
// collection whose link field contains parentID, and an empty slice for
// unknown link fields.
type DataSource interface {
	Get(ctx context.Context, c Collection, id string) (Record, error)
	LinkedTo(ctx context.Context, c Collection, linkField, parentID string) ([]Record, error)
}

// Config names the link and data fields the builder reads. The ids are
// environment-specific; an empty or unknown id behaves as "no linked records"
// or "no value" rather than failing the build.
type Config struct {
	// Link fields, each held by the child record and pointing at its parent.
	GoalsToSourceLink         string
	ObjectivesToGoalLink      string
	ObjectivesToSourceLink    string // skip-level path for sources without goals
	ActivitiesToObjectiveLink string
	SessionsToActivityLink    string

	// Data fields. Status and comments are read only in Board Plan mode;
	// start and end drive the activity date filter; summary and date are
	// read from T/TA session records.
	ActivityStatusField   string
	ActivityCommentsField string
	ActivityStartField    string
	ActivityEndField      string
	SessionSummaryField   string
	SessionDateField      string
}

// DefaultConfig returns the field ids used by the bundled record store and
// importer.
func DefaultConfig() Config {
	return Config{
		GoalsToSourceLink:         "workplanSource",
		ObjectivesToGoalLink:      "goal",
		ObjectivesToSourceLink:    "workplanSource",
		ActivitiesToObjectiveLink: "objective",
		SessionsToActivityLink:    "activity",

		ActivityStatusField:   "status",
		ActivityCommentsField: "comments",
		ActivityStartField:    "startDate",
		ActivityEndField:      "endDate",
		SessionSummaryField:   "summary",
		SessionDateField:      "date",
	}
}
