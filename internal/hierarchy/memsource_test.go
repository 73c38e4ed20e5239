package hierarchy

import (
	"context"
	"testing"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// memRecord is an in-memory Record for builder tests.
type memRecord struct {
	id      string
	name    string
	strings map[string]string
	dates   map[string]time.Time
	links   map[string][]string
}

func newMemRecord(id, name string) *memRecord {
	return &memRecord{
		id:      id,
		name:    name,
		strings: make(map[string]string),
		dates:   make(map[string]time.Time),
		links:   make(map[string][]string),
	}
}

func (r *memRecord) ID() string          { return r.id }
func (r *memRecord) DisplayName() string { return r.name }

func (r *memRecord) StringField(fieldID string) string { return r.strings[fieldID] }

func (r *memRecord) DateField(fieldID string) *time.Time {
	if t, ok := r.dates[fieldID]; ok {
		return &t
	}
	return nil
}

func (r *memRecord) Links(fieldID string) []string { return r.links[fieldID] }

// memSource is an in-memory DataSource preserving insertion order.
type memSource struct {
	colls map[Collection][]*memRecord
}

func newMemSource() *memSource {
	return &memSource{colls: make(map[Collection][]*memRecord)}
}

func (s *memSource) add(c Collection, r *memRecord) {
	s.colls[c] = append(s.colls[c], r)
}

func (s *memSource) Get(_ context.Context, c Collection, id string) (Record, error) {
	for _, r := range s.colls[c] {
		if r.id == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *memSource) LinkedTo(_ context.Context, c Collection, linkField, parentID string) ([]Record, error) {
	var out []Record
	for _, r := range s.colls[c] {
		for _, target := range r.links[linkField] {
			if target == parentID {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

// testDate parses a 2006-01-02 date or fails the test.
func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// workplanFixture wires the standard test workplan:
//
//	Annual Plan (src-annual)
//	├─ Goal One (g1)
//	│  ├─ Objective 1.1 (o1) → Activity A (a1), Activity B (a2)
//	│  └─ Objective 1.2 (o2) → Activity C (a3, no dates)
//	└─ Goal Two (g2)
//	   └─ Objective 2.1 (o3) → Activity D (a4)
//
//	FY24 Board Plan (src-board, no goals)
//	└─ Board Objective (bo1) → Board Activity One (ba1), Board Activity Two (ba2)
//
// Sessions: s1, s2 on a1; s3 shared by a1 and a2; s4 (dateless) on a2;
// s5 on a4.
func workplanFixture(t *testing.T) *memSource {
	t.Helper()
	src := newMemSource()
	cfg := DefaultConfig()

	annual := newMemRecord("src-annual", "Annual Plan")
	src.add(CollectionWorkplanSources, annual)
	board := newMemRecord("src-board", "FY24 Board Plan")
	src.add(CollectionWorkplanSources, board)

	addGoal := func(id, name, sourceID string) {
		r := newMemRecord(id, name)
		r.links[cfg.GoalsToSourceLink] = []string{sourceID}
		src.add(CollectionGoals, r)
	}
	addGoal("g1", "Goal One", "src-annual")
	addGoal("g2", "Goal Two", "src-annual")

	addObjective := func(id, name, linkField, parentID string) {
		r := newMemRecord(id, name)
		r.links[linkField] = []string{parentID}
		src.add(CollectionObjectives, r)
	}
	addObjective("o1", "Objective 1.1", cfg.ObjectivesToGoalLink, "g1")
	addObjective("o2", "Objective 1.2", cfg.ObjectivesToGoalLink, "g1")
	addObjective("o3", "Objective 2.1", cfg.ObjectivesToGoalLink, "g2")
	addObjective("bo1", "Board Objective", cfg.ObjectivesToSourceLink, "src-board")

	addActivity := func(id, name, objectiveID, start, end string) *memRecord {
		r := newMemRecord(id, name)
		r.links[cfg.ActivitiesToObjectiveLink] = []string{objectiveID}
		if start != "" {
			r.dates[cfg.ActivityStartField] = testDate(t, start)
		}
		if end != "" {
			r.dates[cfg.ActivityEndField] = testDate(t, end)
		}
		src.add(CollectionActivities, r)
		return r
	}
	addActivity("a1", "Activity A", "o1", "2024-01-10", "2024-02-20")
	addActivity("a2", "Activity B", "o1", "2024-03-01", "2024-04-30")
	addActivity("a3", "Activity C", "o2", "", "")
	addActivity("a4", "Activity D", "o3", "2024-05-01", "2024-06-30")

	ba1 := addActivity("ba1", "Board Activity One", "bo1", "2024-01-01", "2024-12-31")
	ba1.strings[cfg.ActivityStatusField] = "On Track"
	ba1.strings[cfg.ActivityCommentsField] = "Moving along"
	addActivity("ba2", "Board Activity Two", "bo1", "2024-02-01", "2024-11-30")

	addSession := func(id, summary, date string, activityIDs ...string) {
		r := newMemRecord(id, "")
		r.strings[cfg.SessionSummaryField] = summary
		if date != "" {
			r.dates[cfg.SessionDateField] = testDate(t, date)
		}
		r.links[cfg.SessionsToActivityLink] = activityIDs
		src.add(CollectionTTASessions, r)
	}
	addSession("s1", "Kickoff session", "2024-01-15", "a1")
	addSession("s2", "Follow-up session", "2024-02-10", "a1")
	addSession("s3", "Shared coaching session", "2024-03-05", "a1", "a2")
	addSession("s4", "Dateless session", "", "a2")
	addSession("s5", "Late session", "2024-06-15", "a4")

	return src
}
