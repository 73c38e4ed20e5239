package hierarchy

import (
	"sort"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// activityInRange applies the overlap rule for activities: with any range
// bound set, an activity is included iff it carries both a start and an end
// date and its span overlaps the range. Without a range filter every
// activity passes.
func activityInRange(rec Record, cfg Config, r domain.DateRange) bool {
	if r.IsZero() {
		return true
	}
	start := rec.DateField(cfg.ActivityStartField)
	end := rec.DateField(cfg.ActivityEndField)
	if start == nil || end == nil {
		return false
	}
	if r.Start != nil && end.Before(*r.Start) {
		return false
	}
	if r.End != nil && start.After(*r.End) {
		return false
	}
	return true
}

// sessionInRange applies the point-in-range rule for T/TA sessions, each
// bound checked only if present. A dateless session is excluded whenever a
// range filter is active.
func sessionInRange(date *time.Time, r domain.DateRange) bool {
	if r.IsZero() {
		return true
	}
	if date == nil {
		return false
	}
	if r.Start != nil && date.Before(*r.Start) {
		return false
	}
	if r.End != nil && date.After(*r.End) {
		return false
	}
	return true
}

// datedSession pairs a session ref with its date for sorting.
type datedSession struct {
	ref  domain.SessionRef
	date *time.Time
}

// sortSessionsAscending orders sessions chronologically, keeping the fetch
// order for ties. Dateless sessions sort first.
func sortSessionsAscending(sessions []datedSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sessions[i].date != nil {
			ti = *sessions[i].date
		}
		if sessions[j].date != nil {
			tj = *sessions[j].date
		}
		return ti.Before(tj)
	})
}
