package domain

import "time"

// DateLayout is the calendar-date format used across import files, CLI flags
// and the record store.
const DateLayout = "2006-01-02"

// DateRange is an optional report filter. Either bound may be nil; the zero
// value means no filtering at all.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// ParseDateRange builds a DateRange from raw "2006-01-02" strings, treating
// empty strings as unset bounds.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return DateRange{}, err
		}
		r.Start = &t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return DateRange{}, err
		}
		r.End = &t
	}
	return r, nil
}
