package domain

import "time"

// ReportRequest is a persisted report job: the user's scope selection, the
// compact-encoded tree snapshot taken at request time, and the state of the
// asynchronous summarization step.
type ReportRequest struct {
	ID          string
	TopLevel    Level
	TopLevelID  string
	BottomLevel Level
	Range       DateRange
	Status      ReportStatus
	CompactTree string // compact-form JSON snapshot
	Summary     string // generated markdown, set once Status is done
	ErrorText   string // failure reason, set once Status is failed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
