package domain

// Level identifies a record kind within the work-plan hierarchy.
// The four levels form a strict order: workplanSource < goal < objective < activity.
type Level string

const (
	LevelWorkplanSource Level = "workplanSource"
	LevelGoal           Level = "goal"
	LevelObjective      Level = "objective"
	LevelActivity       Level = "activity"
)

// levelRank maps each level to its depth in the hierarchy order.
var levelRank = map[Level]int{
	LevelWorkplanSource: 0,
	LevelGoal:           1,
	LevelObjective:      2,
	LevelActivity:       3,
}

// ParseLevel returns the Level for a raw string, reporting whether it is one
// of the four known levels.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	_, ok := levelRank[l]
	return l, ok
}

// Valid reports whether the level is one of the four known levels.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Rank returns the level's depth in the hierarchy order, 0 for workplanSource
// through 3 for activity. Unknown levels rank as -1.
func (l Level) Rank() int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return -1
}

// Above reports whether l sits strictly above other in the hierarchy.
func (l Level) Above(other Level) bool {
	return l.Rank() >= 0 && other.Rank() >= 0 && l.Rank() < other.Rank()
}

// Child returns the level one step below l, or false for activity and
// unknown levels.
func (l Level) Child() (Level, bool) {
	switch l {
	case LevelWorkplanSource:
		return LevelGoal, true
	case LevelGoal:
		return LevelObjective, true
	case LevelObjective:
		return LevelActivity, true
	default:
		return "", false
	}
}

// ReportStatus tracks a report request through the summarization pipeline.
type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
	ReportRunning ReportStatus = "running"
	ReportDone    ReportStatus = "done"
	ReportFailed  ReportStatus = "failed"
)
