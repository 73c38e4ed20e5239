package hierarchy

import (
	"context"
	"strings"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// boardPlanMarker is the case-insensitive substring that flags a workplan
// source as a Board Plan.
const boardPlanMarker = "board plan"

// unknownRecordName is the display name used when a record resolves to an
// empty name.
const unknownRecordName = "Unknown"

// Builder constructs pruned, annotated report trees from the record store.
// It is stateless between builds; all reads go through the DataSource.
type Builder struct {
	src DataSource
	cfg Config
}

// NewBuilder creates a Builder over the given data source and field
// configuration.
func NewBuilder(src DataSource, cfg Config) *Builder {
	return &Builder{src: src, cfg: cfg}
}

// Build resolves the selected top record and returns the report tree pruned
// at bottomLevel, or (nil, nil) when the record no longer exists or the
// level values are unknown. A nil tree is a signal, not an error: callers
// route the user back to re-selection.
func (b *Builder) Build(ctx context.Context, topLevel domain.Level, topLevelID string, bottomLevel domain.Level, dateRange domain.DateRange) (*domain.HierarchyNode, error) {
	coll, ok := CollectionForLevel(topLevel)
	if !ok || !bottomLevel.Valid() {
		return nil, nil
	}

	rec, err := b.src.Get(ctx, coll, topLevelID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	// Board Plan mode is resolved once from the top node's ancestry and
	// governs leaf content shape for the whole tree.
	boardPlan, err := b.isBoardPlan(ctx, topLevel, rec)
	if err != nil {
		return nil, err
	}

	if topLevel == domain.LevelActivity {
		if !activityInRange(rec, b.cfg, dateRange) {
			return nil, nil
		}
		return b.activityLeaf(ctx, rec, boardPlan, dateRange)
	}

	root, err := b.buildSubtree(ctx, topLevel, rec, boardPlan, dateRange)
	if err != nil {
		return nil, err
	}
	if bottomLevel != domain.LevelActivity {
		root = rollupAndPrune(root, bottomLevel, boardPlan)
	}
	return root, nil
}

// buildSubtree constructs the full (unpruned) subtree below rec. Activities
// are always fetched and date-filtered, wherever they occur in the path,
// because their data feeds rollup even when not directly visible.
func (b *Builder) buildSubtree(ctx context.Context, level domain.Level, rec Record, boardPlan bool, dateRange domain.DateRange) (*domain.HierarchyNode, error) {
	if level == domain.LevelActivity {
		return b.activityLeaf(ctx, rec, boardPlan, dateRange)
	}

	node := b.newNode(level, rec)

	childLevel, children, err := b.childRecords(ctx, level, rec)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if childLevel == domain.LevelActivity && !activityInRange(child, b.cfg, dateRange) {
			continue
		}
		childNode, err := b.buildSubtree(ctx, childLevel, child, boardPlan, dateRange)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// childRecords fetches the next level's records for rec. A workplan source
// with no linked goals takes the skip-level path: its objectives link to the
// source directly and the goal level is omitted for that branch.
func (b *Builder) childRecords(ctx context.Context, level domain.Level, rec Record) (domain.Level, []Record, error) {
	switch level {
	case domain.LevelWorkplanSource:
		goals, err := b.src.LinkedTo(ctx, CollectionGoals, b.cfg.GoalsToSourceLink, rec.ID())
		if err != nil {
			return "", nil, err
		}
		if len(goals) > 0 {
			return domain.LevelGoal, goals, nil
		}
		objectives, err := b.src.LinkedTo(ctx, CollectionObjectives, b.cfg.ObjectivesToSourceLink, rec.ID())
		return domain.LevelObjective, objectives, err
	case domain.LevelGoal:
		objectives, err := b.src.LinkedTo(ctx, CollectionObjectives, b.cfg.ObjectivesToGoalLink, rec.ID())
		return domain.LevelObjective, objectives, err
	case domain.LevelObjective:
		activities, err := b.src.LinkedTo(ctx, CollectionActivities, b.cfg.ActivitiesToObjectiveLink, rec.ID())
		return domain.LevelActivity, activities, err
	default:
		return "", nil, nil
	}
}

// activityLeaf builds a leaf node for an activity record. Board Plan mode
// surfaces the activity's status and comments; otherwise the leaf carries
// its date-filtered T/TA sessions in ascending date order.
func (b *Builder) activityLeaf(ctx context.Context, rec Record, boardPlan bool, dateRange domain.DateRange) (*domain.HierarchyNode, error) {
	node := b.newNode(domain.LevelActivity, rec)

	if boardPlan {
		status := rec.StringField(b.cfg.ActivityStatusField)
		comments := rec.StringField(b.cfg.ActivityCommentsField)
		node.ActivityStatus = &status
		node.ActivityComments = &comments
		return node, nil
	}

	sessions, err := b.src.LinkedTo(ctx, CollectionTTASessions, b.cfg.SessionsToActivityLink, rec.ID())
	if err != nil {
		return nil, err
	}
	dated := make([]datedSession, 0, len(sessions))
	for _, s := range sessions {
		date := s.DateField(b.cfg.SessionDateField)
		if !sessionInRange(date, dateRange) {
			continue
		}
		id := s.ID()
		dated = append(dated, datedSession{
			ref:  domain.SessionRef{ID: &id, Summary: s.StringField(b.cfg.SessionSummaryField)},
			date: date,
		})
	}
	sortSessionsAscending(dated)
	for _, s := range dated {
		node.TTASessions = append(node.TTASessions, s.ref)
	}
	return node, nil
}

// newNode creates a bare node for a record, with empty session and child
// slices so that built trees never carry nil collections.
func (b *Builder) newNode(level domain.Level, rec Record) *domain.HierarchyNode {
	coll, _ := CollectionForLevel(level)
	tableID := string(coll)
	recordID := rec.ID()
	return &domain.HierarchyNode{
		TableID:     &tableID,
		RecordID:    &recordID,
		Type:        level,
		RecordName:  displayName(rec),
		TTASessions: []domain.SessionRef{},
		Children:    []*domain.HierarchyNode{},
	}
}

// isBoardPlan walks the ancestry chain from rec to its workplan source and
// checks the source's name for the Board Plan marker. A broken or missing
// chain means not a Board Plan.
func (b *Builder) isBoardPlan(ctx context.Context, level domain.Level, rec Record) (bool, error) {
	source, err := b.resolveSource(ctx, level, rec)
	if err != nil || source == nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(displayName(source)), boardPlanMarker), nil
}

// resolveSource follows parent links upward until it reaches the workplan
// source, taking the skip-level link when an objective has no goal.
func (b *Builder) resolveSource(ctx context.Context, level domain.Level, rec Record) (Record, error) {
	switch level {
	case domain.LevelWorkplanSource:
		return rec, nil
	case domain.LevelGoal:
		return b.parentRecord(ctx, rec, b.cfg.GoalsToSourceLink, CollectionWorkplanSources)
	case domain.LevelObjective:
		goal, err := b.parentRecord(ctx, rec, b.cfg.ObjectivesToGoalLink, CollectionGoals)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return b.parentRecord(ctx, goal, b.cfg.GoalsToSourceLink, CollectionWorkplanSources)
		}
		return b.parentRecord(ctx, rec, b.cfg.ObjectivesToSourceLink, CollectionWorkplanSources)
	case domain.LevelActivity:
		objective, err := b.parentRecord(ctx, rec, b.cfg.ActivitiesToObjectiveLink, CollectionObjectives)
		if err != nil || objective == nil {
			return nil, err
		}
		return b.resolveSource(ctx, domain.LevelObjective, objective)
	default:
		return nil, nil
	}
}

// parentRecord resolves the first record a link field points at, or nil when
// the link is empty or dangling.
func (b *Builder) parentRecord(ctx context.Context, rec Record, linkField string, coll Collection) (Record, error) {
	ids := rec.Links(linkField)
	if len(ids) == 0 {
		return nil, nil
	}
	return b.src.Get(ctx, coll, ids[0])
}

// displayName resolves a record's report name, falling back to "Unknown".
func displayName(rec Record) string {
	if name := rec.DisplayName(); name != "" {
		return name
	}
	return unknownRecordName
}
