package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

func strptr(s string) *string { return &s }

func TestRenderTree(t *testing.T) {
	items := []TreeItem{
		{Title: "Annual Plan", Level: 0, IsLast: true},
		{Title: "Goal One", Level: 1, IsLast: false},
		{Title: "Objective 1.1", Level: 2, IsLast: true, Badge: "2 sessions"},
		{Title: "Goal Two", Level: 1, IsLast: true},
	}
	out := RenderTree(items, false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Annual Plan", lines[0])
	assert.Equal(t, "├─ Goal One", lines[1])
	assert.Equal(t, "│  └─ Objective 1.1 [ 2 sessions ]", lines[2])
	assert.Equal(t, "└─ Goal Two", lines[3])
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil, false))
}

func TestHierarchyItems(t *testing.T) {
	tree := &domain.HierarchyNode{
		Type:       domain.LevelWorkplanSource,
		RecordName: "Annual Plan",
		Children: []*domain.HierarchyNode{
			{
				Type:       domain.LevelGoal,
				RecordName: "Goal One",
				TTASessions: []domain.SessionRef{
					{Summary: "Kickoff session"},
					{Summary: "Follow-up session"},
				},
			},
			{
				Type:       domain.LevelGoal,
				RecordName: "Goal Two",
				TTASessions: []domain.SessionRef{
					{Summary: "Late session"},
				},
			},
		},
	}
	items := HierarchyItems(tree)

	require.Len(t, items, 3)
	assert.Equal(t, TreeItem{Title: "Annual Plan", Level: 0, IsLast: true}, items[0])
	assert.Equal(t, TreeItem{Title: "Goal One", Level: 1, IsLast: false, Badge: "2 sessions"}, items[1])
	assert.Equal(t, TreeItem{Title: "Goal Two", Level: 1, IsLast: true, Badge: "1 session"}, items[2])
}

func TestHierarchyItems_Nil(t *testing.T) {
	assert.Empty(t, HierarchyItems(nil))
}

func TestNodeBadge(t *testing.T) {
	assert.Equal(t, "", nodeBadge(&domain.HierarchyNode{}))
	assert.Equal(t, "On Track", nodeBadge(&domain.HierarchyNode{ActivityStatus: strptr("On Track")}))
	assert.Equal(t, "", nodeBadge(&domain.HierarchyNode{ActivityStatus: strptr("")}))
	assert.Equal(t, "3 activities", nodeBadge(&domain.HierarchyNode{
		ActivityDetails: make([]domain.ActivityDetail, 3),
	}))
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, StyleGreen, StatusStyle("done"))
	assert.Equal(t, StyleYellow, StatusStyle("running"))
	assert.Equal(t, StyleRed, StatusStyle("failed"))
	assert.Equal(t, StyleBlue, StatusStyle("pending"))
	assert.Equal(t, StyleDim, StatusStyle("archived"))
}
