package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

func strptr(s string) *string { return &s }

func TestMarkdown_Nil(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
}

func TestMarkdown_HeadingsFollowDepth(t *testing.T) {
	tree := &domain.HierarchyNode{
		Type:       domain.LevelWorkplanSource,
		RecordName: "Annual Plan",
		Children: []*domain.HierarchyNode{
			{
				Type:       domain.LevelGoal,
				RecordName: "Goal One",
				Children: []*domain.HierarchyNode{
					{
						Type:       domain.LevelObjective,
						RecordName: "Objective 1.1",
						TTASessions: []domain.SessionRef{
							{Summary: "Kickoff session"},
							{Summary: "Follow-up session"},
						},
					},
				},
			},
		},
	}
	out := Markdown(tree)

	assert.Contains(t, out, "# Annual Plan\n")
	assert.Contains(t, out, "## Goal One\n")
	assert.Contains(t, out, "### Objective 1.1\n")
	assert.Contains(t, out, "- Kickoff session\n- Follow-up session\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestMarkdown_HeadingDepthCapsAtSix(t *testing.T) {
	leaf := &domain.HierarchyNode{Type: domain.LevelActivity, RecordName: "Deep"}
	node := leaf
	for i := 0; i < 8; i++ {
		node = &domain.HierarchyNode{
			Type:       domain.LevelObjective,
			RecordName: "Wrap",
			Children:   []*domain.HierarchyNode{node},
		}
	}
	out := Markdown(node)
	assert.Contains(t, out, "###### Deep")
	assert.NotContains(t, out, "####### ")
}

func TestMarkdown_BoardFields(t *testing.T) {
	tree := &domain.HierarchyNode{
		Type:             domain.LevelActivity,
		RecordName:       "Board Activity",
		ActivityStatus:   strptr("On Track"),
		ActivityComments: strptr("Moving along"),
	}
	out := Markdown(tree)
	assert.Contains(t, out, "Status: On Track\n")
	assert.Contains(t, out, "Comments: Moving along\n")
}

func TestMarkdown_EmptyBoardFieldsOmitted(t *testing.T) {
	tree := &domain.HierarchyNode{
		Type:             domain.LevelActivity,
		RecordName:       "Board Activity",
		ActivityStatus:   strptr(""),
		ActivityComments: strptr(""),
	}
	out := Markdown(tree)
	assert.NotContains(t, out, "Status:")
	assert.NotContains(t, out, "Comments:")
}

func TestMarkdown_ActivityDetailBullets(t *testing.T) {
	tree := &domain.HierarchyNode{
		Type:       domain.LevelObjective,
		RecordName: "Board Objective",
		ActivityDetails: []domain.ActivityDetail{
			{RecordName: "Board Activity One", Comments: "Moving along", Status: "On Track"},
			{RecordName: "Board Activity Two", Status: "At Risk"},
			{RecordName: "Board Activity Three"},
		},
	}
	out := Markdown(tree)
	assert.Contains(t, out, "- Board Activity One (On Track): Moving along\n")
	assert.Contains(t, out, "- Board Activity Two (At Risk)\n")
	assert.Contains(t, out, "- Board Activity Three\n")
}
