package formatter

import (
	"fmt"
	"strings"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Badge  string
}

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors. Badges are rendered dim in brackets after the title.
func RenderTree(items []TreeItem, styled bool) string {
	var b strings.Builder
	for _, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if styled && item.Level == 0 {
			title = StyleHeader.Render(title)
		}

		line := prefix + title
		if item.Badge != "" {
			badge := fmt.Sprintf("[ %s ]", item.Badge)
			if styled {
				badge = StyleDim.Render(badge)
			}
			line += " " + badge
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// HierarchyItems flattens a report tree into TreeItems for display. Badges
// summarize what each node carries: session counts, rolled-up activity
// rows, or a Board Plan activity status.
func HierarchyItems(root *domain.HierarchyNode) []TreeItem {
	var items []TreeItem
	var visit func(n *domain.HierarchyNode, level int, isLast bool)
	visit = func(n *domain.HierarchyNode, level int, isLast bool) {
		items = append(items, TreeItem{
			Title:  n.RecordName,
			Level:  level,
			IsLast: isLast,
			Badge:  nodeBadge(n),
		})
		for i, child := range n.Children {
			visit(child, level+1, i == len(n.Children)-1)
		}
	}
	if root != nil {
		visit(root, 0, true)
	}
	return items
}

func nodeBadge(n *domain.HierarchyNode) string {
	switch {
	case n.ActivityStatus != nil && *n.ActivityStatus != "":
		return *n.ActivityStatus
	case len(n.ActivityDetails) > 0:
		return fmt.Sprintf("%d activities", len(n.ActivityDetails))
	case len(n.TTASessions) == 1:
		return "1 session"
	case len(n.TTASessions) > 1:
		return fmt.Sprintf("%d sessions", len(n.TTASessions))
	default:
		return ""
	}
}
