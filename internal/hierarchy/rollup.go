package hierarchy

import "github.com/CalebGreaves/tta-summary-dev/internal/domain"

// rollupAndPrune folds the full tree into its pruned report form: every node
// at the bottom level absorbs its descendants' data and loses its subtree,
// while nodes above the bottom level keep structure only. The fold returns
// new nodes and never mutates its input.
func rollupAndPrune(node *domain.HierarchyNode, bottom domain.Level, boardPlan bool) *domain.HierarchyNode {
	if node == nil {
		return nil
	}
	out := *node

	// A node collects rollup data when it sits exactly at the bottom level,
	// or below it on a skip-level branch where the bottom level does not
	// occur (the first such node becomes the collection point).
	if node.Type.Rank() >= bottom.Rank() {
		out.Children = []*domain.HierarchyNode{}
		if boardPlan && node.Type != domain.LevelActivity {
			out.ActivityDetails = collectActivityDetails(node)
		} else if !boardPlan {
			out.TTASessions = collectSessions(node)
		}
		return &out
	}

	children := make([]*domain.HierarchyNode, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, rollupAndPrune(child, bottom, boardPlan))
	}
	out.Children = children
	out.TTASessions = []domain.SessionRef{}
	return &out
}

// collectSessions gathers the sessions of every descendant activity in
// traversal order, deduplicated by session id with the first occurrence
// winning.
func collectSessions(node *domain.HierarchyNode) []domain.SessionRef {
	out := []domain.SessionRef{}
	seen := make(map[string]bool)
	node.Walk(func(n *domain.HierarchyNode, _ int) {
		if n.Type != domain.LevelActivity {
			return
		}
		for _, s := range n.TTASessions {
			if s.ID != nil {
				if seen[*s.ID] {
					continue
				}
				seen[*s.ID] = true
			}
			out = append(out, s)
		}
	})
	return out
}

// collectActivityDetails gathers the Board Plan rollup rows: name, comments
// and status of every descendant activity, in traversal order.
func collectActivityDetails(node *domain.HierarchyNode) []domain.ActivityDetail {
	var out []domain.ActivityDetail
	node.Walk(func(n *domain.HierarchyNode, _ int) {
		if n.Type != domain.LevelActivity {
			return
		}
		detail := domain.ActivityDetail{RecordName: n.RecordName}
		if n.ActivityComments != nil {
			detail.Comments = *n.ActivityComments
		}
		if n.ActivityStatus != nil {
			detail.Status = *n.ActivityStatus
		}
		out = append(out, detail)
	})
	return out
}
