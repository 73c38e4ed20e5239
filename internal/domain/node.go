package domain

// SessionRef is a T/TA session as it appears on a hierarchy node: identity
// plus the AI-ready summary text. ID is nil after a compact round trip.
type SessionRef struct {
	ID      *string `json:"id"`
	Summary string  `json:"summary"`
}

// ActivityDetail is a rolled-up view of one descendant activity, attached to
// bottom-level nodes of Board Plan reports.
type ActivityDetail struct {
	RecordName string `json:"recordName"`
	Comments   string `json:"comments"`
	Status     string `json:"status"`
}

// HierarchyNode is one node of the pruned report tree. Which optional fields
// are set depends on Type and on the report variant:
//
//   - TTASessions carries data on activity leaves and, after rollup, on
//     bottom-level nodes; it is always non-nil on built trees.
//   - ActivityStatus/ActivityComments are set only on activity leaves of
//     Board Plan reports.
//   - ActivityDetails is set only on non-activity bottom-level nodes of
//     Board Plan reports.
//
// TableID and RecordID locate the record in the external store; both become
// nil after a compact encode/decode round trip.
type HierarchyNode struct {
	TableID          *string          `json:"tableId"`
	RecordID         *string          `json:"recordId"`
	Type             Level            `json:"type"`
	RecordName       string           `json:"recordName"`
	TTASessions      []SessionRef     `json:"ttaSessions"`
	Children         []*HierarchyNode `json:"children"`
	ActivityStatus   *string          `json:"activityStatus,omitempty"`
	ActivityComments *string          `json:"activityComments,omitempty"`
	ActivityDetails  []ActivityDetail `json:"activityDetails,omitempty"`
}

// Walk visits the node and every descendant in depth-first pre-order.
func (n *HierarchyNode) Walk(visit func(node *HierarchyNode, depth int)) {
	n.walk(visit, 1)
}

func (n *HierarchyNode) walk(visit func(node *HierarchyNode, depth int), depth int) {
	if n == nil {
		return
	}
	visit(n, depth)
	for _, child := range n.Children {
		child.walk(visit, depth+1)
	}
}
