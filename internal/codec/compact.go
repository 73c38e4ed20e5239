// Package codec implements the compact wire form of report trees: a lossy
// but deterministic two-way transform that drops store identities and keeps
// only the content the report renderer needs.
package codec

import (
	"encoding/json"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// CompactNode is the minimized wire shape of a HierarchyNode. Empty
// collections and absent Board Plan fields are omitted to keep the payload
// small.
type CompactNode struct {
	T   domain.Level    `json:"t"`
	N   string          `json:"n"`
	TTA []string        `json:"tta,omitempty"`
	AD  []CompactDetail `json:"ad,omitempty"`
	AS  *string         `json:"as,omitempty"`
	AC  *string         `json:"ac,omitempty"`
	C   []*CompactNode  `json:"c,omitempty"`
}

// CompactDetail is the wire shape of one rolled-up activity row.
type CompactDetail struct {
	N string `json:"n"`
	C string `json:"c"`
	S string `json:"s"`
}

// Encode maps a report tree to its compact form, discarding table, record
// and session ids. Encode(nil) is nil.
func Encode(node *domain.HierarchyNode) *CompactNode {
	if node == nil {
		return nil
	}
	out := &CompactNode{
		T:  node.Type,
		N:  node.RecordName,
		AS: node.ActivityStatus,
		AC: node.ActivityComments,
	}
	if len(node.TTASessions) > 0 {
		out.TTA = make([]string, 0, len(node.TTASessions))
		for _, s := range node.TTASessions {
			out.TTA = append(out.TTA, s.Summary)
		}
	}
	if len(node.ActivityDetails) > 0 {
		out.AD = make([]CompactDetail, 0, len(node.ActivityDetails))
		for _, d := range node.ActivityDetails {
			out.AD = append(out.AD, CompactDetail{N: d.RecordName, C: d.Comments, S: d.Status})
		}
	}
	if len(node.Children) > 0 {
		out.C = make([]*CompactNode, 0, len(node.Children))
		for _, child := range node.Children {
			out.C = append(out.C, Encode(child))
		}
	}
	return out
}

// Decode reconstructs a full-form tree from its compact form. Identity
// fields come back nil; ttaSessions and children come back as empty slices
// when their compact keys are absent. Decode(nil) is nil.
func Decode(compact *CompactNode) *domain.HierarchyNode {
	if compact == nil {
		return nil
	}
	out := &domain.HierarchyNode{
		Type:             compact.T,
		RecordName:       compact.N,
		TTASessions:      []domain.SessionRef{},
		Children:         []*domain.HierarchyNode{},
		ActivityStatus:   compact.AS,
		ActivityComments: compact.AC,
	}
	for _, summary := range compact.TTA {
		out.TTASessions = append(out.TTASessions, domain.SessionRef{Summary: summary})
	}
	if len(compact.AD) > 0 {
		out.ActivityDetails = make([]domain.ActivityDetail, 0, len(compact.AD))
		for _, d := range compact.AD {
			out.ActivityDetails = append(out.ActivityDetails, domain.ActivityDetail{
				RecordName: d.N,
				Comments:   d.C,
				Status:     d.S,
			})
		}
	}
	for _, child := range compact.C {
		out.Children = append(out.Children, Decode(child))
	}
	return out
}

// EncodeJSON renders a report tree as compact-form JSON.
func EncodeJSON(node *domain.HierarchyNode) (string, error) {
	data, err := json.Marshal(Encode(node))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeJSON parses compact-form JSON back into a full-form tree.
func DecodeJSON(data string) (*domain.HierarchyNode, error) {
	var compact CompactNode
	if err := json.Unmarshal([]byte(data), &compact); err != nil {
		return nil, err
	}
	return Decode(&compact), nil
}
