// Package render turns a report tree into markdown: nesting depth maps 1:1
// to heading level and session summaries become bullet lists, which is the
// shape the downstream summarization step consumes.
package render

import (
	"fmt"
	"strings"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// maxHeadingLevel caps heading depth at markdown's h6.
const maxHeadingLevel = 6

// Markdown renders a report tree. Returns "" for a nil tree.
func Markdown(node *domain.HierarchyNode) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	node.Walk(func(n *domain.HierarchyNode, depth int) {
		writeNode(&b, n, depth)
	})
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeNode(b *strings.Builder, n *domain.HierarchyNode, depth int) {
	level := depth
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), n.RecordName)

	if n.ActivityStatus != nil || n.ActivityComments != nil {
		if n.ActivityStatus != nil && *n.ActivityStatus != "" {
			fmt.Fprintf(b, "Status: %s\n\n", *n.ActivityStatus)
		}
		if n.ActivityComments != nil && *n.ActivityComments != "" {
			fmt.Fprintf(b, "Comments: %s\n\n", *n.ActivityComments)
		}
	}

	if len(n.ActivityDetails) > 0 {
		for _, d := range n.ActivityDetails {
			fmt.Fprintf(b, "- %s", d.RecordName)
			if d.Status != "" {
				fmt.Fprintf(b, " (%s)", d.Status)
			}
			if d.Comments != "" {
				fmt.Fprintf(b, ": %s", d.Comments)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(n.TTASessions) > 0 {
		for _, s := range n.TTASessions {
			fmt.Fprintf(b, "- %s\n", s.Summary)
		}
		b.WriteString("\n")
	}
}
