package clustering

import (
	"fmt"
	"strings"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
)

// Node is a display tree node.  Leaves are labelled by file name and carry
// the source text; merge nodes are labelled by their distance.
type Node struct {
	Label     string   `json:"label"`
	ClusterID *int     `json:"cluster_id,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	FileText  string   `json:"file_text,omitempty"`
	Children  []*Node  `json:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Render converts a cluster tree into a display tree.
func Render(c *cluster.Cluster) *Node {
	if p, ok := c.Pattern(); ok {
		n := leafNode(p)
		id := c.ID()
		n.ClusterID = &id
		return n
	}
	left, right := c.Children()
	id, d := c.ID(), c.Distance()
	return &Node{
		Label:     fmt.Sprintf("%.2f", d),
		ClusterID: &id,
		Distance:  &d,
		Children:  []*Node{Render(left), Render(right)},
	}
}

// RenderGroup renders a flattened group without a recorded merge.  One
// pattern renders as a leaf; several render as unlabelled siblings under
// an unlabelled node with no distance.
func RenderGroup(g Group) *Node {
	if len(g.Patterns) == 1 {
		return leafNode(g.Patterns[0])
	}
	n := &Node{Children: make([]*Node, 0, len(g.Patterns))}
	for _, p := range g.Patterns {
		n.Children = append(n.Children, leafNode(p))
	}
	return n
}

func leafNode(p pattern.Pattern) *Node {
	return &Node{Label: p.FileName, FileText: p.FileText}
}

// Text draws the tree with box characters, one node per line.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.WriteString(displayLabel(n))
	sb.WriteByte('\n')
	writeChildren(&sb, n, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, n *Node, prefix string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(displayLabel(child))
		sb.WriteByte('\n')
		writeChildren(sb, child, prefix+indent)
	}
}

func displayLabel(n *Node) string {
	if n.Label == "" {
		return "·"
	}
	return n.Label
}

//Personal.AI order the ending
