// Package cluster models the dendrogram nodes, the registry of active
// top-level clusters and the pairwise dissimilarity matrix between them.
package cluster

import (
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
)

// Cluster is an immutable dendrogram node.  A leaf owns exactly one pattern;
// an internal node owns exactly two children.  Children are never shared and
// carry no reference back to their parent.
type Cluster struct {
	id       int
	distance float64
	size     int
	pattern  *pattern.Pattern
	left     *Cluster
	right    *Cluster
}

// NewLeaf creates a singleton cluster around p.
func NewLeaf(id int, p pattern.Pattern) *Cluster {
	pc := p
	return &Cluster{id: id, size: 1, pattern: &pc}
}

// NewMerge creates the parent of a and b at the given merge distance.
func NewMerge(id int, a, b *Cluster, distance float64) *Cluster {
	return &Cluster{
		id:       id,
		distance: distance,
		size:     a.size + b.size,
		left:     a,
		right:    b,
	}
}

// ID is the globally unique, monotonically assigned cluster id.
func (c *Cluster) ID() int { return c.id }

// Distance is the merge distance; zero for leaves.
func (c *Cluster) Distance() float64 { return c.distance }

// Size is the number of leaf patterns beneath the cluster.
func (c *Cluster) Size() int { return c.size }

// IsLeaf reports whether the cluster wraps a single pattern.
func (c *Cluster) IsLeaf() bool { return c.pattern != nil }

// Pattern returns the directly owned pattern of a leaf.
func (c *Cluster) Pattern() (pattern.Pattern, bool) {
	if c.pattern == nil {
		return pattern.Pattern{}, false
	}
	return *c.pattern, true
}

// Children returns the two children of an internal node, or nils for a leaf.
func (c *Cluster) Children() (*Cluster, *Cluster) {
	return c.left, c.right
}

// Patterns collects every leaf pattern beneath c in post-order, left child
// first.  The walk uses an explicit stack so deep chains from single linkage
// do not grow the goroutine stack.
func (c *Cluster) Patterns() []pattern.Pattern {
	out := make([]pattern.Pattern, 0, c.size)
	stack := []*Cluster{c}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.pattern != nil {
			out = append(out, *n.pattern)
			continue
		}
		// right pushed first so left is emitted first
		stack = append(stack, n.right, n.left)
	}
	return out
}

// Depth is the number of edges on the longest path to a leaf.
func (c *Cluster) Depth() int {
	type frame struct {
		n *Cluster
		d int
	}
	deepest := 0
	stack := []frame{{c, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.d > deepest {
			deepest = f.d
		}
		if f.n.pattern == nil {
			stack = append(stack, frame{f.n.left, f.d + 1}, frame{f.n.right, f.d + 1})
		}
	}
	return deepest
}

//Personal.AI order the ending
