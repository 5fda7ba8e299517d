package cluster

import (
	"github.com/google/btree"
)

const registryDegree = 16

type registryItem struct {
	c *Cluster
}

func (i registryItem) Less(than btree.Item) bool {
	return i.c.id < than.(registryItem).c.id
}

// Registry is the set of active top-level clusters, iterated in ascending id
// order so that every run over the same input merges in the same sequence.
type Registry struct {
	tree *btree.BTree
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tree: btree.New(registryDegree)}
}

// Add inserts c; adding an id that is already present replaces nothing and
// returns false.
func (r *Registry) Add(c *Cluster) bool {
	if r.tree.Has(registryItem{c}) {
		return false
	}
	r.tree.ReplaceOrInsert(registryItem{c})
	return true
}

// Remove drops c and reports whether it was present.
func (r *Registry) Remove(c *Cluster) bool {
	return r.tree.Delete(registryItem{c}) != nil
}

// Contains reports membership by id.
func (r *Registry) Contains(c *Cluster) bool {
	return r.tree.Has(registryItem{c})
}

// Len is the number of active clusters.
func (r *Registry) Len() int { return r.tree.Len() }

// Ascend visits active clusters by ascending id until fn returns false.
func (r *Registry) Ascend(fn func(*Cluster) bool) {
	r.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(registryItem).c)
	})
}

// Clusters returns the active clusters by ascending id.
func (r *Registry) Clusters() []*Cluster {
	out := make([]*Cluster, 0, r.tree.Len())
	r.Ascend(func(c *Cluster) bool {
		out = append(out, c)
		return true
	})
	return out
}

//Personal.AI order the ending
