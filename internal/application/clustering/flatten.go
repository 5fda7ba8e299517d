package clustering

import (
	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
)

// Group is the flat membership of one final cluster.
type Group struct {
	Index     int               `json:"index"`
	ClusterID int               `json:"cluster_id"`
	Distance  float64           `json:"distance"`
	Patterns  []pattern.Pattern `json:"patterns"`
}

// Size is the number of patterns in the group.
func (g Group) Size() int { return len(g.Patterns) }

// FileNames lists the source files of the group's patterns.
func (g Group) FileNames() []string {
	out := make([]string, len(g.Patterns))
	for i, p := range g.Patterns {
		out[i] = p.FileName
	}
	return out
}

// Flatten returns one group per final cluster, in ascending cluster id
// order, each holding the leaf patterns beneath it in post-order.
func Flatten(result *Result) []Group {
	if result == nil {
		return nil
	}
	return FlattenClusters(result.Clusters)
}

// FlattenClusters is Flatten over an arbitrary cluster list.
func FlattenClusters(clusters []*cluster.Cluster) []Group {
	groups := make([]Group, len(clusters))
	for i, c := range clusters {
		groups[i] = Group{
			Index:     i,
			ClusterID: c.ID(),
			Distance:  c.Distance(),
			Patterns:  c.Patterns(),
		}
	}
	return groups
}

//Personal.AI order the ending
