package clustering

import (
	"time"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
)

// Merge records one agglomeration step.
type Merge struct {
	Step     int     `json:"step"`
	Left     int     `json:"left"`
	Right    int     `json:"right"`
	Merged   int     `json:"merged"`
	Distance float64 `json:"distance"`
	Size     int     `json:"size"`
}

// Result is the outcome of a completed run.
type Result struct {
	RunID        string             `json:"run_id"`
	Clusters     []*cluster.Cluster `json:"-"`
	Merges       []Merge            `json:"merges"`
	PatternCount int                `json:"pattern_count"`
	Options      Options            `json:"options"`
	Elapsed      time.Duration      `json:"elapsed_ns"`
}

//Personal.AI order the ending
