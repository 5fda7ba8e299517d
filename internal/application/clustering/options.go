// Package clustering runs agglomerative hierarchical clustering over a
// pattern store and turns the resulting cluster trees into flat groups,
// display trees and a diagnostic distance dump.
package clustering

import (
	"runtime"

	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Progress is reported once per agglomeration step, before the merge.
type Progress struct {
	RunID  string
	Step   int
	Active int
	Target int
}

// Options selects linkage, metric and the number of clusters to keep.
type Options struct {
	Linkage  distance.Linkage `json:"linkage"`
	Distance distance.Config  `json:"distance"`
	K        int              `json:"k"`

	// Workers bounds the seeding pool; zero means GOMAXPROCS.
	Workers int `json:"workers,omitempty"`

	// Progress, when set, is called synchronously from the run goroutine.
	Progress func(Progress) `json:"-"`
}

// DefaultOptions is single linkage, 5-gram Jaccard distance, one cluster.
func DefaultOptions() Options {
	return Options{
		Linkage:  distance.DefaultLinkage,
		Distance: distance.DefaultConfig(),
		K:        1,
	}
}

func (o Options) withDefaults() Options {
	if o.Linkage == "" {
		o.Linkage = distance.DefaultLinkage
	}
	if o.Distance.Metric == "" {
		o.Distance.Metric = distance.DefaultMetric
	}
	if o.Distance.NGram == 0 {
		o.Distance.NGram = distance.DefaultNGram
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Validate checks K, the linkage and the metric configuration.
func (o Options) Validate() error {
	if o.K < 1 {
		return errors.Errorf(errors.ErrCodeValidation, "k must be >= 1, got %d", o.K)
	}
	if !o.Linkage.IsValid() {
		return errors.New(errors.ErrCodeUnknownLinkage, "unsupported linkage strategy: "+string(o.Linkage))
	}
	return o.Distance.Validate()
}

//Personal.AI order the ending
