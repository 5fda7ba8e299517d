package clustering

import (
	"context"
	"io"

	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
)

// Service is the clustering use case as seen by the CLI and HTTP surfaces.
type Service interface {
	// Cluster runs one job over store and summarises it.
	Cluster(ctx context.Context, store *pattern.Store, opts Options) (*Report, error)
	// Matrix writes the diagnostic distance dump of store to w.
	Matrix(ctx context.Context, store *pattern.Store, opts Options, w io.Writer) error
}

// GroupView is the flat, display-oriented form of a Group.
type GroupView struct {
	Index     int      `json:"index"`
	ClusterID int      `json:"cluster_id"`
	Distance  float64  `json:"distance"`
	Size      int      `json:"size"`
	Depth     int      `json:"depth"`
	Files     []string `json:"files"`
	Members   *Node    `json:"members"`
}

// Report is the serialisable summary of a completed run.
type Report struct {
	RunID        string      `json:"run_id"`
	PatternCount int         `json:"pattern_count"`
	InputCount   int         `json:"input_count"`
	Options      Options     `json:"options"`
	ElapsedMS    int64       `json:"elapsed_ms"`
	Merges       []Merge     `json:"merges"`
	Groups       []GroupView `json:"groups"`
	Trees        []*Node     `json:"trees"`
}

// NewReport renders every final cluster of res and flattens it into groups.
// Each group also carries its members as a flat display tree.
func NewReport(res *Result, inputCount int) *Report {
	rep := &Report{
		RunID:        res.RunID,
		PatternCount: res.PatternCount,
		InputCount:   inputCount,
		Options:      res.Options,
		ElapsedMS:    res.Elapsed.Milliseconds(),
		Merges:       res.Merges,
	}
	if rep.Merges == nil {
		rep.Merges = []Merge{}
	}
	for i, g := range Flatten(res) {
		rep.Groups = append(rep.Groups, GroupView{
			Index:     g.Index,
			ClusterID: g.ClusterID,
			Distance:  g.Distance,
			Size:      g.Size(),
			Depth:     res.Clusters[i].Depth(),
			Files:     g.FileNames(),
			Members:   RenderGroup(g),
		})
	}
	for _, c := range res.Clusters {
		rep.Trees = append(rep.Trees, Render(c))
	}
	return rep
}

type service struct {
	logger  logging.Logger
	metrics *prometheus.ClusteringMetrics
}

// NewService returns a Service building one Engine per call.
func NewService(logger logging.Logger, metrics *prometheus.ClusteringMetrics) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &service{logger: logger, metrics: metrics}
}

func (s *service) Cluster(ctx context.Context, store *pattern.Store, opts Options) (*Report, error) {
	engine, err := NewEngine(opts, s.logger, s.metrics)
	if err != nil {
		return nil, err
	}
	res, err := engine.Run(ctx, store)
	if err != nil {
		return nil, err
	}
	return NewReport(res, store.InputLen()), nil
}

func (s *service) Matrix(ctx context.Context, store *pattern.Store, opts Options, w io.Writer) error {
	engine, err := NewEngine(opts, s.logger, s.metrics)
	if err != nil {
		return err
	}
	return engine.DumpMatrix(ctx, store, w)
}

//Personal.AI order the ending
