package clustering

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

const (
	statusOK        = "ok"
	statusFailed    = "failed"
	statusCancelled = "cancelled"
)

// Engine runs single closed-batch clustering jobs.  An Engine holds no run
// state and may be shared; every Run owns its registry and matrix.
type Engine struct {
	opts     Options
	strategy *distance.Strategy
	logger   logging.Logger
	metrics  *prometheus.ClusteringMetrics
}

// NewEngine validates opts and binds the distance strategy.  A nil logger or
// metrics set falls back to no-op implementations.
func NewEngine(opts Options, logger logging.Logger, metrics *prometheus.ClusteringMetrics) (*Engine, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	strategy, err := distance.NewStrategy(opts.Distance)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = prometheus.NewNoopClusteringMetrics()
	}
	return &Engine{
		opts:     opts,
		strategy: strategy,
		logger:   logger.Named("clustering"),
		metrics:  metrics,
	}, nil
}

// Options returns the effective options, defaults applied.
func (e *Engine) Options() Options { return e.opts }

// Run clusters the patterns of store until K clusters remain, or fewer when
// the store holds fewer than K patterns.  The context is checked once per
// merge step; on cancellation the run stops between steps and returns
// ErrCodeRunCancelled with no partial result.
func (e *Engine) Run(ctx context.Context, store *pattern.Store) (*Result, error) {
	if store == nil || store.Len() == 0 {
		return nil, errors.Validation("pattern store is empty")
	}

	start := time.Now()
	runID := uuid.NewString()
	linkage := e.opts.Linkage.String()
	metric := e.opts.Distance.Metric.String()
	log := e.logger.With(logging.RunID(runID))
	timer := prometheus.NewTimer(e.metrics.RunDuration.WithLabelValues(linkage))

	log.Info("clustering run started",
		logging.Int("patterns", store.Len()),
		logging.String("linkage", linkage),
		logging.String("metric", metric),
		logging.Int("k", e.opts.K))
	e.metrics.PatternsPerRun.WithLabelValues().Observe(float64(store.Len()))

	result, err := e.run(ctx, runID, store, log)
	timer.ObserveDuration()

	switch {
	case err == nil:
		e.metrics.RunsTotal.WithLabelValues(linkage, metric, statusOK).Inc()
		result.Elapsed = time.Since(start)
		logging.LogOperationDuration(log, "cluster", start,
			logging.Int("merges", len(result.Merges)),
			logging.Int("clusters", len(result.Clusters)))
		return result, nil
	case errors.IsCode(err, errors.ErrCodeRunCancelled):
		e.metrics.RunsTotal.WithLabelValues(linkage, metric, statusCancelled).Inc()
		log.Warn("clustering run cancelled", logging.Err(err))
	default:
		e.metrics.RunsTotal.WithLabelValues(linkage, metric, statusFailed).Inc()
		log.Error("clustering run failed", logging.Err(err))
	}
	return nil, err
}

func (e *Engine) run(ctx context.Context, runID string, store *pattern.Store, log logging.Logger) (*Result, error) {
	// ── Seed ────────────────────────────────────────────────────────────
	patterns := store.Patterns()
	leaves := make([]*cluster.Cluster, len(patterns))
	registry := cluster.NewRegistry()
	for i, p := range patterns {
		leaves[i] = cluster.NewLeaf(i, p)
		registry.Add(leaves[i])
	}

	// ── Matrix initialisation ───────────────────────────────────────────
	matrix, err := e.seedMatrix(ctx, leaves)
	if err != nil {
		return nil, err
	}
	e.metrics.MatrixEntries.WithLabelValues(e.opts.Linkage.String()).Set(float64(matrix.Len()))
	log.Debug("dissimilarity matrix seeded", logging.Int("entries", matrix.Len()))

	// ── Agglomeration ───────────────────────────────────────────────────
	merges := make([]Merge, 0, maxInt(len(leaves)-e.opts.K, 0))
	mergeCounter := e.metrics.MergesTotal.WithLabelValues(e.opts.Linkage.String())
	nextID := len(leaves)

	for step := 0; registry.Len() > e.opts.K; step++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeRunCancelled, "clustering run cancelled").
				WithDetail(fmt.Sprintf("step=%d active=%d", step, registry.Len()))
		}
		if e.opts.Progress != nil {
			e.opts.Progress(Progress{RunID: runID, Step: step, Active: registry.Len(), Target: e.opts.K})
		}

		merged, err := e.mergeClosest(registry, matrix, nextID)
		if err != nil {
			return nil, err
		}
		nextID++
		mergeCounter.Inc()

		left, right := merged.Children()
		m := Merge{
			Step:     step,
			Left:     left.ID(),
			Right:    right.ID(),
			Merged:   merged.ID(),
			Distance: merged.Distance(),
			Size:     merged.Size(),
		}
		merges = append(merges, m)
		log.Debug("clusters merged",
			logging.Int("step", m.Step),
			logging.ClusterID("left", m.Left),
			logging.ClusterID("right", m.Right),
			logging.ClusterID("merged", m.Merged),
			logging.Float64("distance", m.Distance),
			logging.Int("active", registry.Len()))
	}

	return &Result{
		RunID:        runID,
		Clusters:     registry.Clusters(),
		Merges:       merges,
		PatternCount: len(patterns),
		Options:      e.opts,
	}, nil
}

// mergeClosest performs one agglomeration step: it merges the closest pair,
// replaces the pair's matrix rows with linkage distances to the new cluster
// and swaps the pair for the new cluster in the registry.
func (e *Engine) mergeClosest(registry *cluster.Registry, matrix *cluster.Matrix, id int) (*cluster.Cluster, error) {
	pair, _, ok := matrix.Closest()
	if !ok {
		return nil, errors.Internal("dissimilarity matrix is empty while clusters remain").
			WithDetail(fmt.Sprintf("active=%d", registry.Len()))
	}
	d, err := matrix.Get(pair)
	if err != nil {
		return nil, err
	}

	a, b := pair.A(), pair.B()
	if !registry.Contains(a) || !registry.Contains(b) {
		return nil, errors.New(errors.ErrCodeInvalidClusterPair, "closest pair holds an inactive cluster").
			WithDetail("pair=" + pair.String())
	}
	merged := cluster.NewMerge(id, a, b, d)
	registry.Remove(a)
	registry.Remove(b)

	var linkErr error
	registry.Ascend(func(r *cluster.Cluster) bool {
		dist, err := distance.LinkageDistance(r, merged, matrix, e.opts.Linkage)
		if err != nil {
			linkErr = err
			return false
		}
		matrix.Insert(cluster.MustPair(merged, r), dist)
		matrix.Remove(cluster.MustPair(a, r))
		matrix.Remove(cluster.MustPair(b, r))
		return true
	})
	if linkErr != nil {
		return nil, linkErr
	}

	matrix.Remove(pair)
	registry.Add(merged)
	return merged, nil
}

// seedMatrix computes the distance of every unordered pair of leaves on an
// ants pool, one task per row.  The first failure stops the remaining rows.
func (e *Engine) seedMatrix(ctx context.Context, leaves []*cluster.Cluster) (*cluster.Matrix, error) {
	n := len(leaves)
	matrix := cluster.NewMatrix(n * (n - 1) / 2)
	if n < 2 {
		return matrix, nil
	}

	pool, err := ants.NewPool(minInt(e.opts.Workers, n-1))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to start seeding pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		failed   atomic.Bool
		firstErr error
		once     sync.Once
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			failed.Store(true)
		})
	}

	for i := 0; i < n-1; i++ {
		if failed.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			fail(errors.Wrap(err, errors.ErrCodeRunCancelled, "clustering run cancelled during seeding"))
			break
		}
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			for j := i + 1; j < n; j++ {
				if failed.Load() {
					return
				}
				pa, _ := leaves[i].Pattern()
				pb, _ := leaves[j].Pattern()
				d, err := e.strategy.Pairwise(pa.Attribute, pb.Attribute)
				if err != nil {
					fail(errors.Wrap(err, errors.CodeUnknown, "pairwise distance failed").
						WithDetail(fmt.Sprintf("patterns=(%d,%d)", pa.ID, pb.ID)))
					return
				}
				matrix.Insert(cluster.MustPair(leaves[i], leaves[j]), d)
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			fail(errors.Wrap(err, errors.ErrCodeInternal, "failed to submit seeding task"))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	e.metrics.DistanceComputeTotal.WithLabelValues(e.opts.Distance.Metric.String()).Add(float64(matrix.Len()))
	return matrix, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

//Personal.AI order the ending
