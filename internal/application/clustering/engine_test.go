package clustering

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func numericStore(t *testing.T, values ...float64) *pattern.Store {
	t.Helper()
	names := make([]string, len(values))
	texts := make([]string, len(values))
	for i := range values {
		names[i] = "doc" + string(rune('A'+i)) + ".txt"
	}
	s, err := pattern.FromFloats(values, names, texts)
	require.NoError(t, err)
	return s
}

func textStore(t *testing.T, values ...string) *pattern.Store {
	t.Helper()
	names := make([]string, len(values))
	texts := make([]string, len(values))
	for i := range values {
		names[i] = "doc" + string(rune('A'+i)) + ".txt"
		texts[i] = "text of " + values[i]
	}
	s, err := pattern.FromStrings(values, names, texts)
	require.NoError(t, err)
	return s
}

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(opts, logging.NewNopLogger(), nil)
	require.NoError(t, err)
	return e
}

func numericValues(c *cluster.Cluster) []float64 {
	var out []float64
	for _, p := range c.Patterns() {
		v, _ := p.Attribute.Numeric()
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func mergeDistances(res *Result) []float64 {
	out := make([]float64, len(res.Merges))
	for i, m := range res.Merges {
		out[i] = m.Distance
	}
	return out
}

func walk(c *cluster.Cluster, fn func(*cluster.Cluster)) {
	fn(c)
	if l, r := c.Children(); l != nil {
		walk(l, fn)
		walk(r, fn)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

func TestNewEngine_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		code errors.ErrorCode
	}{
		{"k zero", Options{K: 0}, errors.ErrCodeValidation},
		{"unknown linkage", Options{K: 1, Linkage: "ward"}, errors.ErrCodeUnknownLinkage},
		{"unknown metric", Options{K: 1, Distance: distance.Config{Metric: "cosine"}}, errors.ErrCodeUnknownMetric},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEngine(tt.opts, nil, nil)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code))
		})
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{K: 2})
	opts := e.Options()
	assert.Equal(t, distance.LinkageSingle, opts.Linkage)
	assert.Equal(t, distance.MetricJaccardDistance, opts.Distance.Metric)
	assert.Equal(t, 5, opts.Distance.NGram)
	assert.Positive(t, opts.Workers)
}

// ─────────────────────────────────────────────────────────────────────────────
// Run
// ─────────────────────────────────────────────────────────────────────────────

func TestRun_EmptyStore(t *testing.T) {
	t.Parallel()

	e := newEngine(t, DefaultOptions())
	empty, err := pattern.FromStrings(nil, nil, nil)
	require.NoError(t, err)

	_, err = e.Run(context.Background(), empty)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	_, err = e.Run(context.Background(), nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestRun_NumericSingleLinkageTwoClusters(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{Linkage: distance.LinkageSingle, K: 2})
	res, err := e.Run(context.Background(), numericStore(t, 1, 2, 10, 11))
	require.NoError(t, err)

	require.Len(t, res.Clusters, 2)
	assert.Equal(t, []float64{1, 2}, numericValues(res.Clusters[0]))
	assert.Equal(t, []float64{10, 11}, numericValues(res.Clusters[1]))
	for _, c := range res.Clusters {
		assert.Equal(t, 1.0, c.Distance())
		assert.Equal(t, 2, c.Size())
	}
	assert.Equal(t, 4, res.PatternCount)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []int{4, 5}, []int{res.Clusters[0].ID(), res.Clusters[1].ID()})
}

func TestRun_DefaultMetricExample(t *testing.T) {
	t.Parallel()

	store := textStore(t, "aaaa bbbb", "aaaa bbbb", "cccc dddd")
	require.Equal(t, 2, store.Len())

	e := newEngine(t, DefaultOptions())
	res, err := e.Run(context.Background(), store)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 1)
	root := res.Clusters[0]
	assert.Equal(t, 1.0, root.Distance())
	l, r := root.Children()
	require.NotNil(t, l)
	assert.True(t, l.IsLeaf())
	assert.True(t, r.IsLeaf())
	assert.Equal(t, 2, root.Size())
}

func TestRun_RegistrySizeIsMinOfKAndPatterns(t *testing.T) {
	t.Parallel()

	for _, k := range []int{1, 2, 3, 5, 8} {
		k := k
		t.Run("", func(t *testing.T) {
			t.Parallel()
			e := newEngine(t, Options{Linkage: distance.LinkageComplete, K: k})
			res, err := e.Run(context.Background(), numericStore(t, 3, 1, 4, 15, 9))
			require.NoError(t, err)
			assert.Len(t, res.Clusters, minInt(k, 5))
			assert.Len(t, res.Merges, 5-minInt(k, 5))
		})
	}
}

func TestRun_SizeMatchesLeavesForEveryCluster(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	values := make([]float64, 40)
	for i := range values {
		values[i] = rng.Float64() * 100
	}

	for _, linkage := range distance.AllLinkages() {
		linkage := linkage
		t.Run(linkage.String(), func(t *testing.T) {
			t.Parallel()
			e := newEngine(t, Options{Linkage: linkage, K: 3})
			res, err := e.Run(context.Background(), numericStore(t, values...))
			require.NoError(t, err)

			total := 0
			for _, root := range res.Clusters {
				walk(root, func(c *cluster.Cluster) {
					assert.Equal(t, len(c.Patterns()), c.Size(), "cluster %d", c.ID())
				})
				total += root.Size()
			}
			assert.Equal(t, 40, total)
		})
	}
}

func TestRun_SingleLinkageMonotone(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	values := make([]float64, 60)
	for i := range values {
		values[i] = rng.NormFloat64() * 10
	}

	e := newEngine(t, Options{Linkage: distance.LinkageSingle, K: 1})
	res, err := e.Run(context.Background(), numericStore(t, values...))
	require.NoError(t, err)

	ds := mergeDistances(res)
	require.Len(t, ds, 59)
	for i := 1; i < len(ds); i++ {
		assert.GreaterOrEqual(t, ds[i], ds[i-1], "merge %d", i)
	}
}

func TestRun_DeterministicTieBreak(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{Linkage: distance.LinkageSingle, K: 1, Workers: 3})
	res, err := e.Run(context.Background(), numericStore(t, 0, 1, 2, 3))
	require.NoError(t, err)

	want := []Merge{
		{Step: 0, Left: 0, Right: 1, Merged: 4, Distance: 1, Size: 2},
		{Step: 1, Left: 2, Right: 3, Merged: 5, Distance: 1, Size: 2},
		{Step: 2, Left: 4, Right: 5, Merged: 6, Distance: 1, Size: 4},
	}
	assert.Equal(t, want, res.Merges)
}

func TestRun_LinkageStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		linkage distance.Linkage
		want    []float64
	}{
		{distance.LinkageSingle, []float64{1, 2, 7}},
		{distance.LinkageComplete, []float64{1, 3, 10}},
		{distance.LinkageAverageWPGMA, []float64{1, 2.5, 8.25}},
		{distance.LinkageAverageUPGMA, []float64{1, 2.5, 9.5*2.0/3.0 + 7.0/3.0}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.linkage.String(), func(t *testing.T) {
			t.Parallel()
			e := newEngine(t, Options{Linkage: tt.linkage, K: 1})
			res, err := e.Run(context.Background(), numericStore(t, 0, 1, 3, 10))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, mergeDistances(res), 1e-9)
		})
	}
}

func TestRun_MetricFailureAborts(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{K: 1, Distance: distance.Config{Metric: distance.MetricHammingDistance}})
	res, err := e.Run(context.Background(), textStore(t, "abc", "abd", "abcdef"))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMetricFailed))
}

func TestRun_CancelledBetweenSteps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps []int
	opts := Options{
		Linkage: distance.LinkageSingle,
		K:       1,
		Progress: func(p Progress) {
			steps = append(steps, p.Step)
			if p.Step == 1 {
				cancel()
			}
		},
	}
	e := newEngine(t, opts)
	res, err := e.Run(ctx, numericStore(t, 1, 2, 3, 4, 5))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRunCancelled))
	assert.Equal(t, []int{0, 1}, steps)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEngine(t, DefaultOptions())
	_, err := e.Run(ctx, numericStore(t, 1, 2, 3))
	assert.True(t, errors.IsCode(err, errors.ErrCodeRunCancelled))
}

func TestRun_ProgressReportsActiveCount(t *testing.T) {
	t.Parallel()

	var got []Progress
	e := newEngine(t, Options{K: 2, Progress: func(p Progress) { got = append(got, p) }})
	res, err := e.Run(context.Background(), numericStore(t, 1, 2, 3, 4))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Active)
	assert.Equal(t, 3, got[1].Active)
	assert.Equal(t, 2, got[1].Target)
	assert.Equal(t, res.RunID, got[0].RunID)
}

func TestMergeClosest_MatrixCoversActivePairs(t *testing.T) {
	t.Parallel()

	for _, linkage := range distance.AllLinkages() {
		linkage := linkage
		t.Run(linkage.String(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(7))
			values := make([]float64, 40)
			for i := range values {
				values[i] = rng.Float64() * 1000
			}
			store := numericStore(t, values...)
			e := newEngine(t, Options{Linkage: linkage, K: 1})

			registry := cluster.NewRegistry()
			leaves := make([]*cluster.Cluster, 0, store.Len())
			for i, p := range store.Patterns() {
				leaf := cluster.NewLeaf(i, p)
				leaves = append(leaves, leaf)
				registry.Add(leaf)
			}
			matrix, err := e.seedMatrix(context.Background(), leaves)
			require.NoError(t, err)

			assertCovered := func() {
				active := registry.Clusters()
				n := len(active)
				require.Equal(t, n*(n-1)/2, matrix.Len(), "active=%d", n)
				for i := 0; i < n; i++ {
					for j := i + 1; j < n; j++ {
						_, err := matrix.Get(cluster.MustPair(active[i], active[j]))
						require.NoError(t, err, "pair (%d,%d)", active[i].ID(), active[j].ID())
					}
				}
			}

			assertCovered()
			for id := len(leaves); registry.Len() > 1; id++ {
				merged, err := e.mergeClosest(registry, matrix, id)
				require.NoError(t, err)
				assert.True(t, registry.Contains(merged))
				assertCovered()
			}
			assert.Equal(t, 0, matrix.Len())
		})
	}
}

func TestMergeClosest_RejectsStalePair(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{K: 1})
	store := numericStore(t, 1, 2, 5)
	p := store.Patterns()
	a, b, c := cluster.NewLeaf(0, p[0]), cluster.NewLeaf(1, p[1]), cluster.NewLeaf(2, p[2])

	registry := cluster.NewRegistry()
	registry.Add(b)
	registry.Add(c)
	matrix := cluster.NewMatrix(3)
	matrix.Insert(cluster.MustPair(a, b), 1)
	matrix.Insert(cluster.MustPair(b, c), 3)

	_, err := e.mergeClosest(registry, matrix, 3)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidClusterPair))
	assert.Equal(t, 2, registry.Len())
}

func TestRun_SinglePattern(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{K: 3})
	res, err := e.Run(context.Background(), numericStore(t, 42))
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.True(t, res.Clusters[0].IsLeaf())
	assert.Empty(t, res.Merges)
}

func TestRun_LogsAndMetrics(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "dendro"}, nil)
	require.NoError(t, err)

	e, err := NewEngine(Options{K: 1}, logging.NewLoggerFromCore(core), prometheus.NewClusteringMetrics(collector))
	require.NoError(t, err)

	_, err = e.Run(context.Background(), numericStore(t, 1, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("clustering run started").Len())
	assert.Equal(t, 2, logs.FilterMessage("clusters merged").Len())
	assert.Equal(t, 1, logs.FilterMessage("operation completed").Len())

	families, err := collector.Gatherer().Gather()
	require.NoError(t, err)
	names := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				names[f.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 1.0, names["dendro_clustering_runs_total"])
	assert.Equal(t, 2.0, names["dendro_clustering_merges_total"])
	assert.Equal(t, 3.0, names["dendro_clustering_pairwise_distance_total"])
}

//Personal.AI order the ending
