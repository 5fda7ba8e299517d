package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Catalog parsing
// ─────────────────────────────────────────────────────────────────────────────

func TestParseMetric(t *testing.T) {
	t.Parallel()

	for _, m := range AllMetrics() {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMetric("  Jaccard_Distance ")
	require.NoError(t, err)
	assert.Equal(t, MetricJaccardDistance, got)

	_, err = ParseMetric("cosine")
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownMetric))
}

func TestAllMetrics_MatchesCatalog(t *testing.T) {
	t.Parallel()
	assert.Len(t, AllMetrics(), len(metricFuncs))
	for _, m := range AllMetrics() {
		assert.True(t, m.IsValid(), m)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, DefaultConfig().Validate())
	assert.True(t, errors.IsCode(Config{Metric: "nope"}.Validate(), errors.ErrCodeUnknownMetric))
	assert.True(t, errors.IsCode(Config{NGram: -2}.Validate(), errors.ErrCodeValidation))
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairwise
// ─────────────────────────────────────────────────────────────────────────────

func TestPairwise_Numeric(t *testing.T) {
	t.Parallel()

	d, err := PairwiseDistance(DefaultConfig(), pattern.NumericAttribute(2), pattern.NumericAttribute(10.5))
	require.NoError(t, err)
	assert.Equal(t, 8.5, d)

	d, err = PairwiseDistance(DefaultConfig(), pattern.NumericAttribute(10.5), pattern.NumericAttribute(2))
	require.NoError(t, err)
	assert.Equal(t, 8.5, d)
}

func TestPairwise_NumericNaN(t *testing.T) {
	t.Parallel()

	d, err := PairwiseDistance(DefaultConfig(), pattern.NumericAttribute(math.NaN()), pattern.NumericAttribute(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestPairwise_UnsupportedKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b pattern.Attribute
	}{
		{"zero values", pattern.Attribute{}, pattern.Attribute{}},
		{"mixed", pattern.NumericAttribute(1), pattern.TextAttribute("1")},
		{"invalid and text", pattern.Attribute{}, pattern.TextAttribute("x")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := PairwiseDistance(DefaultConfig(), tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedAttributeType))
		})
	}
}

func TestPairwise_MetricFailureWrapped(t *testing.T) {
	t.Parallel()

	_, err := PairwiseDistance(Config{Metric: MetricHammingDistance},
		pattern.TextAttribute("abc"), pattern.TextAttribute("abcd"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMetricFailed))
	assert.Contains(t, err.Error(), "hamming_distance")
}

func TestPairwise_SymmetricForEveryMetric(t *testing.T) {
	t.Parallel()

	samples := []string{
		"",
		"acme",
		"acme holdings",
		"names of reporting persons acme capital partners lp",
		"reporting persons acme capital partners lp delaware",
		"zeta",
		"émile dubois",
	}

	for _, m := range AllMetrics() {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			t.Parallel()
			s, err := NewStrategy(Config{Metric: m, NGram: 2})
			require.NoError(t, err)
			for _, x := range samples {
				for _, y := range samples {
					dxy, errXY := s.Pairwise(pattern.TextAttribute(x), pattern.TextAttribute(y))
					dyx, errYX := s.Pairwise(pattern.TextAttribute(y), pattern.TextAttribute(x))
					assert.Equal(t, errXY == nil, errYX == nil, "%q/%q", x, y)
					if errXY == nil {
						assert.Equal(t, dxy, dyx, "%q/%q", x, y)
						assert.False(t, math.IsNaN(dxy))
						assert.GreaterOrEqual(t, dxy, 0.0)
					}
				}
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Individual metrics
// ─────────────────────────────────────────────────────────────────────────────

func TestJaccardDistance_Default(t *testing.T) {
	t.Parallel()

	s, err := NewStrategy(DefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"fewer than n words", "aaaa bbbb", "aaaa bbbb", 1},
		{"identical", "a b c d e f", "a b c d e f", 0},
		{"subset uses min", "a b c d e", "a b c d e f g", 0},
		{"half shared", "a b c d e f", "a b c d e x", 0.5},
		{"disjoint", "a b c d e", "v w x y z", 1},
		{"empty", "", "a b c d e", 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := s.Pairwise(pattern.TextAttribute(tt.a), pattern.TextAttribute(tt.b))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-9)
		})
	}
}

func TestWordNGrams(t *testing.T) {
	t.Parallel()

	assert.Len(t, wordNGrams("a  b\tc", 2), 2)
	assert.Contains(t, wordNGrams("a  b\tc", 2), "a b")
	assert.Empty(t, wordNGrams("a b", 3))
	assert.Len(t, wordNGrams("x x x x", 2), 1)
}

func TestMetrics_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		metric Metric
		a, b   string
		want   float64
	}{
		{MetricLevenshteinDistance, "kitten", "sitting", 3},
		{MetricNormalizedLevenshteinDistance, "kitten", "sitting", 3.0 / 7.0},
		{MetricNormalizedLevenshteinDistance, "", "", 0},
		{MetricHammingDistance, "karolin", "kathrin", 3},
		{MetricLevenshteinUpperBound, "karolin", "kathrin", 3},
		{MetricLevenshteinUpperBound, "abc", "abcdef", 6},
		{MetricLevenshteinLowerBound, "abc", "abcdef", 3},
		{MetricLevenshteinLowerBound, "abcd", "bcda", 0},
		{MetricLevenshteinLowerBound, "", "", 0},
		{MetricLongestCommonSubstring, "xabcy", "zabcw", 2},
		{MetricLongestCommonSubsequence, "abcde", "ace", 2},
		{MetricRatcliffObershelp, "abcd", "abcd", 0},
		{MetricTanimotoCoefficient, "ab", "ab", 0},
		{MetricOverlapCoefficient, "ab", "abc", 0},
		{MetricJaroDistance, "same", "same", 0},
		{MetricJaroWinklerDistance, "same", "same", 0},
		{MetricJaccardIndex, "a b c", "a b d", 1 - 1.0/3.0},
		{MetricSorensenDiceIndex, "a b c", "a b d", 0.5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.metric.String(), func(t *testing.T) {
			t.Parallel()
			d, err := PairwiseDistance(Config{Metric: tt.metric, NGram: 2},
				pattern.TextAttribute(tt.a), pattern.TextAttribute(tt.b))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-6)
		})
	}
}

func TestLevenshteinBounds_BracketDistance(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"abcd", "bcda"},
		{"kitten", "sitting"},
		{"karolin", "kathrin"},
		{"", "abc"},
		{"same", "same"},
	}
	measure := func(m Metric, a, b string) float64 {
		d, err := PairwiseDistance(Config{Metric: m}, pattern.TextAttribute(a), pattern.TextAttribute(b))
		require.NoError(t, err)
		return d
	}
	for _, p := range pairs {
		lower := measure(MetricLevenshteinLowerBound, p[0], p[1])
		exact := measure(MetricLevenshteinDistance, p[0], p[1])
		upper := measure(MetricLevenshteinUpperBound, p[0], p[1])
		assert.LessOrEqual(t, lower, exact, "%q vs %q", p[0], p[1])
		assert.LessOrEqual(t, exact, upper, "%q vs %q", p[0], p[1])
	}
}

func TestMetrics_NaNBecomesOne(t *testing.T) {
	t.Parallel()

	for _, m := range []Metric{MetricTanimotoCoefficient, MetricOverlapCoefficient, MetricRatcliffObershelp} {
		d, err := PairwiseDistance(Config{Metric: m}, pattern.TextAttribute(""), pattern.TextAttribute(""))
		require.NoError(t, err)
		assert.Equal(t, 1.0, d, m)
	}
}

func TestRatcliffObershelp(t *testing.T) {
	t.Parallel()

	// WIKIMEDIA / WIKIMANIA: matches "WIKIM" and "IA" -> 2*7/18
	assert.InDelta(t, 14.0/18.0, ratcliffObershelp("WIKIMEDIA", "WIKIMANIA"), 1e-9)
}

// ─────────────────────────────────────────────────────────────────────────────
// Linkage
// ─────────────────────────────────────────────────────────────────────────────

type fixedLookup map[cluster.PairKey]float64

func (f fixedLookup) Get(p cluster.Pair) (float64, error) {
	d, ok := f[p.Key()]
	if !ok {
		return 0, errors.New(errors.ErrCodeMissingDistanceEntry, "missing "+p.String())
	}
	return d, nil
}

func leaf(id int) *cluster.Cluster {
	return cluster.NewLeaf(id, pattern.Pattern{ID: id, Attribute: pattern.NumericAttribute(float64(id))})
}

func TestParseLinkage(t *testing.T) {
	t.Parallel()

	for _, l := range AllLinkages() {
		got, err := ParseLinkage(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLinkage("ward")
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownLinkage))
}

func TestLinkageDistance(t *testing.T) {
	t.Parallel()

	// c1 is a singleton, c2 a two-leaf cluster, r the fourth cluster.
	c1 := leaf(0)
	c2 := cluster.NewMerge(4, leaf(1), leaf(2), 0.2)
	r := leaf(3)
	merged := cluster.NewMerge(5, c1, c2, 0.4)

	lookup := fixedLookup{
		{Lo: 0, Hi: 3}: 0.3,
		{Lo: 3, Hi: 4}: 0.9,
	}

	tests := []struct {
		linkage Linkage
		want    float64
	}{
		{LinkageSingle, 0.3},
		{LinkageComplete, 0.9},
		{LinkageAverageWPGMA, 0.6},
		{LinkageAverageUPGMA, 0.3*1.0/3.0 + 0.9*2.0/3.0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.linkage.String(), func(t *testing.T) {
			t.Parallel()
			d, err := LinkageDistance(r, merged, lookup, tt.linkage)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-12)
		})
	}
}

func TestLinkageDistance_Errors(t *testing.T) {
	t.Parallel()

	merged := cluster.NewMerge(5, leaf(0), leaf(1), 0.4)

	_, err := LinkageDistance(leaf(3), merged, fixedLookup{{Lo: 0, Hi: 3}: 1}, LinkageSingle)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMissingDistanceEntry))

	_, err = LinkageDistance(leaf(3), leaf(0), fixedLookup{}, LinkageSingle)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidClusterPair))

	full := fixedLookup{{Lo: 0, Hi: 3}: 1, {Lo: 1, Hi: 3}: 2}
	_, err = LinkageDistance(leaf(3), merged, full, Linkage("ward"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownLinkage))
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	metrics := MetricCatalog()
	require.Len(t, metrics, len(AllMetrics()))
	defaults := 0
	for _, e := range metrics {
		assert.NotEmpty(t, e.Description, e.Name)
		if e.Default {
			defaults++
			assert.Equal(t, string(DefaultMetric), e.Name)
		}
	}
	assert.Equal(t, 1, defaults)

	linkages := LinkageCatalog()
	require.Len(t, linkages, 4)
	assert.True(t, linkages[0].Default)
	assert.Equal(t, "single", linkages[0].Name)
}

//Personal.AI order the ending
