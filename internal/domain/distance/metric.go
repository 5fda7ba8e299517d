// Package distance implements the pairwise dissimilarity between pattern
// attributes and the linkage rules that derive a merged cluster's distance
// from its children's.
package distance

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Metric selects the text dissimilarity measure.
type Metric string

const (
	MetricSorensenDiceDistance          Metric = "sorensen_dice_distance"
	MetricJaroWinklerDistance           Metric = "jaro_winkler_distance"
	MetricJaroDistance                  Metric = "jaro_distance"
	MetricJaccardDistance               Metric = "jaccard_distance"
	MetricHammingDistance               Metric = "hamming_distance"
	MetricLevenshteinDistance           Metric = "levenshtein_distance"
	MetricNormalizedLevenshteinDistance Metric = "normalized_levenshtein_distance"
	MetricLevenshteinUpperBound         Metric = "levenshtein_upper_bound"
	MetricLevenshteinLowerBound         Metric = "levenshtein_lower_bound"
	MetricTanimotoCoefficient           Metric = "tanimoto_coefficient"
	MetricOverlapCoefficient            Metric = "overlap_coefficient"
	MetricJaccardIndex                  Metric = "jaccard_index"
	MetricSorensenDiceIndex             Metric = "sorensen_dice_index"
	MetricRatcliffObershelp             Metric = "ratcliff_obershelp"
	MetricLongestCommonSubstring        Metric = "longest_common_substring"
	MetricLongestCommonSubsequence      Metric = "longest_common_subsequence"
)

// DefaultMetric is the word 5-gram Jaccard distance.
const DefaultMetric = MetricJaccardDistance

// DefaultNGram is the word window used by the n-gram metrics.
const DefaultNGram = 5

var allMetrics = []Metric{
	MetricSorensenDiceDistance,
	MetricJaroWinklerDistance,
	MetricJaroDistance,
	MetricJaccardDistance,
	MetricHammingDistance,
	MetricLevenshteinDistance,
	MetricNormalizedLevenshteinDistance,
	MetricLevenshteinUpperBound,
	MetricLevenshteinLowerBound,
	MetricTanimotoCoefficient,
	MetricOverlapCoefficient,
	MetricJaccardIndex,
	MetricSorensenDiceIndex,
	MetricRatcliffObershelp,
	MetricLongestCommonSubstring,
	MetricLongestCommonSubsequence,
}

// AllMetrics returns the catalog in display order.
func AllMetrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics)
	return out
}

// IsValid checks the metric against the catalog.
func (m Metric) IsValid() bool {
	_, ok := metricFuncs[m]
	return ok
}

// String returns the string representation of the metric.
func (m Metric) String() string {
	return string(m)
}

// ParseMetric parses a catalog name; matching ignores case and surrounding
// whitespace.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if m.IsValid() {
		return m, nil
	}
	return "", errors.New(errors.ErrCodeUnknownMetric, "unsupported distance metric: "+s)
}

// Config is the per-run metric selection.  It is passed explicitly to every
// calculator; there is no process-wide setting.
type Config struct {
	Metric Metric `json:"metric" mapstructure:"metric"`
	NGram  int    `json:"ngram" mapstructure:"ngram"`
}

// DefaultConfig returns the 5-gram Jaccard distance configuration.
func DefaultConfig() Config {
	return Config{Metric: DefaultMetric, NGram: DefaultNGram}
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.Metric == "" {
		c.Metric = DefaultMetric
	}
	if c.NGram == 0 {
		c.NGram = DefaultNGram
	}
	return c
}

// Validate checks the metric name and window size.
func (c Config) Validate() error {
	c = c.withDefaults()
	if !c.Metric.IsValid() {
		return errors.New(errors.ErrCodeUnknownMetric, "unsupported distance metric: "+string(c.Metric))
	}
	if c.NGram < 1 {
		return errors.Errorf(errors.ErrCodeValidation, "ngram window must be >= 1, got %d", c.NGram)
	}
	return nil
}

// Calculator computes the dissimilarity between two strings.  Lower is
// closer; results may be NaN for degenerate inputs and are normalised by
// PairwiseDistance.
type Calculator interface {
	Distance(a, b string) (float64, error)
	Metric() Metric
}

type metricFunc func(a, b string, n int) (float64, error)

type calculator struct {
	metric Metric
	ngram  int
	fn     metricFunc
}

func (c *calculator) Distance(a, b string) (float64, error) { return c.fn(a, b, c.ngram) }

func (c *calculator) Metric() Metric { return c.metric }

// NewCalculator returns the calculator for cfg.Metric.
func NewCalculator(cfg Config) (Calculator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &calculator{metric: cfg.Metric, ngram: cfg.NGram, fn: metricFuncs[cfg.Metric]}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

var metricFuncs = map[Metric]metricFunc{
	MetricSorensenDiceDistance: func(a, b string, _ int) (float64, error) {
		return 1 - float64(edlib.SorensenDiceCoefficient(a, b, 2)), nil
	},
	MetricJaroWinklerDistance: func(a, b string, _ int) (float64, error) {
		return 1 - float64(edlib.JaroWinklerSimilarity(a, b)), nil
	},
	MetricJaroDistance: func(a, b string, _ int) (float64, error) {
		return 1 - float64(edlib.JaroSimilarity(a, b)), nil
	},
	MetricJaccardDistance: func(a, b string, n int) (float64, error) {
		return ngramJaccardDistance(a, b, n), nil
	},
	MetricHammingDistance: func(a, b string, _ int) (float64, error) {
		d, err := edlib.HammingDistance(a, b)
		return float64(d), err
	},
	MetricLevenshteinDistance: func(a, b string, _ int) (float64, error) {
		return float64(edlib.LevenshteinDistance(a, b)), nil
	},
	MetricNormalizedLevenshteinDistance: func(a, b string, _ int) (float64, error) {
		longest := maxInt(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
		if longest == 0 {
			return 0, nil
		}
		return float64(edlib.LevenshteinDistance(a, b)) / float64(longest), nil
	},
	MetricLevenshteinUpperBound: func(a, b string, _ int) (float64, error) {
		la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
		if la == lb {
			d, err := edlib.HammingDistance(a, b)
			return float64(d), err
		}
		return float64(maxInt(la, lb)), nil
	},
	MetricLevenshteinLowerBound: func(a, b string, _ int) (float64, error) {
		return math.Abs(float64(utf8.RuneCountInString(a) - utf8.RuneCountInString(b))), nil
	},
	MetricTanimotoCoefficient: func(a, b string, _ int) (float64, error) {
		return 1 - tanimoto(a, b), nil
	},
	MetricOverlapCoefficient: func(a, b string, _ int) (float64, error) {
		return 1 - overlap(a, b), nil
	},
	MetricJaccardIndex: func(a, b string, n int) (float64, error) {
		return 1 - ngramJaccardIndex(a, b, n), nil
	},
	MetricSorensenDiceIndex: func(a, b string, n int) (float64, error) {
		return 1 - ngramDiceIndex(a, b, n), nil
	},
	MetricRatcliffObershelp: func(a, b string, _ int) (float64, error) {
		return 1 - ratcliffObershelp(a, b), nil
	},
	MetricLongestCommonSubstring: func(a, b string, _ int) (float64, error) {
		ra, rb := []rune(a), []rune(b)
		return float64(maxInt(len(ra), len(rb)) - longestCommonSubstring(ra, rb)), nil
	},
	MetricLongestCommonSubsequence: func(a, b string, _ int) (float64, error) {
		longest := maxInt(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
		return float64(longest - edlib.LCS(a, b)), nil
	},
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

//Personal.AI order the ending
