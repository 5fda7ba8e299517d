package distance

import (
	"fmt"
	"math"

	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Strategy is a validated metric configuration bound to its calculator.
type Strategy struct {
	cfg  Config
	calc Calculator
}

// NewStrategy validates cfg and resolves its calculator.
func NewStrategy(cfg Config) (*Strategy, error) {
	calc, err := NewCalculator(cfg)
	if err != nil {
		return nil, err
	}
	return &Strategy{cfg: cfg.withDefaults(), calc: calc}, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Strategy) Config() Config { return s.cfg }

// Pairwise returns the dissimilarity of two attributes.  Numeric attributes
// use |a-b|.  Text attributes go through the configured metric with the
// arguments in lexicographic order, so the result never depends on call
// order.  NaN is reported as 1.
func (s *Strategy) Pairwise(a, b pattern.Attribute) (float64, error) {
	if a.Kind() != b.Kind() {
		return 0, errors.New(errors.ErrCodeUnsupportedAttributeType, "attribute kinds differ").
			WithDetail(fmt.Sprintf("%s vs %s", a.Kind(), b.Kind()))
	}

	switch a.Kind() {
	case pattern.KindNumeric:
		x, _ := a.Numeric()
		y, _ := b.Numeric()
		return normalize(math.Abs(x - y)), nil

	case pattern.KindText:
		x, _ := a.Text()
		y, _ := b.Text()
		if y < x {
			x, y = y, x
		}
		d, err := s.calc.Distance(x, y)
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrCodeMetricFailed, "text metric failed").
				WithDetail("metric=" + s.calc.Metric().String())
		}
		return normalize(d), nil

	case pattern.KindInvalid:
		fallthrough
	default:
		return 0, errors.New(errors.ErrCodeUnsupportedAttributeType, "unsupported attribute type").
			WithDetail("kind=" + a.Kind().String())
	}
}

// PairwiseDistance is the one-shot form of Strategy.Pairwise.
func PairwiseDistance(cfg Config, a, b pattern.Attribute) (float64, error) {
	s, err := NewStrategy(cfg)
	if err != nil {
		return 0, err
	}
	return s.Pairwise(a, b)
}

func normalize(d float64) float64 {
	if math.IsNaN(d) {
		return 1
	}
	return d
}

//Personal.AI order the ending
