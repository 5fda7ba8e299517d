package distance

import (
	"math"
	"strings"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Linkage derives a merged cluster's distance to a third cluster from the
// two child distances already in the matrix (Lance-Williams update).
type Linkage string

const (
	LinkageSingle       Linkage = "single"
	LinkageComplete     Linkage = "complete"
	LinkageAverageWPGMA Linkage = "average_wpgma"
	LinkageAverageUPGMA Linkage = "average_upgma"
)

// DefaultLinkage is single linkage.
const DefaultLinkage = LinkageSingle

// AllLinkages returns the supported strategies.
func AllLinkages() []Linkage {
	return []Linkage{LinkageSingle, LinkageComplete, LinkageAverageWPGMA, LinkageAverageUPGMA}
}

// IsValid checks if the linkage is supported.
func (l Linkage) IsValid() bool {
	switch l {
	case LinkageSingle, LinkageComplete, LinkageAverageWPGMA, LinkageAverageUPGMA:
		return true
	default:
		return false
	}
}

func (l Linkage) String() string { return string(l) }

// ParseLinkage parses a linkage name, ignoring case.
func ParseLinkage(s string) (Linkage, error) {
	l := Linkage(strings.ToLower(strings.TrimSpace(s)))
	if l.IsValid() {
		return l, nil
	}
	return "", errors.New(errors.ErrCodeUnknownLinkage, "unsupported linkage strategy: "+s)
}

// Lookup reads stored pair distances; *cluster.Matrix satisfies it.
type Lookup interface {
	Get(pair cluster.Pair) (float64, error)
}

// LinkageDistance returns the distance between r and merged, which must be an
// internal node whose children are both still present in lookup against r.
func LinkageDistance(r, merged *cluster.Cluster, lookup Lookup, linkage Linkage) (float64, error) {
	c1, c2 := merged.Children()
	if c1 == nil || c2 == nil {
		return 0, errors.New(errors.ErrCodeInvalidClusterPair, "linkage target is not a merged cluster")
	}

	p1, err := cluster.NewPair(r, c1)
	if err != nil {
		return 0, err
	}
	p2, err := cluster.NewPair(r, c2)
	if err != nil {
		return 0, err
	}
	d1, err := lookup.Get(p1)
	if err != nil {
		return 0, err
	}
	d2, err := lookup.Get(p2)
	if err != nil {
		return 0, err
	}

	switch linkage {
	case LinkageSingle:
		return math.Min(d1, d2), nil
	case LinkageComplete:
		return math.Max(d1, d2), nil
	case LinkageAverageWPGMA:
		return (d1 + d2) / 2, nil
	case LinkageAverageUPGMA:
		total := float64(merged.Size())
		return d1*float64(c1.Size())/total + d2*float64(c2.Size())/total, nil
	default:
		return 0, errors.New(errors.ErrCodeUnknownLinkage, "unsupported linkage strategy: "+string(linkage))
	}
}

//Personal.AI order the ending
