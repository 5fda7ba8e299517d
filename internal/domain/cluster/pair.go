package cluster

import (
	"fmt"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// PairKey is the comparable matrix key of an unordered pair: Lo < Hi always.
type PairKey struct {
	Lo int
	Hi int
}

func (k PairKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.Lo, k.Hi)
}

func (k PairKey) less(o PairKey) bool {
	if k.Lo != o.Lo {
		return k.Lo < o.Lo
	}
	return k.Hi < o.Hi
}

// Pair is an unordered pair of distinct clusters stored in canonical order,
// lower id first, so (A,B) and (B,A) are the same value.
type Pair struct {
	a *Cluster
	b *Cluster
}

// NewPair builds the canonical pair of a and b.
func NewPair(a, b *Cluster) (Pair, error) {
	if a == nil || b == nil {
		return Pair{}, errors.New(errors.ErrCodeInvalidClusterPair, "cluster pair member is nil")
	}
	if a.id == b.id {
		return Pair{}, errors.New(errors.ErrCodeInvalidClusterPair, "cluster pair members are identical").
			WithDetail(fmt.Sprintf("id=%d", a.id))
	}
	if b.id < a.id {
		a, b = b, a
	}
	return Pair{a: a, b: b}, nil
}

// MustPair is NewPair for callers that already hold two distinct active
// clusters.
func MustPair(a, b *Cluster) Pair {
	p, err := NewPair(a, b)
	if err != nil {
		panic(err)
	}
	return p
}

// A returns the member with the lower id.
func (p Pair) A() *Cluster { return p.a }

// B returns the member with the higher id.
func (p Pair) B() *Cluster { return p.b }

// Key returns the map key of the pair.
func (p Pair) Key() PairKey {
	return PairKey{Lo: p.a.id, Hi: p.b.id}
}

func (p Pair) String() string { return p.Key().String() }

//Personal.AI order the ending
