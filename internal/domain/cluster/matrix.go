package cluster

import (
	"sync"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

type matrixEntry struct {
	pair     Pair
	distance float64
}

// Matrix maps each unordered pair of active clusters to its dissimilarity.
// Every operation holds the lock for its whole duration, so concurrent
// inserts during seeding are safe.
type Matrix struct {
	mu      sync.RWMutex
	entries map[PairKey]matrixEntry
}

// NewMatrix returns an empty matrix sized for capacity entries.
func NewMatrix(capacity int) *Matrix {
	if capacity < 0 {
		capacity = 0
	}
	return &Matrix{entries: make(map[PairKey]matrixEntry, capacity)}
}

// Insert stores distance for pair unless an entry already exists.  The first
// writer wins; the return value reports whether this call stored it.
func (m *Matrix) Insert(pair Pair, distance float64) bool {
	k := pair.Key()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[k]; exists {
		return false
	}
	m.entries[k] = matrixEntry{pair: pair, distance: distance}
	return true
}

// Remove deletes the entry for pair; a missing entry is a no-op.
func (m *Matrix) Remove(pair Pair) {
	k := pair.Key()
	m.mu.Lock()
	delete(m.entries, k)
	m.mu.Unlock()
}

// Get returns the stored distance.  A missing entry means the caller broke
// the one-entry-per-active-pair invariant and is reported, never defaulted.
func (m *Matrix) Get(pair Pair) (float64, error) {
	k := pair.Key()
	m.mu.RLock()
	e, ok := m.entries[k]
	m.mu.RUnlock()
	if !ok {
		return 0, errors.New(errors.ErrCodeMissingDistanceEntry, "no distance stored for cluster pair").
			WithDetail("pair=" + k.String())
	}
	return e.distance, nil
}

// Closest returns the pair with the minimum distance.  Ties go to the lowest
// lower id, then the lowest higher id.  ok is false on an empty matrix.
func (m *Matrix) Closest() (pair Pair, distance float64, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var bestKey PairKey
	for k, e := range m.entries {
		if !ok || e.distance < distance || (e.distance == distance && k.less(bestKey)) {
			pair, distance, bestKey, ok = e.pair, e.distance, k, true
		}
	}
	return pair, distance, ok
}

// Len is the number of stored entries.
func (m *Matrix) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

//Personal.AI order the ending
