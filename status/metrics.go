package status

import (
	"iter"
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Metrics holds named metric cells of type T
// Lookups create on first use; callers cache the pointer and update it without the lock
type Metrics[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, creating it if absent
func (m *Metrics[T]) Get(key string) *T {
	m.mu.RLock()
	cell, ok := m.cells[key]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok = m.cells[key]; !ok {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// All yields cells in key order; the key set is captured when iteration starts
func (m *Metrics[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		m.mu.RLock()
		keys := slices.Sorted(maps.Keys(m.cells))
		cells := make([]*T, len(keys))
		for i, k := range keys {
			cells[i] = m.cells[k]
		}
		m.mu.RUnlock()

		for i, k := range keys {
			if !yield(k, cells[i]) {
				return
			}
		}
	}
}

func (m *Metrics[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}

// Gauge is a float64 metric stored as bits in an atomic.Uint64; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Store(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Load() float64   { return math.Float64frombits(g.bits.Load()) }

// Add applies delta with a CAS loop and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
