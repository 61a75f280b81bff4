package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyRoundTick)
	b := r.Ints.Get(KeyRoundTick)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Ints.Len())
}

func TestMetricsConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyTrailPoints).Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get(KeyTrailPoints).Load())
}

func TestSummaryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTrailPoints).Store(42)
	r.Ints.Get(KeyRoundAlive).Store(2)
	r.Floats.Get(KeyFrameRate).Store(14.96)

	assert.Equal(t, "round.alive=2 trail.points=42 frame.rate=15.0", r.Summary())
}

func TestGauge(t *testing.T) {
	var g Gauge
	assert.Equal(t, 0.0, g.Load())
	g.Store(2.5)
	assert.Equal(t, 2.5, g.Load())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Add(0.5)
		}()
	}
	wg.Wait()
	assert.Equal(t, 6.5, g.Load())
}

func TestAllStopsEarly(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b")
	r.Ints.Get("a")
	r.Ints.Get("c")

	var seen []string
	for k := range r.Ints.All() {
		seen = append(seen, k)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
