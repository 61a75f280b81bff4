package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known keys written by the simulation and read by the HUD
const (
	KeyRoundTick       = "round.tick"
	KeyRoundAlive      = "round.alive"
	KeyTrailPoints     = "trail.points"
	KeyCollisionChecks = "collision.checks"
	KeyFrameRate       = "frame.rate"
)

// Registry is the central metrics facade
// The round caches pointers at creation; Step writes directly to the atomics
type Registry struct {
	Ints   *Metrics[atomic.Int64]
	Floats *Metrics[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetrics[atomic.Int64](),
		Floats: NewMetrics[Gauge](),
	}
}

// Summary renders every metric as "key=value" pairs in key order, ints first
func (r *Registry) Summary() string {
	var b strings.Builder
	for key, v := range r.Ints.All() {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	}
	for key, v := range r.Floats.All() {
		fmt.Fprintf(&b, "%s=%.1f ", key, v.Load())
	}
	return strings.TrimSpace(b.String())
}
