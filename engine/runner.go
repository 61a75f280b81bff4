package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Runner drives a Round on a fixed tick until it finishes or the context is cancelled
// Pausing skips ticks without touching round state
type Runner struct {
	mu    sync.Mutex
	round *Round

	paused atomic.Bool
	onTick func(Snapshot)
	ticks  <-chan time.Time
	log    zerolog.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithTicks replaces the internal ticker, e.g. with a channel fed by a test
func WithTicks(ch <-chan time.Time) RunnerOption {
	return func(rn *Runner) { rn.ticks = ch }
}

// WithTickHandler receives a snapshot after every processed tick
func WithTickHandler(fn func(Snapshot)) RunnerOption {
	return func(rn *Runner) { rn.onTick = fn }
}

func NewRunner(r *Round, opts ...RunnerOption) *Runner {
	rn := &Runner{
		round: r,
		log:   r.log.With().Str("component", "runner").Logger(),
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Run blocks until the round finishes, returning its final status
// Cancelling ctx aborts the round and returns ctx.Err()
func (rn *Runner) Run(ctx context.Context) (Status, error) {
	ticks := rn.ticks
	if ticks == nil {
		t := time.NewTicker(rn.round.cfg.TickDuration)
		defer t.Stop()
		ticks = t.C
	}

	for {
		select {
		case <-ctx.Done():
			rn.mu.Lock()
			rn.round.Abort()
			st := rn.round.Status()
			rn.mu.Unlock()
			rn.log.Debug().Err(ctx.Err()).Msg("runner stopped")
			return st, ctx.Err()

		case <-ticks:
			if rn.paused.Load() {
				continue
			}
			rn.mu.Lock()
			st := rn.round.Step()
			snap := rn.round.Snapshot()
			rn.mu.Unlock()

			if rn.onTick != nil {
				rn.onTick(snap)
			}
			if st.Finished() {
				return st, nil
			}
		}
	}
}

// Snapshot is safe to call from any goroutine while Run is active
func (rn *Runner) Snapshot() Snapshot {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	return rn.round.Snapshot()
}

func (rn *Runner) Pause() {
	if rn.paused.CompareAndSwap(false, true) {
		rn.log.Debug().Msg("paused")
	}
}

func (rn *Runner) Resume() {
	if rn.paused.CompareAndSwap(true, false) {
		rn.log.Debug().Msg("resumed")
	}
}

// TogglePause flips the pause state and returns the new one
func (rn *Runner) TogglePause() bool {
	for {
		cur := rn.paused.Load()
		if rn.paused.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (rn *Runner) Paused() bool {
	return rn.paused.Load()
}
