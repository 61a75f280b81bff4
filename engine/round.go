package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/arena"
	"github.com/lixenwraith/lightcycle/collision"
	"github.com/lixenwraith/lightcycle/cycle"
	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/status"
	"github.com/lixenwraith/lightcycle/vmath"
)

// Round owns the vehicles of one playthrough from countdown to finish.
// It is not safe for concurrent use: Step, SetSteerIntent and Snapshot must be called from
// the goroutine driving the round.
type Round struct {
	cfg      RoundConfig
	world    arena.World
	vehicles []*cycle.Vehicle
	sources  []SteerSource
	rng      *vmath.FastRand
	detector collision.Detector
	status   Status

	log     zerolog.Logger
	metrics *roundMetrics

	statTick   *atomic.Int64
	statAlive  *atomic.Int64
	statPoints *atomic.Int64
	statChecks *atomic.Int64
}

// CreateRound validates the configuration, places the vehicles and returns a round in
// countdown (or running, with zero countdown ticks)
func CreateRound(specs []VehicleSpec, wc WorldConfig, opts ...Option) (*Round, error) {
	rc := defaultRoundConfig()
	for _, opt := range opts {
		opt(&rc)
	}
	if err := validate(specs, wc, rc); err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}
	if rc.Registry == nil {
		rc.Registry = status.NewRegistry()
	}

	r := &Round{
		cfg:      rc,
		world:    arena.NewWorld(wc.DisplayWidth, wc.DisplayHeight, wc.Zoom),
		vehicles: make([]*cycle.Vehicle, 0, len(specs)),
		sources:  make([]SteerSource, 0, len(specs)),
		rng:      vmath.NewFastRand(rc.Seed),
		log:      rc.Logger.With().Str("component", "round").Logger(),
		metrics:  newRoundMetrics(),

		statTick:   rc.Registry.Ints.Get(status.KeyRoundTick),
		statAlive:  rc.Registry.Ints.Get(status.KeyRoundAlive),
		statPoints: rc.Registry.Ints.Get(status.KeyTrailPoints),
		statChecks: rc.Registry.Ints.Get(status.KeyCollisionChecks),
	}

	placement := arena.PlaceStarts(len(specs), r.world, rc.MinSeparation, parameter.MaxPlacementAttempts, r.rng)
	if placement.Fallback {
		r.log.Warn().
			Int("vehicles", len(specs)).
			Bool("relaxed", placement.Relaxed).
			Float64("min_separation", rc.MinSeparation).
			Msg("start placement fell back to grid layout")
	}

	maxHit := 0.0
	for i, s := range specs {
		start := placement.Starts[i]
		v := cycle.New(cycle.ID(i+1), start.Position, start.Heading, cycle.Params{
			Speed:     parameter.Speed,
			Radius:    s.Width,
			TurnRate:  s.TurnRate,
			GapChance: s.GapChance,
			MinGap:    s.MinGap,
			MaxGap:    s.MaxGap,
			Color:     s.Color,
		})
		r.vehicles = append(r.vehicles, v)
		r.sources = append(r.sources, s.Source)
		maxHit = max(maxHit, r.hitRadius(v))
	}

	if rc.SpatialIndex {
		// Cells never shrink below one block; thin cycles would otherwise need billions of cells
		r.detector = collision.NewGrid(r.world.Width, r.world.Height, max(maxHit, parameter.BlockSize))
	} else {
		r.detector = collision.NewScan(r.trails)
	}

	r.status = Status{Phase: PhaseCountdown, Countdown: rc.CountdownTicks, Alive: len(r.vehicles)}
	if rc.CountdownTicks == 0 {
		r.status.Phase = PhaseRunning
	}

	r.statTick.Store(0)
	r.statAlive.Store(int64(len(r.vehicles)))
	r.statPoints.Store(0)
	r.statChecks.Store(0)
	r.metrics.roundStarted(len(r.vehicles))

	r.log.Info().
		Int("vehicles", len(r.vehicles)).
		Float64("world_width", r.world.Width).
		Float64("world_height", r.world.Height).
		Uint64("seed", rc.Seed).
		Bool("spatial_index", rc.SpatialIndex).
		Msg("round created")

	return r, nil
}

// trails yields every vehicle's trail, dead ones included
func (r *Round) trails(yield func([]vmath.Vec2) bool) {
	for _, v := range r.vehicles {
		if !yield(v.Trail) {
			return
		}
	}
}

// hitRadius is the collision radius: head width scaled by zoom, shrunk by CollisionFactor
func (r *Round) hitRadius(v *cycle.Vehicle) float64 {
	return v.Radius * r.world.Zoom * parameter.CollisionFactor
}

// SetSteerIntent latches a steering intent, applied from the next tick on.
// Sources bound through VehicleSpec are polled at tick start and override it.
func (r *Round) SetSteerIntent(id cycle.ID, s Steer) error {
	idx := int(id) - 1
	if idx < 0 || idx >= len(r.vehicles) {
		return fmt.Errorf("steer vehicle %d: %w", id, ErrUnknownVehicle)
	}
	if v := r.vehicles[idx]; v.Alive {
		v.SetSteer(s)
	}
	return nil
}

// Step advances the round by exactly one tick and returns the resulting status
func (r *Round) Step() Status {
	switch r.status.Phase {
	case PhaseFinished:
		return r.status
	case PhaseCountdown:
		r.status.Countdown--
		if r.status.Countdown <= 0 {
			r.status.Countdown = 0
			r.status.Phase = PhaseRunning
			r.log.Debug().Msg("countdown over")
		}
		return r.status
	}

	r.pollSources()
	r.status.Tick++

	for _, v := range r.vehicles {
		if !v.Alive {
			continue
		}
		if v.Integrate(1, r.world, r.rng) {
			r.detector.Track(v.Trail[len(v.Trail)-1])
			r.statPoints.Add(1)
		}

		hit, compared := r.detector.Hit(v.Position, r.hitRadius(v))
		r.statChecks.Add(int64(compared))
		if hit && v.Kill() {
			r.metrics.eliminated(v.ID)
			r.log.Debug().
				Int("vehicle", int(v.ID)).
				Uint64("tick", r.status.Tick).
				Stringer("position", v.Position).
				Msg("vehicle eliminated")
		}
	}

	r.status.Elapsed = time.Duration(r.status.Tick) * r.cfg.TickDuration
	r.resolve()

	r.statTick.Store(int64(r.status.Tick))
	r.statAlive.Store(int64(r.status.Alive))
	return r.status
}

func (r *Round) pollSources() {
	for i, src := range r.sources {
		if src != nil && r.vehicles[i].Alive {
			r.vehicles[i].SetSteer(src.Steer())
		}
	}
}

// resolve applies the end conditions after all vehicles moved.
// Timeout wins over survivors; a single survivor only wins a round that started with company.
func (r *Round) resolve() {
	alive := 0
	var last *cycle.Vehicle
	for _, v := range r.vehicles {
		if v.Alive {
			alive++
			last = v
		}
	}
	r.status.Alive = alive

	switch {
	case r.status.Elapsed >= r.cfg.MaxDuration:
		r.finish(OutcomeDraw, 0, true)
	case alive == 0:
		r.finish(OutcomeDraw, 0, false)
	case alive == 1 && len(r.vehicles) > 1:
		r.finish(OutcomeWinner, last.ID, false)
	}
}

func (r *Round) finish(outcome Outcome, winner cycle.ID, timeout bool) {
	r.status.Phase = PhaseFinished
	r.status.Outcome = outcome
	r.status.Winner = winner
	r.status.Timeout = timeout
	r.metrics.roundFinished(r.status)

	r.log.Info().
		Stringer("outcome", outcome).
		Int("winner", int(winner)).
		Bool("timeout", timeout).
		Uint64("ticks", r.status.Tick).
		Dur("elapsed", r.status.Elapsed).
		Msg("round finished")
}

// Abort ends a round between ticks and discards its vehicles; finished rounds are left as is
func (r *Round) Abort() {
	if r.status.Finished() {
		return
	}
	r.vehicles = nil
	r.sources = nil
	r.detector = collision.NewScan(r.trails)
	r.status.Alive = 0
	r.finish(OutcomeAborted, 0, false)
}

func (r *Round) Status() Status {
	return r.status
}

func (r *Round) World() arena.World {
	return r.world
}

// Len is the number of registered vehicles
func (r *Round) Len() int {
	return len(r.vehicles)
}

// Snapshot returns a read-only view of the round for rendering
func (r *Round) Snapshot() Snapshot {
	views := make([]VehicleView, len(r.vehicles))
	for i, v := range r.vehicles {
		views[i] = VehicleView{
			ID:       v.ID,
			Position: v.Position,
			Heading:  v.Heading,
			Trail:    v.TrailView(),
			Alive:    v.Alive,
			InGap:    v.InGap(),
			Color:    v.Color,
			Radius:   v.Radius,
		}
	}
	return Snapshot{Status: r.status, World: r.world, Vehicles: views}
}
