package config

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/status"
)

// World returns the arena sizing for a round
func (s Settings) World() engine.WorldConfig {
	return engine.WorldConfig{
		DisplayWidth:  s.Display.Width,
		DisplayHeight: s.Display.Height,
		Zoom:          s.Round.Zoom,
	}
}

// Vehicles builds one spec per source; every player shares the cycle settings and gets a palette color
func (s Settings) Vehicles(sources []engine.SteerSource) []engine.VehicleSpec {
	specs := make([]engine.VehicleSpec, len(sources))
	for i, src := range sources {
		spec := engine.DefaultVehicleSpec(i, src)
		spec.Width = s.Cycle.Width
		spec.TurnRate = s.Cycle.TurnRate
		spec.GapChance = s.Cycle.GapChance
		spec.MinGap = s.Cycle.MinGap
		spec.MaxGap = s.Cycle.MaxGap
		specs[i] = spec
	}
	return specs
}

// TickDuration converts the tick rate to the fixed step length
func (s Settings) TickDuration() time.Duration {
	return time.Second / time.Duration(s.Round.TickRate)
}

// RoundOptions maps the round settings onto engine options; a zero seed keeps the engine's time-based default
func (s Settings) RoundOptions(logger zerolog.Logger, reg *status.Registry) []engine.Option {
	opts := []engine.Option{
		engine.WithTickDuration(s.TickDuration()),
		engine.WithMaxDuration(s.Round.MaxDuration),
		engine.WithCountdownTicks(s.Round.CountdownTicks),
		engine.WithSpatialIndex(s.Round.SpatialIndex),
		engine.WithLogger(logger),
		engine.WithRegistry(reg),
	}
	if s.Round.Seed != 0 {
		opts = append(opts, engine.WithSeed(s.Round.Seed))
	}
	return opts
}

// RoundConfig returns everything CreateRound needs
func (s Settings) RoundConfig(sources []engine.SteerSource, logger zerolog.Logger, reg *status.Registry) ([]engine.VehicleSpec, engine.WorldConfig, []engine.Option) {
	return s.Vehicles(sources), s.World(), s.RoundOptions(logger, reg)
}
