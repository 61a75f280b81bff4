package engine

import (
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/status"
)

// VehicleSpec describes one player of a round, in registration order
type VehicleSpec struct {
	// Source is polled at the start of every running tick; nil leaves steering to SetSteerIntent
	Source    SteerSource
	Color     core.RGB
	Width     float64
	TurnRate  float64
	GapChance float64
	MinGap    int
	MaxGap    int
}

// DefaultVehicleSpec returns the middle menu settings for the player at index i
func DefaultVehicleSpec(i int, src SteerSource) VehicleSpec {
	return VehicleSpec{
		Source:    src,
		Color:     parameter.Palette[i%len(parameter.Palette)],
		Width:     parameter.DefaultWidth,
		TurnRate:  parameter.DefaultTurnRate,
		GapChance: parameter.DefaultGapChance,
		MinGap:    parameter.DefaultMinGap,
		MaxGap:    parameter.DefaultMaxGap,
	}
}

// WorldConfig sizes the arena: world = display / zoom
type WorldConfig struct {
	DisplayWidth  float64
	DisplayHeight float64
	Zoom          float64
}

// RoundConfig holds the round-wide settings applied through Options
type RoundConfig struct {
	TickDuration   time.Duration
	MaxDuration    time.Duration
	CountdownTicks int
	Seed           uint64
	MinSeparation  float64
	SpatialIndex   bool

	Logger   zerolog.Logger
	Registry *status.Registry
}

func defaultRoundConfig() RoundConfig {
	return RoundConfig{
		TickDuration:   time.Second / parameter.DefaultTickRate,
		MaxDuration:    parameter.MaxRoundDuration,
		CountdownTicks: parameter.DefaultCountdownTicks,
		Seed:           uint64(time.Now().UnixNano()),
		MinSeparation:  parameter.MinStartDistance,
		Logger:         zerolog.Nop(),
	}
}

// Option adjusts the round configuration
type Option func(*RoundConfig)

func WithTickDuration(d time.Duration) Option { return func(c *RoundConfig) { c.TickDuration = d } }
func WithMaxDuration(d time.Duration) Option  { return func(c *RoundConfig) { c.MaxDuration = d } }
func WithCountdownTicks(n int) Option         { return func(c *RoundConfig) { c.CountdownTicks = n } }
func WithSeed(seed uint64) Option             { return func(c *RoundConfig) { c.Seed = seed } }
func WithMinSeparation(d float64) Option      { return func(c *RoundConfig) { c.MinSeparation = d } }
func WithSpatialIndex(on bool) Option         { return func(c *RoundConfig) { c.SpatialIndex = on } }
func WithLogger(l zerolog.Logger) Option      { return func(c *RoundConfig) { c.Logger = l } }
func WithRegistry(r *status.Registry) Option  { return func(c *RoundConfig) { c.Registry = r } }

// WithConfig replaces the whole configuration, used by the config package
func WithConfig(rc RoundConfig) Option {
	return func(c *RoundConfig) { *c = rc }
}

func validate(specs []VehicleSpec, world WorldConfig, rc RoundConfig) error {
	if len(specs) < parameter.MinPlayers {
		return configErr("vehicles", "at least %d vehicle required", parameter.MinPlayers)
	}
	if !finitePositive(world.Zoom) || world.Zoom > parameter.MaxZoom {
		return configErr("world.zoom", "must be within (0, %v], got %v", parameter.MaxZoom, world.Zoom)
	}
	unit := parameter.BlockSize
	if !finitePositive(world.DisplayWidth) || world.DisplayWidth/world.Zoom <= 2*unit {
		return configErr("world.width", "world must be wider than %v units", 2*unit)
	}
	if !finitePositive(world.DisplayHeight) || world.DisplayHeight/world.Zoom <= 2*unit {
		return configErr("world.height", "world must be taller than %v units", 2*unit)
	}
	for i, s := range specs {
		switch {
		case !finitePositive(s.Width):
			return configErr(vehicleField(i, "width"), "must be positive, got %v", s.Width)
		case s.TurnRate < 0 || math.IsNaN(s.TurnRate) || math.IsInf(s.TurnRate, 0):
			return configErr(vehicleField(i, "turn_rate"), "must be non-negative, got %v", s.TurnRate)
		case !(s.GapChance >= 0 && s.GapChance <= 1):
			return configErr(vehicleField(i, "gap_chance"), "must be within [0, 1], got %v", s.GapChance)
		case s.MinGap < 0 || s.MaxGap < s.MinGap:
			return configErr(vehicleField(i, "gap"), "need 0 <= min <= max, got %d..%d", s.MinGap, s.MaxGap)
		}
	}
	if rc.TickDuration <= 0 {
		return configErr("round.tick_duration", "must be positive, got %v", rc.TickDuration)
	}
	if rc.MaxDuration <= 0 {
		return configErr("round.max_duration", "must be positive, got %v", rc.MaxDuration)
	}
	if rc.CountdownTicks < 0 {
		return configErr("round.countdown_ticks", "must not be negative, got %d", rc.CountdownTicks)
	}
	if rc.MinSeparation < 0 {
		return configErr("round.min_separation", "must not be negative, got %v", rc.MinSeparation)
	}
	return nil
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

func vehicleField(i int, name string) string {
	return "vehicles[" + strconv.Itoa(i) + "]." + name
}
