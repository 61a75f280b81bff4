// Package config loads player-facing settings from lightcycle.toml and LIGHTCYCLE_* environment
// variables and turns them into engine inputs
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/lightcycle/parameter"
)

const (
	fileName  = "lightcycle"
	fileType  = "toml"
	envPrefix = "LIGHTCYCLE"
)

// DisplaySettings is the display size in world units at zoom 1.0
type DisplaySettings struct {
	Width  float64
	Height float64
}

type RoundSettings struct {
	Zoom           float64
	TickRate       int
	CountdownTicks int
	MaxDuration    time.Duration
	// Seed 0 means time based
	Seed         uint64
	SpatialIndex bool
}

type CycleSettings struct {
	Width     float64
	TurnRate  float64
	GapChance float64
	MinGap    int
	MaxGap    int
}

type InputSettings struct {
	Hold time.Duration
}

type AudioSettings struct {
	Enabled bool
}

type LogSettings struct {
	Enabled bool
	Dir     string
	Level   string
}

// Settings is the resolved configuration, discrete options already snapped to their tables
type Settings struct {
	Display DisplaySettings
	Round   RoundSettings
	Cycle   CycleSettings
	Players int
	Input   InputSettings
	Audio   AudioSettings
	Log     LogSettings
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", parameter.DefaultDisplayWidth)
	v.SetDefault("display.height", parameter.DefaultDisplayHeight)

	v.SetDefault("round.zoom", parameter.DefaultZoom)
	v.SetDefault("round.tick_rate", parameter.DefaultTickRate)
	v.SetDefault("round.countdown_ticks", parameter.DefaultCountdownTicks)
	v.SetDefault("round.max_duration", parameter.MaxRoundDuration.String())
	v.SetDefault("round.seed", 0)
	v.SetDefault("round.spatial_index", false)

	v.SetDefault("cycle.width", parameter.DefaultWidth)
	v.SetDefault("cycle.turn_rate", parameter.DefaultTurnRate)
	v.SetDefault("cycle.gap_chance", parameter.DefaultGapChance)
	v.SetDefault("cycle.min_gap", parameter.DefaultMinGap)
	v.SetDefault("cycle.max_gap", parameter.DefaultMaxGap)

	v.SetDefault("players", 2)
	v.SetDefault("input.hold", parameter.DefaultKeyHold.String())
	v.SetDefault("audio.enabled", true)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
}

// Load reads lightcycle.toml from dir (if given), the working directory or $HOME/.config/lightcycle.
// A missing file is not an error; defaults and environment still apply.
func Load(dir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/lightcycle")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Settings, error) {
	maxDuration, err := duration(v, "round.max_duration")
	if err != nil {
		return Settings{}, err
	}
	hold, err := duration(v, "input.hold")
	if err != nil {
		return Settings{}, err
	}

	minGap := max(0, v.GetInt("cycle.min_gap"))

	s := Settings{
		Display: DisplaySettings{
			Width:  v.GetFloat64("display.width"),
			Height: v.GetFloat64("display.height"),
		},
		Round: RoundSettings{
			Zoom:           clamp(v.GetFloat64("round.zoom"), parameter.MinZoom, parameter.MaxZoom),
			TickRate:       nearestInt(v.GetInt("round.tick_rate"), parameter.TickRateOptions),
			CountdownTicks: max(0, v.GetInt("round.countdown_ticks")),
			MaxDuration:    maxDuration,
			Seed:           v.GetUint64("round.seed"),
			SpatialIndex:   v.GetBool("round.spatial_index"),
		},
		Cycle: CycleSettings{
			Width:     nearest(v.GetFloat64("cycle.width"), parameter.WidthOptions),
			TurnRate:  nearest(v.GetFloat64("cycle.turn_rate"), parameter.TurnRateOptions),
			GapChance: clamp(v.GetFloat64("cycle.gap_chance"), 0, 1),
			MinGap:    minGap,
			MaxGap:    max(minGap, v.GetInt("cycle.max_gap")),
		},
		Players: min(max(v.GetInt("players"), parameter.MinPlayers), parameter.MaxPlayers),
		Input:   InputSettings{Hold: hold},
		Audio:   AudioSettings{Enabled: v.GetBool("audio.enabled")},
		Log: LogSettings{
			Enabled: v.GetBool("log.enabled"),
			Dir:     v.GetString("log.dir"),
			Level:   v.GetString("log.level"),
		},
	}
	return s, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func clamp(f, lo, hi float64) float64 {
	if math.IsNaN(f) {
		return hi
	}
	return min(max(f, lo), hi)
}

// nearest snaps f to the closest option, the lower one on ties
func nearest(f float64, options []float64) float64 {
	best := options[0]
	for _, o := range options[1:] {
		if math.Abs(o-f) < math.Abs(best-f) {
			best = o
		}
	}
	return best
}

func nearestInt(n int, options []int) int {
	best := options[0]
	for _, o := range options[1:] {
		if abs(o-n) < abs(best-n) {
			best = o
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
