package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/audio"
	"github.com/lixenwraith/lightcycle/config"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/input"
	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/render"
	"github.com/lixenwraith/lightcycle/status"
)

// game wires the terminal, the input router and the sound director around consecutive rounds
type game struct {
	screen   tcell.Screen
	settings config.Settings
	log      zerolog.Logger

	reg      *status.Registry
	router   *input.Router
	renderer *render.Renderer
	match    *engine.Match
	sound    *audio.SoundManager
	director *audio.Director

	events chan tcell.Event
	fps    frameRate
}

func newGame(screen tcell.Screen, settings config.Settings, logger zerolog.Logger, sound *audio.SoundManager) *game {
	reg := status.NewRegistry()
	return &game{
		screen:   screen,
		settings: settings,
		log:      logger,
		reg:      reg,
		router:   input.NewRouter(settings.Players, input.NewMonotonicTimeProvider(), settings.Input.Hold),
		renderer: render.NewRenderer(screen),
		match:    engine.NewMatch(),
		sound:    sound,
		director: audio.NewDirector(sound),
		events:   make(chan tcell.Event, 256),
		fps:      frameRate{value: reg.Floats.Get(status.KeyFrameRate)},
	}
}

// run plays rounds until the player quits
func (g *game) run() error {
	stop := make(chan struct{})
	defer close(stop)
	core.Go(func() { g.pollEvents(stop) })

	for {
		restart, err := g.playRound()
		if err != nil || !restart {
			return err
		}
	}
}

// pollEvents forwards terminal events; PollEvent returns nil once the screen is finalized
func (g *game) pollEvents(stop <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-stop:
			return
		}
	}
}

// playRound runs one round and its end screen, reporting whether another round was requested
func (g *game) playRound() (bool, error) {
	g.router.ReleaseAll()

	specs, world, opts := g.settings.RoundConfig(g.router.Sources(), g.log, g.reg)
	round, err := engine.CreateRound(specs, world, opts...)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan engine.Snapshot, 1)
	runner := engine.NewRunner(round, engine.WithTickHandler(func(s engine.Snapshot) {
		// Drop frames the UI has not caught up with; the next tick carries newer state
		select {
		case ticks <- s:
		default:
		}
	}))

	done := make(chan engine.Status, 1)
	core.Go(func() {
		st, _ := runner.Run(ctx)
		done <- st
	})

	finished := false
	defer func() {
		cancel()
		if !finished {
			<-done
		}
	}()

	snap := runner.Snapshot()
	g.director.Reset(snap.Status)
	g.draw(snap, false)

	refresh := time.NewTicker(parameter.FrameInterval)
	defer refresh.Stop()

	for {
		select {
		case ev := <-g.events:
			switch g.router.Handle(ev).Type {
			case input.IntentQuit:
				return false, nil
			case input.IntentRestart:
				if finished {
					return true, nil
				}
			case input.IntentPause:
				if !finished {
					paused := runner.TogglePause()
					g.log.Debug().Bool("paused", paused).Msg("pause toggled")
				}
			case input.IntentToggleMute:
				muted := g.sound.ToggleMute()
				g.log.Debug().Bool("muted", muted).Msg("mute toggled")
			case input.IntentResize:
				g.screen.Sync()
				g.renderer.Resize()
			}
			g.draw(snap, runner.Paused())

		case s := <-ticks:
			snap = s
			g.director.Observe(s.Status)
			g.draw(snap, false)

		case st := <-done:
			finished = true
			snap = runner.Snapshot()
			g.director.Observe(st)
			g.match.Record(st)
			g.log.Info().
				Stringer("outcome", st.Outcome).
				Int("winner", int(st.Winner)).
				Int("rounds", g.match.Rounds()).
				Msg("round over")
			g.draw(snap, false)

		case <-refresh.C:
			g.draw(snap, runner.Paused())
		}
	}
}

func (g *game) draw(snap engine.Snapshot, paused bool) {
	g.renderer.Draw(render.Frame{
		Snapshot: snap,
		Paused:   paused,
		Muted:    g.settings.Audio.Enabled && g.sound.Muted(),
		Match:    g.match,
	})
	g.fps.frame(time.Now())
}

// frameRate publishes drawn frames per second to the registry, averaged over one-second windows
type frameRate struct {
	value *status.Gauge
	count int
	since time.Time
}

func (f *frameRate) frame(now time.Time) {
	if f.since.IsZero() {
		f.since = now
		return
	}
	f.count++
	if elapsed := now.Sub(f.since); elapsed >= time.Second {
		f.value.Store(float64(f.count) / elapsed.Seconds())
		f.count = 0
		f.since = now
	}
}
