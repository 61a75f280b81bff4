package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lightcycle/audio"
	"github.com/lixenwraith/lightcycle/config"
	"github.com/lixenwraith/lightcycle/status"
)

// newTestGame runs single-player rounds of 25 ticks/s that time out after 200ms
func newTestGame(t *testing.T) (*game, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	settings, err := config.Load(t.TempDir())
	require.NoError(t, err)
	settings.Players = 1
	settings.Round.TickRate = 25
	settings.Round.CountdownTicks = 0
	settings.Round.MaxDuration = 200 * time.Millisecond
	settings.Audio.Enabled = false

	// Uninitialized SoundManager never touches the speaker
	return newGame(screen, settings, zerolog.Nop(), audio.NewSoundManager()), screen
}

func runGame(g *game) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- g.run() }()
	return errc
}

func waitExit(t *testing.T, errc <-chan error) {
	t.Helper()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("game did not exit")
	}
}

func TestGameQuitDuringRound(t *testing.T) {
	g, screen := newTestGame(t)
	g.settings.Round.MaxDuration = time.Minute

	errc := runGame(g)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	waitExit(t, errc)

	assert.Zero(t, g.match.Rounds(), "aborted rounds are not counted")
}

func TestGameRecordsTimedOutRound(t *testing.T) {
	g, screen := newTestGame(t)
	errc := runGame(g)

	require.Eventually(t, func() bool { return g.match.Rounds() == 1 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, g.match.Draws())

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	waitExit(t, errc)
}

func TestGameRestartAfterRound(t *testing.T) {
	g, screen := newTestGame(t)
	errc := runGame(g)

	require.Eventually(t, func() bool { return g.match.Rounds() == 1 }, 3*time.Second, 10*time.Millisecond)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return g.match.Rounds() == 2 }, 3*time.Second, 10*time.Millisecond)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	waitExit(t, errc)

	assert.Positive(t, g.reg.Ints.Get(status.KeyRoundTick).Load())
}

func TestFrameRate(t *testing.T) {
	reg := status.NewRegistry()
	f := frameRate{value: reg.Floats.Get(status.KeyFrameRate)}

	start := time.Unix(0, 0)
	for i := range 21 {
		f.frame(start.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	assert.InDelta(t, 20.0, f.value.Load(), 0.01)
}
