package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lightcycle/cycle"
	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/vmath"
)

const hold = 200 * time.Millisecond

func newClock() *MockTimeProvider {
	return NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeySteerHoldWindow(t *testing.T) {
	clock := newClock()
	k := NewKeySteer(clock, hold)
	assert.Equal(t, engine.Steer{}, k.Steer())

	k.Press(TurnLeft)
	assert.Equal(t, engine.Steer{Left: true}, k.Steer())

	clock.Advance(hold - time.Millisecond)
	assert.Equal(t, engine.Steer{Left: true}, k.Steer())

	clock.Advance(time.Millisecond)
	assert.Equal(t, engine.Steer{}, k.Steer())
}

func TestKeySteerRepeatExtendsHold(t *testing.T) {
	clock := newClock()
	k := NewKeySteer(clock, hold)

	for range 5 {
		k.Press(TurnRight)
		clock.Advance(hold / 2)
		assert.True(t, k.Steer().Right)
	}
}

func TestKeySteerOppositeReleases(t *testing.T) {
	clock := newClock()
	k := NewKeySteer(clock, hold)

	k.Press(TurnLeft)
	k.Press(TurnRight)
	assert.Equal(t, engine.Steer{Right: true}, k.Steer())

	k.Release()
	assert.Equal(t, engine.Steer{}, k.Steer())
}

func TestRouterSystemKeys(t *testing.T) {
	r := NewRouter(2, newClock(), hold)

	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl+q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), IntentQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"ctrl+s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), IntentToggleMute},
		{"ctrl rune q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), IntentQuit},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentRestart},
		{"space", runeKey(' '), IntentRestart},
		{"pause", runeKey('p'), IntentPause},
		{"pause upper", runeKey('P'), IntentPause},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
		{"unbound", runeKey('x'), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Handle(tt.ev).Type)
		})
	}
}

func TestRouterSteering(t *testing.T) {
	clock := newClock()
	r := NewRouter(3, clock, hold)
	sources := r.Sources()
	require.Len(t, sources, 3)

	in := r.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, Intent{Type: IntentSteer, Player: 1, Turn: TurnLeft}, in)

	in = r.Handle(runeKey('D'))
	assert.Equal(t, Intent{Type: IntentSteer, Player: 2, Turn: TurnRight}, in)

	in = r.Handle(runeKey('j'))
	assert.Equal(t, Intent{Type: IntentSteer, Player: 3, Turn: TurnLeft}, in)

	assert.Equal(t, engine.Steer{Left: true}, sources[0].Steer())
	assert.Equal(t, engine.Steer{Right: true}, sources[1].Steer())
	assert.Equal(t, engine.Steer{Left: true}, sources[2].Steer())

	r.ReleaseAll()
	for _, s := range sources {
		assert.Equal(t, engine.Steer{}, s.Steer())
	}
}

func TestRouterIgnoresKeysOfAbsentPlayers(t *testing.T) {
	r := NewRouter(2, newClock(), hold)
	assert.Equal(t, IntentNone, r.Handle(runeKey('z')).Type)
	assert.Nil(t, r.steer(cycle.ID(3)))
	assert.Nil(t, r.steer(cycle.ID(0)))
}

func TestDefaultKeyTableCoversSixPlayers(t *testing.T) {
	kt := DefaultKeyTable(6)
	seen := map[cycle.ID]int{}
	for _, e := range kt.Runes {
		if e.Intent == IntentSteer {
			seen[e.Player]++
		}
	}
	for _, e := range kt.SpecialKeys {
		if e.Intent == IntentSteer {
			seen[e.Player]++
		}
	}
	for id := cycle.ID(1); id <= 6; id++ {
		assert.Equal(t, 2, seen[id], "player %d", id)
	}
}

func TestRouterDrivesRound(t *testing.T) {
	clock := newClock()
	r := NewRouter(1, clock, hold)

	specs := []engine.VehicleSpec{engine.DefaultVehicleSpec(0, r.Sources()[0])}
	round, err := engine.CreateRound(specs, engine.WorldConfig{DisplayWidth: 800, DisplayHeight: 600, Zoom: 1},
		engine.WithSeed(1), engine.WithCountdownTicks(0))
	require.NoError(t, err)

	start, _ := round.Snapshot().Vehicle(1)
	r.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	round.Step()

	v, _ := round.Snapshot().Vehicle(1)
	assert.InDelta(t, vmath.NormalizeAngle(start.Heading+specs[0].TurnRate), v.Heading, 1e-9)
}
