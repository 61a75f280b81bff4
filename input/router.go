package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/cycle"
	"github.com/lixenwraith/lightcycle/engine"
)

// Router parses tcell events into intents and feeds steering keys into per-player KeySteers
type Router struct {
	keys   *KeyTable
	steers []*KeySteer
}

// NewRouter creates one KeySteer per player, bound through the default key table
func NewRouter(players int, clock TimeProvider, hold time.Duration) *Router {
	r := &Router{
		keys:   DefaultKeyTable(players),
		steers: make([]*KeySteer, players),
	}
	for i := range r.steers {
		r.steers[i] = NewKeySteer(clock, hold)
	}
	return r
}

// Sources returns the steer sources in registration order, ready for VehicleSpec.Source
func (r *Router) Sources() []engine.SteerSource {
	out := make([]engine.SteerSource, len(r.steers))
	for i, s := range r.steers {
		out[i] = s
	}
	return out
}

// steer returns the KeySteer of a player, nil for unknown IDs
func (r *Router) steer(id cycle.ID) *KeySteer {
	idx := int(id) - 1
	if idx < 0 || idx >= len(r.steers) {
		return nil
	}
	return r.steers[idx]
}

// ReleaseAll drops every held turn
func (r *Router) ReleaseAll() {
	for _, s := range r.steers {
		s.Release()
	}
}

// Handle parses one event; steering keys are applied here and reported as IntentSteer
func (r *Router) Handle(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return r.handleKey(ev)
	}
	return Intent{}
}

// ctrlRunes covers terminals reporting Ctrl+letter as a rune with ModCtrl
var ctrlRunes = map[rune]IntentType{
	'q': IntentQuit,
	'c': IntentQuit,
	's': IntentToggleMute,
}

func (r *Router) handleKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		return Intent{Type: ctrlRunes[toLower(ev.Rune())]}
	}

	entry, ok := r.keys.Lookup(ev.Key(), ev.Rune())
	if !ok {
		return Intent{}
	}

	if entry.Intent == IntentSteer {
		if s := r.steer(entry.Player); s != nil {
			s.Press(entry.Turn)
		}
		return Intent{Type: IntentSteer, Player: entry.Player, Turn: entry.Turn}
	}
	return Intent{Type: entry.Intent}
}
