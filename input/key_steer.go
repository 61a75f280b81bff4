package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/lightcycle/engine"
)

// KeySteer turns terminal key presses into a held steering state.
// Terminals report presses and auto-repeat but never releases, so a turn counts as held for a
// window after its last press. A press of the opposite turn releases the other side at once.
// Steer is polled by the round goroutine while presses arrive from the input goroutine.
type KeySteer struct {
	mu    sync.Mutex
	clock TimeProvider
	hold  time.Duration
	left  time.Time
	right time.Time
}

var _ engine.SteerSource = (*KeySteer)(nil)

func NewKeySteer(clock TimeProvider, hold time.Duration) *KeySteer {
	return &KeySteer{clock: clock, hold: hold}
}

// Press records a press (or auto-repeat) of one turn key
func (k *KeySteer) Press(t Turn) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	switch t {
	case TurnLeft:
		k.left = now
		k.right = time.Time{}
	case TurnRight:
		k.right = now
		k.left = time.Time{}
	}
}

// Release drops both turns, used between rounds
func (k *KeySteer) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.left, k.right = time.Time{}, time.Time{}
}

func (k *KeySteer) Steer() engine.Steer {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	return engine.Steer{
		Left:  k.held(k.left, now),
		Right: k.held(k.right, now),
	}
}

func (k *KeySteer) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) < k.hold
}
