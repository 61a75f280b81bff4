package input

import "github.com/lixenwraith/lightcycle/cycle"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+Q, Ctrl+C
	IntentPause      // p
	IntentRestart    // Enter, Space once a round is over
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Player steering
	IntentSteer
)

// Turn is the steering half a key controls
type Turn uint8

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

// Intent represents a parsed semantic action
type Intent struct {
	Type IntentType
	// Player and Turn are set for IntentSteer
	Player cycle.ID
	Turn   Turn
}
