package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/cycle"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Player cycle.ID
	Turn   Turn
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry
	// Printable keys, matched case-insensitively
	Runes map[rune]KeyEntry
}

// PlayerKeys is the left/right pair for one player; Left/Right runes are used when the Key is tcell.KeyRune
type PlayerKeys struct {
	LeftKey, RightKey   tcell.Key
	LeftRune, RightRune rune
}

// DefaultPlayerKeys are the bindings in registration order
var DefaultPlayerKeys = []PlayerKeys{
	{LeftKey: tcell.KeyLeft, RightKey: tcell.KeyRight},
	{LeftKey: tcell.KeyRune, RightKey: tcell.KeyRune, LeftRune: 'a', RightRune: 'd'},
	{LeftKey: tcell.KeyRune, RightKey: tcell.KeyRune, LeftRune: 'j', RightRune: 'l'},
	{LeftKey: tcell.KeyRune, RightKey: tcell.KeyRune, LeftRune: 'z', RightRune: 'c'},
	{LeftKey: tcell.KeyRune, RightKey: tcell.KeyRune, LeftRune: '4', RightRune: '6'},
	{LeftKey: tcell.KeyRune, RightKey: tcell.KeyRune, LeftRune: 'v', RightRune: 'n'},
}

// DefaultKeyTable returns the system keys plus steering for the first players
func DefaultKeyTable(players int) *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyEnter:  {Intent: IntentRestart},
		},
		Runes: map[rune]KeyEntry{
			'p': {Intent: IntentPause},
			' ': {Intent: IntentRestart},
		},
	}

	for i := 0; i < players && i < len(DefaultPlayerKeys); i++ {
		kt.Bind(cycle.ID(i+1), DefaultPlayerKeys[i])
	}
	return kt
}

// Bind assigns a player's steering keys, replacing whatever the keys did before
func (kt *KeyTable) Bind(id cycle.ID, keys PlayerKeys) {
	kt.bindOne(id, keys.LeftKey, keys.LeftRune, TurnLeft)
	kt.bindOne(id, keys.RightKey, keys.RightRune, TurnRight)
}

func (kt *KeyTable) bindOne(id cycle.ID, key tcell.Key, r rune, turn Turn) {
	entry := KeyEntry{Intent: IntentSteer, Player: id, Turn: turn}
	if key == tcell.KeyRune {
		kt.Runes[r] = entry
		return
	}
	kt.SpecialKeys[key] = entry
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := kt.Runes[toLower(r)]
		return e, ok
	}
	e, ok := kt.SpecialKeys[key]
	return e, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
