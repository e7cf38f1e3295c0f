package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/engine"
)

// KeyTable maps key events to simulation actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Escape)
	SpecialKeys map[tcell.Key]engine.Action

	// Printable rune bindings
	Runes map[rune]engine.Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Action{
			tcell.KeyLeft:   engine.ActionMoveLeft,
			tcell.KeyRight:  engine.ActionMoveRight,
			tcell.KeyUp:     engine.ActionMoveUp,
			tcell.KeyDown:   engine.ActionMoveDown,
			tcell.KeyEnter:  engine.ActionFire,
			tcell.KeyCtrlC:  engine.ActionQuit,
			tcell.KeyEscape: engine.ActionQuit,
		},
		Runes: map[rune]engine.Action{
			'j': engine.ActionMoveLeft,
			'l': engine.ActionMoveRight,
			'i': engine.ActionMoveUp,
			'k': engine.ActionMoveDown,
			' ': engine.ActionFire,
			'q': engine.ActionQuit,
		},
	}
}

// Lookup resolves a key event; false for unbound keys, which the host ignores
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (engine.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.SpecialKeys[ev.Key()]
	return a, ok
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]engine.Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]engine.Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
