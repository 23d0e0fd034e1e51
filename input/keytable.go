package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentToggle,
		},
		Runes: map[rune]IntentType{
			' ': IntentToggle,
			'q': IntentQuit,
			'm': IntentMusic,
			'r': IntentReset,
			'c': IntentConfetti,
			'h': IntentHearts,
			's': IntentStars,
			'f': IntentFireworks,
			'b': IntentBubbles,
			'g': IntentMagic,
			'p': IntentPetals,
			'e': IntentBurst,
			'M': IntentMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(kt.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	return out
}

// clickButtons are the buttons that produce IntentClick; wheel and release are ignored
const clickButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Translate converts a terminal event into an intent; unbound events yield IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventFocus:
		return Intent{Type: IntentFocus, Focused: ev.Focused}
	case *tcell.EventMouse:
		b := ev.Buttons() & clickButtons
		if b == 0 {
			return Intent{}
		}
		x, y := ev.Position()
		return Intent{Type: IntentClick, X: x, Y: y, Button: b}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: kt.Runes[ev.Rune()], Key: tcell.KeyRune, Rune: ev.Rune()}
		}
		return Intent{Type: kt.SpecialKeys[ev.Key()], Key: ev.Key()}
	}
	return Intent{}
}
