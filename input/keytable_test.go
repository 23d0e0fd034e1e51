package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTable_Translate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"space toggles", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentToggle},
		{"enter toggles", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentToggle},
		{"m music", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentMusic},
		{"r reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"h hearts", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentHearts},
		{"c confetti", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), IntentConfetti},
		{"s stars", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentStars},
		{"f fireworks", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), IntentFireworks},
		{"b bubbles", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), IntentBubbles},
		{"p petals", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPetals},
		{"e burst", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), IntentBurst},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev).Type; got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslate_Resize(t *testing.T) {
	in := DefaultKeyTable().Translate(tcell.NewEventResize(120, 40))
	if in.Type != IntentResize || in.Width != 120 || in.Height != 40 {
		t.Errorf("resize intent = %+v", in)
	}
}

func TestTranslate_Mouse(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name   string
		btn    tcell.ButtonMask
		want   IntentType
		button tcell.ButtonMask
	}{
		{"primary", tcell.ButtonPrimary, IntentClick, tcell.ButtonPrimary},
		{"secondary", tcell.ButtonSecondary, IntentClick, tcell.ButtonSecondary},
		{"middle", tcell.ButtonMiddle, IntentClick, tcell.ButtonMiddle},
		{"release", tcell.ButtonNone, IntentNone, 0},
		{"wheel", tcell.WheelUp, IntentNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := kt.Translate(tcell.NewEventMouse(12, 7, tt.btn, tcell.ModNone))
			if in.Type != tt.want || in.Button != tt.button {
				t.Fatalf("intent = %+v, want %v with button %v", in, tt.want, tt.button)
			}
			if in.Type == IntentClick && (in.X != 12 || in.Y != 7) {
				t.Errorf("click at (%d,%d), want (12,7)", in.X, in.Y)
			}
		})
	}
}

func TestTranslate_Focus(t *testing.T) {
	kt := DefaultKeyTable()
	lost := kt.Translate(tcell.NewEventFocus(false))
	if lost.Type != IntentFocus || lost.Focused {
		t.Errorf("focus lost intent = %+v", lost)
	}
	gained := kt.Translate(tcell.NewEventFocus(true))
	if gained.Type != IntentFocus || !gained.Focused {
		t.Errorf("focus gained intent = %+v", gained)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"x":      "confetti",
		"space":  "hearts",
		"Ctrl-R": "reset",
		"enter":  "none",
		"q":      "NONE",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.Runes['x'] != IntentConfetti {
		t.Errorf("x = %v, want confetti", kt.Runes['x'])
	}
	if kt.Runes[' '] != IntentHearts {
		t.Errorf("space = %v, want hearts", kt.Runes[' '])
	}
	if kt.SpecialKeys[tcell.KeyCtrlR] != IntentReset {
		t.Errorf("ctrl-r = %v, want reset", kt.SpecialKeys[tcell.KeyCtrlR])
	}

	merged := MergeKeyTable(DefaultKeyTable(), kt)
	if _, ok := merged.SpecialKeys[tcell.KeyEnter]; ok {
		t.Error("enter should be unbound after merge")
	}
	if _, ok := merged.Runes['q']; ok {
		t.Error("q should be unbound after merge")
	}
	if merged.Runes['h'] != IntentHearts {
		t.Error("untouched bindings must survive merge")
	}

	// Base must not be mutated
	if DefaultKeyTable().Runes[' '] != IntentToggle {
		t.Error("default table changed")
	}
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		want     error
	}{
		{"unknown action", map[string]string{"x": "explode"}, ErrUnknownAction},
		{"resize not bindable", map[string]string{"x": "resize"}, ErrUnknownAction},
		{"click not bindable", map[string]string{"x": "click"}, ErrUnknownAction},
		{"focus not bindable", map[string]string{"x": "focus"}, ErrUnknownAction},
		{"bad key", map[string]string{"notakey": "hearts"}, ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.bindings)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIntentNames(t *testing.T) {
	for _, name := range ActionNames() {
		it, ok := ActionEntry(name)
		if !ok {
			t.Fatalf("ActionEntry(%q) missing", name)
		}
		if it.String() != name {
			t.Errorf("round trip %q -> %v", name, it)
		}
	}
	if IntentType(200).String() != "unknown" {
		t.Error("out of range intent should be unknown")
	}
}
