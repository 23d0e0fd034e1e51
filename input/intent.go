package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates user actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event
	IntentFocus  // Terminal focus gained or lost
	IntentMute   // silence all audio

	// Celebration
	IntentToggle // Space, Enter
	IntentMusic  // m
	IntentReset  // r

	// Direct effects
	IntentConfetti  // c
	IntentHearts    // h
	IntentStars     // s
	IntentFireworks // f
	IntentBubbles   // b
	IntentMagic     // g
	IntentPetals    // p
	IntentBurst     // e, hearts exploding from the center

	// Pointer
	IntentClick // mouse button press
)

var intentNames = map[IntentType]string{
	IntentNone:      "none",
	IntentQuit:      "quit",
	IntentResize:    "resize",
	IntentFocus:     "focus",
	IntentMute:      "mute",
	IntentToggle:    "toggle",
	IntentMusic:     "music",
	IntentReset:     "reset",
	IntentConfetti:  "confetti",
	IntentHearts:    "hearts",
	IntentStars:     "stars",
	IntentFireworks: "fireworks",
	IntentBubbles:   "bubbles",
	IntentMagic:     "magic",
	IntentPetals:    "petals",
	IntentBurst:     "burst",
	IntentClick:     "click",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}

// Intent is a translated terminal event
type Intent struct {
	Type IntentType
	Key  tcell.Key
	Rune rune

	// Width and Height are set for IntentResize
	Width, Height int

	// X, Y and Button locate an IntentClick
	X, Y   int
	Button tcell.ButtonMask

	// Focused is set for IntentFocus
	Focused bool
}
