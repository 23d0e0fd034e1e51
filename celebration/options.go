package celebration

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/audio"
	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/parameter"
)

// Particles is the effect catalog capability
type Particles interface {
	Confetti() error
	Hearts() error
	Stars() error
	Magic() error
	Fireworks() error
	Bubbles() error
	Ripples() error
	Petals() error
	HeartBurst(at effect.Vec) error
}

// Music plays and stops a melody
type Music interface {
	Play(m audio.Melody) error
	Stop() int
}

// Gallery is the photo highlight capability
type Gallery interface {
	StartHighlightMode()
	ResetHighlightMode()
}

// Display is the non-effect screen state
type Display interface {
	SetButtonLabel(label string, busy bool)
	RandomTheme() string
	ResetTheme()
	ShowMessage(msg string)
	ClearMessage()
	SetCounter(n int)
	ClearCounter()
}

// Effects is the live effect set
type Effects interface {
	ClearAll() int
	Len() int
}

// Config is the celebration tuning
type Config struct {
	Duration  time.Duration
	Age       int
	Messages  []string
	IdleLabel string
	BusyLabel string
	Melody    audio.Melody

	// RetractOnStop also cancels spawn steps of the timeline that have not run yet
	RetractOnStop bool
}

// DefaultConfig returns the built-in celebration settings
func DefaultConfig() Config {
	return Config{
		Duration:  parameter.CelebrationDuration,
		Age:       parameter.DefaultAge,
		Messages:  []string{"Happy Birthday!"},
		IdleLabel: "Celebrate! 🎉",
		BusyLabel: "🎊 Celebrating! 🎊",
		Melody:    audio.HappyBirthday,
	}
}

// Options wires the orchestrator. Scheduler and Effects are required; every
// other collaborator is optional and replaced by a fallback when nil
type Options struct {
	Scheduler engine.Scheduler
	Effects   Effects

	// Spawner backs the fallback confetti when Particles is nil
	Spawner   *effect.Spawner
	Particles Particles

	Music Music
	// Tones rings a bell when Music is nil
	Tones audio.ToneGenerator

	Gallery Gallery
	Display Display

	Config Config
	Rand   *rand.Rand
	Log    *zap.Logger
}
