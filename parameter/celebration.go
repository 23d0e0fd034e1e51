package parameter

import "time"

// Celebration Timeline
const (
	// CelebrationDuration is the auto-stop delay after Start
	CelebrationDuration = 10 * time.Second

	StepConfettiOffset = 0
	StepMessageOffset  = 500 * time.Millisecond
	StepMusicOffset    = 1000 * time.Millisecond
	StepStarsOffset    = 1500 * time.Millisecond
	StepGalleryOffset  = 2000 * time.Millisecond
)

// Special Message
const (
	// MessageDuration covers the 4s display plus the 0.8s fade
	MessageDuration = 4800 * time.Millisecond
)

// Age Counter
const (
	CounterSteps    = 30
	CounterInterval = 50 * time.Millisecond
	DefaultAge      = 43
)

// Gallery Highlight
const (
	HighlightStagger  = 300 * time.Millisecond
	HighlightDuration = 1 * time.Second
)

// Frame pacing
const (
	FrameUpdateInterval = 33 * time.Millisecond
)
