package celebration

import (
	"time"

	"github.com/lixenwraith/celebrate/parameter"
)

// Step is one timeline action at an offset from Start
type Step struct {
	Offset time.Duration
	Name   string
	// Spawn marks steps that only create effects; they survive Stop unless RetractOnStop is set
	Spawn bool
	Run   func() error
}

// Timeline is an ordered, read-only list of steps
type Timeline []Step

// Names returns step names in order
func (t Timeline) Names() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Name
	}
	return out
}

// timeline builds the fixed celebration sequence
func (o *Orchestrator) timeline() Timeline {
	return Timeline{
		{Offset: parameter.StepConfettiOffset, Name: "confetti", Spawn: true, Run: o.particles.Confetti},
		{Offset: parameter.StepConfettiOffset, Name: "special-animations", Spawn: true, Run: o.particles.Ripples},
		{Offset: parameter.StepMessageOffset, Name: "message", Run: o.showMessage},
		{Offset: parameter.StepMusicOffset, Name: "music", Run: o.startMusic},
		{Offset: parameter.StepMusicOffset, Name: "hearts", Spawn: true, Run: o.particles.Hearts},
		{Offset: parameter.StepStarsOffset, Name: "stars", Spawn: true, Run: o.particles.Stars},
		{Offset: parameter.StepStarsOffset, Name: "counter", Run: o.animateCounter},
		{Offset: parameter.StepGalleryOffset, Name: "gallery", Run: o.startGallery},
	}
}
