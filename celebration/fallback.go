package celebration

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/audio"
	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/parameter"
)

// fallbackParticles answers every effect request with minimal confetti
type fallbackParticles struct {
	catalog *effect.Catalog
}

func (f fallbackParticles) Confetti() error  { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Hearts() error    { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Stars() error     { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Magic() error     { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Fireworks() error { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Bubbles() error   { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Ripples() error   { return f.catalog.FallbackConfetti() }
func (f fallbackParticles) Petals() error    { return f.catalog.FallbackConfetti() }

func (f fallbackParticles) HeartBurst(effect.Vec) error { return f.catalog.FallbackConfetti() }

// noParticles is used when not even a spawner is available
type noParticles struct{}

func (noParticles) Confetti() error  { return nil }
func (noParticles) Hearts() error    { return nil }
func (noParticles) Stars() error     { return nil }
func (noParticles) Magic() error     { return nil }
func (noParticles) Fireworks() error { return nil }
func (noParticles) Bubbles() error   { return nil }
func (noParticles) Ripples() error   { return nil }
func (noParticles) Petals() error    { return nil }

func (noParticles) HeartBurst(effect.Vec) error { return nil }

// Bell is implemented by tone generators with a dedicated bell voice
type Bell interface {
	PlayBell() error
}

// fallbackMusic logs and rings a single bell if a tone generator exists
type fallbackMusic struct {
	tones audio.ToneGenerator
	log   *zap.Logger
}

func (f fallbackMusic) Play(m audio.Melody) error {
	f.log.Info("music unavailable, playing bell", zap.String("melody", m.Name))
	if f.tones == nil {
		return nil
	}
	if b, ok := f.tones.(Bell); ok {
		return b.PlayBell()
	}
	return f.tones.PlayTone(parameter.BellFrequency, parameter.BellDuration)
}

func (fallbackMusic) Stop() int { return 0 }

// fallbackGallery substitutes a ripple burst for the highlight sweep
type fallbackGallery struct {
	particles Particles
	log       *zap.Logger
}

func (f fallbackGallery) StartHighlightMode() {
	if err := f.particles.Ripples(); err != nil {
		f.log.Debug("ripple substitute failed", zap.Error(err))
	}
}

func (fallbackGallery) ResetHighlightMode() {}

// nopDisplay ignores all display state
type nopDisplay struct{}

func (nopDisplay) SetButtonLabel(string, bool) {}
func (nopDisplay) RandomTheme() string         { return "" }
func (nopDisplay) ResetTheme()                 {}
func (nopDisplay) ShowMessage(string)          {}
func (nopDisplay) ClearMessage()               {}
func (nopDisplay) SetCounter(int)              {}
func (nopDisplay) ClearCounter()               {}
