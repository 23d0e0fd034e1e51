package effect

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/parameter"
)

// Catalog is the particle module: named effect batches built on a Spawner
type Catalog struct {
	spawner  *Spawner
	palettes Palettes
	log      *zap.Logger
}

// NewCatalog creates a catalog; zero-value palettes fall back to the defaults
func NewCatalog(spawner *Spawner, palettes Palettes, log *zap.Logger) *Catalog {
	def := DefaultPalettes()
	if len(palettes.Confetti) == 0 {
		palettes.Confetti = def.Confetti
	}
	if len(palettes.Fallback) == 0 {
		palettes.Fallback = def.Fallback
	}
	if len(palettes.Hearts) == 0 {
		palettes.Hearts = def.Hearts
	}
	if len(palettes.Stars) == 0 {
		palettes.Stars = def.Stars
	}
	if len(palettes.Sparks) == 0 {
		palettes.Sparks = def.Sparks
	}
	if len(palettes.Bubbles) == 0 {
		palettes.Bubbles = def.Bubbles
	}
	if len(palettes.Magic) == 0 {
		palettes.Magic = def.Magic
	}
	if len(palettes.Petals) == 0 {
		palettes.Petals = def.Petals
	}
	if len(palettes.Ambient) == 0 {
		palettes.Ambient = def.Ambient
	}
	if len(palettes.Text) == 0 {
		palettes.Text = def.Text
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{spawner: spawner, palettes: palettes, log: log}
}

// Confetti fires three bursts of shaped confetti
func (c *Catalog) Confetti() error {
	factory := ConfettiFactory(c.palettes.Confetti)
	if err := c.spawner.SpawnBatch(parameter.ConfettiPerBurst, parameter.ConfettiStagger, factory); err != nil {
		return err
	}
	for b := 1; b < parameter.ConfettiBursts; b++ {
		c.later(time.Duration(b)*parameter.ConfettiBurstInterval, "confetti", func() error {
			return c.spawner.SpawnBatch(parameter.ConfettiPerBurst, parameter.ConfettiStagger, factory)
		})
	}
	return nil
}

// FallbackConfetti is the minimal confetti used when no catalog is wired
func (c *Catalog) FallbackConfetti() error {
	return c.spawner.SpawnBatch(parameter.FallbackConfettiCount, parameter.FallbackConfettiStagger,
		FallbackConfettiFactory(c.palettes.Fallback))
}

// Hearts floats hearts up from the bottom
func (c *Catalog) Hearts() error {
	return c.spawner.SpawnBatch(parameter.HeartCount, parameter.HeartStagger, HeartFactory(c.palettes.Hearts))
}

// Stars rains a star shower
func (c *Catalog) Stars() error {
	return c.spawner.SpawnBatch(parameter.StarCount, parameter.StarStagger, StarFactory(c.palettes.Stars))
}

// Magic scatters twinkling glyphs
func (c *Catalog) Magic() error {
	return c.spawner.SpawnBatch(parameter.MagicCount, parameter.MagicStagger, MagicFactory(c.palettes.Magic))
}

// Bubbles releases rising bubbles
func (c *Catalog) Bubbles() error {
	return c.spawner.SpawnBatch(parameter.BubbleCount, parameter.BubbleStagger, BubbleFactory(c.palettes.Bubbles))
}

// Ripples expands rings from the center, the "special animations" of a celebration
func (c *Catalog) Ripples() error {
	return c.spawner.SpawnBatch(parameter.RippleCount, parameter.RippleStagger, RippleFactory(c.palettes.Sparks))
}

// Fireworks launches shells at random points in the upper screen, each bursting into sparks
func (c *Catalog) Fireworks() error {
	for i := 0; i < parameter.FireworkShells; i++ {
		c.later(time.Duration(i)*parameter.FireworkShellStagger, "firework", func() error {
			b := c.spawner.Bounds()
			rng := c.spawner.Rand()
			center := Vec{rng.Float64() * b.Width, rng.Float64() * b.Height * parameter.FireworkHeightRatio}
			return c.spawner.SpawnBatch(parameter.FireworkSparks, 0, SparkFactory(c.palettes.Sparks, center, parameter.FireworkSparks))
		})
	}
	return nil
}

// Petals rains flower petals from the top edge
func (c *Catalog) Petals() error {
	return c.spawner.SpawnBatch(parameter.PetalCount, parameter.PetalStagger, PetalFactory(c.palettes.Petals))
}

// HeartBurst explodes hearts outward from at, all at once
func (c *Catalog) HeartBurst(at Vec) error {
	return c.spawner.SpawnBatch(parameter.HeartBurstCount, 0,
		HeartBurstFactory(c.palettes.Hearts, at, parameter.HeartBurstCount))
}

// ClickBurst marks a pointer click with a small ring and a spark ring
func (c *Catalog) ClickBurst(at Vec) error {
	if err := c.spawner.SpawnBatch(1, 0, ClickRippleFactory(c.palettes.Sparks, at)); err != nil {
		return err
	}
	return c.spawner.SpawnBatch(parameter.ClickSparks, 0, ClickSparkFactory(c.palettes.Sparks, at, parameter.ClickSparks))
}

// FloatingText lifts text from at and fades it out
func (c *Catalog) FloatingText(text string, at Vec) error {
	if text == "" {
		return fmt.Errorf("%w: empty floating text", ErrInvalidArgument)
	}
	return c.spawner.SpawnBatch(1, 0, FloatingTextFactory(c.palettes.Text, text, at))
}

// Ambient seeds one batch of background dots
func (c *Catalog) Ambient() error {
	return c.spawner.SpawnBatch(parameter.AmbientCount, parameter.AmbientStagger, AmbientFactory(c.palettes.Ambient))
}

// Center is the middle of the current viewport
func (c *Catalog) Center() Vec {
	return c.spawner.Bounds().Center()
}

// later runs fn after delay, logging its error
func (c *Catalog) later(delay time.Duration, name string, fn func() error) {
	c.spawner.Scheduler().Schedule(delay, func() {
		if err := fn(); err != nil {
			c.log.Warn("delayed batch failed", zap.String("effect", name), zap.Error(err))
		}
	})
}
