package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/celebrate/parameter"
)

// Bounds is the viewport size in cells
type Bounds struct {
	Width, Height float64
}

// Center returns the middle of the viewport
func (b Bounds) Center() Vec {
	return Vec{b.Width / 2, b.Height / 2}
}

// Factory builds the descriptor for element i of a batch
type Factory func(i int, rng *rand.Rand, b Bounds) Descriptor

// Glyph sets
var (
	heartGlyphs  = []rune{'♥', '❤', '❣', '♡', '💖', '💗'}
	starGlyphs   = []rune{'★', '✦', '✧', '✩', '⋆', '✶'}
	magicGlyphs  = []rune{'✧', '◆', '◇', '⋄', '✦', '*'}
	bubbleGlyphs = []rune{'o', 'O', '°', '○'}
	sparkGlyphs  = []rune{'·', '*', '+', '•'}
	petalGlyphs  = []rune{'🌸', '🌺', '🌹', '🌷', '🌻', '🌼'}
)

func pickRune(rng *rand.Rand, set []rune) rune {
	return set[rng.Intn(len(set))]
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)))
}

// fallSpeed is the vertical speed that carries an element across height over
// lifetime once gravity is accounted for
func fallSpeed(height float64, lifetime time.Duration, gravity float64) float64 {
	t := lifetime.Seconds()
	if t <= 0 {
		return 0
	}
	return (height - 0.5*gravity*t*t) / t
}

// ConfettiFactory drops shaped pieces from the top edge
func ConfettiFactory(p Palette) Factory {
	shapes := []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeGlyph}
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := randDuration(rng, parameter.ConfettiLifetimeMin, parameter.ConfettiLifetimeMax)
		d := Descriptor{
			Kind:     KindConfetti,
			Shape:    shapes[rng.Intn(len(shapes))],
			Glyph:    '★',
			Color:    p.Pick(rng),
			Size:     randRange(rng, parameter.ConfettiSizeMin, parameter.ConfettiSizeMax),
			Position: Vec{rng.Float64() * b.Width, -1},
			Gravity:  parameter.FallGravity,
			Lifetime: lifetime,
		}
		d.Velocity = Vec{
			X: (rng.Float64() - 0.5) * 2 * parameter.ConfettiDrift,
			Y: fallSpeed(b.Height+1, lifetime, d.Gravity),
		}
		return d
	}
}

// FallbackConfettiFactory is the minimal square confetti used when the catalog is missing
func FallbackConfettiFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := parameter.FallbackConfettiLifetime
		return Descriptor{
			Kind:     KindConfetti,
			Shape:    ShapeSquare,
			Color:    p.Pick(rng),
			Size:     2,
			Position: Vec{rng.Float64() * b.Width, -1},
			Velocity: Vec{0, fallSpeed(b.Height+1, lifetime, 0)},
			Lifetime: lifetime,
		}
	}
}

// HeartFactory floats hearts up from the bottom edge
func HeartFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := parameter.HeartLifetime
		return Descriptor{
			Kind:     KindHeart,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, heartGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 2, 4),
			Position: Vec{rng.Float64() * b.Width, b.Height},
			Velocity: Vec{
				X: (rng.Float64() - 0.5) * 2 * parameter.HeartSway,
				Y: -(b.Height + 1) / lifetime.Seconds(),
			},
			Lifetime: lifetime,
		}
	}
}

// StarFactory rains stars from above the top edge
func StarFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := parameter.StarLifetime
		return Descriptor{
			Kind:     KindStar,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, starGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 1.5, 3),
			Position: Vec{rng.Float64() * b.Width, -2},
			Velocity: Vec{0, fallSpeed(b.Height+2, lifetime, parameter.FallGravity)},
			Gravity:  parameter.FallGravity,
			Lifetime: lifetime,
		}
	}
}

// MagicFactory places twinkling glyphs uniformly over the viewport
func MagicFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		return Descriptor{
			Kind:     KindMagic,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, magicGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 1, 2.5),
			Position: Vec{rng.Float64() * b.Width, rng.Float64() * b.Height},
			Lifetime: parameter.MagicLifetime,
		}
	}
}

// BubbleFactory lets bubbles rise slowly from the bottom edge
func BubbleFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := randDuration(rng, parameter.BubbleLifetimeMin, parameter.BubbleLifetimeMax)
		return Descriptor{
			Kind:     KindBubble,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, bubbleGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 1, 4),
			Position: Vec{rng.Float64() * b.Width, b.Height},
			Velocity: Vec{0, fallSpeed(-(b.Height + 1), lifetime, parameter.BuoyancyGravity)},
			Gravity:  parameter.BuoyancyGravity,
			Lifetime: lifetime,
		}
	}
}

// SparkFactory bursts count sparks radially from center, element i at angle i/count
func SparkFactory(p Palette, center Vec, count int) Factory {
	if count <= 0 {
		count = 1
	}
	return func(i int, rng *rand.Rand, _ Bounds) Descriptor {
		angle := float64(i) / float64(count) * 2 * math.Pi
		speed := randRange(rng, parameter.FireworkSpeedMin, parameter.FireworkSpeedMax)
		return Descriptor{
			Kind:     KindSpark,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, sparkGlyphs),
			Color:    p.Pick(rng),
			Size:     1,
			Position: center,
			// Terminal cells are roughly twice as tall as wide
			Velocity: radial(angle, speed),
			Gravity:  parameter.FallGravity,
			Lifetime: parameter.FireworkLifetime,
		}
	}
}

// RippleFactory expands rings from the viewport center
func RippleFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		return Descriptor{
			Kind:     KindRipple,
			Shape:    ShapeRing,
			Color:    p.Pick(rng),
			Size:     parameter.RippleMaxRadius,
			Position: b.Center(),
			Lifetime: parameter.RippleLifetime,
		}
	}
}

// radial returns a velocity of speed along angle, squashed vertically for cell aspect
func radial(angle, speed float64) Vec {
	return Vec{math.Cos(angle) * speed, math.Sin(angle) * speed / 2}
}

// PetalFactory drifts petals down from above the top edge with a lateral sway
func PetalFactory(p Palette) Factory {
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		lifetime := randDuration(rng, parameter.PetalLifetimeMin, parameter.PetalLifetimeMax)
		return Descriptor{
			Kind:     KindPetal,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, petalGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 2, 4),
			Position: Vec{rng.Float64() * b.Width, -2},
			Velocity: Vec{
				X: (rng.Float64() - 0.5) * 2 * parameter.PetalSway,
				Y: (b.Height + 2) / lifetime.Seconds(),
			},
			Lifetime: lifetime,
		}
	}
}

// HeartBurstFactory throws count hearts outward from at, element i at angle i/count
func HeartBurstFactory(p Palette, at Vec, count int) Factory {
	if count <= 0 {
		count = 1
	}
	return func(i int, rng *rand.Rand, _ Bounds) Descriptor {
		angle := float64(i) / float64(count) * 2 * math.Pi
		return Descriptor{
			Kind:     KindHeart,
			Shape:    ShapeGlyph,
			Glyph:    pickRune(rng, heartGlyphs),
			Color:    p.Pick(rng),
			Size:     randRange(rng, 1.5, 3.5),
			Position: at,
			Velocity: radial(angle, randRange(rng, parameter.HeartBurstSpeedMin, parameter.HeartBurstSpeedMax)),
			Lifetime: parameter.HeartBurstLifetime,
		}
	}
}

// ClickSparkFactory is the short spark ring left by a pointer click
func ClickSparkFactory(p Palette, at Vec, count int) Factory {
	if count <= 0 {
		count = 1
	}
	return func(i int, rng *rand.Rand, _ Bounds) Descriptor {
		angle := float64(i) / float64(count) * 2 * math.Pi
		return Descriptor{
			Kind:     KindSpark,
			Shape:    ShapeCircle,
			Color:    p.Pick(rng),
			Size:     1,
			Position: at,
			Velocity: radial(angle, randRange(rng, parameter.ClickSpeedMin, parameter.ClickSpeedMax)),
			Lifetime: parameter.ClickLifetime,
		}
	}
}

// ClickRippleFactory is a small ring expanding from at
func ClickRippleFactory(p Palette, at Vec) Factory {
	return func(_ int, rng *rand.Rand, _ Bounds) Descriptor {
		return Descriptor{
			Kind:     KindRipple,
			Shape:    ShapeRing,
			Color:    p.Pick(rng),
			Size:     parameter.ClickRippleRadius,
			Position: at,
			Lifetime: parameter.ClickRippleLife,
		}
	}
}

// FloatingTextFactory lifts text upward from at; the text is centered on at.X
func FloatingTextFactory(p Palette, text string, at Vec) Factory {
	return func(_ int, rng *rand.Rand, _ Bounds) Descriptor {
		lifetime := parameter.FloatingTextLifetime
		return Descriptor{
			Kind:     KindText,
			Shape:    ShapeText,
			Text:     text,
			Color:    p.Pick(rng),
			Size:     3,
			Position: at,
			Velocity: Vec{0, -parameter.FloatingTextRise / lifetime.Seconds()},
			Lifetime: lifetime,
		}
	}
}

// AmbientFactory scatters slow background dots over the viewport
func AmbientFactory(p Palette) Factory {
	shapes := []Shape{ShapeCircle, ShapeSquare}
	return func(_ int, rng *rand.Rand, b Bounds) Descriptor {
		return Descriptor{
			Kind:     KindAmbient,
			Shape:    shapes[rng.Intn(len(shapes))],
			Color:    p.Pick(rng),
			Size:     1,
			Position: Vec{rng.Float64() * b.Width, rng.Float64() * b.Height},
			Velocity: Vec{
				X: (rng.Float64() - 0.5) * 2 * parameter.AmbientDrift,
				Y: (rng.Float64() - 0.5) * parameter.AmbientDrift,
			},
			Lifetime: randDuration(rng, parameter.AmbientLifetimeMin, parameter.AmbientLifetimeMax),
		}
	}
}
