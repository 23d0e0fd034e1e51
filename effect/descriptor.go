package effect

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Vec is a position or velocity in terminal cells (per second for velocities)
type Vec struct {
	X, Y float64
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v*f
func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// Descriptor describes one visual element. It carries no identity; the
// lifecycle manager turns it into a tracked Instance
type Descriptor struct {
	Kind  Kind
	Shape Shape
	Glyph rune
	// Text is drawn instead of Glyph for ShapeText
	Text  string
	Color colorful.Color

	// Size is relative, 1.0 is a single plain cell
	Size float64

	Position Vec
	Velocity Vec
	// Gravity accelerates along Y in cells/sec², negative values rise
	Gravity float64

	Lifetime time.Duration
}

// Validate rejects descriptors the lifecycle manager cannot honor
func (d Descriptor) Validate() error {
	if d.Lifetime <= 0 {
		return fmt.Errorf("%w: lifetime %v must be positive", ErrInvalidArgument, d.Lifetime)
	}
	if d.Size < 0 {
		return fmt.Errorf("%w: size %.2f is negative", ErrInvalidArgument, d.Size)
	}
	if d.Shape == ShapeText && d.Text == "" {
		return fmt.Errorf("%w: text effect without text", ErrInvalidArgument)
	}
	if d.Kind >= kindCount {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, d.Kind)
	}
	return nil
}

// PositionAt returns the kinematic position after elapsed time
func (d Descriptor) PositionAt(elapsed time.Duration) Vec {
	t := elapsed.Seconds()
	if t < 0 {
		t = 0
	}
	p := d.Position.Add(d.Velocity.Scale(t))
	p.Y += 0.5 * d.Gravity * t * t
	return p
}

// Progress returns elapsed/lifetime clamped to [0,1]
func (d Descriptor) Progress(elapsed time.Duration) float64 {
	if d.Lifetime <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(d.Lifetime)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Handle identifies an element on a rendering surface
type Handle uint64

// Instance is a tracked, rendered effect
type Instance struct {
	ID uint64
	Descriptor
	CreatedAt time.Time
	Handle    Handle
}

// ExpiresAt returns the earliest time the instance may be removed on its own
func (i *Instance) ExpiresAt() time.Time {
	return i.CreatedAt.Add(i.Lifetime)
}

// Surface is the rendering collaborator of the lifecycle manager
type Surface interface {
	// CreateVisualElement renders inst and returns the handle used to remove it
	CreateVisualElement(inst *Instance) Handle
	// RemoveVisualElement removes a previously created element; unknown handles are ignored
	RemoveVisualElement(h Handle)
	// Available reports whether elements can currently be rendered
	Available() bool
}
