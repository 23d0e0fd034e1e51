package effect

// Kind identifies the visual family of an effect
type Kind uint8

const (
	KindConfetti Kind = iota
	KindHeart
	KindStar
	KindSpark
	KindBubble
	KindMagic
	KindRipple
	KindPetal
	KindText
	KindAmbient
	kindCount
)

var kindNames = [kindCount]string{
	KindConfetti: "confetti",
	KindHeart:    "heart",
	KindStar:     "star",
	KindSpark:    "spark",
	KindBubble:   "bubble",
	KindMagic:    "magic",
	KindRipple:   "ripple",
	KindPetal:    "petal",
	KindText:     "text",
	KindAmbient:  "ambient",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Shape selects how the renderer draws an effect
type Shape uint8

const (
	ShapeGlyph    Shape = iota // Draw Descriptor.Glyph as-is
	ShapeCircle                // Filled circle glyph
	ShapeSquare                // Filled square glyph
	ShapeTriangle              // Upward triangle glyph
	ShapeRing                  // Expanding ring, radius grows with progress
	ShapeText                  // Draw Descriptor.Text as a string
)
