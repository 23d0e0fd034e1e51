package effect

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Default palettes, as #rrggbb
var (
	ConfettiColors = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#f7b731", "#5f27cd", "#ff9ff3", "#54a0ff"}
	FallbackColors = []string{"#ff6b6b", "#4ecdc4", "#ffd93d", "#c2185b"}
	HeartColors    = []string{"#ff6b6b", "#ff4d6d", "#ff8fab", "#c9184a", "#ff9ff3"}
	StarColors     = []string{"#ffd93d", "#f7b731", "#fff3b0", "#ffffff"}
	SparkColors    = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#f7b731", "#5f27cd"}
	BubbleColors   = []string{"#ffffff", "#dff6ff", "#bde0fe"}
	PetalColors    = []string{"#ffb7c5", "#ff8fab", "#e63946", "#ffafcc", "#ffd60a", "#fff3b0"}
	AmbientColors  = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#f7b731", "#5f27cd", "#ff9ff3"}
	TextColors     = []string{"#ff6b6b"}
	MagicColors    = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#f7b731", "#5f27cd", "#ff9ff3", "#54a0ff", "#00d2d3", "#ff9f43"}
)

// Palette is a fixed set of colors effects draw from
type Palette []colorful.Color

// ParsePalette parses #rrggbb strings; an empty input is an error
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidColor)
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidColor, h, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// MustParsePalette is ParsePalette for compile-time constants
func MustParsePalette(hexes []string) Palette {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Pick returns a uniformly random color, white for an empty palette
func (p Palette) Pick(rng *rand.Rand) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p[rng.Intn(len(p))]
}

// Palettes groups the palettes used by the catalog
type Palettes struct {
	Confetti Palette
	Fallback Palette
	Hearts   Palette
	Stars    Palette
	Sparks   Palette
	Bubbles  Palette
	Magic    Palette
	Petals   Palette
	Ambient  Palette
	Text     Palette
}

// DefaultPalettes returns the built-in palettes
func DefaultPalettes() Palettes {
	return Palettes{
		Confetti: MustParsePalette(ConfettiColors),
		Fallback: MustParsePalette(FallbackColors),
		Hearts:   MustParsePalette(HeartColors),
		Stars:    MustParsePalette(StarColors),
		Sparks:   MustParsePalette(SparkColors),
		Bubbles:  MustParsePalette(BubbleColors),
		Magic:    MustParsePalette(MagicColors),
		Petals:   MustParsePalette(PetalColors),
		Ambient:  MustParsePalette(AmbientColors),
		Text:     MustParsePalette(TextColors),
	}
}
