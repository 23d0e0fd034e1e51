package render

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a vertical background gradient
type Theme struct {
	Name string
	Top  colorful.Color
	Bot  colorful.Color
}

// ParseTheme builds a theme from two #rrggbb colors
func ParseTheme(name, top, bottom string) (Theme, error) {
	t, err := colorful.Hex(top)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q top: %w", name, err)
	}
	b, err := colorful.Hex(bottom)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q bottom: %w", name, err)
	}
	return Theme{Name: name, Top: t, Bot: b}, nil
}

// At returns the gradient color at row y of height rows
func (t Theme) At(y, height int) colorful.Color {
	if height <= 1 {
		return t.Top
	}
	return t.Top.BlendLab(t.Bot, float64(y)/float64(height-1)).Clamped()
}

// ThemeSet is the default theme plus the celebration alternatives
type ThemeSet struct {
	Default     Theme
	Celebration []Theme
}

// Random picks a celebration theme, the default if none are configured
func (s ThemeSet) Random(rng *rand.Rand) Theme {
	if len(s.Celebration) == 0 {
		return s.Default
	}
	return s.Celebration[rng.Intn(len(s.Celebration))]
}

// DefaultThemes mirrors the built-in configuration
func DefaultThemes() ThemeSet {
	must := func(name, top, bottom string) Theme {
		t, err := ParseTheme(name, top, bottom)
		if err != nil {
			panic(err)
		}
		return t
	}
	return ThemeSet{
		Default: must("blush", "#ff9a9e", "#fecfef"),
		Celebration: []Theme{
			must("indigo", "#667eea", "#764ba2"),
			must("flamingo", "#f093fb", "#f5576c"),
			must("ocean", "#4facfe", "#00f2fe"),
			must("mint", "#43e97b", "#38f9d7"),
		},
	}
}
