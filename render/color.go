package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed interface colors
var (
	RgbText        = tcell.NewRGBColor(255, 255, 255)
	RgbTextDim     = tcell.NewRGBColor(200, 200, 210)
	RgbButton      = tcell.NewRGBColor(255, 107, 107)
	RgbButtonBusy  = tcell.NewRGBColor(78, 205, 196)
	RgbCounter     = tcell.NewRGBColor(255, 217, 61)
	RgbMessageBg   = tcell.NewRGBColor(255, 240, 245)
	RgbMessageText = tcell.NewRGBColor(194, 24, 91)
	RgbHighlight   = tcell.NewRGBColor(255, 217, 61)
)

// ToTcell converts a colorful color to a 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromTcell converts a tcell color; ColorDefault maps to black
func FromTcell(c tcell.Color) colorful.Color {
	if c == tcell.ColorDefault {
		return colorful.Color{}
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Fade blends c toward bg as progress goes from 0 to 1. The first half of the
// lifetime keeps full color
func Fade(c, bg colorful.Color, progress float64) colorful.Color {
	if progress <= 0.5 {
		return c
	}
	t := (progress - 0.5) * 2
	if t > 1 {
		t = 1
	}
	return c.BlendLab(bg, t*t).Clamped()
}
