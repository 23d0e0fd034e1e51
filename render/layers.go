package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/celebrate/effect"
)

// shapeGlyphs maps non-glyph shapes to terminal runes
var shapeGlyphs = map[effect.Shape]rune{
	effect.ShapeCircle:   '●',
	effect.ShapeSquare:   '■',
	effect.ShapeTriangle: '▲',
}

// bgStyle is the plain style of a background cell on row y
func bgStyle(ctx Context, y int) tcell.Style {
	return tcell.StyleDefault.Background(ToTcell(ctx.Theme.At(y, ctx.Height)))
}

// backgroundLayer paints the theme gradient
type backgroundLayer struct{}

func (backgroundLayer) Render(ctx Context, scr tcell.Screen) {
	for y := 0; y < ctx.Height; y++ {
		style := bgStyle(ctx, y)
		for x := 0; x < ctx.Width; x++ {
			scr.SetContent(x, y, ' ', nil, style)
		}
	}
}

// effectLayer draws live effect instances at their current kinematic position
type effectLayer struct{}

func (effectLayer) Render(ctx Context, scr tcell.Screen) {
	for _, inst := range ctx.Elements {
		elapsed := ctx.Now.Sub(inst.CreatedAt)
		progress := inst.Progress(elapsed)

		if inst.Shape == effect.ShapeRing {
			drawRing(ctx, scr, inst, progress)
			continue
		}

		pos := inst.PositionAt(elapsed)
		x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
		if y < 0 || y >= ctx.Height {
			continue
		}

		if inst.Shape == effect.ShapeText {
			drawFloatingText(ctx, scr, inst, x, y, progress)
			continue
		}
		if x < 0 {
			continue
		}

		glyph := inst.Glyph
		if inst.Shape != effect.ShapeGlyph {
			glyph = shapeGlyphs[inst.Shape]
		}
		if glyph == 0 {
			glyph = '*'
		}
		if x+runewidth.RuneWidth(glyph) > ctx.Width {
			continue
		}

		bg := ctx.Theme.At(y, ctx.Height)
		style := tcell.StyleDefault.
			Background(ToTcell(bg)).
			Foreground(ToTcell(Fade(inst.Color, bg, progress)))
		if inst.Size >= 2.5 {
			style = style.Bold(true)
		}
		scr.SetContent(x, y, glyph, nil, style)
	}
}

// drawFloatingText centers the instance text on column x, clipped at both edges
func drawFloatingText(ctx Context, scr tcell.Screen, inst *effect.Instance, x, y int, progress float64) {
	bg := ctx.Theme.At(y, ctx.Height)
	style := tcell.StyleDefault.
		Background(ToTcell(bg)).
		Foreground(ToTcell(Fade(inst.Color, bg, progress))).
		Bold(true)
	drawText(scr, x-runewidth.StringWidth(inst.Text)/2, y, inst.Text, style)
}

// drawRing draws an expanding ring; cells are about twice as tall as wide
func drawRing(ctx Context, scr tcell.Screen, inst *effect.Instance, progress float64) {
	r := progress * inst.Size
	if r < 0.5 {
		return
	}
	points := int(r * 8)
	for i := 0; i < points; i++ {
		a := float64(i) / float64(points) * 2 * math.Pi
		x := int(math.Round(inst.Position.X + math.Cos(a)*r*2))
		y := int(math.Round(inst.Position.Y + math.Sin(a)*r))
		if x < 0 || y < 0 || x >= ctx.Width || y >= ctx.Height {
			continue
		}
		bg := ctx.Theme.At(y, ctx.Height)
		style := tcell.StyleDefault.
			Background(ToTcell(bg)).
			Foreground(ToTcell(Fade(inst.Color, bg, progress)))
		scr.SetContent(x, y, '·', nil, style)
	}
}

// stripLayer draws the gallery titles along the bottom, highlighted one inverted
type stripLayer struct{}

func (stripLayer) Render(ctx Context, scr tcell.Screen) {
	if ctx.Strip == nil || ctx.Height < 3 {
		return
	}
	titles := ctx.Strip.Titles()
	if len(titles) == 0 {
		return
	}
	hi, on := ctx.Strip.Highlighted()

	y := ctx.Height - 2
	base := bgStyle(ctx, y).Foreground(RgbTextDim)
	if ctx.Strip.Active() {
		scr.SetContent(0, y, '▶', nil, bgStyle(ctx, y).Foreground(RgbHighlight))
	}
	x := 1
	for i, t := range titles {
		style := base
		if on && i == hi {
			style = tcell.StyleDefault.Background(RgbHighlight).Foreground(tcell.ColorBlack).Bold(true)
		}
		label := " " + t + " "
		if x+runewidth.StringWidth(label) > ctx.Width {
			break
		}
		x = drawText(scr, x, y, label, style) + 1
	}
}

// hudLayer draws the special message, the age counter and the toggle button
type hudLayer struct{}

func (hudLayer) Render(ctx Context, scr tcell.Screen) {
	if ctx.Height == 0 {
		return
	}
	mid := ctx.Height / 3

	if ctx.Message != "" {
		style := tcell.StyleDefault.Background(RgbMessageBg).Foreground(RgbMessageText).Bold(true)
		drawCentered(scr, mid, "  "+ctx.Message+"  ", style)
	}

	if ctx.CounterOn {
		style := bgStyle(ctx, mid+2).Foreground(RgbCounter).Bold(true)
		drawCentered(scr, mid+2, fmt.Sprintf("🎂 %d 🎂", ctx.Counter), style)
	}

	if ctx.Label != "" && ctx.Height >= 5 {
		bg := RgbButton
		if ctx.Busy {
			bg = RgbButtonBusy
		}
		style := tcell.StyleDefault.Background(bg).Foreground(RgbText).Bold(true)
		drawCentered(scr, ctx.Height-4, "[ "+ctx.Label+" ]", style)
	}
}
