package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// clusters groups each printable rune with the zero-width runes that follow it
// (combining marks, variation selectors, joiners). Zero-width runes with no
// base are dropped
func clusters(s string) [][]rune {
	var out [][]rune
	for _, r := range s {
		if runewidth.RuneWidth(r) == 0 {
			if n := len(out); n > 0 {
				out[n-1] = append(out[n-1], r)
			}
			continue
		}
		out = append(out, []rune{r})
	}
	return out
}

// drawText writes s from x honoring wide runes, returns the column after the text.
// Zero-width runes ride on the preceding cell as combining characters
func drawText(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := scr.Size()
	for _, cl := range clusters(s) {
		cw := runewidth.StringWidth(string(cl))
		if cw < 1 {
			cw = 1
		}
		if x+cw > w {
			break
		}
		if x >= 0 {
			scr.SetContent(x, y, cl[0], cl[1:], style)
		}
		x += cw
	}
	return x
}

// drawCentered writes s centered on row y, truncating to the screen width
func drawCentered(scr tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := scr.Size()
	s = runewidth.Truncate(s, w, "…")
	x := (w - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	drawText(scr, x, y, s, style)
}
