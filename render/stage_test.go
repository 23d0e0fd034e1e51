package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/celebrate/effect"
)

func newSimStage(t *testing.T, w, h int) (*Stage, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return NewStage(scr, DefaultThemes(), rand.New(rand.NewSource(1)), nil), scr
}

// rowText returns the runes of row y as a string
func rowText(scr tcell.Screen, y int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := scr.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

type fakeStrip struct {
	titles []string
	hi     int
	on     bool
	active bool
}

func (f fakeStrip) Titles() []string         { return f.titles }
func (f fakeStrip) Highlighted() (int, bool) { return f.hi, f.on }
func (f fakeStrip) Active() bool             { return f.active }

func TestStage_CreateRemove(t *testing.T) {
	s, _ := newSimStage(t, 40, 12)
	if !s.Available() {
		t.Fatal("stage unavailable after init")
	}

	h1 := s.CreateVisualElement(&effect.Instance{ID: 1})
	h2 := s.CreateVisualElement(&effect.Instance{ID: 2})
	if h1 == h2 {
		t.Fatalf("duplicate handles %d", h1)
	}
	if s.Elements() != 2 {
		t.Fatalf("elements = %d, want 2", s.Elements())
	}

	s.RemoveVisualElement(h1)
	s.RemoveVisualElement(h1)
	s.RemoveVisualElement(effect.Handle(99))
	if s.Elements() != 1 {
		t.Errorf("elements = %d, want 1", s.Elements())
	}

	s.Close()
	if s.Available() {
		t.Error("stage available after Close")
	}
}

func TestStage_Bounds(t *testing.T) {
	s, _ := newSimStage(t, 64, 20)
	b := s.Bounds()
	if b.Width != 64 || b.Height != 20 {
		t.Errorf("bounds = %+v, want 64x20", b)
	}
}

func TestStage_DrawsGlyphAtPosition(t *testing.T) {
	s, scr := newSimStage(t, 40, 12)
	now := time.Unix(100, 0)

	s.CreateVisualElement(&effect.Instance{
		ID: 1,
		Descriptor: effect.Descriptor{
			Kind:     effect.KindStar,
			Shape:    effect.ShapeGlyph,
			Glyph:    '★',
			Color:    colorful.Color{R: 1, G: 1},
			Size:     1,
			Position: effect.Vec{X: 5, Y: 2},
			Velocity: effect.Vec{X: 0, Y: 1},
			Lifetime: 10 * time.Second,
		},
		CreatedAt: now,
	})

	s.Draw(now.Add(2 * time.Second))
	r, _, _, _ := scr.GetContent(5, 4)
	if r != '★' {
		t.Errorf("cell (5,4) = %q, want ★", r)
	}
}

func TestStage_ShapesMapToRunes(t *testing.T) {
	s, scr := newSimStage(t, 20, 8)
	now := time.Unix(0, 0)
	shapes := []struct {
		shape effect.Shape
		want  rune
	}{
		{effect.ShapeCircle, '●'},
		{effect.ShapeSquare, '■'},
		{effect.ShapeTriangle, '▲'},
	}
	for i, sh := range shapes {
		s.CreateVisualElement(&effect.Instance{
			ID: uint64(i + 1),
			Descriptor: effect.Descriptor{
				Kind:     effect.KindConfetti,
				Shape:    sh.shape,
				Size:     1,
				Position: effect.Vec{X: float64(i * 2), Y: 1},
				Lifetime: time.Second,
			},
			CreatedAt: now,
		})
	}

	s.Draw(now)
	for i, sh := range shapes {
		if r, _, _, _ := scr.GetContent(i*2, 1); r != sh.want {
			t.Errorf("shape %d drawn as %q, want %q", sh.shape, r, sh.want)
		}
	}
}

func TestStage_OffscreenElementsSkipped(t *testing.T) {
	s, _ := newSimStage(t, 10, 5)
	now := time.Unix(0, 0)
	s.CreateVisualElement(&effect.Instance{
		ID: 1,
		Descriptor: effect.Descriptor{
			Kind:     effect.KindHeart,
			Glyph:    '♥',
			Position: effect.Vec{X: -3, Y: 50},
			Lifetime: time.Second,
		},
		CreatedAt: now,
	})
	// Must not panic on out-of-range coordinates
	s.Draw(now)
}

func TestStage_HUD(t *testing.T) {
	s, scr := newSimStage(t, 60, 15)
	s.SetButtonLabel("Celebrate", false)
	s.ShowMessage("Happy Birthday")
	s.SetCounter(43)
	s.SetStrip(fakeStrip{titles: []string{"Beach", "Family"}, hi: 1, on: true})
	s.Draw(time.Unix(0, 0))

	if !strings.Contains(rowText(scr, 15/3), "Happy Birthday") {
		t.Errorf("message row = %q", rowText(scr, 5))
	}
	if !strings.Contains(rowText(scr, 15/3+2), "43") {
		t.Errorf("counter row = %q", rowText(scr, 7))
	}
	if !strings.Contains(rowText(scr, 15-4), "[ Celebrate ]") {
		t.Errorf("button row = %q", rowText(scr, 11))
	}
	strip := rowText(scr, 15-2)
	if !strings.Contains(strip, "Beach") || !strings.Contains(strip, "Family") {
		t.Errorf("strip row = %q", strip)
	}

	s.ClearMessage()
	s.ClearCounter()
	s.Draw(time.Unix(0, 0))
	if strings.Contains(rowText(scr, 5), "Happy Birthday") {
		t.Error("message still drawn after ClearMessage")
	}
	if strings.Contains(rowText(scr, 7), "43") {
		t.Error("counter still drawn after ClearCounter")
	}
}

func TestStage_Themes(t *testing.T) {
	s, _ := newSimStage(t, 10, 5)
	def := DefaultThemes()

	if s.Theme().Name != def.Default.Name {
		t.Fatalf("initial theme = %q, want %q", s.Theme().Name, def.Default.Name)
	}
	name := s.RandomTheme()
	found := false
	for _, th := range def.Celebration {
		if th.Name == name {
			found = true
		}
	}
	if !found {
		t.Errorf("RandomTheme returned %q, not a celebration theme", name)
	}
	s.ResetTheme()
	if s.Theme().Name != def.Default.Name {
		t.Errorf("theme after reset = %q", s.Theme().Name)
	}
}

func TestStage_RingDrawn(t *testing.T) {
	s, scr := newSimStage(t, 40, 20)
	now := time.Unix(0, 0)
	s.CreateVisualElement(&effect.Instance{
		ID: 1,
		Descriptor: effect.Descriptor{
			Kind:     effect.KindRipple,
			Shape:    effect.ShapeRing,
			Size:     4,
			Position: effect.Vec{X: 20, Y: 10},
			Lifetime: time.Second,
		},
		CreatedAt: now,
	})
	s.Draw(now.Add(500 * time.Millisecond))

	// Radius 2 at half progress, x stretched by 2
	if r, _, _, _ := scr.GetContent(24, 10); r != '·' {
		t.Errorf("ring point (24,10) = %q, want ·", r)
	}
	if r, _, _, _ := scr.GetContent(20, 10); r == '·' {
		t.Error("ring center should be empty")
	}
}

func TestStage_StripSweepMarker(t *testing.T) {
	s, scr := newSimStage(t, 40, 10)
	s.SetStrip(fakeStrip{titles: []string{"Beach"}, active: true})
	s.Draw(time.Unix(0, 0))
	if r, _, _, _ := scr.GetContent(0, 8); r != '▶' {
		t.Errorf("sweep marker = %q, want ▶", r)
	}

	s.SetStrip(fakeStrip{titles: []string{"Beach"}})
	s.Draw(time.Unix(0, 0))
	if r, _, _, _ := scr.GetContent(0, 8); r == '▶' {
		t.Error("marker drawn without a running sweep")
	}
}

func TestDrawText_KeepsZeroWidthRunes(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()
	scr.SetSize(10, 1)

	// e + combining acute, then x
	end := drawText(scr, 0, 0, "e\u0301x", tcell.StyleDefault)
	if end != 2 {
		t.Errorf("end column = %d, want 2", end)
	}
	r, comb, _, _ := scr.GetContent(0, 0)
	if r != 'e' || len(comb) != 1 || comb[0] != '\u0301' {
		t.Errorf("cell 0 = %q %q, want e + U+0301", r, comb)
	}
	if r, _, _, _ := scr.GetContent(1, 0); r != 'x' {
		t.Errorf("cell 1 = %q, want x", r)
	}

	// A leading zero-width rune has no base cell and is dropped
	if got := clusters("\u200dab"); len(got) != 2 || got[0][0] != 'a' {
		t.Errorf("clusters = %q", got)
	}
}

func TestStage_FloatingTextRises(t *testing.T) {
	s, scr := newSimStage(t, 40, 12)
	now := time.Unix(0, 0)
	s.CreateVisualElement(&effect.Instance{
		ID: 1,
		Descriptor: effect.Descriptor{
			Kind:     effect.KindText,
			Shape:    effect.ShapeText,
			Text:     "hola",
			Size:     3,
			Position: effect.Vec{X: 20, Y: 8},
			Velocity: effect.Vec{Y: -1},
			Lifetime: 3 * time.Second,
		},
		CreatedAt: now,
	})

	s.Draw(now.Add(2 * time.Second))
	if row := rowText(scr, 6); !strings.Contains(row, "hola") {
		t.Errorf("row 6 = %q, want floating text", row)
	}
	if r, _, _, _ := scr.GetContent(18, 6); r != 'h' {
		t.Errorf("text not centered: (18,6) = %q", r)
	}
}
