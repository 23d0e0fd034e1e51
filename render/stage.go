package render

import (
	"math/rand"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/effect"
)

// Stage is the terminal rendering surface. It keeps the elements and display
// state and repaints everything on Draw. Not safe for concurrent use
type Stage struct {
	screen tcell.Screen
	log    *zap.Logger
	rng    *rand.Rand

	themes ThemeSet
	theme  Theme

	elements   map[effect.Handle]*effect.Instance
	nextHandle effect.Handle

	label     string
	busy      bool
	message   string
	counter   int
	counterOn bool

	strip  Strip
	layers []Layer
	closed bool
}

// NewStage creates a stage drawing onto an initialized screen
func NewStage(screen tcell.Screen, themes ThemeSet, rng *rand.Rand, log *zap.Logger) *Stage {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Stage{
		screen:   screen,
		log:      log,
		rng:      rng,
		themes:   themes,
		theme:    themes.Default,
		elements: make(map[effect.Handle]*effect.Instance),
		layers:   []Layer{backgroundLayer{}, effectLayer{}, stripLayer{}, hudLayer{}},
	}
}

// CreateVisualElement adds inst to the next frame
func (s *Stage) CreateVisualElement(inst *effect.Instance) effect.Handle {
	s.nextHandle++
	s.elements[s.nextHandle] = inst
	return s.nextHandle
}

// RemoveVisualElement drops an element; unknown handles are ignored
func (s *Stage) RemoveVisualElement(h effect.Handle) {
	delete(s.elements, h)
}

// Available reports whether the screen can take elements
func (s *Stage) Available() bool {
	return s.screen != nil && !s.closed
}

// Elements returns the number of rendered elements
func (s *Stage) Elements() int {
	return len(s.elements)
}

// Bounds returns the screen size in cells
func (s *Stage) Bounds() effect.Bounds {
	if s.screen == nil {
		return effect.Bounds{}
	}
	w, h := s.screen.Size()
	return effect.Bounds{Width: float64(w), Height: float64(h)}
}

// SetButtonLabel sets the toggle button text; busy selects the celebrating color
func (s *Stage) SetButtonLabel(label string, busy bool) {
	s.label = label
	s.busy = busy
}

// RandomTheme switches to a random celebration theme and returns its name
func (s *Stage) RandomTheme() string {
	s.theme = s.themes.Random(s.rng)
	return s.theme.Name
}

// ResetTheme restores the default theme
func (s *Stage) ResetTheme() {
	s.theme = s.themes.Default
}

// Theme returns the active theme
func (s *Stage) Theme() Theme {
	return s.theme
}

func (s *Stage) ShowMessage(msg string) {
	s.message = msg
}

func (s *Stage) ClearMessage() {
	s.message = ""
}

// SetCounter shows n in the age counter
func (s *Stage) SetCounter(n int) {
	s.counter = n
	s.counterOn = true
}

func (s *Stage) ClearCounter() {
	s.counterOn = false
	s.counter = 0
}

// SetStrip attaches the gallery view
func (s *Stage) SetStrip(strip Strip) {
	s.strip = strip
}

// Resize resyncs the screen after a terminal resize
func (s *Stage) Resize() {
	if s.screen == nil {
		return
	}
	s.screen.Sync()
	w, h := s.screen.Size()
	s.log.Debug("stage resized", zap.Int("width", w), zap.Int("height", h))
}

// Close marks the stage unavailable; the screen itself is owned by the caller
func (s *Stage) Close() {
	s.closed = true
}

// Draw repaints the frame as of now
func (s *Stage) Draw(now time.Time) {
	if !s.Available() {
		return
	}
	ctx := s.context(now)
	for _, l := range s.layers {
		if v, ok := l.(VisibilityToggle); ok && !v.IsVisible() {
			continue
		}
		l.Render(ctx, s.screen)
	}
	s.screen.Show()
}

func (s *Stage) context(now time.Time) Context {
	w, h := s.screen.Size()
	elems := make([]*effect.Instance, 0, len(s.elements))
	for _, inst := range s.elements {
		elems = append(elems, inst)
	}
	slices.SortFunc(elems, func(a, b *effect.Instance) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return Context{
		Now:       now,
		Width:     w,
		Height:    h,
		Theme:     s.theme,
		Elements:  elems,
		Label:     s.label,
		Busy:      s.busy,
		Message:   s.message,
		Counter:   s.counter,
		CounterOn: s.counterOn,
		Strip:     s.strip,
	}
}
