// Package gallery holds the photo list and its timed highlight sweep
package gallery

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/parameter"
)

// ErrInvalidPhoto is returned when adding a photo without a title
var ErrInvalidPhoto = errors.New("invalid photo")

// Photo is one gallery entry
type Photo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Category    string `yaml:"category"`
}

// Gallery highlights photos one after another. Not safe for concurrent use
type Gallery struct {
	sched  engine.Scheduler
	log    *zap.Logger
	photos []Photo

	stagger  time.Duration
	duration time.Duration

	tasks   []*engine.Task
	current int
	on      bool
}

// New creates a gallery over photos
func New(sched engine.Scheduler, photos []Photo, log *zap.Logger) *Gallery {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gallery{
		sched:    sched,
		log:      log,
		photos:   append([]Photo(nil), photos...),
		stagger:  parameter.HighlightStagger,
		duration: parameter.HighlightDuration,
	}
}

// Add appends a photo
func (g *Gallery) Add(p Photo) error {
	if p.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidPhoto)
	}
	g.photos = append(g.photos, p)
	return nil
}

// Photos returns a copy of the photo list
func (g *Gallery) Photos() []Photo {
	return append([]Photo(nil), g.photos...)
}

// Titles returns photo titles in order
func (g *Gallery) Titles() []string {
	out := make([]string, len(g.photos))
	for i, p := range g.photos {
		out[i] = p.Title
	}
	return out
}

// Highlighted returns the highlighted photo index, if any
func (g *Gallery) Highlighted() (int, bool) {
	return g.current, g.on
}

// StartHighlightMode highlights photo i at i×stagger for the highlight duration.
// A sweep already running is restarted
func (g *Gallery) StartHighlightMode() {
	g.ResetHighlightMode()

	for i := range g.photos {
		i := i
		start := time.Duration(i) * g.stagger
		g.tasks = append(g.tasks, g.sched.Schedule(start, func() {
			g.current, g.on = i, true
		}))
		g.tasks = append(g.tasks, g.sched.Schedule(start+g.duration, func() {
			// A later photo may already own the highlight
			if g.current == i {
				g.on = false
			}
		}))
	}
	g.log.Debug("highlight sweep started", zap.Int("photos", len(g.photos)))
}

// ResetHighlightMode cancels a running sweep and clears the highlight
func (g *Gallery) ResetHighlightMode() {
	for _, t := range g.tasks {
		t.Cancel()
	}
	g.tasks = nil
	g.current, g.on = 0, false
}

// Active reports whether a sweep has highlights left to show
func (g *Gallery) Active() bool {
	for _, t := range g.tasks {
		if t.Pending() {
			return true
		}
	}
	return false
}
