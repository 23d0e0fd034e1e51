package main

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/audio"
	"github.com/lixenwraith/celebrate/celebration"
	"github.com/lixenwraith/celebrate/config"
	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/gallery"
	"github.com/lixenwraith/celebrate/input"
	"github.com/lixenwraith/celebrate/lifecycle"
	"github.com/lixenwraith/celebrate/parameter"
)

// Muter toggles audio output
type Muter interface {
	ToggleMute() bool
}

// clicker is a tone generator with a pointer click tick
type clicker interface {
	PlayClick() error
}

// appDeps are the platform pieces the app is assembled over
type appDeps struct {
	sched   engine.Scheduler
	surface effect.Surface
	display celebration.Display
	bounds  func() effect.Bounds

	// tones is nil when no audio device is available
	tones audio.ToneGenerator
	muter Muter

	cfg *config.Config
	rng *rand.Rand
	log *zap.Logger
}

// app owns the celebration core and routes intents into it
type app struct {
	log      *zap.Logger
	keys     *input.KeyTable
	effects  *lifecycle.Manager
	catalog  *effect.Catalog
	gallery  *gallery.Gallery
	sequence *audio.Sequencer
	orch     *celebration.Orchestrator
	muter    Muter
	tones    audio.ToneGenerator

	sched    engine.Scheduler
	rng      *rand.Rand
	messages []string

	ambientOn bool
	ambient   *engine.Task

	onResize func(w, h int)
}

func newApp(d appDeps) (*app, error) {
	if d.log == nil {
		d.log = zap.NewNop()
	}

	keys, err := d.cfg.KeyTable()
	if err != nil {
		return nil, err
	}
	palettes, err := d.cfg.EffectPalettes()
	if err != nil {
		return nil, err
	}

	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(1))
	}

	a := &app{
		log:       d.log,
		keys:      keys,
		muter:     d.muter,
		tones:     d.tones,
		sched:     d.sched,
		rng:       d.rng,
		messages:  d.cfg.Celebration.Messages,
		ambientOn: d.cfg.Celebration.Ambient,
	}

	a.effects = lifecycle.NewManager(d.sched, d.surface, d.log.Named("lifecycle"))
	spawner := effect.NewSpawner(d.sched, a.effects, d.bounds, d.rng, d.log.Named("spawner"))
	a.catalog = effect.NewCatalog(spawner, palettes, d.log.Named("catalog"))
	a.gallery = gallery.New(d.sched, nil, d.log.Named("gallery"))
	for _, p := range d.cfg.Gallery.Photos {
		if err := a.gallery.Add(p); err != nil {
			return nil, fmt.Errorf("gallery: %w", err)
		}
	}

	opts := celebration.Options{
		Scheduler: d.sched,
		Effects:   a.effects,
		Spawner:   spawner,
		Particles: a.catalog,
		Tones:     d.tones,
		Gallery:   a.gallery,
		Display:   d.display,
		Config:    d.cfg.CelebrationConfig(),
		Rand:      d.rng,
		Log:       d.log.Named("celebration"),
	}
	// Without the melody the orchestrator rings a bell on the tone generator
	if d.tones != nil && d.cfg.Audio.Melody {
		a.sequence = audio.NewSequencer(d.sched, d.tones, d.cfg.Audio.Tempo, d.log.Named("music"))
		opts.Music = a.sequence
	}

	a.orch, err = celebration.New(opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return a, nil
}

// handle runs one intent on the loop goroutine; returns true on quit
func (a *app) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		a.stopAmbient()
		a.orch.Stop()
		return true
	case input.IntentResize:
		if a.onResize != nil {
			a.onResize(in.Width, in.Height)
		}
	case input.IntentMute:
		if a.muter != nil {
			muted := a.muter.ToggleMute()
			a.log.Debug("mute toggled", zap.Bool("muted", muted))
		}
	case input.IntentToggle:
		a.orch.Toggle()
	case input.IntentMusic:
		a.orch.ToggleMusic()
	case input.IntentReset:
		a.orch.Reset()
	case input.IntentConfetti:
		a.orch.Confetti()
	case input.IntentHearts:
		a.orch.Hearts()
	case input.IntentStars:
		a.orch.Stars()
	case input.IntentFireworks:
		a.orch.Fireworks()
	case input.IntentBubbles:
		a.orch.Bubbles()
	case input.IntentMagic:
		a.orch.Magic()
	case input.IntentPetals:
		a.orch.Petals()
	case input.IntentBurst:
		a.orch.HeartBurst(a.catalog.Center())
	case input.IntentClick:
		a.click(in)
	case input.IntentFocus:
		if !in.Focused && a.orch.PauseMusic() {
			a.log.Debug("focus lost, music stopped")
		}
	}
	return false
}

// click marks the clicked cell: the primary button leaves a ripple, any other
// button bursts hearts with a floating message
func (a *app) click(in input.Intent) {
	at := effect.Vec{X: float64(in.X), Y: float64(in.Y)}
	if c, ok := a.tones.(clicker); ok {
		if err := c.PlayClick(); err != nil {
			a.log.Debug("click tick failed", zap.Error(err))
		}
	}

	if in.Button&tcell.ButtonPrimary != 0 {
		if err := a.catalog.ClickBurst(at); err != nil {
			a.log.Warn("click burst failed", zap.Error(err))
		}
		return
	}

	a.orch.HeartBurst(at)
	if len(a.messages) == 0 {
		return
	}
	msg := a.messages[a.rng.Intn(len(a.messages))]
	if err := a.catalog.FloatingText(msg, at); err != nil {
		a.log.Warn("floating text failed", zap.Error(err))
	}
}

// startAmbient seeds background dots and reseeds them every refresh period
// until stopAmbient. No-op when ambient is disabled or already running
func (a *app) startAmbient() {
	if !a.ambientOn || a.ambient != nil {
		return
	}
	a.seedAmbient()
}

func (a *app) seedAmbient() {
	if err := a.catalog.Ambient(); err != nil {
		a.log.Debug("ambient batch failed", zap.Error(err))
	}
	a.ambient = a.sched.Schedule(parameter.AmbientRefresh, a.seedAmbient)
}

func (a *app) stopAmbient() {
	if a.ambient != nil {
		a.ambient.Cancel()
		a.ambient = nil
	}
}
