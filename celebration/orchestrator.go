// Package celebration sequences effects, music and gallery highlights into one
// timed celebration
package celebration

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/parameter"
)

// Orchestrator is the Idle/Celebrating state machine. All methods must be
// called from the scheduler's execution context
type Orchestrator struct {
	sched     engine.Scheduler
	effects   Effects
	particles Particles
	music     Music
	gallery   Gallery
	display   Display
	cfg       Config
	rng       *rand.Rand
	baseLog   *zap.Logger
	log       *zap.Logger

	state     State
	session   string
	autoStop  *engine.Task
	spawns    []*engine.Task
	chores    []*engine.Task
	musicOn   bool
	timelines int
}

// New resolves optional collaborators once and returns an idle orchestrator
func New(opts Options) (*Orchestrator, error) {
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("%w: scheduler", ErrMissingDependency)
	}
	if opts.Effects == nil {
		return nil, fmt.Errorf("%w: effects", ErrMissingDependency)
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cfg := opts.Config
	if cfg.Duration <= 0 {
		cfg.Duration = parameter.CelebrationDuration
	}

	o := &Orchestrator{
		sched:   opts.Scheduler,
		effects: opts.Effects,
		cfg:     cfg,
		rng:     rng,
		baseLog: log,
		log:     log,
	}

	switch {
	case opts.Particles != nil:
		o.particles = opts.Particles
	case opts.Spawner != nil:
		log.Info("particles module missing, using fallback confetti")
		o.particles = fallbackParticles{catalog: effect.NewCatalog(opts.Spawner, effect.Palettes{}, log)}
	default:
		log.Info("particles module and spawner missing, effects disabled")
		o.particles = noParticles{}
	}

	o.music = opts.Music
	if o.music == nil {
		log.Info("music module missing, using bell fallback")
		o.music = fallbackMusic{tones: opts.Tones, log: log}
	}

	o.gallery = opts.Gallery
	if o.gallery == nil {
		log.Info("gallery module missing, using ripple fallback")
		o.gallery = fallbackGallery{particles: o.particles, log: log}
	}

	o.display = opts.Display
	if o.display == nil {
		o.display = nopDisplay{}
	}

	o.guard("label", func() error {
		o.display.SetButtonLabel(o.cfg.IdleLabel, false)
		return nil
	})
	return o, nil
}

// State returns the current state
func (o *Orchestrator) State() State {
	return o.state
}

// Session returns the id of the current or last celebration
func (o *Orchestrator) Session() string {
	return o.session
}

// Timelines returns how many timelines have been scheduled since construction
func (o *Orchestrator) Timelines() int {
	return o.timelines
}

// MusicPlaying reports whether music was started and not stopped since
func (o *Orchestrator) MusicPlaying() bool {
	return o.musicOn
}

// Timeline returns the step sequence Start schedules
func (o *Orchestrator) Timeline() Timeline {
	return o.timeline()
}

// Start begins a celebration. Returns false without side effects unless Idle
func (o *Orchestrator) Start() bool {
	if o.state != StateIdle {
		o.log.Debug("start ignored", zap.Stringer("state", o.state))
		return false
	}

	o.state = StateCelebrating
	o.session = uuid.NewString()
	o.log = o.baseLog.With(zap.String("session", o.session))
	o.timelines++

	o.guard("label", func() error {
		o.display.SetButtonLabel(o.cfg.BusyLabel, true)
		return nil
	})
	o.guard("theme", func() error {
		o.log.Debug("theme applied", zap.String("theme", o.display.RandomTheme()))
		return nil
	})

	for _, st := range o.timeline() {
		st := st
		task := o.sched.Schedule(st.Offset, func() {
			o.guard(st.Name, st.Run)
		})
		if st.Spawn {
			o.spawns = append(o.spawns, task)
		} else {
			o.chores = append(o.chores, task)
		}
	}

	o.autoStop = o.sched.Schedule(o.cfg.Duration, func() {
		o.autoStop = nil
		o.log.Debug("auto-stop")
		o.Stop()
	})

	o.log.Info("celebration started", zap.Duration("duration", o.cfg.Duration))
	return true
}

// Stop ends a celebration: cancels the auto-stop and pending display steps,
// stops music, resets the gallery and clears every live effect. Spawn steps and
// batches already in flight still run unless RetractOnStop is set. Returns false
// while Idle
func (o *Orchestrator) Stop() bool {
	if o.state != StateCelebrating {
		o.log.Debug("stop ignored", zap.Stringer("state", o.state))
		return false
	}

	o.autoStop.Cancel()
	o.autoStop = nil

	if o.cfg.RetractOnStop {
		for _, t := range o.spawns {
			t.Cancel()
		}
	}
	o.spawns = nil

	o.state = StateIdle
	cleared := o.cleanup()
	o.log.Info("celebration stopped", zap.Int("cleared", cleared))
	o.log = o.baseLog
	return true
}

// Toggle starts when Idle and stops when Celebrating; returns whether a
// celebration is running afterwards
func (o *Orchestrator) Toggle() bool {
	if o.state == StateIdle {
		o.Start()
	} else {
		o.Stop()
	}
	return o.state == StateCelebrating
}

// Reset returns everything to the initial state, also when Idle
func (o *Orchestrator) Reset() {
	if o.state == StateCelebrating {
		o.Stop()
		return
	}
	o.cleanup()
}

// ToggleMusic starts or stops the melody; returns whether music is on afterwards
func (o *Orchestrator) ToggleMusic() bool {
	if o.musicOn {
		o.stopMusic()
	} else {
		o.guard("music", o.startMusic)
	}
	return o.musicOn
}

// Direct effect actions, bound to keys
func (o *Orchestrator) Confetti()  { o.guard("confetti", o.particles.Confetti) }
func (o *Orchestrator) Hearts()    { o.guard("hearts", o.particles.Hearts) }
func (o *Orchestrator) Stars()     { o.guard("stars", o.particles.Stars) }
func (o *Orchestrator) Fireworks() { o.guard("fireworks", o.particles.Fireworks) }
func (o *Orchestrator) Bubbles()   { o.guard("bubbles", o.particles.Bubbles) }
func (o *Orchestrator) Magic()     { o.guard("magic", o.particles.Magic) }
func (o *Orchestrator) Petals()    { o.guard("petals", o.particles.Petals) }

// HeartBurst explodes hearts from a point
func (o *Orchestrator) HeartBurst(at effect.Vec) {
	o.guard("heart-burst", func() error { return o.particles.HeartBurst(at) })
}

// PauseMusic stops the melody if it is playing, for example when the terminal
// loses focus; returns whether music was stopped
func (o *Orchestrator) PauseMusic() bool {
	if !o.musicOn {
		return false
	}
	o.stopMusic()
	return true
}

// cleanup resets display, music and gallery and clears effects; returns the number cleared
func (o *Orchestrator) cleanup() int {
	for _, t := range o.chores {
		t.Cancel()
	}
	o.chores = nil

	o.stopMusic()
	o.guard("gallery-reset", func() error {
		o.gallery.ResetHighlightMode()
		return nil
	})

	cleared := 0
	o.guard("clear", func() error {
		cleared = o.effects.ClearAll()
		return nil
	})

	o.guard("display-reset", func() error {
		o.display.SetButtonLabel(o.cfg.IdleLabel, false)
		o.display.ResetTheme()
		o.display.ClearMessage()
		o.display.ClearCounter()
		return nil
	})
	return cleared
}

func (o *Orchestrator) showMessage() error {
	if len(o.cfg.Messages) == 0 {
		return nil
	}
	msg := o.cfg.Messages[o.rng.Intn(len(o.cfg.Messages))]
	o.display.ShowMessage(msg)
	o.chores = append(o.chores, o.sched.Schedule(parameter.MessageDuration, func() {
		o.guard("message-clear", func() error {
			o.display.ClearMessage()
			return nil
		})
	}))
	return nil
}

func (o *Orchestrator) startMusic() error {
	if err := o.music.Play(o.cfg.Melody); err != nil {
		return err
	}
	o.musicOn = true
	return nil
}

func (o *Orchestrator) stopMusic() {
	if !o.musicOn {
		return
	}
	o.musicOn = false
	o.guard("music-stop", func() error {
		o.music.Stop()
		return nil
	})
}

// animateCounter counts the displayed age up from 0 in fixed steps
func (o *Orchestrator) animateCounter() error {
	o.display.SetCounter(0)
	for k := 1; k <= parameter.CounterSteps; k++ {
		v := int(math.Round(float64(o.cfg.Age) * float64(k) / float64(parameter.CounterSteps)))
		o.chores = append(o.chores, o.sched.Schedule(time.Duration(k)*parameter.CounterInterval, func() {
			o.guard("counter", func() error {
				o.display.SetCounter(v)
				return nil
			})
		}))
	}
	return nil
}

func (o *Orchestrator) startGallery() error {
	o.gallery.StartHighlightMode()
	return nil
}

// guard runs a collaborator call, logging errors and recovering panics
func (o *Orchestrator) guard(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Warn("collaborator panicked", zap.String("step", name), zap.Any("panic", r))
		}
	}()
	if err := fn(); err != nil {
		o.log.Warn("collaborator failed", zap.String("step", name), zap.Error(err))
	}
}
