package audio

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/parameter"
)

// Sequencer plays melodies by scheduling one tone per note on a scheduler.
// Not safe for concurrent use; driven from the scheduler's execution context
type Sequencer struct {
	sched engine.Scheduler
	tones ToneGenerator
	log   *zap.Logger
	tempo int

	pending []*engine.Task
	playing bool
}

// NewSequencer creates a sequencer at tempo bpm
func NewSequencer(sched engine.Scheduler, tones ToneGenerator, bpm int, log *zap.Logger) *Sequencer {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sequencer{sched: sched, tones: tones, log: log}
	s.SetTempo(bpm)
	return s
}

// SetTempo changes the tempo for subsequent Play calls
func (s *Sequencer) SetTempo(bpm int) {
	if bpm < parameter.MinTempo {
		bpm = parameter.MinTempo
	} else if bpm > parameter.MaxTempo {
		bpm = parameter.MaxTempo
	}
	s.tempo = bpm
}

// Tempo returns the current tempo
func (s *Sequencer) Tempo() int {
	return s.tempo
}

// Play stops any melody in progress and schedules m from now
func (s *Sequencer) Play(m Melody) error {
	notes, total, err := m.resolve(s.tempo)
	if err != nil {
		return err
	}
	s.Stop()

	s.playing = true
	s.pending = make([]*engine.Task, 0, len(notes)+1)
	for _, n := range notes {
		n := n
		s.pending = append(s.pending, s.sched.Schedule(n.offset, func() {
			s.playNote(n)
		}))
	}
	s.pending = append(s.pending, s.sched.Schedule(total, func() {
		s.playing = false
		s.pending = nil
	}))

	s.log.Debug("melody started",
		zap.String("melody", m.Name),
		zap.Int("notes", len(notes)),
		zap.Duration("length", total),
	)
	return nil
}

// Stop cancels every pending note and returns how many were cancelled
func (s *Sequencer) Stop() int {
	n := 0
	for _, t := range s.pending {
		if t.Cancel() {
			n++
		}
	}
	s.pending = nil
	s.playing = false
	return n
}

// Playing reports whether a melody is in progress
func (s *Sequencer) Playing() bool {
	return s.playing
}

// playNote calls the tone generator; failures never stop the melody
func (s *Sequencer) playNote(n scheduledNote) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("tone generator panicked", zap.Any("panic", r))
		}
	}()
	if s.tones == nil {
		return
	}
	if err := s.tones.PlayTone(n.freq, n.length); err != nil {
		s.log.Debug("tone dropped", zap.Float64("freq", n.freq), zap.Error(err))
	}
}
