package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/parameter"
)

// SoundManager owns the speaker and a continuously playing mixer that tones are
// added to. Every method is a safe no-op before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         *zap.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(cfg *AudioConfig, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Returns an error wrapping ErrNoAudioDevice when
// no output is available; the manager stays usable as a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		sm.log.Info("audio disabled by configuration")
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Ready reports whether tones will be heard
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlayTone queues a tone on the mixer and returns immediately
func (sm *SoundManager) PlayTone(freq float64, d time.Duration) error {
	if freq <= 0 || d <= 0 {
		return fmt.Errorf("%w: tone %.1fHz for %v", ErrInvalidNote, freq, d)
	}
	return sm.play(func() beep.Streamer {
		return CreateTone(freq, d, sm.cfg)
	})
}

// PlayBell plays a single ding
func (sm *SoundManager) PlayBell() error {
	return sm.play(func() beep.Streamer {
		return CreateBellSound(sm.cfg)
	})
}

// PlayClick plays a short tick
func (sm *SoundManager) PlayClick() error {
	return sm.play(func() beep.Streamer {
		return CreateClickSound(sm.cfg)
	})
}

func (sm *SoundManager) play(build func() beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// SetMuted silences new tones; tones already playing are cut
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Cleanup stops all sound and releases the output device; Initialize may be called again
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
