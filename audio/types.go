package audio

import (
	"errors"
	"time"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
)

// ToneGenerator plays a single tone; calls return immediately
type ToneGenerator interface {
	PlayTone(freq float64, d time.Duration) error
}

// Sentinel errors
var (
	ErrNoAudioDevice  = errors.New("no audio output device")
	ErrNotInitialized = errors.New("audio not initialized")
	ErrInvalidNote    = errors.New("invalid note")
)
