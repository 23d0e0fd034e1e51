package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Tone shaping
const (
	ToneAttack  = 10 * time.Millisecond
	ToneRelease = 80 * time.Millisecond
	// ToneOvertoneMix is the octave harmonic level relative to the fundamental
	ToneOvertoneMix = 0.25
)

// Bell tone used by the music fallback
const (
	BellFrequency = 880.0
	BellDuration  = 600 * time.Millisecond
)

// Pointer click tick
const (
	ClickToneFrequency = 1320.0
	ClickToneDuration  = 40 * time.Millisecond
	ClickToneVolume    = 0.4
)

// Melody
const (
	DefaultTempo = 120
	MinTempo     = 40
	MaxTempo     = 240
	// NoteGap shortens every note so consecutive equal pitches stay distinct
	NoteGap = 30 * time.Millisecond
)

// BeatDuration returns the duration of one beat at tempo bpm
func BeatDuration(bpm int) time.Duration {
	if bpm < MinTempo {
		bpm = MinTempo
	} else if bpm > MaxTempo {
		bpm = MaxTempo
	}
	return time.Minute / time.Duration(bpm)
}
