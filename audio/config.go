package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/celebrate/parameter"
)

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	Tempo        int // beats per minute
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   parameter.AudioSampleRate,
		Tempo:        parameter.DefaultTempo,
	}
}

// Environment overrides
const (
	EnvAudioEnabled = "CELEBRATE_AUDIO_ENABLED"
	EnvMasterVolume = "CELEBRATE_MASTER_VOLUME"
	EnvTempo        = "CELEBRATE_TEMPO"
)

// ApplyEnv overrides cfg from the environment. Unparsable values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if tempo := os.Getenv(EnvTempo); tempo != "" {
		if val, err := strconv.Atoi(tempo); err == nil && val > 0 {
			cfg.Tempo = val
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
