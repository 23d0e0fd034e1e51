package audio

import (
	"testing"

	"github.com/lixenwraith/celebrate/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.7 {
		t.Errorf("Expected default master volume 0.7, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	if cfg.Tempo != parameter.DefaultTempo {
		t.Errorf("Expected default tempo %d, got %d", parameter.DefaultTempo, cfg.Tempo)
	}
}

// TestApplyEnv verifies environment overrides
func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		enabled bool
		volume  float64
		tempo   int
	}{
		{"no overrides", nil, true, 0.7, parameter.DefaultTempo},
		{"disabled", map[string]string{EnvAudioEnabled: "false"}, false, 0.7, parameter.DefaultTempo},
		{"volume", map[string]string{EnvMasterVolume: "25"}, true, 0.25, parameter.DefaultTempo},
		{"volume clamped high", map[string]string{EnvMasterVolume: "150"}, true, 1.0, parameter.DefaultTempo},
		{"volume clamped low", map[string]string{EnvMasterVolume: "-10"}, true, 0.0, parameter.DefaultTempo},
		{"tempo", map[string]string{EnvTempo: "90"}, true, 0.7, 90},
		{"invalid values ignored", map[string]string{
			EnvAudioEnabled: "maybe",
			EnvMasterVolume: "loud",
			EnvTempo:        "-5",
		}, true, 0.7, parameter.DefaultTempo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{EnvAudioEnabled, EnvMasterVolume, EnvTempo} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := DefaultAudioConfig()
			cfg.ApplyEnv()

			if cfg.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Enabled, tt.enabled)
			}
			if cfg.MasterVolume != tt.volume {
				t.Errorf("MasterVolume = %f, want %f", cfg.MasterVolume, tt.volume)
			}
			if cfg.Tempo != tt.tempo {
				t.Errorf("Tempo = %d, want %d", cfg.Tempo, tt.tempo)
			}
		})
	}
}
