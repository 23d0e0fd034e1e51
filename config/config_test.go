package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/celebrate/input"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10*time.Second, cfg.Celebration.Duration)
	assert.Equal(t, 43, cfg.Celebration.Age)
	assert.False(t, cfg.Celebration.RetractOnStop)
	assert.True(t, cfg.Celebration.Ambient)
	assert.True(t, cfg.Audio.Melody)
	assert.Len(t, cfg.Gallery.Photos, 8)

	set, err := cfg.ThemeSet()
	require.NoError(t, err)
	assert.Equal(t, "blush", set.Default.Name)
	assert.Len(t, set.Celebration, 4)

	ac := cfg.AudioConfig()
	assert.True(t, ac.Enabled)
	assert.InDelta(t, 0.7, ac.MasterVolume, 1e-9)
	assert.Equal(t, 120, ac.Tempo)
}

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
celebration:
  age: 50
  duration: 3s
  retract_on_stop: true
  ambient: false
audio:
  volume: 20
  melody: false
keys:
  x: confetti
  enter: none
`))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Celebration.Age)
	assert.Equal(t, 3*time.Second, cfg.Celebration.Duration)
	assert.NotEmpty(t, cfg.Celebration.Messages, "untouched fields keep defaults")
	assert.Equal(t, 120, cfg.Audio.Tempo)
	assert.False(t, cfg.Celebration.Ambient)
	assert.False(t, cfg.Audio.Melody)

	cc := cfg.CelebrationConfig()
	assert.True(t, cc.RetractOnStop)
	assert.Equal(t, 3*time.Second, cc.Duration)
	assert.Equal(t, cfg.Celebration.IdleLabel, cc.IdleLabel)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.IntentConfetti, kt.Runes['x'])
	_, bound := kt.SpecialKeys[tcell.KeyEnter]
	assert.False(t, bound)
	assert.Equal(t, input.IntentToggle, kt.Runes[' '])
}

func TestParse_ListsReplace(t *testing.T) {
	cfg, err := Parse([]byte(`
celebration:
  messages: ["hola"]
palettes:
  confetti: ["#000000"]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"hola"}, cfg.Celebration.Messages)

	p, err := cfg.EffectPalettes()
	require.NoError(t, err)
	require.Len(t, p.Confetti, 1)
	assert.NotEmpty(t, p.Hearts, "palettes without config keep built-ins")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative duration", "celebration: {duration: -1s}", "celebration.duration"},
		{"negative age", "celebration: {age: -3}", "celebration.age"},
		{"no messages", "celebration: {messages: []}", "celebration.messages"},
		{"volume range", "audio: {volume: 150}", "audio.volume"},
		{"tempo range", "audio: {tempo: 5}", "audio.tempo"},
		{"sample rate", "audio: {sample_rate: 0}", "audio.sample_rate"},
		{"bad palette", `palettes: {sparks: ["nope"]}`, "palettes.sparks"},
		{"unknown default theme", "themes: {default: sepia}", "themes.default"},
		{"bad theme color", `themes: {default: a, list: [{name: a, top: "#zzzzzz", bottom: "#000000"}]}`, "themes.list[0]"},
		{"no themes", "themes: {list: []}", "themes.list"},
		{"untitled photo", "gallery: {photos: [{title: ''}]}", "gallery.photos[0].title"},
		{"bad key action", "keys: {x: explode}", "keys"},
		{"unknown field", "celebration: {colour: red}", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalid)
			if tt.field != "" {
				assert.Contains(t, err.Error(), tt.field)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "celebrate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("celebration: {age: 7}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Celebration.Age)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)

	cfg, err = LoadAuto(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Celebration.Age)
}
