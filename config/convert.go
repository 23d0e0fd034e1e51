package config

import (
	"fmt"

	"github.com/lixenwraith/celebrate/audio"
	"github.com/lixenwraith/celebrate/celebration"
	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/input"
	"github.com/lixenwraith/celebrate/render"
)

// CelebrationConfig converts the celebration section
func (c *Config) CelebrationConfig() celebration.Config {
	out := celebration.DefaultConfig()
	cel := c.Celebration
	out.Duration = cel.Duration
	out.Age = cel.Age
	out.RetractOnStop = cel.RetractOnStop
	out.Messages = append([]string(nil), cel.Messages...)
	if cel.IdleLabel != "" {
		out.IdleLabel = cel.IdleLabel
	}
	if cel.BusyLabel != "" {
		out.BusyLabel = cel.BusyLabel
	}
	return out
}

// ThemeSet resolves themes.default against themes.list; the remaining
// themes become the celebration alternatives
func (c *Config) ThemeSet() (render.ThemeSet, error) {
	var set render.ThemeSet
	found := false
	for i, t := range c.Themes.List {
		th, err := render.ParseTheme(t.Name, t.Top, t.Bottom)
		if err != nil {
			return render.ThemeSet{}, invalid(fmt.Sprintf("themes.list[%d]", i), "%v", err)
		}
		if t.Name == c.Themes.Default && !found {
			set.Default = th
			found = true
			continue
		}
		set.Celebration = append(set.Celebration, th)
	}
	if !found {
		return render.ThemeSet{}, invalid("themes.default", "%q not in themes.list", c.Themes.Default)
	}
	return set, nil
}

// EffectPalettes overrides the built-in palettes with the configured ones
func (c *Config) EffectPalettes() (effect.Palettes, error) {
	p := effect.DefaultPalettes()
	overrides := []struct {
		field string
		hexes []string
		dst   *effect.Palette
	}{
		{"palettes.confetti", c.Palettes.Confetti, &p.Confetti},
		{"palettes.fallback", c.Palettes.Fallback, &p.Fallback},
		{"palettes.sparks", c.Palettes.Sparks, &p.Sparks},
	}
	for _, o := range overrides {
		if len(o.hexes) == 0 {
			continue
		}
		parsed, err := effect.ParsePalette(o.hexes)
		if err != nil {
			return effect.Palettes{}, invalid(o.field, "%v", err)
		}
		*o.dst = parsed
	}
	return p, nil
}

// AudioConfig converts the audio section; environment overrides are applied by the caller
func (c *Config) AudioConfig() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: float64(c.Audio.Volume) / 100.0,
		SampleRate:   c.Audio.SampleRate,
		Tempo:        c.Audio.Tempo,
	}
}

// KeyTable merges the keys section over the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, invalid("keys", "%v", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
