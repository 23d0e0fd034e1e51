package config

import (
	"fmt"

	"github.com/lixenwraith/celebrate/input"
	"github.com/lixenwraith/celebrate/parameter"
)

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Validate checks ranges and references; the error names the offending field
func (c *Config) Validate() error {
	cel := c.Celebration
	if cel.Duration <= 0 {
		return invalid("celebration.duration", "must be positive, got %s", cel.Duration)
	}
	if cel.Age < 0 {
		return invalid("celebration.age", "must not be negative, got %d", cel.Age)
	}
	if len(cel.Messages) == 0 {
		return invalid("celebration.messages", "at least one message required")
	}

	if len(c.Themes.List) == 0 {
		return invalid("themes.list", "at least one theme required")
	}
	if _, err := c.ThemeSet(); err != nil {
		return err
	}

	if _, err := c.EffectPalettes(); err != nil {
		return err
	}

	a := c.Audio
	if a.Volume < 0 || a.Volume > 100 {
		return invalid("audio.volume", "must be in 0-100, got %d", a.Volume)
	}
	if a.Tempo < parameter.MinTempo || a.Tempo > parameter.MaxTempo {
		return invalid("audio.tempo", "must be in %d-%d, got %d", parameter.MinTempo, parameter.MaxTempo, a.Tempo)
	}
	if a.SampleRate <= 0 {
		return invalid("audio.sample_rate", "must be positive, got %d", a.SampleRate)
	}

	for i, p := range c.Gallery.Photos {
		if p.Title == "" {
			return invalid(fmt.Sprintf("gallery.photos[%d].title", i), "must not be empty")
		}
	}

	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		return invalid("keys", "%v", err)
	}
	return nil
}
