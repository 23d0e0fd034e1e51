// Package config loads the YAML settings file layered over the embedded defaults
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/celebrate/gallery"
)

// DefaultConfigPath is read when no path is given on the command line
const DefaultConfigPath = "celebrate.yaml"

//go:embed default.yaml
var embeddedDefault []byte

// Config mirrors the YAML file layout
type Config struct {
	Celebration Celebration       `yaml:"celebration"`
	Themes      Themes            `yaml:"themes"`
	Palettes    Palettes          `yaml:"palettes"`
	Audio       Audio             `yaml:"audio"`
	Gallery     Gallery           `yaml:"gallery"`
	Keys        map[string]string `yaml:"keys"`
}

type Celebration struct {
	Duration      time.Duration `yaml:"duration"`
	Age           int           `yaml:"age"`
	RetractOnStop bool          `yaml:"retract_on_stop"`
	IdleLabel     string        `yaml:"idle_label"`
	BusyLabel     string        `yaml:"busy_label"`
	Messages      []string      `yaml:"messages"`
	// Ambient keeps slow background dots drifting while the app runs
	Ambient bool `yaml:"ambient"`
}

type Theme struct {
	Name   string `yaml:"name"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

type Themes struct {
	Default string  `yaml:"default"`
	List    []Theme `yaml:"list"`
}

type Palettes struct {
	Confetti []string `yaml:"confetti"`
	Fallback []string `yaml:"fallback"`
	Sparks   []string `yaml:"sparks"`
}

type Audio struct {
	Enabled    bool `yaml:"enabled"`
	Volume     int  `yaml:"volume"` // 0-100
	Tempo      int  `yaml:"tempo"`
	SampleRate int  `yaml:"sample_rate"`
	// Melody false rings a bell instead of playing the song
	Melody bool `yaml:"melody"`
}

type Gallery struct {
	Photos []gallery.Photo `yaml:"photos"`
}

// Default returns the embedded configuration
func Default() *Config {
	cfg := &Config{}
	if err := decode(bytes.NewReader(embeddedDefault), cfg); err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults and validates the result.
// Mappings merge field by field; lists in the file replace the default lists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes over the embedded defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAuto resolves the config with priority: customPath > DefaultConfigPath > embedded
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultConfigPath) {
		return Load(DefaultConfigPath)
	}
	cfg := Default()
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Empty document keeps the defaults
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
