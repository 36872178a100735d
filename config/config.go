// Package config loads name-wheel settings from defaults, an optional YAML
// file and NAME_WHEEL_* environment variables, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/name-wheel/audio"
	"github.com/lixenwraith/name-wheel/spin"
	"github.com/lixenwraith/name-wheel/store"
	"github.com/lixenwraith/name-wheel/vmath"
	"github.com/lixenwraith/name-wheel/wheel"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "NAME_WHEEL_"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

type Store struct {
	Backend string `yaml:"backend" env:"BACKEND"`
	Path    string `yaml:"path" env:"PATH"`
}

type Spin struct {
	Duration      time.Duration `yaml:"duration" env:"DURATION"`
	BaseSpins     int           `yaml:"base_spins" env:"BASE_SPINS"`
	PointerOffset float64       `yaml:"pointer_offset" env:"POINTER_OFFSET"`
	Easing        string        `yaml:"easing" env:"EASING"`
}

type Render struct {
	FPS        int     `yaml:"fps" env:"FPS"`
	LabelRatio float64 `yaml:"label_ratio" env:"LABEL_RATIO"`
}

type Audio struct {
	Enabled    bool    `yaml:"enabled" env:"ENABLED"`
	Volume     float64 `yaml:"volume" env:"VOLUME"`
	SampleRate int     `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

type Metrics struct {
	Textfile string `yaml:"textfile" env:"TEXTFILE"`
}

// Config is the full application configuration
type Config struct {
	Store   Store   `yaml:"store" envPrefix:"STORE_"`
	Spin    Spin    `yaml:"spin" envPrefix:"SPIN_"`
	Render  Render  `yaml:"render" envPrefix:"RENDER_"`
	Audio   Audio   `yaml:"audio" envPrefix:"AUDIO_"`
	Metrics Metrics `yaml:"metrics" envPrefix:"METRICS_"`
	Debug   bool    `yaml:"debug" env:"DEBUG"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Store: Store{
			Backend: store.KindFile,
			Path:    filepath.Join(dataDir(), "names.json"),
		},
		Spin: Spin{
			Duration:      spin.DefaultDuration,
			BaseSpins:     wheel.DefaultBaseSpins,
			PointerOffset: wheel.PointerTop,
			Easing:        "cubic",
		},
		Render: Render{
			FPS:        60,
			LabelRatio: 2.0 / 3.0,
		},
		Audio: Audio{
			Enabled:    ac.Enabled,
			Volume:     ac.MasterVolume,
			SampleRate: ac.SampleRate,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/name-wheel/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "name-wheel", "config.yaml")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "name-wheel")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "name-wheel")
	}
	return "."
}

// Load builds the configuration; empty path uses DefaultPath and a missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engines cannot run with
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case store.KindFile, store.KindSQLite:
	default:
		return fmt.Errorf("%w: store.backend %q", ErrInvalid, c.Store.Backend)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is empty", ErrInvalid)
	}
	if c.Spin.Duration < 0 {
		return fmt.Errorf("%w: spin.duration %v is negative", ErrInvalid, c.Spin.Duration)
	}
	if c.Spin.BaseSpins < 0 {
		return fmt.Errorf("%w: spin.base_spins %d is negative", ErrInvalid, c.Spin.BaseSpins)
	}
	switch c.Spin.Easing {
	case "", "linear", "quad", "quadratic", "cubic":
	default:
		return fmt.Errorf("%w: spin.easing %q", ErrInvalid, c.Spin.Easing)
	}
	if c.Render.FPS <= 0 || c.Render.FPS > 240 {
		return fmt.Errorf("%w: render.fps %d not in 1..240", ErrInvalid, c.Render.FPS)
	}
	if c.Render.LabelRatio <= 0 || c.Render.LabelRatio >= 1 {
		return fmt.Errorf("%w: render.label_ratio %v not in (0,1)", ErrInvalid, c.Render.LabelRatio)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v not in [0,1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// SpinConfig converts to the spin engine configuration
func (c *Config) SpinConfig() spin.Config {
	return spin.Config{
		Duration:      c.Spin.Duration,
		BaseSpins:     c.Spin.BaseSpins,
		PointerOffset: c.Spin.PointerOffset,
		Ease:          vmath.EaseByName(c.Spin.Easing),
	}
}

// AudioConfig converts to the sound manager configuration
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// FrameInterval returns the frame period for the configured fps
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}
