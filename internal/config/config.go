package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS         = 60
	DefaultCameraSpeed = 15.0
	DefaultMaxVoices   = 24
	DefaultGain        = 0.7
)

type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Audio     AudioConfig     `yaml:"audio"`
	Countdown CountdownConfig `yaml:"countdown"`
	Seed      int64           `yaml:"seed"`
}

type DisplayConfig struct {
	FPS         int     `yaml:"fps"`
	Width       int     `yaml:"width"`  // terminal columns; 0 = autodetect
	Height      int     `yaml:"height"` // terminal rows; 0 = autodetect
	CameraSpeed float64 `yaml:"camera_speed"`
}

// SpawnConfig bounds the automatic launch intervals in seconds. The idle
// range applies to the first spawn after the gate opens, the burst range to
// every spawn after that.
type SpawnConfig struct {
	IdleMin  float64 `yaml:"idle_min"`
	IdleMax  float64 `yaml:"idle_max"`
	BurstMin float64 `yaml:"burst_min"`
	BurstMax float64 `yaml:"burst_max"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	BlockSize  int     `yaml:"block_size"`
	MaxVoices  int     `yaml:"max_voices"`
	Gain       float64 `yaml:"gain"`
}

// CountdownConfig names the gate instant as RFC3339. Empty means the next
// New Year, UTC.
type CountdownConfig struct {
	Target string `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:         DefaultFPS,
			CameraSpeed: DefaultCameraSpeed,
		},
		Spawn: SpawnConfig{
			IdleMin:  0.5,
			IdleMax:  1.5,
			BurstMin: 0.2,
			BurstMax: 0.8,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			BlockSize:  1024,
			MaxVoices:  DefaultMaxVoices,
			Gain:       DefaultGain,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Target resolves the countdown instant, defaulting to the next New Year in
// UTC when unset.
func (c *Config) Target(now time.Time) (time.Time, error) {
	if c.Countdown.Target == "" {
		return time.Date(now.UTC().Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.RFC3339, c.Countdown.Target)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse countdown target: %w", err)
	}
	return t, nil
}

func (c *Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Display.FPS)
	}
	if c.Spawn.IdleMin > c.Spawn.IdleMax {
		return fmt.Errorf("spawn idle range inverted: %f > %f", c.Spawn.IdleMin, c.Spawn.IdleMax)
	}
	if c.Spawn.BurstMin > c.Spawn.BurstMax {
		return fmt.Errorf("spawn burst range inverted: %f > %f", c.Spawn.BurstMin, c.Spawn.BurstMax)
	}
	return nil
}
