package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.Display.FPS)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should default to enabled")
	}
	if cfg.Spawn.IdleMin >= cfg.Spawn.IdleMax {
		t.Error("idle spawn range must be ordered")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyburst.yaml")

	cfg := DefaultConfig()
	cfg.Display.FPS = 30
	cfg.Audio.Gain = 0.4
	cfg.Countdown.Target = "2027-01-01T00:00:00Z"
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Display.FPS != 30 {
		t.Errorf("fps lost in roundtrip: %d", loaded.Display.FPS)
	}
	if loaded.Audio.Gain != 0.4 {
		t.Errorf("gain lost in roundtrip: %f", loaded.Audio.Gain)
	}
	if loaded.Countdown.Target != "2027-01-01T00:00:00Z" {
		t.Errorf("target lost in roundtrip: %q", loaded.Countdown.Target)
	}
	if loaded.Seed != 99 {
		t.Errorf("seed lost in roundtrip: %d", loaded.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTargetDefaultsToNextNewYear(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	target, err := cfg.Target(now)
	if err != nil {
		t.Fatalf("target failed: %v", err)
	}

	want := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !target.Equal(want) {
		t.Errorf("expected %v, got %v", want, target)
	}
}

func TestTargetParsesRFC3339(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countdown.Target = "2026-12-25T18:30:00+01:00"

	target, err := cfg.Target(time.Now())
	if err != nil {
		t.Fatalf("target failed: %v", err)
	}
	if target.Year() != 2026 || target.Month() != time.December {
		t.Errorf("unexpected target %v", target)
	}
}

func TestTargetRejectsGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countdown.Target = "midnight-ish"

	if _, err := cfg.Target(time.Now()); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateRejectsBadFPS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.FPS = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestValidateRejectsInvertedSpawnRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn.BurstMin = 1.0
	cfg.Spawn.BurstMax = 0.5

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for inverted burst range")
	}
}
