package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMarbleEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files around, the embedded YAML
	// must load and agree with the hardcoded defaults.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()
	t.Setenv("HOME", tmp)

	cfg, err := LoadMarble("")
	if err != nil {
		t.Fatalf("LoadMarble: %v", err)
	}
	want := DefaultMarbleConfig()
	if cfg != want {
		t.Errorf("embedded config differs from defaults:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadMarbleCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  base_speed: 0.5\nspawn:\n  special_chance: 0.1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMarble(path)
	if err != nil {
		t.Fatalf("LoadMarble: %v", err)
	}
	if cfg.Physics.BaseSpeed != 0.5 {
		t.Errorf("base_speed = %f, want 0.5", cfg.Physics.BaseSpeed)
	}
	if cfg.Spawn.SpecialChance != 0.1 {
		t.Errorf("special_chance = %f, want 0.1", cfg.Spawn.SpecialChance)
	}
}

func TestLoadMarbleMissingCustomPath(t *testing.T) {
	if _, err := LoadMarble("/definitely/not/a/file.yaml"); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyMarblePreset(t *testing.T) {
	cfg := DefaultMarbleConfig()

	ApplyMarblePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyMarblePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpawnIncrease: 20, LuckBonus: 0.02},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("level at score 0 = %f, want 0", got)
	}
	if got := dm.Level(500, 0); got != 0.5 {
		t.Errorf("level at half max = %f, want 0.5", got)
	}
	if got := dm.Level(5000, 0); got != 1.0 {
		t.Errorf("level past max = %f, want 1.0", got)
	}

	if got := dm.Speed(0.035, 500, 0); got != 0.035*1.5 {
		t.Errorf("speed at half max = %f, want %f", got, 0.035*1.5)
	}
	if got := dm.SpawnCount(60, 1000, 0); got != 80 {
		t.Errorf("spawn count at max = %d, want 80", got)
	}
	if got := dm.LuckBonus(1000, 0); got != 0.02 {
		t.Errorf("luck bonus at max = %f, want 0.02", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	}
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(10000, 10000); got != 0.4 {
		t.Errorf("disabled manager level = %f, want initial 0.4", got)
	}
	if dm.IsEnabled() {
		t.Error("manager should report disabled")
	}
}
