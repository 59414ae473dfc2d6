package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML failed to parse: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Physics.Gravity != want.Physics.Gravity {
		t.Errorf("Embedded gravity %f disagrees with hardcoded %f",
			cfg.Physics.Gravity, want.Physics.Gravity)
	}
	if cfg.Ink.RegenMs != want.Ink.RegenMs {
		t.Errorf("Embedded ink regen %f disagrees with hardcoded %f",
			cfg.Ink.RegenMs, want.Ink.RegenMs)
	}
	if cfg.Obstacles.Spitter.FireIntervalMs != want.Obstacles.Spitter.FireIntervalMs {
		t.Errorf("Embedded spitter interval %f disagrees with hardcoded %f",
			cfg.Obstacles.Spitter.FireIntervalMs, want.Obstacles.Spitter.FireIntervalMs)
	}
	if cfg.Upgrades.MaxRevives != want.Upgrades.MaxRevives {
		t.Errorf("Embedded max revives %d disagrees with hardcoded %d",
			cfg.Upgrades.MaxRevives, want.Upgrades.MaxRevives)
	}
}

func TestDefaultConfigSanity(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("Jump impulse must be negative (upward)")
	}
	if cfg.Physics.Gravity <= 0 {
		t.Error("Gravity must be positive (downward)")
	}
	if cfg.Physics.BaseScrollSpeed > cfg.Physics.MaxScrollSpeed {
		t.Error("Base scroll exceeds the max scroll")
	}
	if cfg.Obstacles.SpawnDelayMinMs > cfg.Obstacles.SpawnDelayMaxMs {
		t.Error("Spawn delay band inverted")
	}
	if cfg.Coins.GroundClearance > cfg.Coins.VerticalBand {
		t.Error("Coin band inverted")
	}
	if cfg.Ink.MinPointDist <= 0 {
		t.Error("Point denoise threshold must be positive")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		speed   float64
		density float64
	}{
		{DifficultyEasy, 0.85, 0.75},
		{DifficultyNormal, 1.0, 1.0},
		{DifficultyHard, 1.2, 1.35},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.SpeedMultiplier != tc.speed {
				t.Errorf("Speed = %f, expected %f", cfg.Difficulty.SpeedMultiplier, tc.speed)
			}
			if cfg.Difficulty.DensityMultiplier != tc.density {
				t.Errorf("Density = %f, expected %f", cfg.Difficulty.DensityMultiplier, tc.density)
			}
		})
	}
}

func TestApplyPresetFixedKeepsValues(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Difficulty.SpeedMultiplier = 1.7
	cfg.Difficulty.DensityMultiplier = 0.4

	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.SpeedMultiplier != 1.7 || cfg.Difficulty.DensityMultiplier != 0.4 {
		t.Error("Fixed preset overwrote the loaded values")
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := []byte("physics:\n  gravity: 1234\n  jump_impulse: -500\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Cannot write test config: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1234 {
		t.Errorf("Custom gravity not loaded: %f", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	if _, err := LoadRunner("/nonexistent/path.yaml"); err == nil {
		t.Error("Expected an error for a missing explicit config path")
	}
}
