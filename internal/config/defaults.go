package config

import (
	_ "embed"
)

//go:embed defaults/inkrun.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/inkrun.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:         2200,
			JumpImpulse:     -760,
			MaxFallSpeed:    1100,
			BaseScrollSpeed: 220,
			MaxScrollSpeed:  520,
			SpeedRampPerMin: 0.35,
			GroundOffset:    36,
			CoyoteMs:        90,
			JumpBufferMs:    110,
		},
		Player: PlayerConfig{
			XFrac:     0.22,
			HitRadius: 14,
		},
		Ink: InkConfig{
			RegenMs:          2600,
			LineLifetimeMs:   3200,
			MinPointDist:     6,
			MaxPointsPerLine: 96,
		},
		Obstacles: ObstacleConfig{
			SpawnDelayMinMs:     1500,
			SpawnDelayMaxMs:     2600,
			SpawnMargin:         48,
			BaseGap:             160,
			GapPerSpeed:         0.55,
			CullOffset:          120,
			TutorialWindowMs:    12000,
			TutorialSpawnFactor: 1.6,
			RestIntervalMs:      20000,
			RestDurationMs:      4000,
			RestSpawnFactor:     1.8,
			Hopper: HopperConfig{
				JumpVelocity:    -620,
				TriggerDistance: 260,
				HopIntervalMs:   1400,
			},
			Spitter: SpitterConfig{
				FireIntervalMs:       2000,
				TriggerDistance:      300,
				ProjectileSpeed:      340,
				ProjectileLifetimeMs: 1800,
				ProjectileSize:       12,
			},
		},
		Coins: CoinConfig{
			SpawnDelayMinMs: 900,
			SpawnDelayMaxMs: 2100,
			SpawnMargin:     36,
			Radius:          12,
			VerticalBand:    150,
			GroundClearance: 12,
			BaseScroll:      40,
			MaxScroll:       600,
			CullOffset:      60,
		},
		Difficulty: DifficultyConfig{
			SpeedMultiplier:   1.0,
			DensityMultiplier: 1.0,
			SafeWindowPx:      180,
			StartGraceMs:      1200,
		},
		Upgrades: UpgradesConfig{
			InkRegenMultiplier: 1.0,
			MaxRevives:         1,
			CoyoteBonusMs:      0,
		},
	}
}
