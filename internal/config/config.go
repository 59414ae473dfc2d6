// Package config provides YAML-based game configuration loading and
// difficulty management for the ink runner.
package config

// RunnerConfig contains all configuration for the runner simulation.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Ink        InkConfig        `yaml:"ink"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Upgrades   UpgradesConfig   `yaml:"upgrades"`
}

// PhysicsConfig defines player physics and world scroll parameters.
// Velocities are px/s, accelerations px/s².
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"` // Negative = up
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	BaseScrollSpeed float64 `yaml:"base_scroll_speed"`
	MaxScrollSpeed  float64 `yaml:"max_scroll_speed"`
	SpeedRampPerMin float64 `yaml:"speed_ramp_per_min"` // Fractional gain per minute
	GroundOffset    float64 `yaml:"ground_offset"`      // Ground line height above world bottom
	CoyoteMs        float64 `yaml:"coyote_ms"`
	JumpBufferMs    float64 `yaml:"jump_buffer_ms"`
}

// PlayerConfig defines the player placement and hit box.
type PlayerConfig struct {
	XFrac     float64 `yaml:"x_frac"` // Horizontal position as fraction of world width
	HitRadius float64 `yaml:"hit_radius"`
}

// InkConfig defines the drawn-platform resource economy.
type InkConfig struct {
	RegenMs          float64 `yaml:"regen_ms"`         // Full recharge duration at 1x regen
	LineLifetimeMs   float64 `yaml:"line_lifetime_ms"` // Drawn line expiry
	MinPointDist     float64 `yaml:"min_point_dist"`   // Path denoise threshold
	MaxPointsPerLine int     `yaml:"max_points_per_line"`
}

// ObstacleConfig defines hazard spawning and per-behavior parameters.
type ObstacleConfig struct {
	SpawnDelayMinMs     float64 `yaml:"spawn_delay_min_ms"`
	SpawnDelayMaxMs     float64 `yaml:"spawn_delay_max_ms"`
	SpawnMargin         float64 `yaml:"spawn_margin"`  // Past the right world edge
	BaseGap             float64 `yaml:"base_gap"`      // Minimum gap to previous group
	GapPerSpeed         float64 `yaml:"gap_per_speed"` // Extra gap px per px/s of scroll
	CullOffset          float64 `yaml:"cull_offset"`   // Past the left world edge
	TutorialWindowMs    float64 `yaml:"tutorial_window_ms"`
	TutorialSpawnFactor float64 `yaml:"tutorial_spawn_factor"` // Spawn-delay multiplier in the tutorial window
	RestIntervalMs      float64 `yaml:"rest_interval_ms"`      // Play time between rest windows
	RestDurationMs      float64 `yaml:"rest_duration_ms"`
	RestSpawnFactor     float64 `yaml:"rest_spawn_factor"` // Spawn-delay multiplier during rest

	Hopper  HopperConfig  `yaml:"hopper"`
	Spitter SpitterConfig `yaml:"spitter"`
}

// HopperConfig defines the hopping ground enemy.
type HopperConfig struct {
	JumpVelocity    float64 `yaml:"jump_velocity"` // Negative = up
	TriggerDistance float64 `yaml:"trigger_distance"`
	HopIntervalMs   float64 `yaml:"hop_interval_ms"`
}

// SpitterConfig defines the projectile-spitting enemy.
type SpitterConfig struct {
	FireIntervalMs       float64 `yaml:"fire_interval_ms"`
	TriggerDistance      float64 `yaml:"trigger_distance"`
	ProjectileSpeed      float64 `yaml:"projectile_speed"` // Upward, px/s
	ProjectileLifetimeMs float64 `yaml:"projectile_lifetime_ms"`
	ProjectileSize       float64 `yaml:"projectile_size"`
}

// CoinConfig defines pickup spawning and collection.
type CoinConfig struct {
	SpawnDelayMinMs float64 `yaml:"spawn_delay_min_ms"`
	SpawnDelayMaxMs float64 `yaml:"spawn_delay_max_ms"`
	SpawnMargin     float64 `yaml:"spawn_margin"` // Past the right world edge
	Radius          float64 `yaml:"radius"`
	VerticalBand    float64 `yaml:"vertical_band"`    // Height band above the ground line
	GroundClearance float64 `yaml:"ground_clearance"` // Minimum height above the ground line
	BaseScroll      float64 `yaml:"base_scroll"`      // Added to the clamped scroll speed
	MaxScroll       float64 `yaml:"max_scroll"`       // Scroll speed clamp
	CullOffset      float64 `yaml:"cull_offset"`      // Past the left world edge
}

// DifficultyConfig is the per-run difficulty contract. Normally supplied by
// the difficulty collaborator at run start; the values here are the
// standalone defaults. All values are clamped on apply, never rejected.
type DifficultyConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`
	DensityMultiplier float64 `yaml:"density_multiplier"`
	SafeWindowPx      float64 `yaml:"safe_window_px"` // Clearance ahead of the player when spawning
	StartGraceMs      float64 `yaml:"start_grace_ms"` // Collision grace after start/revive
}

// UpgradesConfig is the meta-progression contract read at run start.
type UpgradesConfig struct {
	InkRegenMultiplier float64 `yaml:"ink_regen_multiplier"`
	MaxRevives         int     `yaml:"max_revives"`
	CoyoteBonusMs      float64 `yaml:"coyote_bonus_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the difficulty block for a named preset.
// "fixed" leaves the config's own values untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedMultiplier = 0.85
		cfg.Difficulty.DensityMultiplier = 0.75
		cfg.Difficulty.SafeWindowPx = 220
	case DifficultyNormal:
		cfg.Difficulty.SpeedMultiplier = 1.0
		cfg.Difficulty.DensityMultiplier = 1.0
	case DifficultyHard:
		cfg.Difficulty.SpeedMultiplier = 1.2
		cfg.Difficulty.DensityMultiplier = 1.35
		cfg.Difficulty.SafeWindowPx = 140
	case DifficultyFixed:
		// Keep the loaded values as-is.
	}
}
