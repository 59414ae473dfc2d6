// Package sim implements the run-simulation engine for the ink runner:
// the per-tick update loop that advances player physics, the drawn-platform
// economy, procedural hazard generation, coin spawning, and collision
// resolution under a fixed difficulty model. The package is pure and
// deterministic: all randomness flows from the seed in the runtime config,
// and all timers are elapsed-delta countdowns.
package sim

import (
	"math"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// ObstacleKind discriminates the behavior variant of an obstacle.
// Behavior-specific state is held inline on Obstacle; the update loop
// dispatches on the kind rather than on subtypes.
type ObstacleKind int

const (
	KindGroundBlock ObstacleKind = iota
	KindMovingHazard
	KindHoveringShard
	KindCeiling
	KindHopper
	KindFloater
	KindSpitter
	KindSpitProjectile
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGroundBlock:
		return "groundBlock"
	case KindMovingHazard:
		return "movingHazard"
	case KindHoveringShard:
		return "hoveringShard"
	case KindCeiling:
		return "ceiling"
	case KindHopper:
		return "hopper"
	case KindFloater:
		return "floater"
	case KindSpitter:
		return "spitter"
	case KindSpitProjectile:
		return "spitProjectile"
	default:
		return "unknown"
	}
}

// Obstacle is a single hazard. Its horizontal position only ever decreases
// (world scroll) until it is culled past the trailing edge or, for
// projectiles, self-expires.
type Obstacle struct {
	Kind ObstacleKind

	X, Y float64 // Top-left corner
	W, H float64

	// AnchorY is the initial vertical placement, used as the oscillation
	// reference and as the hopper's resting top.
	AnchorY float64
	AgeMs   float64

	// Oscillation parameters (movingHazard, hoveringShard, floater).
	Amplitude float64
	FreqHz    float64
	Phase     float64

	// Hopper state.
	VelY       float64
	HopTimerMs float64

	// Spitter state.
	CooldownMs float64

	// Projectile state.
	VelPX, VelPY float64
	LifetimeMs   float64

	expired bool
}

// Rect returns the obstacle's collision rectangle.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the trailing-relevant right edge.
func (o *Obstacle) Right() float64 {
	return o.X + o.W
}

// Translate shifts the obstacle horizontally by dx (always negative during
// normal play: the world scrolls left).
func (o *Obstacle) Translate(dx float64) {
	o.X += dx
}

// Advance runs one behavior tick. dtMs is the frame delta, playerX the
// player's horizontal position (read-only snapshot for trigger-distance
// behaviors). A spitter may return one newly spawned projectile; ownership
// passes to the caller immediately.
func (o *Obstacle) Advance(dtMs float64, playerX float64, gravity float64, cfg *config.ObstacleConfig) *Obstacle {
	o.AgeMs += dtMs
	dt := dtMs / 1000.0

	switch o.Kind {
	case KindGroundBlock, KindCeiling:
		// Static besides scrolling.

	case KindMovingHazard, KindHoveringShard, KindFloater:
		t := o.AgeMs / 1000.0
		o.Y = o.AnchorY + o.Amplitude*math.Sin(2*math.Pi*o.FreqHz*t+o.Phase)

	case KindHopper:
		o.advanceHopper(dt, dtMs, playerX, gravity, cfg)

	case KindSpitter:
		if p := o.advanceSpitter(dtMs, playerX, cfg); p != nil {
			return p
		}

	case KindSpitProjectile:
		o.X += o.VelPX * dt
		o.Y += o.VelPY * dt
		if o.AgeMs >= o.LifetimeMs {
			o.expired = true
		}
	}
	return nil
}

// advanceHopper rests the hopper at its anchor until the player is within
// trigger distance and the hop interval has elapsed, then launches it
// upward. Gravity pulls it back; landing clamps exactly to the rest top
// with zero velocity and rearms the hop timer.
func (o *Obstacle) advanceHopper(dt, dtMs, playerX, gravity float64, cfg *config.ObstacleConfig) {
	airborne := o.Y < o.AnchorY || o.VelY < 0

	if !airborne {
		if o.HopTimerMs > 0 {
			o.HopTimerMs -= dtMs
		}
		if o.HopTimerMs <= 0 && o.X-playerX <= cfg.Hopper.TriggerDistance {
			o.VelY = cfg.Hopper.JumpVelocity
			airborne = true
		}
	}

	if airborne {
		o.VelY += gravity * dt
		o.Y += o.VelY * dt
		if o.Y >= o.AnchorY {
			o.Y = o.AnchorY
			o.VelY = 0
			o.HopTimerMs = cfg.Hopper.HopIntervalMs
		}
	}
}

// advanceSpitter counts its fire cooldown down while the player is within
// trigger distance and spawns one projectile per expiry.
func (o *Obstacle) advanceSpitter(dtMs, playerX float64, cfg *config.ObstacleConfig) *Obstacle {
	if o.X-playerX > cfg.Spitter.TriggerDistance {
		return nil
	}

	o.CooldownMs -= dtMs
	if o.CooldownMs > 0 {
		return nil
	}
	o.CooldownMs = cfg.Spitter.FireIntervalMs

	size := cfg.Spitter.ProjectileSize
	return &Obstacle{
		Kind:       KindSpitProjectile,
		X:          o.X + o.W/2 - size/2, // Muzzle: top center
		Y:          o.Y - size,
		W:          size,
		H:          size,
		AnchorY:    o.Y - size,
		VelPX:      0,
		VelPY:      -cfg.Spitter.ProjectileSpeed,
		LifetimeMs: cfg.Spitter.ProjectileLifetimeMs,
	}
}

// Expired reports whether the obstacle removed itself (projectiles past
// their lifetime).
func (o *Obstacle) Expired() bool {
	return o.expired
}
