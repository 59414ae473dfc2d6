package sim

import (
	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// supportTol is the snap distance for standing-surface checks, px.
const supportTol = 2.0

// Player holds the runner's kinematic state. Mutated only by the engine's
// run state machine; other subsystems read position snapshots.
type Player struct {
	Pos      core.Vec2 // Center
	VelY     float64
	Radius   float64
	Grounded bool

	// coyoteMs is the remaining grace after leaving a platform during
	// which a jump is still legal. bufferMs remembers a jump pressed
	// slightly before landing so it fires on touchdown.
	coyoteMs float64
	bufferMs float64

	jumps int
}

// HitRect returns the axis-aligned hit rectangle used for coin collection.
func (p *Player) HitRect() core.RectF {
	return core.NewRectF(p.Pos.X-p.Radius, p.Pos.Y-p.Radius, 2*p.Radius, 2*p.Radius)
}

// Jumps returns the number of jumps performed, buffered ones included.
func (p *Player) Jumps() int {
	return p.jumps
}

// RequestJump applies a jump if the player is grounded or within the coyote
// window; otherwise it arms the jump buffer. Requests are never silently
// dropped: a buffered press fires on landing.
func (p *Player) RequestJump(phys *config.PhysicsConfig) {
	if p.Grounded || p.coyoteMs > 0 {
		p.launch(phys)
		return
	}
	p.bufferMs = phys.JumpBufferMs
}

func (p *Player) launch(phys *config.PhysicsConfig) {
	p.VelY = phys.JumpImpulse
	p.Grounded = false
	p.coyoteMs = 0
	p.bufferMs = 0
	p.jumps++
}

// Integrate advances one physics tick: gravity, landing resolution against
// the ground line and ink lines, grace-timer bookkeeping, and buffered-jump
// release.
func (p *Player) Integrate(dtMs float64, phys *config.PhysicsConfig, coyoteWindowMs, groundY float64, ink *InkField) {
	dt := dtMs / 1000.0
	prevBottom := p.Pos.Y + p.Radius

	if !p.Grounded {
		p.VelY += phys.Gravity * dt
		if p.VelY > phys.MaxFallSpeed {
			p.VelY = phys.MaxFallSpeed
		}
		p.Pos.Y += p.VelY * dt
	}

	// World ceiling.
	if p.Pos.Y-p.Radius < 0 {
		p.Pos.Y = p.Radius
		if p.VelY < 0 {
			p.VelY = 0
		}
	}

	// Landing: only while descending.
	if !p.Grounded && p.VelY >= 0 {
		bottom := p.Pos.Y + p.Radius
		if bottom >= groundY {
			p.land(groundY, phys)
		} else if y, ok := ink.SupportY(p.Pos.X, prevBottom-supportTol, bottom+supportTol); ok {
			p.land(y, phys)
		}
	}

	// Standing surface may scroll away or expire under the player.
	if p.Grounded {
		bottom := p.Pos.Y + p.Radius
		onGround := bottom >= groundY-supportTol
		if !onGround {
			if _, ok := ink.SupportY(p.Pos.X, bottom-supportTol, bottom+supportTol); !ok {
				p.Grounded = false
				p.coyoteMs = coyoteWindowMs
			}
		}
	}

	if !p.Grounded && p.coyoteMs > 0 {
		p.coyoteMs -= dtMs
	}
	if p.bufferMs > 0 {
		p.bufferMs -= dtMs
	}
}

// land snaps the player onto a surface and releases a buffered jump if one
// is still pending.
func (p *Player) land(surfaceY float64, phys *config.PhysicsConfig) {
	p.Pos.Y = surfaceY - p.Radius
	p.VelY = 0
	p.Grounded = true
	p.coyoteMs = 0

	if p.bufferMs > 0 {
		p.launch(phys)
	}
}

// ClearTransient drops the coyote and buffer timers. Recovery hook.
func (p *Player) ClearTransient() {
	p.coyoteMs = 0
	p.bufferMs = 0
}
