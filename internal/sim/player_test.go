package sim

import (
	"testing"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

const testGroundY = 350.0

func newTestPlayer(cfg *config.RunnerConfig) (Player, *InkField) {
	p := Player{
		Pos:      core.Vec2{X: 140, Y: testGroundY - cfg.Player.HitRadius},
		Radius:   cfg.Player.HitRadius,
		Grounded: true,
	}
	return p, NewInkField(cfg)
}

func TestGroundedJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, _ := newTestPlayer(&cfg)

	p.RequestJump(&cfg.Physics)

	if p.Grounded {
		t.Error("Player still grounded after jump")
	}
	if p.VelY != cfg.Physics.JumpImpulse {
		t.Errorf("Expected jump impulse %f, got %f", cfg.Physics.JumpImpulse, p.VelY)
	}
	if p.Jumps() != 1 {
		t.Errorf("Expected 1 jump counted, got %d", p.Jumps())
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	p.RequestJump(&cfg.Physics)

	rose := false
	landed := false
	for i := 0; i < 600; i++ {
		p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)
		if p.Pos.Y < testGroundY-p.Radius-10 {
			rose = true
		}
		if rose && p.Grounded {
			landed = true
			break
		}
	}

	if !rose {
		t.Fatal("Player never rose")
	}
	if !landed {
		t.Fatal("Player never landed")
	}
	if p.Pos.Y != testGroundY-p.Radius {
		t.Errorf("Player not snapped to ground: y=%f", p.Pos.Y)
	}
	if p.VelY != 0 {
		t.Errorf("Velocity not zeroed on landing: %f", p.VelY)
	}
}

func TestCoyoteJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	// Stand on an ink line, then let it expire under the player
	ink.StartLine(core.Vec2{X: 100, Y: 250})
	ink.AddPoint(core.Vec2{X: 200, Y: 250})
	ink.EndLine()
	p.Pos.Y = 250 - p.Radius

	ink.Tick(cfg.Ink.LineLifetimeMs+1, 0)
	p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)

	if p.Grounded {
		t.Fatal("Player still grounded with no surface under it")
	}

	// Within the coyote window the jump is honored
	p.RequestJump(&cfg.Physics)
	if p.VelY != cfg.Physics.JumpImpulse {
		t.Errorf("Coyote jump not applied: vel=%f", p.VelY)
	}
}

func TestCoyoteWindowExpires(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	ink.StartLine(core.Vec2{X: 100, Y: 150})
	ink.AddPoint(core.Vec2{X: 200, Y: 150})
	ink.EndLine()
	p.Pos.Y = 150 - p.Radius

	ink.Tick(cfg.Ink.LineLifetimeMs+1, 0)

	// Burn well past the coyote window, still far above the ground
	for i := 0; i < 12; i++ {
		p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)
	}

	jumpsBefore := p.Jumps()
	p.RequestJump(&cfg.Physics)
	if p.Jumps() != jumpsBefore {
		t.Error("Jump launched after the coyote window expired")
	}
}

func TestJumpBuffer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	// Airborne and falling, close to the ground
	p.Grounded = false
	p.Pos.Y = testGroundY - p.Radius - 8
	p.VelY = 400

	// Press early: too far to jump, buffered instead
	p.RequestJump(&cfg.Physics)
	if p.Jumps() != 0 {
		t.Fatal("Airborne jump launched instead of buffering")
	}

	// Land within the buffer window; the press fires on touchdown
	for i := 0; i < 10 && p.Jumps() == 0; i++ {
		p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)
	}

	if p.Jumps() != 1 {
		t.Error("Buffered jump did not fire on landing")
	}
	if p.Grounded {
		t.Error("Player grounded right after a buffered jump fired")
	}
}

func TestLandOnInkLine(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	ink.StartLine(core.Vec2{X: 100, Y: 280})
	ink.AddPoint(core.Vec2{X: 200, Y: 280})
	ink.EndLine()

	// Fall from just above the line
	p.Grounded = false
	p.Pos.Y = 280 - p.Radius - 4
	p.VelY = 100

	for i := 0; i < 60 && !p.Grounded; i++ {
		p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)
	}

	if !p.Grounded {
		t.Fatal("Player fell through the ink line")
	}
	if p.Pos.Y != 280-p.Radius {
		t.Errorf("Player not resting on the line: y=%f", p.Pos.Y)
	}
}

func TestFallSpeedCap(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	p.Grounded = false
	p.Pos.Y = 50

	for i := 0; i < 120 && !p.Grounded; i++ {
		p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY*10, ink)
		if p.VelY > cfg.Physics.MaxFallSpeed {
			t.Fatalf("Fall speed %f exceeds the cap %f", p.VelY, cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestWorldCeilingClamp(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p, ink := newTestPlayer(&cfg)

	p.Grounded = false
	p.Pos.Y = p.Radius + 1
	p.VelY = -2000

	p.Integrate(testDtMs, &cfg.Physics, cfg.Physics.CoyoteMs, testGroundY, ink)

	if p.Pos.Y < p.Radius {
		t.Errorf("Player escaped through the ceiling: y=%f", p.Pos.Y)
	}
	if p.VelY < 0 {
		t.Errorf("Upward velocity survived the ceiling clamp: %f", p.VelY)
	}
}
