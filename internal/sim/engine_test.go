package sim

import (
	"testing"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

const testDtMs = 1000.0 / 60.0

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// runScripted drives an engine through a fixed input script: start, periodic
// jumps, and one drawn line early in the run.
func runScripted(e *Engine, ticks int) {
	e.Start()
	for i := 0; i < ticks; i++ {
		if i%45 == 20 {
			e.Jump()
		}
		if i == 60 {
			v := e.View()
			x := v.Player.Pos.X + 60
			y := v.GroundY - 80
			e.StartLine(core.Vec2{X: x, Y: y})
			e.AddPoint(core.Vec2{X: x + 40, Y: y - 10})
			e.AddPoint(core.Vec2{X: x + 80, Y: y - 5})
			e.EndLine()
		}
		e.Tick(testDtMs)
		if e.Phase() != PhaseRunning {
			return
		}
	}
}

func TestEngineDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	e1 := New(cfg)
	e1.Reset(testRuntime(12345))
	runScripted(e1, 900)
	snap1 := e1.Snapshot()

	e2 := New(cfg)
	e2.Reset(testRuntime(12345))
	runScripted(e2, 900)
	snap2 := e2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Determinism failed: player positions differ")
	}
	if snap1.ObstacleCount != snap2.ObstacleCount {
		t.Errorf("Determinism failed: obstacle counts differ. Run1=%d, Run2=%d",
			snap1.ObstacleCount, snap2.ObstacleCount)
	}
}

func TestSeedVariation(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	e1 := New(cfg)
	e1.Reset(testRuntime(111))
	runScripted(e1, 900)
	snap1 := e1.Snapshot()

	e2 := New(cfg)
	e2.Reset(testRuntime(999))
	runScripted(e2, 900)
	snap2 := e2.Snapshot()

	// Different seeds should give different spawn timing and obstacle phases
	if snap1.Hash() == snap2.Hash() {
		t.Error("Different seeds produced identical snapshots")
	}
}

func TestPhaseTransitions(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))

	if e.Phase() != PhaseReady {
		t.Fatalf("Expected Ready after reset, got %v", e.Phase())
	}

	// Gameplay operations before start are silent no-ops
	e.Jump()
	e.Tick(testDtMs)
	if e.Snapshot().Tick != 0 {
		t.Error("Tick advanced while in Ready")
	}
	if e.Snapshot().Jumps != 0 {
		t.Error("Jump registered while in Ready")
	}

	e.Start()
	if e.Phase() != PhaseRunning {
		t.Fatalf("Expected Running after Start, got %v", e.Phase())
	}

	// Start is idempotent outside Ready
	e.Start()
	if e.Phase() != PhaseRunning {
		t.Error("Start from Running changed phase")
	}

	e.RegisterFatalCollision()
	if e.Phase() != PhaseDead {
		t.Fatalf("Expected Dead after fatal collision, got %v", e.Phase())
	}

	// Simulation is frozen while dead
	before := e.Snapshot()
	e.Tick(testDtMs)
	if e.Snapshot().Hash() != before.Hash() {
		t.Error("Simulation advanced while Dead")
	}

	e.Finish()
	if e.Phase() != PhaseResult {
		t.Fatalf("Expected Result after Finish, got %v", e.Phase())
	}

	// Reset is legal from any phase
	e.Reset(testRuntime(1))
	if e.Phase() != PhaseReady {
		t.Errorf("Expected Ready after reset from Result, got %v", e.Phase())
	}
	if e.Score() != 0 {
		t.Errorf("Expected score 0 after reset, got %d", e.Score())
	}
}

func TestReviveAllotment(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.ConfigureUpgrades(config.UpgradesConfig{InkRegenMultiplier: 1, MaxRevives: 2})
	e.Start()

	if e.RevivesLeft() != 2 {
		t.Fatalf("Expected 2 revives, got %d", e.RevivesLeft())
	}

	for i := 0; i < 2; i++ {
		e.RegisterFatalCollision()
		if !e.Revive() {
			t.Fatalf("Revive %d failed with allotment remaining", i+1)
		}
		if e.Phase() != PhaseRunning {
			t.Fatalf("Expected Running after revive %d, got %v", i+1, e.Phase())
		}
	}

	e.RegisterFatalCollision()
	if e.Revive() {
		t.Error("Revive succeeded past the allotment")
	}
	if e.Phase() != PhaseDead {
		t.Errorf("Expected Dead after failed revive, got %v", e.Phase())
	}

	// Revive outside Dead is a no-op
	e.Finish()
	if e.Revive() {
		t.Error("Revive succeeded from Result")
	}
}

func TestReviveClearsNearbyHazards(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.ConfigureUpgrades(config.UpgradesConfig{InkRegenMultiplier: 1, MaxRevives: 1})
	e.Start()

	// Plant a hazard on top of the player
	px := e.player.Pos.X
	e.gen.obstacles = append(e.gen.obstacles, &Obstacle{
		Kind: KindGroundBlock,
		X:    px - 10, Y: e.groundY - 30, W: 20, H: 30,
	})

	e.RegisterFatalCollision()
	if !e.Revive() {
		t.Fatal("Revive failed")
	}

	for _, o := range e.gen.Obstacles() {
		if o.Rect().DistToPoint(e.player.Pos) <= e.diff.SafeWindowPx {
			t.Error("Hazard survived within the revive clear radius")
		}
	}
	if e.ink.Charge() < 0.5 {
		t.Errorf("Expected ink floored to 0.5 after revive, got %f", e.ink.Charge())
	}
}

func TestStartGraceSuppressesCollision(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	e := New(cfg)
	e.Reset(testRuntime(1))
	e.Start()

	// Hazard overlapping the player: grace should keep the run alive
	e.gen.obstacles = append(e.gen.obstacles, &Obstacle{
		Kind: KindGroundBlock,
		X:    e.player.Pos.X - 5, Y: e.player.Pos.Y - 5, W: 10, H: 10,
	})

	e.Tick(testDtMs)
	if e.Phase() != PhaseRunning {
		t.Fatal("Collision registered during start grace")
	}

	// Burn past the grace window; the overlap must now be fatal
	for i := 0; i < 100 && e.Phase() == PhaseRunning; i++ {
		e.gen.obstacles[len(e.gen.obstacles)-1].X = e.player.Pos.X - 5
		e.Tick(testDtMs)
	}
	if e.Phase() != PhaseDead {
		t.Error("Collision never registered after grace elapsed")
	}
}

func TestRunTimeout(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.SetRunTimeout(500)
	e.Start()

	for i := 0; i < 120 && e.Phase() == PhaseRunning; i++ {
		e.Tick(testDtMs)
	}

	if e.Phase() != PhaseDead {
		t.Errorf("Expected Dead after timeout, got %v", e.Phase())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.Start()
	e.Tick(testDtMs)

	e.SetPaused(true)
	before := e.Snapshot()
	for i := 0; i < 30; i++ {
		e.Tick(testDtMs)
	}
	if e.Snapshot().Hash() != before.Hash() {
		t.Error("Simulation advanced while paused")
	}

	e.SetPaused(false)
	e.Tick(testDtMs)
	if e.Snapshot().Tick != before.Tick+1 {
		t.Error("Simulation did not resume after unpause")
	}
}

func TestTickDeltaCap(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	e1 := New(cfg)
	e1.Reset(testRuntime(7))
	e1.Start()
	e1.Tick(10000) // Stalled frame

	e2 := New(cfg)
	e2.Reset(testRuntime(7))
	e2.Start()
	e2.Tick(maxTickMs)

	if e1.Snapshot().Hash() != e2.Snapshot().Hash() {
		t.Error("Oversized delta was not capped")
	}

	// Non-positive deltas are ignored
	before := e2.Snapshot()
	e2.Tick(0)
	e2.Tick(-5)
	if e2.Snapshot().Hash() != before.Hash() {
		t.Error("Non-positive delta advanced the simulation")
	}
}

func TestScoreAccrual(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.Start()

	for i := 0; i < 300; i++ {
		e.Tick(testDtMs)
		if e.Phase() != PhaseRunning {
			break
		}
	}

	if e.Score() <= 0 {
		t.Errorf("Expected positive score after 5s of scrolling, got %d", e.Score())
	}

	out := e.Outcome()
	if out.Score != e.Score() {
		t.Errorf("Outcome score %d disagrees with Score() %d", out.Score, e.Score())
	}
	if out.RunDurationMs <= 0 {
		t.Error("Outcome duration not tracked")
	}
}

func TestDifficultyClamping(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))

	e.ConfigureDifficulty(config.DifficultyConfig{
		SpeedMultiplier:   99,
		DensityMultiplier: -1,
		SafeWindowPx:      -50,
		StartGraceMs:      1e9,
	})

	if e.diff.SpeedMultiplier != 2.0 {
		t.Errorf("Speed multiplier not clamped: %f", e.diff.SpeedMultiplier)
	}
	if e.diff.DensityMultiplier != 0.25 {
		t.Errorf("Density multiplier not clamped: %f", e.diff.DensityMultiplier)
	}
	if e.diff.SafeWindowPx != 0 {
		t.Errorf("Safe window not clamped: %f", e.diff.SafeWindowPx)
	}
	if e.diff.StartGraceMs != 10000 {
		t.Errorf("Start grace not clamped: %f", e.diff.StartGraceMs)
	}

	e.ConfigureUpgrades(config.UpgradesConfig{InkRegenMultiplier: 100, MaxRevives: 50, CoyoteBonusMs: 5000})
	if e.upgrades.InkRegenMultiplier != 4 {
		t.Errorf("Regen multiplier not clamped: %f", e.upgrades.InkRegenMultiplier)
	}
	if e.upgrades.MaxRevives != 5 {
		t.Errorf("Max revives not clamped: %d", e.upgrades.MaxRevives)
	}
	if e.upgrades.CoyoteBonusMs != 400 {
		t.Errorf("Coyote bonus not clamped: %f", e.upgrades.CoyoteBonusMs)
	}
}

func TestViewIsACopy(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))
	e.Start()

	e.StartLine(core.Vec2{X: 100, Y: 100})
	e.AddPoint(core.Vec2{X: 150, Y: 95})
	e.EndLine()
	e.Tick(testDtMs)

	v := e.View()
	if len(v.Lines) != 1 {
		t.Fatalf("Expected 1 line in view, got %d", len(v.Lines))
	}

	// Mutating the view must not touch simulation state
	v.Lines[0].Points[0].X = -9999
	if e.ink.Lines()[0].Points[0].X == -9999 {
		t.Error("View shares line geometry with the simulation")
	}
}

func TestResetAdoptsNewWorldSize(t *testing.T) {
	e := New(config.DefaultRunnerConfig())
	e.Reset(testRuntime(1))

	wide := testRuntime(1)
	wide.ScreenW = 240
	e.Reset(wide)

	if e.gen.worldW != e.worldW || e.gen.groundY != e.groundY {
		t.Fatalf("Generator world stale after reset: got %f/%f, want %f/%f",
			e.gen.worldW, e.gen.groundY, e.worldW, e.groundY)
	}
	if e.coins.worldW != e.worldW || e.coins.groundY != e.groundY {
		t.Fatalf("Coin field world stale after reset: got %f/%f, want %f/%f",
			e.coins.worldW, e.coins.groundY, e.worldW, e.groundY)
	}

	// Obstacles must enter from beyond the new, wider right edge
	e.Start()
	for i := 0; i < 600 && e.gen.Count() == 0; i++ {
		e.Tick(testDtMs)
	}
	if e.gen.Count() == 0 {
		t.Fatal("No obstacle spawned within 10 seconds")
	}
	for _, o := range e.gen.Obstacles() {
		if o.X < e.worldW {
			t.Errorf("Obstacle spawned inside the visible world: x=%f, width=%f", o.X, e.worldW)
		}
	}
}
