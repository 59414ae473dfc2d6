package sim

import (
	"math"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// RunPhase is the run state machine's phase.
type RunPhase int

const (
	PhaseReady RunPhase = iota
	PhaseRunning
	PhaseDead
	PhaseResult
)

// String returns a human-readable phase name.
func (p RunPhase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// RunOutcome is the statistics block the engine exposes at run end for
// downstream mission/analytics consumption.
type RunOutcome struct {
	Score          int
	CoinsCollected int
	RunDurationMs  float64
	JumpsPerformed int
	DrawTimeMs     float64
}

// Scoring constants: score accrues with scrolled distance plus a flat coin
// bonus.
const (
	scorePerPx    = 0.1
	coinScore     = 25
	maxTickMs     = 250.0 // Cap a single delta so a stalled frame can't teleport the world
	reviveClearPx = 1.5   // Revive hazard clearing, in safe-window multiples
)

// Engine is the run-simulation core. The host advances it once per rendered
// frame via Tick; all state lives in the engine and its subsystem
// collections, and rendering pulls read-only snapshots via View.
type Engine struct {
	cfg config.RunnerConfig
	rt  core.RuntimeConfig

	worldW, worldH, groundY float64

	phase  RunPhase
	paused bool

	elapsedMs  float64
	graceMs    float64
	timeoutMs  float64 // 0 disables the run timeout
	distancePx float64

	player Player
	ink    *InkField
	gen    *Generator
	coins  *CoinField

	diff     config.DifficultyConfig
	upgrades config.UpgradesConfig

	revivesUsed int
	introSteps  []IntroStep

	tick uint64
}

// New creates an engine with the given game configuration. Reset must be
// called with a runtime config before the first tick.
func New(cfg config.RunnerConfig) *Engine {
	return &Engine{cfg: cfg, phase: PhaseReady}
}

// Reset returns the engine to Ready with fresh subsystems. Safe to call
// from any phase; synchronously clears all owned collections and timers.
func (e *Engine) Reset(rt core.RuntimeConfig) {
	rt = rt.WithDerivedWorld()
	e.rt = rt
	e.worldW = rt.WorldW
	e.worldH = rt.WorldH
	e.groundY = rt.WorldH - e.cfg.Physics.GroundOffset

	e.phase = PhaseReady
	e.paused = false
	e.tick = 0
	e.elapsedMs = 0
	e.graceMs = 0
	e.distancePx = 0
	e.revivesUsed = 0
	e.introSteps = nil

	e.player = Player{
		Pos:    core.Vec2{X: e.cfg.Player.XFrac * e.worldW, Y: e.groundY - e.cfg.Player.HitRadius},
		Radius: e.cfg.Player.HitRadius,
	}
	e.player.Grounded = true

	if e.ink == nil {
		e.ink = NewInkField(&e.cfg)
	} else {
		e.ink.Reset()
	}
	if e.gen == nil {
		e.gen = NewGenerator(rt.Seed, &e.cfg, e.worldW, e.groundY)
	} else {
		e.gen.Reset(rt.Seed, e.worldW, e.groundY)
	}
	if e.coins == nil {
		e.coins = NewCoinField(rt.Seed+1, &e.cfg, e.worldW, e.groundY)
	} else {
		e.coins.Reset(rt.Seed+1, e.worldW, e.groundY)
	}

	e.ConfigureDifficulty(e.cfg.Difficulty)
	e.ConfigureUpgrades(e.cfg.Upgrades)
}

// ConfigureDifficulty applies the per-run difficulty contract. Out-of-range
// values are clamped, never rejected, so the simulation degrades gracefully.
func (e *Engine) ConfigureDifficulty(d config.DifficultyConfig) {
	d.SpeedMultiplier = core.ClampF(d.SpeedMultiplier, 0.5, 2.0)
	d.DensityMultiplier = core.ClampF(d.DensityMultiplier, 0.25, 3.0)
	d.SafeWindowPx = core.ClampF(d.SafeWindowPx, 0, e.worldW)
	d.StartGraceMs = core.ClampF(d.StartGraceMs, 0, 10000)
	e.diff = d
}

// ConfigureUpgrades applies the meta-progression contract, clamped.
func (e *Engine) ConfigureUpgrades(u config.UpgradesConfig) {
	u.InkRegenMultiplier = core.ClampF(u.InkRegenMultiplier, 0.25, 4)
	u.MaxRevives = core.Clamp(u.MaxRevives, 0, 5)
	u.CoyoteBonusMs = core.ClampF(u.CoyoteBonusMs, 0, 400)
	e.upgrades = u
	e.ink.ConfigureUpgrades(u.InkRegenMultiplier)
}

// SetIntroSequence arms the scripted first-run pattern schedule. Takes
// effect at the next Start.
func (e *Engine) SetIntroSequence(steps []IntroStep) {
	e.introSteps = steps
}

// SetRunTimeout caps the run duration; the run dies when it elapses.
// Zero disables the timeout.
func (e *Engine) SetRunTimeout(ms float64) {
	e.timeoutMs = math.Max(0, ms)
}

// Phase returns the current run phase.
func (e *Engine) Phase() RunPhase {
	return e.phase
}

// Paused reports the pause flag.
func (e *Engine) Paused() bool {
	return e.paused
}

// SetPaused toggles the pause flag. Only meaningful while Running.
func (e *Engine) SetPaused(p bool) {
	e.paused = p
}

// Start begins the run (Ready → Running) and resets the run clocks.
func (e *Engine) Start() {
	if e.phase != PhaseReady {
		return
	}
	e.phase = PhaseRunning
	e.elapsedMs = 0
	e.graceMs = e.diff.StartGraceMs
	if len(e.introSteps) > 0 {
		e.gen.SetIntroSequence(e.introSteps)
	}
}

// Jump requests a jump. Valid while Running if the player is grounded or
// within the coyote window; a slightly early press is buffered and honored
// on landing. Outside those windows and outside Running it is a no-op.
func (e *Engine) Jump() {
	if e.phase != PhaseRunning || e.paused {
		return
	}
	e.player.RequestJump(&e.cfg.Physics)
}

// StartLine begins drawing an ink line at p. Returns false when ink is
// insufficient or a line is already active, or outside Running.
func (e *Engine) StartLine(p core.Vec2) bool {
	if e.phase != PhaseRunning || e.paused {
		return false
	}
	return e.ink.StartLine(p)
}

// AddPoint extends the active ink line.
func (e *Engine) AddPoint(p core.Vec2) {
	if e.phase != PhaseRunning || e.paused {
		return
	}
	e.ink.AddPoint(p)
}

// EndLine seals the active ink line.
func (e *Engine) EndLine() {
	if e.phase != PhaseRunning {
		return
	}
	e.ink.EndLine()
}

// Tick advances the whole simulation by dtMs. Order per frame: run state
// (physics), ink economy, obstacle generator, coin field, then
// player-vs-obstacle collision against the updated obstacle set.
func (e *Engine) Tick(dtMs float64) {
	if e.phase != PhaseRunning || e.paused {
		return
	}
	if dtMs <= 0 {
		return
	}
	if dtMs > maxTickMs {
		dtMs = maxTickMs
	}

	e.tick++
	e.elapsedMs += dtMs
	if e.graceMs > 0 {
		e.graceMs -= dtMs
	}

	scroll := e.scrollSpeed()
	rest := e.inRestWindow()
	dx := -scroll * dtMs / 1000.0

	coyote := e.cfg.Physics.CoyoteMs + e.upgrades.CoyoteBonusMs
	e.player.Integrate(dtMs, &e.cfg.Physics, coyote, e.groundY, e.ink)
	e.distancePx += scroll * dtMs / 1000.0

	e.ink.Tick(dtMs, dx)

	e.gen.Advance(GenInput{
		DtMs:         dtMs,
		PlayerX:      e.player.Pos.X,
		ScrollSpeed:  scroll,
		DensityMult:  e.diff.DensityMultiplier,
		SafeWindowPx: e.diff.SafeWindowPx,
		RestWindow:   rest,
	})

	e.coins.Tick(dtMs, scroll, e.diff.DensityMultiplier, rest, e.player.HitRect())

	if e.graceMs <= 0 {
		for _, o := range e.gen.Obstacles() {
			if o.Rect().IntersectsCircle(e.player.Pos, e.player.Radius) {
				e.RegisterFatalCollision()
				break
			}
		}
	}

	if e.timeoutMs > 0 && e.elapsedMs >= e.timeoutMs {
		e.RegisterFatalCollision()
	}
}

// scrollSpeed returns the current world scroll in px/s: the configured base
// scaled by the difficulty multiplier and a mild ramp over run time, capped.
func (e *Engine) scrollSpeed() float64 {
	ramp := 1 + e.cfg.Physics.SpeedRampPerMin*e.elapsedMs/60000.0
	speed := e.cfg.Physics.BaseScrollSpeed * e.diff.SpeedMultiplier * ramp
	return core.ClampF(speed, 0, e.cfg.Physics.MaxScrollSpeed)
}

// inRestWindow reports whether the run is inside a designated breathing-room
// period. Rest windows recur on a fixed cycle of play time.
func (e *Engine) inRestWindow() bool {
	interval := e.cfg.Obstacles.RestIntervalMs
	duration := e.cfg.Obstacles.RestDurationMs
	if interval <= 0 || duration <= 0 {
		return false
	}
	pos := math.Mod(e.elapsedMs, interval+duration)
	return pos >= interval
}

// RegisterFatalCollision moves the run to Dead (Running → Dead).
func (e *Engine) RegisterFatalCollision() {
	if e.phase != PhaseRunning {
		return
	}
	e.phase = PhaseDead
}

// Revive spends one revive (Dead → Running). Fails (no-op, false) when the
// allotment is exhausted. Recovery clears hazards around the player, floors
// the ink charge, and re-arms the start grace.
func (e *Engine) Revive() bool {
	if e.phase != PhaseDead {
		return false
	}
	if e.revivesUsed >= e.upgrades.MaxRevives {
		return false
	}
	e.revivesUsed++
	e.phase = PhaseRunning
	e.graceMs = e.diff.StartGraceMs

	e.gen.ClearNear(e.player.Pos, e.diff.SafeWindowPx*reviveClearPx)
	e.ink.GrantEmergencyInk(0.5)

	e.player.Pos.Y = e.groundY - e.player.Radius
	e.player.VelY = 0
	e.player.Grounded = true
	e.player.ClearTransient()
	return true
}

// Finish acknowledges the death screen (Dead → Result).
func (e *Engine) Finish() {
	if e.phase != PhaseDead {
		return
	}
	e.phase = PhaseResult
}

// RevivesLeft returns the remaining revive allotment.
func (e *Engine) RevivesLeft() int {
	left := e.upgrades.MaxRevives - e.revivesUsed
	if left < 0 {
		return 0
	}
	return left
}

// Score returns the current score: scrolled distance plus coin bonuses.
func (e *Engine) Score() int {
	return int(e.distancePx*scorePerPx) + e.coins.Collected()*coinScore
}

// State summarizes the run for the platform layer.
func (e *Engine) State() core.RunState {
	return core.RunState{
		Score:    e.Score(),
		Coins:    e.coins.Collected(),
		GameOver: e.phase == PhaseDead || e.phase == PhaseResult,
		Paused:   e.paused,
	}
}

// Outcome returns the run-end statistics block.
func (e *Engine) Outcome() RunOutcome {
	return RunOutcome{
		Score:          e.Score(),
		CoinsCollected: e.coins.Collected(),
		RunDurationMs:  e.elapsedMs,
		JumpsPerformed: e.player.Jumps(),
		DrawTimeMs:     e.ink.DrawTimeMs(),
	}
}

// GroundY returns the world-space ground line.
func (e *Engine) GroundY() float64 {
	return e.groundY
}

// --- Recovery surface -------------------------------------------------
//
// Administrative overrides invoked by the external recovery collaborator,
// outside the normal gameplay contract.

// ClearEffects cancels transient state: the line being drawn and the
// player's coyote/buffer timers.
func (e *Engine) ClearEffects() {
	e.ink.CancelActive()
	e.player.ClearTransient()
}

// ClearDistantObstacles drops obstacles far behind the player.
func (e *Engine) ClearDistantObstacles() {
	e.gen.ClearDistant(e.player.Pos.X)
}

// PerformEmergencyCleanup drops all live obstacles, coins, and sealed
// lines, and rearms the spawn timers. Best-effort mitigation for unbounded
// entity growth, not a correctness guarantee.
func (e *Engine) PerformEmergencyCleanup() {
	e.gen.EmergencyCleanup()
	e.coins.Clear()
	e.ink.ClearOldLines()
}

// GrantEmergencyInk floors the ink charge to minPercent of full.
func (e *Engine) GrantEmergencyInk(minPercent float64) {
	e.ink.GrantEmergencyInk(minPercent)
}
