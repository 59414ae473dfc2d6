package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// GenInput is the per-tick read-only snapshot the generator consumes.
type GenInput struct {
	DtMs         float64
	PlayerX      float64
	ScrollSpeed  float64 // px/s, already difficulty-scaled
	DensityMult  float64 // Clamped density multiplier
	SafeWindowPx float64 // Minimum clearance ahead of the player
	RestWindow   bool    // Breathing-room period: spawn slower
}

// Generator procedurally spawns hazard patterns ahead of the player,
// advances per-obstacle behavior state machines, and evicts off-screen
// entities. It owns its obstacle collection exclusively; projectiles
// spawned by spitters transfer into it immediately.
type Generator struct {
	rng     *rand.Rand
	cfg     *config.RunnerConfig
	worldW  float64
	groundY float64

	obstacles    []*Obstacle
	spawnTimerMs float64
	elapsedMs    float64

	intro    []IntroStep
	introIdx int
}

// NewGenerator creates a generator for the given world.
func NewGenerator(seed int64, cfg *config.RunnerConfig, worldW, groundY float64) *Generator {
	g := &Generator{cfg: cfg}
	g.Reset(seed, worldW, groundY)
	return g
}

// Reset clears all obstacles and timers, reseeds the RNG, and adopts the
// current world dimensions. Safe to call in any state.
func (g *Generator) Reset(seed int64, worldW, groundY float64) {
	g.worldW = worldW
	g.groundY = groundY
	g.rng = rand.New(rand.NewSource(seed))
	g.obstacles = g.obstacles[:0]
	g.elapsedMs = 0
	g.intro = nil
	g.introIdx = 0
	g.spawnTimerMs = g.rollSpawnDelay(1.0, false)
}

// SetIntroSequence arms a scripted spawn schedule for first-time runs.
// While armed, patterns are emitted at fixed elapsed-time offsets instead
// of randomly; random spawning resumes when the queue drains or the
// tutorial safety window elapses, whichever comes first.
func (g *Generator) SetIntroSequence(steps []IntroStep) {
	g.intro = steps
	g.introIdx = 0
}

// Obstacles exposes the live collection. Callers must treat it as
// read-only; the engine copies it into view snapshots.
func (g *Generator) Obstacles() []*Obstacle {
	return g.obstacles
}

// Advance runs one generator tick: scroll, per-obstacle behavior, spawning,
// and culling.
func (g *Generator) Advance(in GenInput) {
	g.elapsedMs += in.DtMs
	dx := -in.ScrollSpeed * in.DtMs / 1000.0

	// Scroll and advance behaviors. Spitters may emit projectiles, which
	// join the collection after the pass.
	var spawned []*Obstacle
	for _, o := range g.obstacles {
		o.Translate(dx)
		if p := o.Advance(in.DtMs, in.PlayerX, g.cfg.Physics.Gravity, &g.cfg.Obstacles); p != nil {
			spawned = append(spawned, p)
		}
	}
	g.obstacles = append(g.obstacles, spawned...)

	// Evict culled and self-expired entities.
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Expired() || o.Right() < -g.cfg.Obstacles.CullOffset {
			continue
		}
		live = append(live, o)
	}
	g.obstacles = live

	if g.introActive() {
		g.advanceIntro(in)
		return
	}

	g.spawnTimerMs -= in.DtMs
	if g.spawnTimerMs <= 0 {
		pattern := g.pickPattern()
		g.spawnPattern(pattern, in)
		g.spawnTimerMs = g.rollSpawnDelay(in.DensityMult, in.RestWindow)
	}
}

// introActive reports whether the scripted queue still drives spawning.
func (g *Generator) introActive() bool {
	return g.introIdx < len(g.intro) && g.elapsedMs < g.cfg.Obstacles.TutorialWindowMs
}

// advanceIntro emits queued patterns whose trigger time has passed.
func (g *Generator) advanceIntro(in GenInput) {
	for g.introIdx < len(g.intro) && g.elapsedMs >= g.intro[g.introIdx].TriggerTimeMs {
		g.spawnPattern(g.intro[g.introIdx].Pattern, in)
		g.introIdx++
	}
	if !g.introActive() {
		// Queue drained or window elapsed: resume random spawning.
		g.spawnTimerMs = g.rollSpawnDelay(in.DensityMult, in.RestWindow)
	}
}

// rollSpawnDelay draws the next spawn delay from the configured band.
// Density divides the delay; the tutorial window and rest window are two
// independent multiplicative gates on top.
func (g *Generator) rollSpawnDelay(density float64, rest bool) float64 {
	o := &g.cfg.Obstacles
	delay := o.SpawnDelayMinMs + g.rng.Float64()*(o.SpawnDelayMaxMs-o.SpawnDelayMinMs)
	if density > 0 {
		delay /= density
	}
	if g.elapsedMs < o.TutorialWindowMs {
		delay *= o.TutorialSpawnFactor
	}
	if rest {
		delay *= o.RestSpawnFactor
	}
	return delay
}

// pickPattern chooses a pattern uniformly from the pool matching the
// current position in the tutorial safety window: inside it, only
// tutorial-safe patterns; within twice the window, the easy pool; then the
// full standard pool.
func (g *Generator) pickPattern() Pattern {
	pool := standardPool
	switch {
	case g.elapsedMs < g.cfg.Obstacles.TutorialWindowMs:
		pool = tutorialSafePool
	case g.elapsedMs < 2*g.cfg.Obstacles.TutorialWindowMs:
		pool = easyPool
	}
	return pool[g.rng.Intn(len(pool))]
}

// spawnPattern materializes every entry of the pattern as one atomic group.
// The base X simultaneously honors the screen margin, the gap to the
// rightmost live obstacle, and the player safe window, so groups never
// spawn overlapping or inside the player's immediate zone regardless of
// speed.
func (g *Generator) spawnPattern(p Pattern, in GenInput) {
	baseX := g.spawnBaseX(in)
	for _, e := range p.Entries {
		g.obstacles = append(g.obstacles, g.materialize(e, baseX))
	}
}

// spawnBaseX computes the group placement per the safe-spawn rule.
func (g *Generator) spawnBaseX(in GenInput) float64 {
	gap := g.dynamicGap(in.ScrollSpeed, in.DensityMult)
	baseX := g.worldW + g.cfg.Obstacles.SpawnMargin
	if edge := g.rightmostEdge() + gap; edge > baseX {
		baseX = edge
	}
	if safe := in.PlayerX + in.SafeWindowPx; safe > baseX {
		baseX = safe
	}
	return baseX
}

// dynamicGap grows with scroll speed and shrinks with density.
func (g *Generator) dynamicGap(scrollSpeed, density float64) float64 {
	gap := g.cfg.Obstacles.BaseGap + g.cfg.Obstacles.GapPerSpeed*scrollSpeed
	if density > 0 {
		gap /= density
	}
	return gap
}

// rightmostEdge returns the right edge of the furthest live obstacle, or
// negative infinity when none exist.
func (g *Generator) rightmostEdge() float64 {
	edge := math.Inf(-1)
	for _, o := range g.obstacles {
		if r := o.Right(); r > edge {
			edge = r
		}
	}
	return edge
}

// materialize builds a concrete obstacle from a pattern entry.
func (g *Generator) materialize(e PatternEntry, baseX float64) *Obstacle {
	o := &Obstacle{
		Kind: e.Kind,
		X:    baseX + e.OffsetX,
		W:    e.Width,
		H:    e.Height,
	}

	if e.Kind == KindCeiling {
		o.Y = 0 // Hangs from the top of the world
	} else {
		o.Y = g.groundY - e.Y - e.Height
	}
	o.AnchorY = o.Y

	switch e.Kind {
	case KindMovingHazard, KindHoveringShard, KindFloater:
		o.Amplitude = e.Amplitude
		o.FreqHz = e.FreqHz
		o.Phase = g.rng.Float64() * 2 * math.Pi
	case KindHopper:
		o.HopTimerMs = g.cfg.Obstacles.Hopper.HopIntervalMs
	case KindSpitter:
		o.CooldownMs = g.cfg.Obstacles.Spitter.FireIntervalMs
	}
	return o
}

// ClearDistant removes obstacles far behind the player. Best-effort memory
// hygiene invoked by the recovery collaborator, not part of spawn logic.
func (g *Generator) ClearDistant(playerX float64) {
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Right() < playerX-g.cfg.Obstacles.CullOffset-g.worldW {
			continue
		}
		live = append(live, o)
	}
	g.obstacles = live
}

// ClearNear removes obstacles within radius of p. Used by revive recovery
// to clear the hazards the player died in.
func (g *Generator) ClearNear(p core.Vec2, radius float64) {
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Rect().DistToPoint(p) <= radius {
			continue
		}
		live = append(live, o)
	}
	g.obstacles = live
}

// EmergencyCleanup drops every live entity and rearms the spawn timer.
// Administrative override for runaway entity growth.
func (g *Generator) EmergencyCleanup() {
	g.obstacles = g.obstacles[:0]
	g.spawnTimerMs = g.rollSpawnDelay(1.0, false)
}

// Count returns the number of live obstacles.
func (g *Generator) Count() int {
	return len(g.obstacles)
}
