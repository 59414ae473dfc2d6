package sim

import (
	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// DrawnLine is a player-drawn platform: an ordered point path aging toward
// a fixed lifetime that runs from creation regardless of use.
type DrawnLine struct {
	Points []core.Vec2
	AgeMs  float64
}

// InkField manages the drawn-platform resource: the charge level, its
// regeneration, and the geometry and lifetime of drawn line segments.
// At most one line is being drawn at a time; charge is fully depleted
// while drawing and regenerates only between lines.
type InkField struct {
	cfg       *config.RunnerConfig
	charge    float64 // In [0, 1]
	regenMult float64
	lines     []*DrawnLine
	active    *DrawnLine

	drawTimeMs float64 // Total time spent with an active line, for outcome stats
}

// NewInkField creates an ink field with a full charge.
func NewInkField(cfg *config.RunnerConfig) *InkField {
	f := &InkField{cfg: cfg, regenMult: 1}
	f.Reset()
	return f
}

// Reset restores a full charge and drops all lines. Safe in any state.
func (f *InkField) Reset() {
	f.charge = 1
	f.lines = f.lines[:0]
	f.active = nil
	f.drawTimeMs = 0
}

// ConfigureUpgrades scales regen duration inversely by the multiplier.
// Out-of-range values are clamped, never rejected.
func (f *InkField) ConfigureUpgrades(regenMultiplier float64) {
	f.regenMult = core.ClampF(regenMultiplier, 0.25, 4)
}

// Charge returns the current ink level in [0, 1].
func (f *InkField) Charge() float64 {
	return f.charge
}

// CanStart reports whether a new line may begin: full charge, no line
// currently being drawn.
func (f *InkField) CanStart() bool {
	return f.charge >= 0.999 && f.active == nil
}

// StartLine begins drawing at p. Returns false (a no-op, not a fault) when
// ink is insufficient or a line is already active.
func (f *InkField) StartLine(p core.Vec2) bool {
	if !f.CanStart() {
		return false
	}
	f.active = &DrawnLine{Points: []core.Vec2{p}}
	f.charge = 0
	return true
}

// AddPoint extends the active line. The point is appended only if it
// advances at least the minimum distance from the last point, which
// denoises the path and prevents degenerate geometry.
func (f *InkField) AddPoint(p core.Vec2) {
	if f.active == nil {
		return
	}
	if f.cfg.Ink.MaxPointsPerLine > 0 && len(f.active.Points) >= f.cfg.Ink.MaxPointsPerLine {
		return
	}
	last := f.active.Points[len(f.active.Points)-1]
	if last.Dist(p) < f.cfg.Ink.MinPointDist {
		return
	}
	f.active.Points = append(f.active.Points, p)
}

// EndLine seals the active line. A line with fewer than 2 points (a
// too-short gesture) is discarded and produces no platform.
func (f *InkField) EndLine() {
	if f.active == nil {
		return
	}
	if len(f.active.Points) >= 2 {
		f.lines = append(f.lines, f.active)
	}
	f.active = nil
}

// Drawing reports whether a line is currently active.
func (f *InkField) Drawing() bool {
	return f.active != nil
}

// Tick advances regen, ages lines, expires stale ones, and scrolls all
// line geometry by dx (negative: world scroll).
func (f *InkField) Tick(dtMs, dx float64) {
	if f.active != nil {
		f.drawTimeMs += dtMs
	} else {
		regen := f.cfg.Ink.RegenMs / f.regenMult
		if regen > 0 {
			f.charge = core.ClampF(f.charge+dtMs/regen, 0, 1)
		}
	}

	f.translate(f.active, dx)
	f.active = f.ageLine(f.active, dtMs)

	live := f.lines[:0]
	for _, ln := range f.lines {
		f.translate(ln, dx)
		if f.ageLine(ln, dtMs) != nil {
			live = append(live, ln)
		}
	}
	f.lines = live
}

// ageLine advances a line's age and returns nil once its lifetime elapses.
func (f *InkField) ageLine(ln *DrawnLine, dtMs float64) *DrawnLine {
	if ln == nil {
		return nil
	}
	ln.AgeMs += dtMs
	if ln.AgeMs >= f.cfg.Ink.LineLifetimeMs {
		return nil
	}
	return ln
}

func (f *InkField) translate(ln *DrawnLine, dx float64) {
	if ln == nil || dx == 0 {
		return
	}
	for i := range ln.Points {
		ln.Points[i].X += dx
	}
}

// SupportY returns the y of the highest line surface under x whose height
// lies within [yMin, yMax], scanning sealed and active lines alike. Used
// by the player's landing resolution.
func (f *InkField) SupportY(x, yMin, yMax float64) (float64, bool) {
	best := yMax + 1
	found := false

	scan := func(ln *DrawnLine) {
		if ln == nil {
			return
		}
		for i := 1; i < len(ln.Points); i++ {
			a, b := ln.Points[i-1], ln.Points[i]
			if a.X > b.X {
				a, b = b, a
			}
			if x < a.X || x > b.X || a.X == b.X {
				continue
			}
			t := (x - a.X) / (b.X - a.X)
			y := core.Lerp(a.Y, b.Y, t)
			if y >= yMin && y <= yMax && y < best {
				best = y
				found = true
			}
		}
	}

	scan(f.active)
	for _, ln := range f.lines {
		scan(ln)
	}
	return best, found
}

// Lines returns the sealed lines. Callers must treat the slice as
// read-only; the engine copies it into view snapshots.
func (f *InkField) Lines() []*DrawnLine {
	return f.lines
}

// Active returns the line being drawn, or nil.
func (f *InkField) Active() *DrawnLine {
	return f.active
}

// DrawTimeMs returns the cumulative time spent drawing, for outcome stats.
func (f *InkField) DrawTimeMs() float64 {
	return f.drawTimeMs
}

// GrantEmergencyInk floors the charge to minPercent of full. Recovery hook
// for external failure-recovery logic, never normal gameplay.
func (f *InkField) GrantEmergencyInk(minPercent float64) {
	floor := core.ClampF(minPercent, 0, 1)
	if f.charge < floor {
		f.charge = floor
	}
}

// ClearOldLines drops all sealed lines. Best-effort cleanup hook.
func (f *InkField) ClearOldLines() {
	f.lines = f.lines[:0]
}

// CancelActive discards the line being drawn without sealing it.
func (f *InkField) CancelActive() {
	f.active = nil
}
