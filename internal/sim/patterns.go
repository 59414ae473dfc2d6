package sim

// PatternEntry is one obstacle slot in a pattern template: horizontal offset
// from the pattern base X, extent, vertical placement, and the behavior
// variant with its oscillation parameters where relevant.
//
// Y is the clearance between the ground line and the obstacle's bottom edge
// (0 = sitting on the ground). Ceiling entries ignore Y and hang from the
// top of the world instead.
type PatternEntry struct {
	Kind    ObstacleKind
	OffsetX float64
	Width   float64
	Height  float64
	Y       float64

	// Oscillation parameters for movingHazard/hoveringShard/floater.
	Amplitude float64
	FreqHz    float64
}

// Pattern is a named, stateless, reusable template spawned as one atomic
// group at a computed base X.
type Pattern struct {
	Name    string
	Entries []PatternEntry
}

// IntroStep pairs a pattern with the run-elapsed time at which it is
// emitted during a scripted first-time sequence.
type IntroStep struct {
	TriggerTimeMs float64
	Pattern       Pattern
}

// Pattern pools. The generator picks uniformly from one pool per spawn,
// selected by how far the run is into the tutorial safety window.
var (
	tutorialSafePool = []Pattern{
		{
			Name: "lone-block",
			Entries: []PatternEntry{
				{Kind: KindGroundBlock, Width: 28, Height: 30},
			},
		},
		{
			Name: "low-step",
			Entries: []PatternEntry{
				{Kind: KindGroundBlock, Width: 36, Height: 22},
			},
		},
		{
			Name: "twin-blocks",
			Entries: []PatternEntry{
				{Kind: KindGroundBlock, Width: 24, Height: 26},
				{Kind: KindGroundBlock, OffsetX: 150, Width: 24, Height: 26},
			},
		},
	}

	easyPool = []Pattern{
		{
			Name: "block-and-shard",
			Entries: []PatternEntry{
				{Kind: KindGroundBlock, Width: 30, Height: 34},
				{Kind: KindHoveringShard, OffsetX: 130, Width: 20, Height: 20, Y: 90, Amplitude: 18, FreqHz: 0.5},
			},
		},
		{
			Name: "tall-block",
			Entries: []PatternEntry{
				{Kind: KindGroundBlock, Width: 26, Height: 46},
			},
		},
		{
			Name: "float-lane",
			Entries: []PatternEntry{
				{Kind: KindFloater, Width: 26, Height: 18, Y: 120, Amplitude: 26, FreqHz: 0.35},
				{Kind: KindGroundBlock, OffsetX: 110, Width: 28, Height: 28},
			},
		},
		{
			Name: "mover",
			Entries: []PatternEntry{
				{Kind: KindMovingHazard, Width: 24, Height: 24, Y: 60, Amplitude: 40, FreqHz: 0.45},
			},
		},
	}

	standardPool = []Pattern{
		{
			Name: "hopper-gate",
			Entries: []PatternEntry{
				{Kind: KindHopper, Width: 24, Height: 24},
				{Kind: KindGroundBlock, OffsetX: 160, Width: 30, Height: 38},
			},
		},
		{
			Name: "spitter-nest",
			Entries: []PatternEntry{
				{Kind: KindSpitter, Width: 28, Height: 26},
			},
		},
		{
			Name: "ceiling-squeeze",
			Entries: []PatternEntry{
				{Kind: KindCeiling, Width: 60, Height: 120},
				{Kind: KindGroundBlock, OffsetX: 30, Width: 26, Height: 30},
			},
		},
		{
			Name: "shard-corridor",
			Entries: []PatternEntry{
				{Kind: KindHoveringShard, Width: 20, Height: 20, Y: 70, Amplitude: 22, FreqHz: 0.6},
				{Kind: KindHoveringShard, OffsetX: 90, Width: 20, Height: 20, Y: 140, Amplitude: 22, FreqHz: 0.6},
				{Kind: KindGroundBlock, OffsetX: 190, Width: 26, Height: 32},
			},
		},
		{
			Name: "hopper-spitter",
			Entries: []PatternEntry{
				{Kind: KindSpitter, Width: 28, Height: 26},
				{Kind: KindHopper, OffsetX: 180, Width: 24, Height: 24},
			},
		},
		{
			Name: "mover-wall",
			Entries: []PatternEntry{
				{Kind: KindMovingHazard, Width: 24, Height: 24, Y: 50, Amplitude: 50, FreqHz: 0.5},
				{Kind: KindGroundBlock, OffsetX: 140, Width: 30, Height: 42},
			},
		},
	}
)

// DefaultIntroSequence returns the scripted pattern schedule used for
// first-time runs: fixed, gentle, and time-triggered rather than random.
func DefaultIntroSequence() []IntroStep {
	return []IntroStep{
		{TriggerTimeMs: 2500, Pattern: tutorialSafePool[0]},
		{TriggerTimeMs: 5500, Pattern: tutorialSafePool[1]},
		{TriggerTimeMs: 8500, Pattern: tutorialSafePool[2]},
	}
}
