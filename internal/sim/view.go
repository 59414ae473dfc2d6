package sim

import "github.com/vovakirdan/ink-runner/internal/core"

// View is the read-only rendering snapshot the engine exposes after each
// tick. All slices are copies; the rendering layer pulls views and never
// reaches into simulation state.
type View struct {
	Phase  RunPhase
	Paused bool

	Score          int
	CoinsCollected int
	RevivesLeft    int
	InkCharge      float64

	WorldW, WorldH float64
	GroundY        float64

	Player    PlayerView
	Lines     []LineView
	Obstacles []ObstacleView
	Coins     []CoinView
}

// PlayerView is the player's renderable state.
type PlayerView struct {
	Pos      core.Vec2
	Radius   float64
	VelY     float64
	Grounded bool
}

// LineView is a drawn line's renderable state. Active marks the line still
// being drawn.
type LineView struct {
	Points     []core.Vec2
	AgeMs      float64
	LifetimeMs float64
	Active     bool
}

// ObstacleView is an obstacle's renderable state.
type ObstacleView struct {
	Kind ObstacleKind
	Rect core.RectF
}

// CoinView is a coin's renderable state.
type CoinView struct {
	Pos    core.Vec2
	Radius float64
}

// View builds the current snapshot.
func (e *Engine) View() View {
	v := View{
		Phase:          e.phase,
		Paused:         e.paused,
		Score:          e.Score(),
		CoinsCollected: e.coins.Collected(),
		RevivesLeft:    e.RevivesLeft(),
		InkCharge:      e.ink.Charge(),
		WorldW:         e.worldW,
		WorldH:         e.worldH,
		GroundY:        e.groundY,
		Player: PlayerView{
			Pos:      e.player.Pos,
			Radius:   e.player.Radius,
			VelY:     e.player.VelY,
			Grounded: e.player.Grounded,
		},
	}

	appendLine := func(ln *DrawnLine, active bool) {
		if ln == nil {
			return
		}
		pts := make([]core.Vec2, len(ln.Points))
		copy(pts, ln.Points)
		v.Lines = append(v.Lines, LineView{
			Points:     pts,
			AgeMs:      ln.AgeMs,
			LifetimeMs: e.cfg.Ink.LineLifetimeMs,
			Active:     active,
		})
	}
	for _, ln := range e.ink.Lines() {
		appendLine(ln, false)
	}
	appendLine(e.ink.Active(), true)

	for _, o := range e.gen.Obstacles() {
		v.Obstacles = append(v.Obstacles, ObstacleView{Kind: o.Kind, Rect: o.Rect()})
	}
	for _, c := range e.coins.Coins() {
		v.Coins = append(v.Coins, CoinView{Pos: c.Pos, Radius: e.cfg.Coins.Radius})
	}
	return v
}
