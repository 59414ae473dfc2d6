package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ink-runner/internal/core"
	"github.com/vovakirdan/ink-runner/internal/sim"
)

// fadingLineMs marks how much remaining lifetime dims a drawn line.
const fadingLineMs = 800.0

func cellX(worldX float64) int {
	return int(math.Floor(worldX / core.CellPxX))
}

func cellY(worldY float64) int {
	return int(math.Floor(worldY / core.CellPxY))
}

// drawRun renders a simulation view onto the screen buffer.
func drawRun(s *core.Screen, v sim.View, best int) {
	s.Clear()

	drawGround(s, v)
	for _, ln := range v.Lines {
		drawLine(s, ln)
	}
	for _, o := range v.Obstacles {
		drawObstacle(s, o)
	}
	for _, c := range v.Coins {
		s.SetColored(cellX(c.Pos.X), cellY(c.Pos.Y), '●', core.ColorBrightYellow)
	}
	drawPlayer(s, v)
	drawHUD(s, v, best)

	switch {
	case v.Phase == sim.PhaseReady:
		drawReadyOverlay(s)
	case v.Phase == sim.PhaseDead, v.Phase == sim.PhaseResult:
		drawDeathOverlay(s, v)
	case v.Paused:
		s.DrawTextCentered(s.Height()/2, "══ PAUSED ══")
	}
}

func drawGround(s *core.Screen, v sim.View) {
	gy := cellY(v.GroundY)
	s.DrawHLine(0, gy, s.Width(), '▔', core.ColorGray)
	for y := gy + 1; y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), '░', core.ColorGray)
	}
}

// drawLine rasterizes a drawn platform by sampling along each segment.
func drawLine(s *core.Screen, ln sim.LineView) {
	color := core.ColorBrightCyan
	if ln.Active {
		color = core.ColorBrightWhite
	} else if ln.LifetimeMs-ln.AgeMs < fadingLineMs {
		color = core.ColorGray
	}

	for i := 1; i < len(ln.Points); i++ {
		a, b := ln.Points[i-1], ln.Points[i]
		steps := int(math.Max(math.Abs(b.X-a.X)/core.CellPxX, math.Abs(b.Y-a.Y)/core.CellPxY))*2 + 1
		for step := 0; step <= steps; step++ {
			t := float64(step) / float64(steps)
			x := core.Lerp(a.X, b.X, t)
			y := core.Lerp(a.Y, b.Y, t)
			s.SetColored(cellX(x), cellY(y), '━', color)
		}
	}
}

func drawObstacle(s *core.Screen, o sim.ObstacleView) {
	glyph, color := obstacleLook(o.Kind)

	x0, y0 := cellX(o.Rect.X), cellY(o.Rect.Y)
	x1, y1 := cellX(o.Rect.Right()), cellY(o.Rect.Bottom())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetColored(x, y, glyph, color)
		}
	}
}

func obstacleLook(k sim.ObstacleKind) (rune, core.Color) {
	switch k {
	case sim.KindGroundBlock:
		return '█', core.ColorRed
	case sim.KindMovingHazard:
		return '◆', core.ColorBrightRed
	case sim.KindHoveringShard:
		return '▲', core.ColorMagenta
	case sim.KindCeiling:
		return '▓', core.ColorGray
	case sim.KindHopper:
		return '◉', core.ColorOrange
	case sim.KindFloater:
		return '◇', core.ColorBrightMagenta
	case sim.KindSpitter:
		return 'Ψ', core.ColorBrightRed
	case sim.KindSpitProjectile:
		return '•', core.ColorBrightYellow
	default:
		return '?', core.ColorWhite
	}
}

func drawPlayer(s *core.Screen, v sim.View) {
	glyph := '@'
	if !v.Player.Grounded {
		if v.Player.VelY < 0 {
			glyph = 'Δ'
		} else {
			glyph = 'V'
		}
	}
	s.SetColored(cellX(v.Player.Pos.X), cellY(v.Player.Pos.Y), glyph, core.ColorBrightGreen)
}

func drawHUD(s *core.Screen, v sim.View, best int) {
	hud := fmt.Sprintf(" SCORE %d  COINS %d", v.Score, v.CoinsCollected)
	if best > 0 {
		hud += fmt.Sprintf("  BEST %d", best)
	}
	if v.RevivesLeft > 0 {
		hud += fmt.Sprintf("  ♥ %d", v.RevivesLeft)
	}
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	drawInkBar(s, v.InkCharge)
}

// drawInkBar renders the ink charge meter in the top-right corner.
func drawInkBar(s *core.Screen, charge float64) {
	const cells = 10
	filled := int(charge * cells)

	color := core.ColorBrightCyan
	if charge < 0.999 {
		color = core.ColorGray
	}

	x := s.Width() - cells - 7
	s.DrawTextColored(x, 0, "INK ", core.ColorWhite)
	for i := 0; i < cells; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetColored(x+4+i, 0, r, color)
	}
}

func drawReadyOverlay(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "I N K   R U N N E R")
	s.DrawTextCentered(mid, "space: jump    mouse drag: draw a platform")
	s.DrawTextCentered(mid+1, "press space to start")
}

func drawDeathOverlay(s *core.Screen, v sim.View) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "╔══ RUN OVER ══╗")
	s.DrawTextCentered(mid-1, fmt.Sprintf("score %d   coins %d", v.Score, v.CoinsCollected))
	if v.Phase == sim.PhaseDead && v.RevivesLeft > 0 {
		s.DrawTextCentered(mid+1, fmt.Sprintf("e: revive (%d left)", v.RevivesLeft))
	}
	s.DrawTextCentered(mid+2, "r: restart   q: quit")
}
