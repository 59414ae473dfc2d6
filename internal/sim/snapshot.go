package sim

import "math"

// Snapshot captures the complete simulation state for determinism testing
// and replay verification. Uses primitive types only; float world
// coordinates are quantized to thousandths so snapshots hash stably.
type Snapshot struct {
	Tick        uint64
	Phase       int
	ElapsedMs   int64
	Score       int
	Coins       int
	Jumps       int
	RevivesUsed int

	PlayerX, PlayerY int64
	PlayerVelY       int64
	Grounded         bool

	InkCharge int64 // Thousandths
	LineCount int
	// Each line contributes its point count followed by quantized x/y pairs.
	LineData []int64

	ObstacleCount int
	// Each obstacle is 5 values: kind, x, y, w, h (quantized).
	ObstacleData []int64

	CoinCount int
	// Each coin is 2 values: x, y (quantized).
	CoinData []int64
}

func quant(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current simulation snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        e.tick,
		Phase:       int(e.phase),
		ElapsedMs:   int64(math.Round(e.elapsedMs)),
		Score:       e.Score(),
		Coins:       e.coins.Collected(),
		Jumps:       e.player.Jumps(),
		RevivesUsed: e.revivesUsed,

		PlayerX:    quant(e.player.Pos.X),
		PlayerY:    quant(e.player.Pos.Y),
		PlayerVelY: quant(e.player.VelY),
		Grounded:   e.player.Grounded,

		InkCharge: quant(e.ink.Charge()),
	}

	lines := e.ink.Lines()
	s.LineCount = len(lines)
	for _, ln := range lines {
		s.LineData = append(s.LineData, int64(len(ln.Points)))
		for _, p := range ln.Points {
			s.LineData = append(s.LineData, quant(p.X), quant(p.Y))
		}
	}

	obstacles := e.gen.Obstacles()
	s.ObstacleCount = len(obstacles)
	for _, o := range obstacles {
		s.ObstacleData = append(s.ObstacleData,
			int64(o.Kind), quant(o.X), quant(o.Y), quant(o.W), quant(o.H))
	}

	coins := e.coins.Coins()
	s.CoinCount = len(coins)
	for _, c := range coins {
		s.CoinData = append(s.CoinData, quant(c.Pos.X), quant(c.Pos.Y))
	}
	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.ElapsedMs)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Coins)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Jumps)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.RevivesUsed) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerVelY)  //#nosec G115 -- hash computation
	if s.Grounded {
		h = h*31 + 1
	}
	h = h*31 + uint64(s.InkCharge) //#nosec G115 -- hash computation

	for _, v := range s.LineData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range s.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range s.CoinData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
