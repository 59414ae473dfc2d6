package sim

import (
	"testing"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

func newTestCoins(seed int64) (*CoinField, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewCoinField(seed, &cfg, 640, 350), &cfg
}

// farRect is a player rectangle that can never overlap spawned coins.
func farRect() core.RectF {
	return core.NewRectF(-10000, -10000, 1, 1)
}

func TestCoinSpawnPosition(t *testing.T) {
	c, cfg := newTestCoins(3)

	// Tick until the first spawn
	for i := 0; i < 600 && len(c.Coins()) == 0; i++ {
		c.Tick(testDtMs, 220, 1, false, farRect())
	}
	if len(c.Coins()) == 0 {
		t.Fatal("No coin spawned within 10s")
	}

	coin := c.Coins()[0]

	// The coin spawned just past the right edge and has scrolled at most
	// one tick's worth since
	spawnX := c.worldW + cfg.Coins.SpawnMargin
	maxStep := (cfg.Coins.MaxScroll + cfg.Coins.BaseScroll) * testDtMs / 1000.0
	if coin.Pos.X > spawnX || coin.Pos.X < spawnX-maxStep {
		t.Errorf("Coin x=%f outside the spawn column [%f, %f]", coin.Pos.X, spawnX-maxStep, spawnX)
	}

	// Height lies within the band above the ground line
	top := c.groundY - cfg.Coins.VerticalBand
	bottom := c.groundY - cfg.Coins.GroundClearance
	if coin.Pos.Y < top || coin.Pos.Y > bottom {
		t.Errorf("Coin y=%f outside the band [%f, %f]", coin.Pos.Y, top, bottom)
	}
}

func TestCoinScrollSpeed(t *testing.T) {
	c, cfg := newTestCoins(3)

	c.coins = append(c.coins, &Coin{Pos: core.Vec2{X: 500, Y: 300}})
	c.spawnTimerMs = 1e9 // Suppress spawning

	c.Tick(100, 220, 1, false, farRect())
	want := 500 - (220+cfg.Coins.BaseScroll)*100/1000.0
	if c.Coins()[0].Pos.X != want {
		t.Errorf("Coin scrolled to %f, want %f", c.Coins()[0].Pos.X, want)
	}

	// The obstacle scroll component is clamped before the base is added
	c.coins[0].Pos.X = 500
	c.Tick(100, 99999, 1, false, farRect())
	want = 500 - (cfg.Coins.MaxScroll+cfg.Coins.BaseScroll)*100/1000.0
	if c.Coins()[0].Pos.X != want {
		t.Errorf("Unclamped scroll moved coin to %f, want %f", c.Coins()[0].Pos.X, want)
	}
}

func TestCoinCollection(t *testing.T) {
	c, cfg := newTestCoins(3)
	c.spawnTimerMs = 1e9

	player := core.NewRectF(130, 320, 28, 28)

	c.coins = append(c.coins,
		&Coin{Pos: core.Vec2{X: 145, Y: 330}},                         // Inside the rect
		&Coin{Pos: core.Vec2{X: 145 + cfg.Coins.Radius + 40, Y: 330}}, // Out of reach
	)

	c.Tick(testDtMs, 0, 1, false, player)

	if c.Collected() != 1 {
		t.Fatalf("Expected 1 coin collected, got %d", c.Collected())
	}
	if len(c.Coins()) != 1 {
		t.Fatalf("Collected coin not removed: %d remain", len(c.Coins()))
	}

	// Collection radius extends past the rect edge
	c.coins[0].Pos = core.Vec2{X: player.Right() + cfg.Coins.Radius - 1, Y: 330}
	c.Tick(testDtMs, 0, 1, false, player)
	if c.Collected() != 2 {
		t.Error("Coin within the pickup radius of the rect edge not collected")
	}
}

func TestCoinCulling(t *testing.T) {
	c, cfg := newTestCoins(3)
	c.spawnTimerMs = 1e9

	c.coins = append(c.coins, &Coin{Pos: core.Vec2{X: -cfg.Coins.CullOffset - 10, Y: 300}})
	c.Tick(testDtMs, 0, 1, false, farRect())

	if len(c.Coins()) != 0 {
		t.Errorf("Coin past the cull offset survived: %d remain", len(c.Coins()))
	}
}

func TestCoinSpawnDelayGates(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	plain := NewCoinField(9, &cfg, 640, 350).rollSpawnDelay(1.0, false)
	rested := NewCoinField(9, &cfg, 640, 350).rollSpawnDelay(1.0, true)
	dense := NewCoinField(9, &cfg, 640, 350).rollSpawnDelay(2.0, false)

	if rested != plain*cfg.Obstacles.RestSpawnFactor {
		t.Errorf("Rest factor not applied: plain=%f rested=%f", plain, rested)
	}
	if dense != plain/2 {
		t.Errorf("Density does not divide the delay: %f vs %f", dense, plain/2)
	}
}

func TestCoinReset(t *testing.T) {
	c, _ := newTestCoins(3)

	c.coins = append(c.coins, &Coin{Pos: core.Vec2{X: 300, Y: 300}})
	c.collected = 5

	c.Reset(3, c.worldW, c.groundY)
	if len(c.Coins()) != 0 || c.Collected() != 0 {
		t.Error("Reset did not clear coins and the counter")
	}
}

func TestCoinCollectionTranslationInvariant(t *testing.T) {
	player := core.NewRectF(130, 320, 28, 28)

	// One coin comfortably within pickup range, one comfortably outside
	coins := []struct {
		name string
		pos  core.Vec2
	}{
		{"within range", core.Vec2{X: 165, Y: 334}},
		{"out of range", core.Vec2{X: 195, Y: 334}},
	}

	offsets := []core.Vec2{
		{X: 0, Y: 0},
		{X: -256.5, Y: 0},
		{X: 48.25, Y: -96.75},
		{X: 4096, Y: 1024},
	}

	for _, tc := range coins {
		t.Run(tc.name, func(t *testing.T) {
			var want bool
			for i, d := range offsets {
				c, _ := newTestCoins(3)
				c.spawnTimerMs = 1e9 // Suppress spawning
				c.coins = append(c.coins, &Coin{Pos: tc.pos.Add(d)})

				c.Tick(testDtMs, 0, 1, false, player.Translate(d.X, d.Y))
				got := c.Collected() > 0

				if i == 0 {
					want = got
					continue
				}
				if got != want {
					t.Errorf("Verdict changed under translation (%f, %f): got %v, want %v",
						d.X, d.Y, got, want)
				}
			}
		})
	}
}
