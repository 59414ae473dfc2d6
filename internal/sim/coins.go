package sim

import (
	"math/rand"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
)

// Coin is a pickup: a fixed-radius circle collected on overlap with the
// player's hit rectangle.
type Coin struct {
	Pos   core.Vec2
	AgeMs float64
}

// CoinField spawns pickups on a timer, scrolls them, and resolves
// collection against the player each tick.
type CoinField struct {
	rng     *rand.Rand
	cfg     *config.RunnerConfig
	worldW  float64
	groundY float64

	coins        []*Coin
	spawnTimerMs float64
	collected    int
}

// NewCoinField creates a coin field for the given world.
func NewCoinField(seed int64, cfg *config.RunnerConfig, worldW, groundY float64) *CoinField {
	c := &CoinField{cfg: cfg}
	c.Reset(seed, worldW, groundY)
	return c
}

// Reset drops all coins, zeroes the counter, reseeds the RNG, and adopts
// the current world dimensions.
func (c *CoinField) Reset(seed int64, worldW, groundY float64) {
	c.worldW = worldW
	c.groundY = groundY
	c.rng = rand.New(rand.NewSource(seed))
	c.coins = c.coins[:0]
	c.collected = 0
	c.spawnTimerMs = c.rollSpawnDelay(1.0, false)
}

// Tick advances the spawn timer, scrolls coins, collects overlaps with the
// player rect, and culls coins past the trailing edge.
func (c *CoinField) Tick(dtMs, scrollSpeed, density float64, rest bool, playerRect core.RectF) {
	c.spawnTimerMs -= dtMs
	if c.spawnTimerMs <= 0 {
		c.spawn()
		c.spawnTimerMs = c.rollSpawnDelay(density, rest)
	}

	speed := core.ClampF(scrollSpeed, 0, c.cfg.Coins.MaxScroll) + c.cfg.Coins.BaseScroll
	dx := -speed * dtMs / 1000.0

	live := c.coins[:0]
	for _, coin := range c.coins {
		coin.Pos.X += dx
		coin.AgeMs += dtMs

		if playerRect.DistToPoint(coin.Pos) <= c.cfg.Coins.Radius {
			c.collected++
			continue
		}
		if coin.Pos.X < -c.cfg.Coins.CullOffset {
			continue
		}
		live = append(live, coin)
	}
	c.coins = live
}

// spawn places one coin just past the right edge at a height sampled within
// the band above the ground line.
func (c *CoinField) spawn() {
	band := c.cfg.Coins.VerticalBand - c.cfg.Coins.GroundClearance
	if band < 0 {
		band = 0
	}
	c.coins = append(c.coins, &Coin{
		Pos: core.Vec2{
			X: c.worldW + c.cfg.Coins.SpawnMargin,
			Y: c.groundY - c.cfg.Coins.GroundClearance - c.rng.Float64()*band,
		},
	})
}

// rollSpawnDelay draws the next spawn delay. Density divides it; the rest
// window multiplies it, independently.
func (c *CoinField) rollSpawnDelay(density float64, rest bool) float64 {
	delay := c.cfg.Coins.SpawnDelayMinMs + c.rng.Float64()*(c.cfg.Coins.SpawnDelayMaxMs-c.cfg.Coins.SpawnDelayMinMs)
	if density > 0 {
		delay /= density
	}
	if rest {
		delay *= c.cfg.Obstacles.RestSpawnFactor
	}
	return delay
}

// Coins exposes the live collection. Callers must treat it as read-only.
func (c *CoinField) Coins() []*Coin {
	return c.coins
}

// Collected returns the number of coins collected this run.
func (c *CoinField) Collected() int {
	return c.collected
}

// Clear drops all live coins. Best-effort cleanup hook.
func (c *CoinField) Clear() {
	c.coins = c.coins[:0]
}
