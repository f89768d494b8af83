package generation

import (
	"math"
	"math/rand"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
)

// Director scales the difficulty of each room with the number of floors the
// player has cleared.
type Director struct {
	rng *rand.Rand
}

// NewDirector creates a director with a time-seeded random source
func NewDirector() *Director {
	return &Director{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewDirectorWithRand creates a director drawing from rng
func NewDirectorWithRand(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

// SetSeed allows setting a specific seed for reproducible generation
func (d *Director) SetSeed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

// Rand exposes the random source so other room decisions share its seed
func (d *Director) Rand() *rand.Rand {
	return d.rng
}

// RosterSize draws how many enemies a room on this floor holds.
// It is Poisson distributed around floor+0.5 and never below floor/2+1.
func (d *Director) RosterSize(floor int) int {
	sample := Poisson(d.rng, float64(floor)+0.5)
	return max(sample, MinRosterSize(floor))
}

// MinRosterSize is the floor below which RosterSize never goes
func MinRosterSize(floor int) int {
	return floor/2 + 1
}

// RollVariant picks an archetype. The second check only runs when the first
// fails, so NoShoot is rarer than its own odds suggest.
func (d *Director) RollVariant() components.EnemyVariant {
	if d.rng.Float64() < config.StationaryVariantOdds {
		return components.Stationary
	}
	if d.rng.Float64() < config.NoShootVariantOdds {
		return components.NoShoot
	}
	return components.Full
}

// GenerateRoster returns the enemies to spawn in a fresh room
func (d *Director) GenerateRoster(floor int) []components.EnemyVariant {
	roster := make([]components.EnemyVariant, d.RosterSize(floor))
	for i := range roster {
		roster[i] = d.RollVariant()
	}
	return roster
}

// PickSpawn returns a random spawn tile; tiles can be picked more than once
func (d *Director) PickSpawn(tiles []components.TileCoord) (components.TileCoord, bool) {
	if len(tiles) == 0 {
		return components.TileCoord{}, false
	}
	return tiles[d.rng.Intn(len(tiles))], true
}

// PickPowerUp returns a uniformly random power-up
func (d *Director) PickPowerUp() components.PowerUp {
	return components.PowerUps[d.rng.Intn(len(components.PowerUps))]
}

// RollDrop reports whether a slain enemy leaves a time pickup behind
func (d *Director) RollDrop() bool {
	return d.rng.Float64() < config.DropChance
}

// EnemyTime is the lifetime of an enemy
func EnemyTime(floor int) time.Duration {
	return time.Duration(floor*5+25) * time.Second
}

// EnemyBulletSpeed is the projectile speed of enemy shooters
func EnemyBulletSpeed(floor int) float64 {
	return float64(floor/3) + 3
}

// PowerUpCost is the time a power-up costs to pick up
func PowerUpCost(floor int) time.Duration {
	return time.Duration(5*(floor/5)+10) * time.Second
}

// EnemySpeed is how fast chasing enemies move per tick
func EnemySpeed(floor int) float64 {
	if floor <= 5 {
		return 2
	}
	return 2 + float64(floor-5)*0.3
}

// Poisson samples a Poisson distributed count with mean lambda. Small means
// use Knuth's multiplication method, large ones a rounded normal approximation.
func Poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda > 30 {
		n := math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64())
		return max(int(n), 0)
	}

	limit := math.Exp(-lambda)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return k
}
