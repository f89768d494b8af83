package generation

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/data"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestBuildLevelFromLibrary(t *testing.T) {
	lib, err := data.LoadLevels()
	require.NoError(t, err)

	for i, level := range lib.Levels {
		gameMap, err := BuildLevel(level, i)
		require.NoError(t, err, level.Name)

		assert.Equal(t, i, gameMap.LevelIndex)
		assert.Equal(t, components.TilePlayerStart, gameMap.TileAt(gameMap.PlayerStart.X, gameMap.PlayerStart.Y))
		assert.Equal(t, components.TileTeleport, gameMap.TileAt(gameMap.Teleport.X, gameMap.Teleport.Y))
		assert.NotEmpty(t, gameMap.SpawnTiles)
		for _, tile := range gameMap.SpawnTiles {
			assert.Equal(t, components.TileFloor, gameMap.TileAt(tile.X, tile.Y))
		}
		assert.False(t, gameMap.PowerUpsSpawned)
	}
}

func TestBuildLevelIsDeterministic(t *testing.T) {
	lib, err := data.LoadLevels()
	require.NoError(t, err)

	a, err := BuildLevel(lib.Levels[1], 1)
	require.NoError(t, err)
	b, err := BuildLevel(lib.Levels[1], 1)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildLevelRejectsWrongSize(t *testing.T) {
	level := data.Level{Name: "tiny", Columns: []string{strings.Repeat("2", 32)}}

	_, err := BuildLevel(level, 0)
	assert.Error(t, err)
}

func TestBuildLevelUnknownCellsAreNothing(t *testing.T) {
	columns := make([]string, 32)
	for i := range columns {
		columns[i] = strings.Repeat("9", 32)
	}
	gameMap, err := BuildLevel(data.Level{Columns: columns}, 0)
	require.NoError(t, err)

	assert.Equal(t, components.TileNothing, gameMap.TileAt(3, 3))
	assert.Empty(t, gameMap.SpawnTiles)
}

func TestSelectNextLevel(t *testing.T) {
	rng := testRNG()

	for i := 0; i < 200; i++ {
		next := SelectNextLevel(rng, 3, 1)
		assert.NotEqual(t, 1, next)
		assert.GreaterOrEqual(t, next, 0)
		assert.Less(t, next, 3)
	}

	assert.Equal(t, 0, SelectNextLevel(rng, 1, 0))
}

func TestWallSprite(t *testing.T) {
	var m components.GameMap
	m.SetTile(5, 5, components.TileWall)

	sprite, flip := WallSprite(&m, 5, 5)
	assert.Equal(t, components.SpriteWallTop, sprite)
	assert.False(t, flip)

	m.SetTile(4, 5, components.TileFloor)
	sprite, flip = WallSprite(&m, 5, 5)
	assert.Equal(t, components.SpriteWallSide, sprite)
	assert.True(t, flip)

	m.SetTile(6, 5, components.TileFloor)
	sprite, flip = WallSprite(&m, 5, 5)
	assert.Equal(t, components.SpriteWallSide, sprite)
	assert.False(t, flip)

	m.SetTile(5, 4, components.TileFloor)
	sprite, _ = WallSprite(&m, 5, 5)
	assert.Equal(t, components.SpriteWallFront, sprite)

	// edge of the grid reads as non-floor
	m.SetTile(0, 0, components.TileWall)
	sprite, _ = WallSprite(&m, 0, 0)
	assert.Equal(t, components.SpriteWallTop, sprite)
	assert.True(t, HasAdjacentFloor(&m, 5, 5))
}

func TestFloorZeroScaling(t *testing.T) {
	assert.Equal(t, 25*time.Second, EnemyTime(0))
	assert.Equal(t, 3.0, EnemyBulletSpeed(0))
	assert.Equal(t, 10*time.Second, PowerUpCost(0))
	assert.Equal(t, 1, MinRosterSize(0))
	assert.Equal(t, 2.0, EnemySpeed(0))
}

func TestScalingCurves(t *testing.T) {
	assert.Equal(t, 4.0, EnemyBulletSpeed(3))
	assert.Equal(t, 15*time.Second, PowerUpCost(5))
	assert.Equal(t, 15*time.Second, PowerUpCost(9))
	assert.Equal(t, 75*time.Second, EnemyTime(10))
	assert.Equal(t, 2.0, EnemySpeed(5))
	assert.InDelta(t, 2.6, EnemySpeed(7), 1e-9)
}

func TestRosterSizeNeverBelowMinimum(t *testing.T) {
	d := NewDirectorWithRand(testRNG())

	for floor := 0; floor < 40; floor++ {
		for i := 0; i < 50; i++ {
			assert.GreaterOrEqual(t, d.RosterSize(floor), floor/2+1)
		}
	}
}

func TestRollVariantCascade(t *testing.T) {
	d := NewDirectorWithRand(testRNG())
	counts := map[components.EnemyVariant]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[d.RollVariant()]++
	}

	// 0.35, 0.65*0.35 and 0.65*0.65
	assert.InDelta(t, 0.35, float64(counts[components.Stationary])/n, 0.02)
	assert.InDelta(t, 0.2275, float64(counts[components.NoShoot])/n, 0.02)
	assert.InDelta(t, 0.4225, float64(counts[components.Full])/n, 0.02)
}

func TestPoissonMean(t *testing.T) {
	rng := testRNG()
	assert.Equal(t, 0, Poisson(rng, 0))
	assert.Equal(t, 0, Poisson(rng, -2))

	for _, lambda := range []float64{0.5, 4.5, 50} {
		sum := 0
		const n = 5000
		for i := 0; i < n; i++ {
			sum += Poisson(rng, lambda)
		}
		assert.InDelta(t, lambda, float64(sum)/n, lambda*0.1+0.05)
	}
}

func TestGenerateRosterAndPicks(t *testing.T) {
	d := NewDirectorWithRand(testRNG())

	roster := d.GenerateRoster(4)
	assert.GreaterOrEqual(t, len(roster), 3)

	_, ok := d.PickSpawn(nil)
	assert.False(t, ok)

	tiles := []components.TileCoord{{X: 1, Y: 1}, {X: 2, Y: 2}}
	tile, ok := d.PickSpawn(tiles)
	require.True(t, ok)
	assert.Contains(t, tiles, tile)
	assert.Contains(t, components.PowerUps, d.PickPowerUp())
}
