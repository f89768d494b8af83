package generation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
)

// corridorMap is a 10x3 floor strip with a wall across x=5 except at y=3
func corridorMap() *components.GameMap {
	gameMap := &components.GameMap{}
	for x := 1; x <= 10; x++ {
		for y := 1; y <= 3; y++ {
			gameMap.SetTile(x, y, components.TileFloor)
		}
	}
	gameMap.SetTile(5, 1, components.TileWall)
	gameMap.SetTile(5, 2, components.TileWall)
	return gameMap
}

func TestFindPathDetoursAroundWall(t *testing.T) {
	gameMap := corridorMap()
	start := components.TileCoord{X: 1, Y: 1}
	goal := components.TileCoord{X: 10, Y: 1}

	path, ok := FindPath(gameMap, start, goal)
	require.True(t, ok)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Contains(t, path, components.TileCoord{X: 5, Y: 3})
	// 9 steps east plus 2 up and 2 down to pass the gap
	assert.Equal(t, 13, len(path)-1)

	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, manhattan(path[i-1], path[i]), "steps are orthogonal")
		assert.True(t, gameMap.IsWalkable(path[i].X, path[i].Y))
	}
}

func TestFindPathUnreachable(t *testing.T) {
	gameMap := corridorMap()
	gameMap.SetTile(5, 3, components.TileWall)

	_, ok := FindPath(gameMap, components.TileCoord{X: 1, Y: 1}, components.TileCoord{X: 10, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, -1, PathLength(gameMap, components.TileCoord{X: 1, Y: 1}, components.TileCoord{X: 10, Y: 1}))

	// walls and empty space are never endpoints
	assert.Equal(t, -1, PathLength(gameMap, components.TileCoord{X: 5, Y: 1}, components.TileCoord{X: 1, Y: 1}))
	assert.Equal(t, -1, PathLength(gameMap, components.TileCoord{X: 0, Y: 0}, components.TileCoord{X: 1, Y: 1}))
}

func TestPathLengthToSelf(t *testing.T) {
	gameMap := corridorMap()
	tile := components.TileCoord{X: 2, Y: 2}
	assert.Zero(t, PathLength(gameMap, tile, tile))
}

func TestAuthoredTeleportsAreReachable(t *testing.T) {
	lib, err := data.LoadLevels()
	require.NoError(t, err)

	for i, level := range lib.Levels {
		gameMap, err := BuildLevel(level, i)
		require.NoError(t, err)
		assert.Positive(t, PathLength(gameMap, gameMap.PlayerStart, gameMap.Teleport), level.Name)
	}
}

func TestGenerateCave(t *testing.T) {
	rng := testRNG()

	for trial := 0; trial < 20; trial++ {
		gameMap, err := GenerateCave(rng)
		require.NoError(t, err)

		assert.Equal(t, CaveLevelIndex, gameMap.LevelIndex)
		assert.Equal(t, components.TilePlayerStart, gameMap.TileAt(gameMap.PlayerStart.X, gameMap.PlayerStart.Y))
		assert.Equal(t, components.TileTeleport, gameMap.TileAt(gameMap.Teleport.X, gameMap.Teleport.Y))
		assert.GreaterOrEqual(t, PathLength(gameMap, gameMap.PlayerStart, gameMap.Teleport), caveMinTeleport)
		require.NotEmpty(t, gameMap.SpawnTiles)

		for _, tile := range gameMap.SpawnTiles {
			assert.Equal(t, components.TileFloor, gameMap.TileAt(tile.X, tile.Y))
			assert.Greater(t, manhattan(tile, gameMap.PlayerStart), caveSafeRadius)
			assert.NotEqual(t, -1, PathLength(gameMap, gameMap.PlayerStart, tile), "spawn tiles share the player's region")
		}

		// the room is sealed: nothing walkable on the border and every
		// walkable tile is surrounded by walkable tiles or walls
		for x := 0; x < config.GridWidth; x++ {
			for y := 0; y < config.GridHeight; y++ {
				if !gameMap.IsWalkable(x, y) {
					continue
				}
				assert.False(t, isBorder(x, y))
				for _, n := range []components.TileCoord{{X: x + 1, Y: y}, {X: x - 1, Y: y}, {X: x, Y: y + 1}, {X: x, Y: y - 1}} {
					assert.NotEqual(t, components.TileNothing, gameMap.TileAt(n.X, n.Y))
				}
			}
		}
	}
}

func TestGenerateCaveIsDeterministic(t *testing.T) {
	a, err := GenerateCave(rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := GenerateCave(rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSmoothCaveKeepsBorder(t *testing.T) {
	var grid caveGrid
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			grid[x][y] = isBorder(x, y)
		}
	}
	// a lone wall in open floor disappears; the border stays
	grid[10][10] = true
	next := smoothCave(grid)
	assert.False(t, next[10][10])
	assert.True(t, next[0][5])
	assert.True(t, next[config.GridWidth-1][config.GridHeight-1])
}
