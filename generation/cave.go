package generation

import (
	"errors"
	"math/rand"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
)

// CaveLevelIndex marks a generated room. It never matches an authored level.
const CaveLevelIndex = -1

// CaveName is the room name shown when entering a generated cave
const CaveName = "The Caves"

const (
	caveWallChance  = 0.45
	caveIterations  = 4
	caveAttempts    = 20
	caveMinFloor    = 180
	caveSafeRadius  = 3 // no enemy spawns this close to the player start
	caveMinTeleport = 12
)

// ErrCaveFailed is returned when no attempt produced a large enough cave
var ErrCaveFailed = errors.New("no usable cave after retries")

type caveGrid [config.GridWidth][config.GridHeight]bool // true is wall

// GenerateCave carves a room with cellular automata. The largest open region
// is kept; the player starts somewhere in it and the teleport sits at the
// tile farthest away by walking distance.
func GenerateCave(rng *rand.Rand) (*components.GameMap, error) {
	for attempt := 0; attempt < caveAttempts; attempt++ {
		grid := randomCave(rng)
		for i := 0; i < caveIterations; i++ {
			grid = smoothCave(grid)
		}
		cleanupIsolatedTiles(&grid)

		region := largestRegion(grid)
		if len(region) < caveMinFloor {
			continue
		}
		if gameMap, ok := buildCave(rng, region); ok {
			return gameMap, nil
		}
	}
	return nil, ErrCaveFailed
}

// randomCave fills the grid with walls at caveWallChance; the border is solid
func randomCave(rng *rand.Rand) caveGrid {
	var grid caveGrid
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			grid[x][y] = isBorder(x, y) || rng.Float64() < caveWallChance
		}
	}
	return grid
}

// smoothCave applies one automaton step: more than 4 wall neighbours makes a
// wall, fewer than 4 makes floor
func smoothCave(grid caveGrid) caveGrid {
	next := grid
	for x := 1; x < config.GridWidth-1; x++ {
		for y := 1; y < config.GridHeight-1; y++ {
			walls := countAdjacentWalls(&grid, x, y)
			if walls > 4 {
				next[x][y] = true
			} else if walls < 4 {
				next[x][y] = false
			}
		}
	}
	return next
}

// countAdjacentWalls counts walls in the 3x3 block around x, y; edges count as walls
func countAdjacentWalls(grid *caveGrid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= config.GridWidth || ny < 0 || ny >= config.GridHeight || grid[nx][ny] {
				count++
			}
		}
	}
	return count
}

// cleanupIsolatedTiles removes single isolated walls and floors
func cleanupIsolatedTiles(grid *caveGrid) {
	for x := 1; x < config.GridWidth-1; x++ {
		for y := 1; y < config.GridHeight-1; y++ {
			walls := countAdjacentWalls(grid, x, y)
			if grid[x][y] && walls <= 2 {
				grid[x][y] = false
			}
			if !grid[x][y] && walls >= 7 {
				grid[x][y] = true
			}
		}
	}
}

// largestRegion returns the biggest 4-connected set of floor tiles. Diagonal
// gaps are too narrow for the player, so they do not connect regions.
func largestRegion(grid caveGrid) []components.TileCoord {
	var visited [config.GridWidth][config.GridHeight]bool
	var best []components.TileCoord

	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			if grid[x][y] || visited[x][y] {
				continue
			}
			region := floodFill(grid, &visited, components.TileCoord{X: x, Y: y})
			if len(region) > len(best) {
				best = region
			}
		}
	}
	return best
}

func floodFill(grid caveGrid, visited *[config.GridWidth][config.GridHeight]bool, start components.TileCoord) []components.TileCoord {
	region := []components.TileCoord{start}
	visited[start.X][start.Y] = true

	for i := 0; i < len(region); i++ {
		current := region[i]
		for _, next := range []components.TileCoord{
			current.Offset(1, 0), current.Offset(-1, 0), current.Offset(0, 1), current.Offset(0, -1),
		} {
			if isBorder(next.X, next.Y) || grid[next.X][next.Y] || visited[next.X][next.Y] {
				continue
			}
			visited[next.X][next.Y] = true
			region = append(region, next)
		}
	}
	return region
}

// buildCave turns a floor region into a GameMap. Walls are kept only where
// they touch the region so the room reads like an authored one.
func buildCave(rng *rand.Rand, region []components.TileCoord) (*components.GameMap, bool) {
	gameMap := &components.GameMap{LevelIndex: CaveLevelIndex}
	for _, tile := range region {
		gameMap.Tiles[tile.X][tile.Y] = components.TileFloor
	}
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			if gameMap.Tiles[x][y] == components.TileNothing && touchesFloor(gameMap, x, y) {
				gameMap.Tiles[x][y] = components.TileWall
			}
		}
	}

	start := region[rng.Intn(len(region))]
	teleport, distance := farthestTile(gameMap, start)
	if distance < caveMinTeleport {
		return nil, false
	}
	gameMap.PlayerStart = start
	gameMap.Teleport = teleport
	gameMap.Tiles[start.X][start.Y] = components.TilePlayerStart
	gameMap.Tiles[teleport.X][teleport.Y] = components.TileTeleport

	for _, tile := range region {
		if gameMap.Tiles[tile.X][tile.Y] != components.TileFloor || manhattan(tile, start) <= caveSafeRadius {
			continue
		}
		gameMap.SpawnTiles = append(gameMap.SpawnTiles, tile)
	}
	return gameMap, len(gameMap.SpawnTiles) > 0
}

func touchesFloor(gameMap *components.GameMap, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if gameMap.TileAt(x+dx, y+dy) == components.TileFloor {
				return true
			}
		}
	}
	return false
}

// farthestTile walks breadth-first from start and returns the last tile reached
func farthestTile(gameMap *components.GameMap, start components.TileCoord) (components.TileCoord, int) {
	distance := map[components.TileCoord]int{start: 0}
	queue := []components.TileCoord{start}
	far := start

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if distance[current] > distance[far] {
			far = current
		}
		for _, next := range []components.TileCoord{
			current.Offset(1, 0), current.Offset(-1, 0), current.Offset(0, 1), current.Offset(0, -1),
		} {
			if _, seen := distance[next]; seen || !gameMap.IsWalkable(next.X, next.Y) {
				continue
			}
			distance[next] = distance[current] + 1
			queue = append(queue, next)
		}
	}
	return far, distance[far]
}

func isBorder(x, y int) bool {
	return x <= 0 || y <= 0 || x >= config.GridWidth-1 || y >= config.GridHeight-1
}
