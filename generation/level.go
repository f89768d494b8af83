package generation

import (
	"fmt"
	"math/rand"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
)

// BuildLevel decodes an authored grid into a fresh GameMap. Every floor tile
// becomes an enemy spawn candidate.
func BuildLevel(level data.Level, index int) (*components.GameMap, error) {
	if len(level.Columns) != config.GridWidth {
		return nil, fmt.Errorf("level %q: expected %d columns, got %d", level.Name, config.GridWidth, len(level.Columns))
	}
	for x, column := range level.Columns {
		if len(column) != config.GridHeight {
			return nil, fmt.Errorf("level %q: column %d has %d cells", level.Name, x, len(column))
		}
	}

	gameMap := &components.GameMap{LevelIndex: index}
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			tile := decodeCell(level.Cell(x, y))
			gameMap.Tiles[x][y] = tile

			coord := components.TileCoord{X: x, Y: y}
			switch tile {
			case components.TileFloor:
				gameMap.SpawnTiles = append(gameMap.SpawnTiles, coord)
			case components.TilePlayerStart:
				gameMap.PlayerStart = coord
			case components.TileTeleport:
				gameMap.Teleport = coord
			}
		}
	}

	return gameMap, nil
}

func decodeCell(cell int) components.Tile {
	switch cell {
	case data.CellWall:
		return components.TileWall
	case data.CellFloor:
		return components.TileFloor
	case data.CellPlayerStart:
		return components.TilePlayerStart
	case data.CellTeleport:
		return components.TileTeleport
	}
	return components.TileNothing
}

// SelectNextLevel picks a level index uniformly from the pool, never the
// current one unless the pool leaves no alternative.
func SelectNextLevel(rng *rand.Rand, poolSize, current int) int {
	if poolSize <= 1 {
		return current
	}
	for attempt := 0; attempt < config.MaxLevelSelectAttempts; attempt++ {
		if choice := rng.Intn(poolSize); choice != current {
			return choice
		}
	}
	return current
}
