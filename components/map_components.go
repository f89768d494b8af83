package components

import (
	"ebiten-timecrawl/config"
)

// Tile is the semantic type of one grid cell
type Tile int

// Tile types. The zero value is TileNothing so an unset cell is empty space.
const (
	TileNothing Tile = iota
	TileWall
	TileFloor
	TilePlayerStart
	TileTeleport
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TilePlayerStart:
		return "start"
	case TileTeleport:
		return "teleport"
	}
	return "nothing"
}

// GameMap is the active level. It is rebuilt in full for every room.
type GameMap struct {
	Tiles       [config.GridWidth][config.GridHeight]Tile // indexed [x][y]
	PlayerStart TileCoord
	Teleport    TileCoord
	// Floor tiles enemies may spawn on
	SpawnTiles      []TileCoord
	LevelIndex      int
	PowerUpsSpawned bool
}

// InBounds reports whether the tile lies inside the grid
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < config.GridWidth && y >= 0 && y < config.GridHeight
}

// TileAt returns the tile at x, y. Anything outside the grid is TileNothing.
func (m *GameMap) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileNothing
	}
	return m.Tiles[x][y]
}

// IsWall checks whether a tile blocks movement. Out of range is never a wall.
func (m *GameMap) IsWall(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// SetTile changes a tile; out of range writes are ignored
func (m *GameMap) SetTile(x, y int, tile Tile) {
	if m.InBounds(x, y) {
		m.Tiles[x][y] = tile
	}
}

// IsWalkable reports whether the player can stand on the tile
func (m *GameMap) IsWalkable(x, y int) bool {
	switch m.TileAt(x, y) {
	case TileFloor, TilePlayerStart, TileTeleport:
		return true
	}
	return false
}
