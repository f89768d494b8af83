package generation

import (
	"ebiten-timecrawl/components"
)

// WallSprite picks the sprite for the wall at x, y from its neighbours:
// floor below shows the front face, floor to either side shows the side face
// (mirrored when the floor is on the left), anything else shows the top.
func WallSprite(gameMap *components.GameMap, x, y int) (components.Sprite, bool) {
	switch {
	case IsFloorType(gameMap.TileAt(x, y-1)):
		return components.SpriteWallFront, false
	case IsFloorType(gameMap.TileAt(x+1, y)):
		return components.SpriteWallSide, false
	case IsFloorType(gameMap.TileAt(x-1, y)):
		return components.SpriteWallSide, true
	}
	return components.SpriteWallTop, false
}

// IsFloorType checks if a tile is plain floor
func IsFloorType(tile components.Tile) bool {
	return tile == components.TileFloor
}

// HasAdjacentFloor checks if a tile has any plain floor orthogonally adjacent
func HasAdjacentFloor(gameMap *components.GameMap, x, y int) bool {
	directions := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for _, dir := range directions {
		if IsFloorType(gameMap.TileAt(x+dir[0], y+dir[1])) {
			return true
		}
	}

	return false
}

// TileSprite returns the sprite used to draw a non-wall tile, and false for
// tiles that are not drawn.
func TileSprite(tile components.Tile) (components.Sprite, bool) {
	switch tile {
	case components.TileFloor, components.TilePlayerStart:
		return components.SpriteFloor, true
	case components.TileTeleport:
		return components.SpriteTeleport, true
	}
	return 0, false
}
