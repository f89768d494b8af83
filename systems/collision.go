package systems

import (
	"math"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
)

// Axis selects the component of a movement
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ResolveAxis moves a box along one axis through the level grid and returns
// the displacement actually applied. Every tile line crossed by the leading
// edge is probed across the box's extent on the other axis; the first wall
// stops the edge flush against it. Tiles outside the grid never block.
func ResolveAxis(gameMap *components.GameMap, pos components.PositionComponent, box components.CollisionComponent, axis Axis, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	center, half, across, acrossHalf := pos.X, box.HalfW, pos.Y, box.HalfH
	if axis == AxisY {
		center, half, across, acrossHalf = pos.Y, box.HalfH, pos.X, box.HalfW
	}

	// tiles the box spans on the other axis, edges touching a line excluded
	lo, hi := spannedTiles(across-acrossHalf, across+acrossHalf)

	blocked := func(line int) bool {
		for t := lo; t <= hi; t++ {
			x, y := line, t
			if axis == AxisY {
				x, y = t, line
			}
			if gameMap.IsWall(x, y) {
				return true
			}
		}
		return false
	}

	if delta > 0 {
		edge := center + half
		from := int(math.Ceil(edge/config.TileSize)) - 1
		to := int(math.Ceil((edge+delta)/config.TileSize)) - 1
		for line := from + 1; line <= to; line++ {
			if blocked(line) {
				return max(float64(line)*config.TileSize-edge, 0)
			}
		}
		return delta
	}

	edge := center - half
	from := int(math.Floor(edge / config.TileSize))
	to := int(math.Floor((edge + delta) / config.TileSize))
	for line := from - 1; line >= to; line-- {
		if blocked(line) {
			return min(float64(line+1)*config.TileSize-edge, 0)
		}
	}
	return delta
}

// spannedTiles returns the tile indices covered by the open interval (a, b)
func spannedTiles(a, b float64) (int, int) {
	return int(math.Floor(a / config.TileSize)), int(math.Ceil(b/config.TileSize)) - 1
}

// MoveBox resolves X and then Y, updating pos, and returns the applied deltas
func MoveBox(gameMap *components.GameMap, pos *components.PositionComponent, box components.CollisionComponent, dx, dy float64) (float64, float64) {
	ax := ResolveAxis(gameMap, *pos, box, AxisX, dx)
	pos.X += ax
	ay := ResolveAxis(gameMap, *pos, box, AxisY, dy)
	pos.Y += ay
	return ax, ay
}

// Overlaps is the axis-aligned box test. Boxes that only touch do not overlap.
func Overlaps(posA components.PositionComponent, boxA components.CollisionComponent, posB components.PositionComponent, boxB components.CollisionComponent) bool {
	return math.Abs(posA.X-posB.X) < boxA.HalfW+boxB.HalfW &&
		math.Abs(posA.Y-posB.Y) < boxA.HalfH+boxB.HalfH
}

// OverlapsWall reports whether a box overlaps any wall tile of the grid
func OverlapsWall(gameMap *components.GameMap, pos components.PositionComponent, box components.CollisionComponent) bool {
	xlo, xhi := spannedTiles(pos.X-box.HalfW, pos.X+box.HalfW)
	ylo, yhi := spannedTiles(pos.Y-box.HalfH, pos.Y+box.HalfH)
	for x := xlo; x <= xhi; x++ {
		for y := ylo; y <= yhi; y++ {
			if gameMap.IsWall(x, y) {
				return true
			}
		}
	}
	return false
}
