package components

import (
	"math"
	"math/rand"
	"time"

	"ebiten-timecrawl/config"
)

// PositionComponent stores the center of an entity in world units
type PositionComponent struct {
	X, Y float64
}

// NewPositionAtTile returns a position at the center of a tile
func NewPositionAtTile(tile TileCoord) *PositionComponent {
	x, y := tile.Center()
	return &PositionComponent{X: x, Y: y}
}

// Tile returns the tile containing the position
func (p *PositionComponent) Tile() TileCoord {
	return TileAtPoint(p.X, p.Y)
}

// CollisionComponent is an axis-aligned box centered on the entity position
type CollisionComponent struct {
	HalfW, HalfH float64
}

// NewSquareCollision creates a collision box with equal half extents
func NewSquareCollision(half float64) *CollisionComponent {
	return &CollisionComponent{HalfW: half, HalfH: half}
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Sprite Sprite  // Index into the sprite sheet
	Z      float64 // Draw layer, lower first
	FlipX  bool    // Mirror horizontally
}

// AnimationComponent cycles a renderable through a fixed list of frames
type AnimationComponent struct {
	Frames    []Sprite
	Index     int
	FrameTime time.Duration
	Cooldown  time.Duration
}

// NewAnimationComponent starts the animation at a random point of its first
// frame so that identical entities do not animate in lock-step.
func NewAnimationComponent(frameTime time.Duration, frames []Sprite, rng *rand.Rand) *AnimationComponent {
	anim := &AnimationComponent{
		Frames:    frames,
		FrameTime: frameTime,
	}
	if frameTime > 0 && rng != nil {
		anim.Cooldown = time.Duration(rng.Int63n(int64(frameTime)))
	}
	return anim
}

// Current returns the frame being shown
func (a *AnimationComponent) Current() Sprite {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.Index%len(a.Frames)]
}

// Advance consumes dt and reports whether the frame changed
func (a *AnimationComponent) Advance(dt time.Duration) bool {
	if a.Cooldown > dt {
		a.Cooldown -= dt
		return false
	}
	a.Cooldown = a.FrameTime
	if len(a.Frames) > 0 {
		a.Index = (a.Index + 1) % len(a.Frames)
	}
	return true
}

// Restart switches to a new frame list; the next Advance shows its first frame
func (a *AnimationComponent) Restart(frameTime time.Duration, frames []Sprite) {
	a.Frames = frames
	a.FrameTime = frameTime
	a.Index = len(frames) - 1
	a.Cooldown = 0
}

// Playing reports whether the animation currently shows the given list
func (a *AnimationComponent) Playing(frames []Sprite) bool {
	return len(a.Frames) > 0 && len(frames) > 0 && &a.Frames[0] == &frames[0]
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{
		Name: name,
	}
}

// TileCoord addresses a tile of the level grid
type TileCoord struct {
	X, Y int
}

// Center returns the world position of the tile center
func (t TileCoord) Center() (float64, float64) {
	return (float64(t.X) + 0.5) * config.TileSize, (float64(t.Y) + 0.5) * config.TileSize
}

// Offset returns the tile dx, dy tiles away
func (t TileCoord) Offset(dx, dy int) TileCoord {
	return TileCoord{X: t.X + dx, Y: t.Y + dy}
}

// TileAtPoint converts a world position to the tile containing it
func TileAtPoint(x, y float64) TileCoord {
	return TileCoord{
		X: int(math.Floor(x / config.TileSize)),
		Y: int(math.Floor(y / config.TileSize)),
	}
}
