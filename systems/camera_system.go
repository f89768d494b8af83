package systems

import (
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

// CameraSystem keeps the player at the center of the arena
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update recomputes the screen offset from the player position
func (s *CameraSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	pos := ecs.MustGet[*components.PositionComponent](world, state.PlayerID, components.Position)
	state.CameraX, state.CameraY = CameraOffset(pos.X, pos.Y)
}

// CameraOffset returns the translation that puts x, y at the arena center
func CameraOffset(x, y float64) (float64, float64) {
	return config.ArenaWidth/2 - x, config.ArenaHeight/2 - y
}

// WorldToScreen converts a world position to screen pixels. Screen Y grows
// downward while world Y grows upward.
func WorldToScreen(state *GameState, x, y float64) (float64, float64) {
	return x + state.CameraX, config.ArenaHeight - (y + state.CameraY)
}
