package systems

import (
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/ecs"
)

// TimeSystem drains every timer and the player's invincibility window
type TimeSystem struct{}

// NewTimeSystem creates a new time system
func NewTimeSystem() *TimeSystem {
	return &TimeSystem{}
}

// Update subtracts dt from all timers
func (s *TimeSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	for _, entity := range world.GetEntitiesWithComponent(components.TimeLeft) {
		ecs.MustGet[*components.TimeLeftComponent](world, entity.ID, components.TimeLeft).Subtract(dt)
	}

	if player, ok := ecs.Get[*components.PlayerComponent](world, state.PlayerID, components.Player); ok {
		player.Invincible = max(player.Invincible-dt, 0)
	}
}
