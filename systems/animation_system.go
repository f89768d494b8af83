package systems

import (
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

// AnimationSystem steps sprite animations
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances every animation and writes the frame to its renderable
func (s *AnimationSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	s.swapPlayerFrames(world, state)

	for _, entity := range world.GetEntitiesWithComponent(components.Animation) {
		anim := ecs.MustGet[*components.AnimationComponent](world, entity.ID, components.Animation)
		render, ok := ecs.Get[*components.RenderableComponent](world, entity.ID, components.Renderable)
		if !ok {
			continue
		}
		if anim.Advance(dt) {
			render.Sprite = anim.Current()
		}
	}
}

// the player flickers through its own frames while invincible
func (s *AnimationSystem) swapPlayerFrames(world *ecs.World, state *GameState) {
	player, ok := ecs.Get[*components.PlayerComponent](world, state.PlayerID, components.Player)
	if !ok {
		return
	}
	anim, ok := ecs.Get[*components.AnimationComponent](world, state.PlayerID, components.Animation)
	if !ok {
		return
	}

	invulnerable := anim.Playing(components.PlayerInvulFrames)
	switch {
	case player.IsInvincible() && !invulnerable:
		anim.Restart(config.InvulFrameTime, components.PlayerInvulFrames)
	case !player.IsInvincible() && invulnerable:
		anim.Restart(config.PlayerFrameTime, components.PlayerFrames)
	}
}
