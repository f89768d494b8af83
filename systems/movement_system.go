package systems

import (
	"math"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/ecs"
)

// PlayerMovementSystem moves the player by the input axes, stopping at walls
type PlayerMovementSystem struct{}

// NewPlayerMovementSystem creates a new player movement system
func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

// Update applies one tick of player movement
func (s *PlayerMovementSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	p := mustPlayer(world, state)

	dx := state.Input.MoveX * p.Player.Speed
	dy := state.Input.MoveY * p.Player.Speed
	p.Player.MoveX, p.Player.MoveY = MoveBox(state.Map, p.Pos, *p.Box, dx, dy)

	if dir := state.Input.ShootDirection(); dir != components.NoDirection {
		p.Player.Aim = dir
	}
}

// EnemyMovementSystem makes mobile enemies run straight at the player
type EnemyMovementSystem struct{}

// NewEnemyMovementSystem creates a new enemy movement system
func NewEnemyMovementSystem() *EnemyMovementSystem {
	return &EnemyMovementSystem{}
}

// Update moves every chasing enemy one step
func (s *EnemyMovementSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	playerPos := ecs.MustGet[*components.PositionComponent](world, state.PlayerID, components.Position)

	for _, entity := range world.GetEntitiesWithTag(components.TagEnemy) {
		enemy, ok := ecs.Get[*components.EnemyComponent](world, entity.ID, components.Enemy)
		if !ok || !enemy.Moves {
			continue
		}
		pos, hasPos := ecs.Get[*components.PositionComponent](world, entity.ID, components.Position)
		box, hasBox := ecs.Get[*components.CollisionComponent](world, entity.ID, components.Collision)
		if !hasPos || !hasBox {
			continue
		}

		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}

		step := min(enemy.Speed, dist)
		MoveBox(state.Map, pos, *box, dx/dist*step, dy/dist*step)
	}
}
