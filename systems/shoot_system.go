package systems

import (
	"math"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/spawners"
)

// PlayerShootSystem fires the player's weapon in the held direction
type PlayerShootSystem struct {
	spawner *spawners.EntitySpawner
}

// NewPlayerShootSystem creates a new player shoot system
func NewPlayerShootSystem(spawner *spawners.EntitySpawner) *PlayerShootSystem {
	return &PlayerShootSystem{spawner: spawner}
}

// Update fires when the shooter is ready and a direction is held
func (s *PlayerShootSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	p := mustPlayer(world, state)
	if !p.Shooter.Ready() {
		return
	}

	dir := state.Input.ShootDirection()
	if dir == components.NoDirection {
		return
	}

	velX, velY := PlayerBulletVelocity(dir, p.Shooter.Speed, p.Player.MoveX, p.Player.MoveY)
	s.spawner.QueueBullet(p.Pos.X, p.Pos.Y, velX, velY, components.PlayerFaction)
	p.Shooter.Fire()
	playSound(world, PlayerShoot)
}

// PlayerBulletVelocity is the direction scaled by speed, plus a share of the
// player's own movement so shots lead in the direction of travel.
func PlayerBulletVelocity(dir components.ShootDirection, speed, moveX, moveY float64) (float64, float64) {
	x, y := dir.Vector()
	return x*speed + config.BulletDrift*moveX, y*speed + config.BulletDrift*moveY
}

// EnemyShootSystem makes every ready enemy shooter fire at the player
type EnemyShootSystem struct {
	spawner *spawners.EntitySpawner
}

// NewEnemyShootSystem creates a new enemy shoot system
func NewEnemyShootSystem(spawner *spawners.EntitySpawner) *EnemyShootSystem {
	return &EnemyShootSystem{spawner: spawner}
}

// Update fires aimed shots
func (s *EnemyShootSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	playerPos := ecs.MustGet[*components.PositionComponent](world, state.PlayerID, components.Position)

	for _, entity := range world.GetEntitiesWithTag(components.TagEnemy) {
		shooter, ok := ecs.Get[*components.ShooterComponent](world, entity.ID, components.Shooter)
		if !ok || !shooter.Ready() {
			continue
		}
		pos, ok := ecs.Get[*components.PositionComponent](world, entity.ID, components.Position)
		if !ok {
			continue
		}

		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			// no direction to aim in; try again next tick
			continue
		}

		s.spawner.QueueBullet(pos.X, pos.Y, dx/dist*shooter.Speed, dy/dist*shooter.Speed, components.EnemyFaction)
		shooter.Fire()
		playSound(world, EnemyShoot)
	}
}

// CooldownSystem decays every shooter's cooldown
type CooldownSystem struct{}

// NewCooldownSystem creates a new cooldown system
func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

// Update decays cooldowns by dt
func (s *CooldownSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	for _, entity := range world.GetEntitiesWithComponent(components.Shooter) {
		shooter := ecs.MustGet[*components.ShooterComponent](world, entity.ID, components.Shooter)
		shooter.Cool(dt)
	}
}
