package systems

import (
	"fmt"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

// BulletMotionSystem advances every bullet by its velocity
type BulletMotionSystem struct{}

// NewBulletMotionSystem creates a new bullet motion system
func NewBulletMotionSystem() *BulletMotionSystem {
	return &BulletMotionSystem{}
}

// Update moves bullets one tick
func (s *BulletMotionSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	for _, entity := range world.GetEntitiesWithTag(components.TagBullet) {
		bullet, ok := ecs.Get[*components.BulletComponent](world, entity.ID, components.Bullet)
		if !ok {
			continue
		}
		pos := ecs.MustGet[*components.PositionComponent](world, entity.ID, components.Position)
		pos.X += bullet.VelX
		pos.Y += bullet.VelY
	}
}

type collider struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	box *components.CollisionComponent
}

func collidersWithTag(world *ecs.World, tag string) []collider {
	entities := world.GetEntitiesWithTag(tag)
	result := make([]collider, 0, len(entities))
	for _, entity := range entities {
		pos, hasPos := ecs.Get[*components.PositionComponent](world, entity.ID, components.Position)
		box, hasBox := ecs.Get[*components.CollisionComponent](world, entity.ID, components.Collision)
		if hasPos && hasBox {
			result = append(result, collider{id: entity.ID, pos: pos, box: box})
		}
	}
	return result
}

func (c collider) overlaps(other collider) bool {
	return Overlaps(*c.pos, *c.box, *other.pos, *other.box)
}

// BulletCollisionSystem resolves bullet hits. Each bullet hits at most one thing.
type BulletCollisionSystem struct{}

// NewBulletCollisionSystem creates a new bullet collision system
func NewBulletCollisionSystem() *BulletCollisionSystem {
	return &BulletCollisionSystem{}
}

// Update checks every bullet against its targets and the walls
func (s *BulletCollisionSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	p := mustPlayer(world, state)
	player := collider{id: p.ID, pos: p.Pos, box: p.Box}
	walls := collidersWithTag(world, components.TagWall)
	enemies := collidersWithTag(world, components.TagEnemy)

	for _, b := range collidersWithTag(world, components.TagBullet) {
		bullet := ecs.MustGet[*components.BulletComponent](world, b.id, components.Bullet)

		switch bullet.Faction {
		case components.PlayerFaction:
			if enemy, hit := firstOverlap(b, enemies); hit {
				world.Despawn(b.id)
				s.hitEnemy(world, enemy.id, p.Player.Damage)
				continue
			}
		case components.EnemyFaction:
			if b.overlaps(player) {
				world.Despawn(b.id)
				DamagePlayer(world, state, b.id)
				continue
			}
		}

		if _, hit := firstOverlap(b, walls); hit {
			world.Despawn(b.id)
		}
	}
}

func firstOverlap(c collider, others []collider) (collider, bool) {
	for _, other := range others {
		if c.overlaps(other) {
			return other, true
		}
	}
	return collider{}, false
}

func (s *BulletCollisionSystem) hitEnemy(world *ecs.World, enemyID ecs.EntityID, damage time.Duration) {
	timeLeft, ok := ecs.Get[*components.TimeLeftComponent](world, enemyID, components.TimeLeft)
	if !ok {
		return
	}

	wasAlive := !timeLeft.IsEmpty()
	timeLeft.Subtract(damage)
	killed := wasAlive && timeLeft.IsEmpty()
	if killed {
		if enemy, ok := ecs.Get[*components.EnemyComponent](world, enemyID, components.Enemy); ok {
			enemy.Slain = true
		}
	}

	playSound(world, EnemyHit)
	world.EmitEvent(EnemyHitEvent{EnemyID: enemyID, Damage: damage, Killed: killed})
}

// ContactDamageSystem hurts the player for touching an enemy
type ContactDamageSystem struct{}

// NewContactDamageSystem creates a new contact damage system
func NewContactDamageSystem() *ContactDamageSystem {
	return &ContactDamageSystem{}
}

// Update applies contact damage from every overlapping enemy
func (s *ContactDamageSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	p := mustPlayer(world, state)
	player := collider{id: p.ID, pos: p.Pos, box: p.Box}

	for _, enemy := range collidersWithTag(world, components.TagEnemy) {
		if enemy.overlaps(player) {
			DamagePlayer(world, state, enemy.id)
		}
	}
}

// DamagePlayer takes a hit off the player's time unless they are invincible,
// then makes them invincible for a moment. It reports whether damage landed.
func DamagePlayer(world *ecs.World, state *GameState, sourceID ecs.EntityID) bool {
	p := mustPlayer(world, state)
	if p.Player.IsInvincible() {
		return false
	}

	p.TimeLeft.Subtract(config.HitDamage)
	p.Player.Invincible = config.InvincibilityTime

	playSound(world, PlayerHit)
	state.Log.AddCombat(fmt.Sprintf("Hit by %s! -%ds", getEntityName(world, sourceID), int(config.HitDamage.Seconds())))
	world.EmitEvent(PlayerHitEvent{SourceID: sourceID, Damage: config.HitDamage, Remaining: p.TimeLeft.Remaining})
	return true
}
