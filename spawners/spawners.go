package spawners

import (
	"fmt"
	"math/rand"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/generation"
)

// EntitySpawner manages the creation of game entities. Everything except the
// player is queued on the world and appears at the next flush.
type EntitySpawner struct {
	world      *ecs.World
	templates  *data.TemplateLibrary
	rng        *rand.Rand
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templates *data.TemplateLibrary, rng *rand.Rand, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		templates:  templates,
		rng:        rng,
		logMessage: logFunc,
	}
}

// CreatePlayer creates the player entity at the center of a tile, immediately
func (s *EntitySpawner) CreatePlayer(tile components.TileCoord) *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	s.world.TagEntity(playerEntity.ID, components.TagPlayer)

	s.world.AddComponent(playerEntity.ID, components.Position, components.NewPositionAtTile(tile))
	s.world.AddComponent(playerEntity.ID, components.Collision, components.NewSquareCollision(config.PlayerHalfExtent))
	s.world.AddComponent(playerEntity.ID, components.Renderable, &components.RenderableComponent{
		Sprite: components.SpritePlayer,
		Z:      components.ZPlayer,
	})
	s.world.AddComponent(playerEntity.ID, components.Animation,
		components.NewAnimationComponent(config.PlayerFrameTime, components.PlayerFrames, s.rng))
	s.world.AddComponent(playerEntity.ID, components.Player, components.NewPlayerComponent())
	s.world.AddComponent(playerEntity.ID, components.Shooter,
		components.NewShooterComponent(config.PlayerFireInterval, config.PlayerProjectileSpeed, s.rng))
	s.world.AddComponent(playerEntity.ID, components.TimeLeft, components.NewTimeLeftComponent(config.PlayerStartTime))
	s.world.AddComponent(playerEntity.ID, components.Name, components.NewNameComponent("Player"))

	return playerEntity
}

// QueueRoomTiles queues the scenery of a level: floors, the teleport and walls.
// Walls carry a collision box so bullets stop on them.
func (s *EntitySpawner) QueueRoomTiles(gameMap *components.GameMap) {
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			tile := gameMap.TileAt(x, y)
			coord := components.TileCoord{X: x, Y: y}

			if tile == components.TileWall {
				sprite, flip := generation.WallSprite(gameMap, x, y)
				s.world.Spawn().
					With(components.Position, components.NewPositionAtTile(coord)).
					With(components.Collision, components.NewSquareCollision(config.WallHalfExtent)).
					With(components.Renderable, &components.RenderableComponent{Sprite: sprite, Z: components.ZWall, FlipX: flip}).
					Tag(components.TagWall, components.TagRoom)
				continue
			}

			sprite, drawn := generation.TileSprite(tile)
			if !drawn {
				continue
			}
			s.world.Spawn().
				With(components.Position, components.NewPositionAtTile(coord)).
				With(components.Renderable, &components.RenderableComponent{Sprite: sprite, Z: components.ZFloor}).
				Tag(components.TagRoom)
		}
	}
}

// QueueEnemy queues an enemy of the given variant, scaled for the floor
func (s *EntitySpawner) QueueEnemy(variant components.EnemyVariant, tile components.TileCoord, floor int) error {
	template, exists := s.templates.GetEnemy(variant.String())
	if !exists {
		return fmt.Errorf("no template found for enemy variant '%s'", variant)
	}

	builder := s.world.Spawn().
		With(components.Position, components.NewPositionAtTile(tile)).
		With(components.Collision, &components.CollisionComponent{HalfW: template.HalfWidth, HalfH: template.HalfHeight}).
		With(components.Renderable, &components.RenderableComponent{Sprite: components.Sprite(template.Sprite), Z: components.ZEnemy}).
		With(components.TimeLeft, components.NewTimeLeftComponent(generation.EnemyTime(floor))).
		With(components.Name, components.NewNameComponent(template.Name)).
		With(components.Enemy, &components.EnemyComponent{
			Variant: variant,
			Moves:   template.Moves,
			Speed:   generation.EnemySpeed(floor),
		}).
		Tag(components.TagEnemy, components.TagRoom).
		Tag(template.Tags...)

	if template.Shoots {
		builder.With(components.Shooter,
			components.NewShooterComponent(config.EnemyFireInterval, generation.EnemyBulletSpeed(floor), s.rng))
	}

	if len(template.Frames) > 0 {
		frames := make([]components.Sprite, len(template.Frames))
		for i, frame := range template.Frames {
			frames[i] = components.Sprite(frame)
		}
		builder.With(components.Animation, components.NewAnimationComponent(template.FrameTime(), frames, s.rng))
	}

	return nil
}

// QueueBullet queues a projectile
func (s *EntitySpawner) QueueBullet(x, y, velX, velY float64, faction components.Faction) {
	sprite, name := components.SpritePlayerBullet, "your own bullet"
	if faction == components.EnemyFaction {
		sprite, name = components.SpriteEnemyBullet, "an enemy bullet"
	}

	s.world.Spawn().
		With(components.Position, &components.PositionComponent{X: x, Y: y}).
		With(components.Collision, components.NewSquareCollision(config.BulletHalfExtent)).
		With(components.Renderable, &components.RenderableComponent{Sprite: sprite, Z: components.ZBullet}).
		With(components.Bullet, &components.BulletComponent{VelX: velX, VelY: velY, Faction: faction}).
		With(components.Name, components.NewNameComponent(name)).
		Tag(components.TagBullet, components.TagRoom)
}

// QueueItem queues an item on its tile
func (s *EntitySpawner) QueueItem(item *components.ItemComponent) {
	s.world.Spawn().
		With(components.Position, components.NewPositionAtTile(item.Tile)).
		With(components.Renderable, &components.RenderableComponent{Sprite: item.Sprite(), Z: components.ZItem}).
		With(components.Animation, components.NewAnimationComponent(config.ItemFrameTime, item.Frames(), s.rng)).
		With(components.Item, item).
		With(components.Name, components.NewNameComponent(item.String())).
		Tag(components.TagItem, components.TagRoom)

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("A %s pickup appears", item))
	}
}

// QueueCorpse queues the remains of an enemy
func (s *EntitySpawner) QueueCorpse(x, y float64) {
	s.world.Spawn().
		With(components.Position, &components.PositionComponent{X: x, Y: y}).
		With(components.Renderable, &components.RenderableComponent{Sprite: components.DeadEnemyFrames[0], Z: components.ZCorpse}).
		With(components.Animation, components.NewAnimationComponent(config.CorpseFrameTime, components.DeadEnemyFrames, s.rng)).
		Tag(components.TagCorpse, components.TagRoom)
}
