package systems

import (
	"fmt"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/generation"
	"ebiten-timecrawl/spawners"
)

// DeathSystem removes enemies whose time ran out and leaves their remains
type DeathSystem struct {
	spawner  *spawners.EntitySpawner
	director *generation.Director
}

// NewDeathSystem creates a new death system
func NewDeathSystem(spawner *spawners.EntitySpawner, director *generation.Director) *DeathSystem {
	return &DeathSystem{spawner: spawner, director: director}
}

// Update despawns every expired enemy
func (s *DeathSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	for _, entity := range world.GetEntitiesWithTag(components.TagEnemy) {
		if world.IsPendingDespawn(entity.ID) {
			continue
		}
		timeLeft, ok := ecs.Get[*components.TimeLeftComponent](world, entity.ID, components.TimeLeft)
		if !ok || !timeLeft.IsEmpty() {
			continue
		}

		enemy := ecs.MustGet[*components.EnemyComponent](world, entity.ID, components.Enemy)
		pos := ecs.MustGet[*components.PositionComponent](world, entity.ID, components.Position)
		name := getEntityName(world, entity.ID)

		world.Despawn(entity.ID)
		state.NumEnemiesLeft = max(state.NumEnemiesLeft-1, 0)
		playSound(world, EnemyDeath)
		s.spawner.QueueCorpse(pos.X, pos.Y)

		if enemy.Slain {
			state.Log.AddCombat(fmt.Sprintf("%s destroyed!", name))
			if s.director.RollDrop() {
				s.spawner.QueueItem(components.NewPlusTimeItem(pos.Tile(), config.DropTime, 0))
			}
		} else {
			state.Log.Add(fmt.Sprintf("%s ran out of time.", name))
		}

		logger.Debug().
			Str("enemy", name).
			Str("variant", enemy.Variant.String()).
			Bool("slain", enemy.Slain).
			Int("left", state.NumEnemiesLeft).
			Msg("enemy died")

		world.EmitEvent(EnemyDeathEvent{
			EnemyID: entity.ID,
			Variant: enemy.Variant,
			Slain:   enemy.Slain,
			X:       pos.X,
			Y:       pos.Y,
		})
	}
}

// GameOverSystem ends the run when the player is out of time
type GameOverSystem struct{}

// NewGameOverSystem creates a new game over system
func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

// Update flags the game as over once the player's timer is empty
func (s *GameOverSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	if state.GameOver {
		return
	}

	p := mustPlayer(world, state)
	if !p.TimeLeft.IsEmpty() {
		return
	}

	state.GameOver = true
	state.Log.AddAlert(fmt.Sprintf("Out of time! You cleared %d rooms.", state.FloorsVisited))
	logger.Info().Int("floors", state.FloorsVisited).Msg("game over")
	world.EmitEvent(GameOverEvent{Floors: state.FloorsVisited})
}
