package systems

import (
	"fmt"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/generation"
	"ebiten-timecrawl/spawners"
)

// RoomSystem moves the player to a new room once the current one is cleared
// and they step on the teleport.
type RoomSystem struct {
	levels   *data.LevelLibrary
	director *generation.Director
	spawner  *spawners.EntitySpawner
	// Chance in [0, 1] that the next room is a generated cave
	caveChance float64
}

// NewRoomSystem creates a new room system
func NewRoomSystem(levels *data.LevelLibrary, director *generation.Director, spawner *spawners.EntitySpawner) *RoomSystem {
	return &RoomSystem{levels: levels, director: director, spawner: spawner}
}

// SetCaveChance sets how often a generated cave replaces an authored room
func (s *RoomSystem) SetCaveChance(chance float64) {
	s.caveChance = max(0, min(1, chance))
}

// Update tracks the room state and performs the transition
func (s *RoomSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	if state.NumEnemiesLeft > 0 {
		state.Room = InRoom
		return
	}

	pos := ecs.MustGet[*components.PositionComponent](world, state.PlayerID, components.Position)
	if pos.Tile() != state.Map.Teleport {
		state.Room = Clearing
		return
	}

	state.Room = Transitioning
	if err := s.Transition(world, state); err != nil {
		logger.Error().Err(err).Msg("room transition failed")
		state.Room = Clearing
		return
	}
	state.Room = InRoom
}

// Transition tears down the current room and builds the next one. Deletions
// and creations are queued so the swap lands in a single flush.
func (s *RoomSystem) Transition(world *ecs.World, state *GameState) error {
	gameMap, name, err := s.nextMap(state.Map.LevelIndex)
	if err != nil {
		return err
	}

	for _, entity := range world.GetEntitiesWithTag(components.TagRoom) {
		world.Despawn(entity.ID)
	}

	state.Map = gameMap
	p := mustPlayer(world, state)
	p.Pos.X, p.Pos.Y = gameMap.PlayerStart.Center()
	p.TimeLeft.Add(config.RoomBonusTime)
	state.FloorsVisited++

	if err := s.Populate(state); err != nil {
		return err
	}

	state.Log.AddAlert(fmt.Sprintf("Floor %d: %s", state.FloorsVisited, name))
	logger.Info().
		Int("floor", state.FloorsVisited).
		Str("level", name).
		Int("enemies", state.NumEnemiesLeft).
		Msg("entered room")
	world.EmitEvent(RoomChangedEvent{Floor: state.FloorsVisited, LevelIndex: gameMap.LevelIndex, Enemies: state.NumEnemiesLeft})
	return nil
}

// nextMap picks and builds the next room. A failed cave falls back to an
// authored level.
func (s *RoomSystem) nextMap(current int) (*components.GameMap, string, error) {
	rng := s.director.Rand()
	if s.caveChance > 0 && rng.Float64() < s.caveChance {
		gameMap, err := generation.GenerateCave(rng)
		if err == nil {
			return gameMap, generation.CaveName, nil
		}
		logger.Warn().Err(err).Msg("cave generation failed, using an authored level")
	}

	next := generation.SelectNextLevel(rng, s.levels.Len(), current)
	if next < 0 {
		next = rng.Intn(s.levels.Len())
	}
	level, err := s.levels.Get(next)
	if err != nil {
		return nil, "", err
	}
	gameMap, err := generation.BuildLevel(level, next)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build level %q: %w", level.Name, err)
	}
	return gameMap, level.Name, nil
}

// Populate queues the scenery and the enemy roster of state.Map for the
// current floor and resets the enemy count to the roster size.
func (s *RoomSystem) Populate(state *GameState) error {
	s.spawner.QueueRoomTiles(state.Map)

	roster := s.director.GenerateRoster(state.FloorsVisited)
	for _, variant := range roster {
		tile, ok := s.director.PickSpawn(state.Map.SpawnTiles)
		if !ok {
			return fmt.Errorf("level %d has no enemy spawn tiles", state.Map.LevelIndex)
		}
		if err := s.spawner.QueueEnemy(variant, tile, state.FloorsVisited); err != nil {
			return err
		}
	}
	state.NumEnemiesLeft = len(roster)
	return nil
}

// PowerUpSystem places two power-ups beside the teleport once per cleared room
type PowerUpSystem struct {
	director *generation.Director
	spawner  *spawners.EntitySpawner
}

// NewPowerUpSystem creates a new power-up system
func NewPowerUpSystem(director *generation.Director, spawner *spawners.EntitySpawner) *PowerUpSystem {
	return &PowerUpSystem{director: director, spawner: spawner}
}

// Update spawns the reward when the room empties
func (s *PowerUpSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	if state.NumEnemiesLeft > 0 || state.Map.PowerUpsSpawned {
		return
	}
	state.Map.PowerUpsSpawned = true

	cost := generation.PowerUpCost(state.FloorsVisited)
	for _, dx := range []int{-1, 1} {
		tile := state.Map.Teleport.Offset(dx, 0)
		s.spawner.QueueItem(components.NewPowerUpItem(tile, s.director.PickPowerUp(), cost))
	}

	state.Log.AddAlert(fmt.Sprintf("Room cleared! Power-ups cost %ds.", int(cost.Seconds())))
	world.EmitEvent(RoomClearedEvent{Floor: state.FloorsVisited})
}
