package systems

import (
	"ebiten-timecrawl/components"
	"ebiten-timecrawl/ecs"
)

// RoomState is where the player is in the clear-and-advance loop
type RoomState int

const (
	// InRoom means enemies are still alive
	InRoom RoomState = iota
	// Clearing means the room is empty and the teleport is open
	Clearing
	// Transitioning is the tick in which the next room is built
	Transitioning
)

func (r RoomState) String() string {
	switch r {
	case Clearing:
		return "clearing"
	case Transitioning:
		return "transitioning"
	}
	return "in room"
}

// GameState is the shared simulation state handed to every system
type GameState struct {
	Map            *components.GameMap
	FloorsVisited  int
	NumEnemiesLeft int
	GameOver       bool
	Input          Input
	PlayerID       ecs.EntityID
	Room           RoomState

	// Screen offset that centers the player
	CameraX, CameraY float64

	Log *MessageLog
}

// playerParts bundles the components every player-facing system needs
type playerParts struct {
	ID       ecs.EntityID
	Pos      *components.PositionComponent
	Box      *components.CollisionComponent
	Player   *components.PlayerComponent
	Shooter  *components.ShooterComponent
	TimeLeft *components.TimeLeftComponent
}

// mustPlayer fetches the player. A missing component means the world is broken.
func mustPlayer(world *ecs.World, state *GameState) playerParts {
	id := state.PlayerID
	return playerParts{
		ID:       id,
		Pos:      ecs.MustGet[*components.PositionComponent](world, id, components.Position),
		Box:      ecs.MustGet[*components.CollisionComponent](world, id, components.Collision),
		Player:   ecs.MustGet[*components.PlayerComponent](world, id, components.Player),
		Shooter:  ecs.MustGet[*components.ShooterComponent](world, id, components.Shooter),
		TimeLeft: ecs.MustGet[*components.TimeLeftComponent](world, id, components.TimeLeft),
	}
}

// Helper function to get an entity's name or description
func getEntityName(world *ecs.World, entityID ecs.EntityID) string {
	if name, ok := ecs.Get[*components.NameComponent](world, entityID, components.Name); ok {
		return name.Name
	}
	return "something"
}
