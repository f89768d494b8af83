package systems

import (
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/ecs"
)

// Event type constants
const (
	EventSound       ecs.EventType = "sound"
	EventEnemyHit    ecs.EventType = "enemy_hit"
	EventEnemyDeath  ecs.EventType = "enemy_death"
	EventPlayerHit   ecs.EventType = "player_hit"
	EventItemPickup  ecs.EventType = "item_pickup"
	EventRoomCleared ecs.EventType = "room_cleared"
	EventRoomChanged ecs.EventType = "room_changed"
	EventGameOver    ecs.EventType = "game_over"
)

// SoundEvent asks the audio back-end to play a sound
type SoundEvent struct {
	Sound Sound
}

// Type returns the event type
func (e SoundEvent) Type() ecs.EventType {
	return EventSound
}

// EnemyHitEvent is emitted when a player bullet strikes an enemy
type EnemyHitEvent struct {
	EnemyID ecs.EntityID
	Damage  time.Duration
	Killed  bool
}

// Type returns the event type
func (e EnemyHitEvent) Type() ecs.EventType {
	return EventEnemyHit
}

// EnemyDeathEvent is emitted when an enemy is removed
type EnemyDeathEvent struct {
	EnemyID ecs.EntityID
	Variant components.EnemyVariant
	Slain   bool // false when it ran out of time on its own
	X, Y    float64
}

// Type returns the event type
func (e EnemyDeathEvent) Type() ecs.EventType {
	return EventEnemyDeath
}

// PlayerHitEvent is emitted when the player takes damage
type PlayerHitEvent struct {
	SourceID  ecs.EntityID
	Damage    time.Duration
	Remaining time.Duration
}

// Type returns the event type
func (e PlayerHitEvent) Type() ecs.EventType {
	return EventPlayerHit
}

// ItemPickupEvent is emitted when the player collects an item
type ItemPickupEvent struct {
	Item components.ItemComponent
}

// Type returns the event type
func (e ItemPickupEvent) Type() ecs.EventType {
	return EventItemPickup
}

// RoomClearedEvent is emitted once when the last enemy of a room dies
type RoomClearedEvent struct {
	Floor int
}

// Type returns the event type
func (e RoomClearedEvent) Type() ecs.EventType {
	return EventRoomCleared
}

// RoomChangedEvent is emitted when the player teleports to a new room
type RoomChangedEvent struct {
	Floor      int
	LevelIndex int
	Enemies    int
}

// Type returns the event type
func (e RoomChangedEvent) Type() ecs.EventType {
	return EventRoomChanged
}

// GameOverEvent is emitted when the player's time runs out
type GameOverEvent struct {
	Floors int
}

// Type returns the event type
func (e GameOverEvent) Type() ecs.EventType {
	return EventGameOver
}
