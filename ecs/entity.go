package ecs

import "fmt"

// EntityID is a unique identifier for an entity.
// The low 32 bits hold the slot index, the high 32 bits the slot generation,
// so an ID never outlives the entity it was issued for.
type EntityID uint64

// NoEntity is never issued by a World.
const NoEntity EntityID = 0

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the storage slot of the entity
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation returns how many times the slot has been issued
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "player", "enemy")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}
