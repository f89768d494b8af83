package ecs

import (
	"fmt"
	"slices"
)

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager

	generations []uint32
	freeSlots   []uint32
	commands    *commandBuffer
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
		commands:     newCommandBuffer(),
	}
}

func (w *World) allocate() EntityID {
	if n := len(w.freeSlots); n > 0 {
		index := w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
		w.generations[index]++
		return newEntityID(index, w.generations[index])
	}
	index := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	return newEntityID(index, 1)
}

// CreateEntity creates a new entity and adds it to the world immediately.
// Systems running inside a schedule use Spawn instead.
func (w *World) CreateEntity() *Entity {
	entity := newEntity(w.allocate())
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world immediately
func (w *World) RemoveEntity(entityID EntityID) {
	if w.removeEntity(entityID) {
		w.freeSlots = append(w.freeSlots, entityID.Index())
	}
	if w.commands.queued[entityID] {
		delete(w.commands.queued, entityID)
		w.commands.deletes = slices.DeleteFunc(w.commands.deletes, func(id EntityID) bool {
			return id == entityID
		})
	}
}

func (w *World) removeEntity(entityID EntityID) bool {
	entity, exists := w.entities[entityID]
	if !exists {
		return false
	}

	// Remove entity from tag lookups
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
	return true
}

// Clear removes every entity and drops queued commands. Slot generations are
// kept so stale IDs stay invalid.
func (w *World) Clear() {
	for id := range w.entities {
		w.removeEntity(id)
		w.freeSlots = append(w.freeSlots, id.Index())
	}
	w.commands.reset()
}

// IsAlive reports whether the ID refers to a live entity
func (w *World) IsAlive(entityID EntityID) bool {
	_, exists := w.entities[entityID]
	return exists
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	if _, exists := w.components[entityID]; !exists {
		w.components[entityID] = make(ComponentMap)
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	// Update tag lookup
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}

	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))

	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}

	sortEntities(entities)
	return entities
}

// CountWithTag returns how many live entities carry the tag
func (w *World) CountWithTag(tag string) int {
	return len(w.entityTags[tag])
}

// FirstWithTag returns the lowest-ID entity carrying the tag
func (w *World) FirstWithTag(tag string) (*Entity, bool) {
	entities := w.GetEntitiesWithTag(tag)
	if len(entities) == 0 {
		return nil, false
	}
	return entities[0], true
}

// GetAllEntities returns a slice of all entities in the world, ordered by ID
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortEntities(entities)
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			if entity, ok := w.entities[id]; ok {
				entities = append(entities, entity)
			}
		}
	}

	sortEntities(entities)
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

func (w *World) String() string {
	creates, deletes := w.PendingCommands()
	return fmt.Sprintf("World{entities: %d, pending: +%d/-%d}", len(w.entities), creates, deletes)
}

// sorting by slot index keeps iteration independent of map order
func sortEntities(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		return int(a.ID.Index()) - int(b.ID.Index())
	})
}
