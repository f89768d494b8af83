package ecs

// EntityBuilder collects the components and tags of an entity whose creation
// was requested mid-tick. The entity comes alive at the next World.Flush.
type EntityBuilder struct {
	components ComponentMap
	tags       []string
	onCreate   func(*Entity)
}

// With adds a component to the pending entity
func (b *EntityBuilder) With(componentID ComponentID, component Component) *EntityBuilder {
	b.components[componentID] = component
	return b
}

// Tag adds a tag to the pending entity
func (b *EntityBuilder) Tag(tags ...string) *EntityBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// OnCreate registers a callback invoked once the entity exists
func (b *EntityBuilder) OnCreate(fn func(*Entity)) *EntityBuilder {
	b.onCreate = fn
	return b
}

// commandBuffer holds structural changes requested while systems run.
type commandBuffer struct {
	creates []*EntityBuilder
	deletes []EntityID
	queued  map[EntityID]bool
}

func newCommandBuffer() *commandBuffer {
	return &commandBuffer{queued: make(map[EntityID]bool)}
}

func (c *commandBuffer) reset() {
	c.creates = c.creates[:0]
	c.deletes = c.deletes[:0]
	clear(c.queued)
}

// Spawn queues the creation of an entity
func (w *World) Spawn() *EntityBuilder {
	b := &EntityBuilder{components: make(ComponentMap)}
	w.commands.creates = append(w.commands.creates, b)
	return b
}

// Despawn queues the deletion of an entity. Repeated requests for the same
// entity within one tick collapse into one.
func (w *World) Despawn(entityID EntityID) {
	if !w.IsAlive(entityID) || w.commands.queued[entityID] {
		return
	}
	w.commands.queued[entityID] = true
	w.commands.deletes = append(w.commands.deletes, entityID)
}

// IsPendingDespawn reports whether the entity is queued for deletion
func (w *World) IsPendingDespawn(entityID EntityID) bool {
	return w.commands.queued[entityID]
}

// PendingCommands returns the number of queued creations and deletions
func (w *World) PendingCommands() (creates, deletes int) {
	return len(w.commands.creates), len(w.commands.deletes)
}

// Flush applies every queued creation, then every queued deletion.
// Slots released here are handed out again from the next flush on.
func (w *World) Flush() {
	creates := w.commands.creates
	deletes := w.commands.deletes

	for _, b := range creates {
		entity := w.CreateEntity()
		for componentID, component := range b.components {
			w.AddComponent(entity.ID, componentID, component)
		}
		for _, tag := range b.tags {
			w.TagEntity(entity.ID, tag)
		}
		if b.onCreate != nil {
			b.onCreate(entity)
		}
	}

	released := make([]uint32, 0, len(deletes))
	for _, id := range deletes {
		if w.removeEntity(id) {
			released = append(released, id.Index())
		}
	}

	w.commands.reset()
	w.freeSlots = append(w.freeSlots, released...)
}
