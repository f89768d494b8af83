package ecs

import "fmt"

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Get fetches a component and asserts it to T in one step.
func Get[T Component](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	comp, exists := w.GetComponent(entityID, componentID)
	if !exists {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// MustGet is Get for components the game cannot run without.
// A missing component is a broken invariant and panics.
func MustGet[T Component](w *World, entityID EntityID, componentID ComponentID) T {
	comp, ok := Get[T](w, entityID, componentID)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %v has no component %d of type %T", entityID, componentID, comp))
	}
	return comp
}
