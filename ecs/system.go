package ecs

import (
	"fmt"
	"time"
)

// System processes entities once per tick. S is the shared game state the
// schedule hands to every system.
type System[S any] interface {
	Update(world *World, state S, dt time.Duration)
}

// SystemFunc adapts a plain function to the System interface
type SystemFunc[S any] func(world *World, state S, dt time.Duration)

// Update calls f
func (f SystemFunc[S]) Update(world *World, state S, dt time.Duration) {
	f(world, state, dt)
}

type scheduledSystem[S any] struct {
	name   string
	system System[S]
	tier   int
}

// Schedule runs systems in dependency tiers. A system's tier is one more than
// the highest tier among its dependencies, so every dependency has finished
// before the system starts. Within a tier systems run in registration order.
type Schedule[S any] struct {
	systems []scheduledSystem[S]
	tiers   map[string]int
}

// NewSchedule creates an empty schedule
func NewSchedule[S any]() *Schedule[S] {
	return &Schedule[S]{tiers: make(map[string]int)}
}

// Add registers a system under name. Every dependency must already be registered.
func (s *Schedule[S]) Add(system System[S], name string, deps ...string) error {
	if _, exists := s.tiers[name]; exists {
		return fmt.Errorf("schedule: duplicate system %q", name)
	}

	tier := 0
	for _, dep := range deps {
		depTier, exists := s.tiers[dep]
		if !exists {
			return fmt.Errorf("schedule: system %q depends on unknown system %q", name, dep)
		}
		tier = max(tier, depTier+1)
	}

	s.tiers[name] = tier
	entry := scheduledSystem[S]{name: name, system: system, tier: tier}

	// keep systems ordered by tier, stable on registration order
	pos := len(s.systems)
	for pos > 0 && s.systems[pos-1].tier > tier {
		pos--
	}
	s.systems = append(s.systems, scheduledSystem[S]{})
	copy(s.systems[pos+1:], s.systems[pos:])
	s.systems[pos] = entry
	return nil
}

// MustAdd is Add for fixed wiring; it panics on error
func (s *Schedule[S]) MustAdd(system System[S], name string, deps ...string) *Schedule[S] {
	if err := s.Add(system, name, deps...); err != nil {
		panic(err)
	}
	return s
}

// Order returns the system names in execution order
func (s *Schedule[S]) Order() []string {
	names := make([]string, len(s.systems))
	for i, entry := range s.systems {
		names[i] = entry.name
	}
	return names
}

// Tier returns the tier of a registered system
func (s *Schedule[S]) Tier(name string) (int, bool) {
	tier, exists := s.tiers[name]
	return tier, exists
}

// Run executes one tick: every system in order, then a single world flush.
func (s *Schedule[S]) Run(world *World, state S, dt time.Duration) {
	for _, entry := range s.systems {
		entry.system.Update(world, state, dt)
	}
	world.Flush()
}
