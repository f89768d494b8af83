package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trace struct {
	ran []string
}

func record(name string) SystemFunc[*trace] {
	return func(_ *World, tr *trace, _ time.Duration) {
		tr.ran = append(tr.ran, name)
	}
}

func TestScheduleRunsDependenciesFirst(t *testing.T) {
	s := NewSchedule[*trace]()
	s.MustAdd(record("move"), "move").
		MustAdd(record("shoot"), "shoot", "move").
		MustAdd(record("collide"), "collide", "shoot").
		MustAdd(record("timers"), "timers").
		MustAdd(record("kill"), "kill", "collide", "timers")

	tr := &trace{}
	s.Run(NewWorld(), tr, time.Second/60)

	index := func(name string) int {
		for i, n := range tr.ran {
			if n == name {
				return i
			}
		}
		return -1
	}
	assert.Less(t, index("move"), index("shoot"))
	assert.Less(t, index("shoot"), index("collide"))
	assert.Less(t, index("collide"), index("kill"))
	assert.Less(t, index("timers"), index("kill"))

	tier, ok := s.Tier("kill")
	require.True(t, ok)
	assert.Equal(t, 3, tier)
	tier, _ = s.Tier("timers")
	assert.Equal(t, 0, tier)
	assert.Equal(t, []string{"move", "timers", "shoot", "collide", "kill"}, s.Order())
}

func TestScheduleRejectsUnknownAndDuplicateNames(t *testing.T) {
	s := NewSchedule[*trace]()
	require.NoError(t, s.Add(record("a"), "a"))

	assert.Error(t, s.Add(record("a"), "a"))
	assert.Error(t, s.Add(record("b"), "b", "missing"))
	assert.Panics(t, func() { s.MustAdd(record("c"), "c", "nope") })
}

func TestScheduleFlushesOnlyAfterAllSystems(t *testing.T) {
	w := NewWorld()
	victim := w.CreateEntity()
	s := NewSchedule[*trace]()

	var aliveInLater bool
	s.MustAdd(SystemFunc[*trace](func(w *World, _ *trace, _ time.Duration) {
		w.Despawn(victim.ID)
		w.Spawn().Tag("new")
	}), "first")
	s.MustAdd(SystemFunc[*trace](func(w *World, _ *trace, _ time.Duration) {
		aliveInLater = w.IsAlive(victim.ID) && w.CountWithTag("new") == 0
	}), "second", "first")

	s.Run(w, &trace{}, time.Second/60)

	assert.True(t, aliveInLater)
	assert.False(t, w.IsAlive(victim.ID))
	assert.Equal(t, 1, w.CountWithTag("new"))
}
