package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/ecs"
)

func TestDeathSystemRemovesExpiredEnemies(t *testing.T) {
	rig := newTestRig(t)
	dying := rig.addEnemy(t, components.NoShoot, components.TileCoord{X: 5, Y: 5})
	living := rig.addEnemy(t, components.Full, components.TileCoord{X: 7, Y: 7})
	ecs.MustGet[*components.TimeLeftComponent](rig.world, dying, components.TimeLeft).Remaining = 0

	var deaths []EnemyDeathEvent
	rig.world.GetEventManager().Subscribe(EventEnemyDeath, func(e ecs.Event) {
		deaths = append(deaths, e.(EnemyDeathEvent))
	})

	rig.run(NewDeathSystem(rig.spawner, rig.director))

	assert.False(t, rig.world.IsAlive(dying))
	assert.True(t, rig.world.IsAlive(living))
	assert.Equal(t, 1, rig.state.NumEnemiesLeft)
	assert.Equal(t, 1, rig.world.CountWithTag(components.TagCorpse))
	assert.Equal(t, 1, rig.sounds.count(EnemyDeath))

	// timed out, not shot: never drops anything
	assert.Zero(t, rig.world.CountWithTag(components.TagItem))
	assert.Contains(t, rig.state.Log.RecentMessages(1)[0].Text, "ran out of time")

	require.Len(t, deaths, 1)
	assert.False(t, deaths[0].Slain)
	assert.Equal(t, components.NoShoot, deaths[0].Variant)
}

func TestSlainEnemiesSometimesDropTime(t *testing.T) {
	rig := newTestRig(t)
	tile := components.TileCoord{X: 5, Y: 5}

	const kills = 200
	for i := 0; i < kills; i++ {
		id := rig.addEnemy(t, components.NoShoot, tile)
		ecs.MustGet[*components.TimeLeftComponent](rig.world, id, components.TimeLeft).Remaining = 0
		ecs.MustGet[*components.EnemyComponent](rig.world, id, components.Enemy).Slain = true
		rig.run(NewDeathSystem(rig.spawner, rig.director))
	}

	drops := rig.world.CountWithTag(components.TagItem)
	assert.Equal(t, kills, rig.world.CountWithTag(components.TagCorpse))
	assert.Zero(t, rig.state.NumEnemiesLeft)
	assert.Greater(t, drops, kills/10)
	assert.Less(t, drops, kills/2)

	for _, entity := range rig.world.GetEntitiesWithTag(components.TagItem) {
		item := ecs.MustGet[*components.ItemComponent](rig.world, entity.ID, components.Item)
		assert.Equal(t, components.PlusTimeItem, item.Kind)
		assert.Equal(t, tile, item.Tile)
		assert.Zero(t, item.Cost)
	}
}

func TestDeathSystemSkipsEnemiesAlreadyDespawning(t *testing.T) {
	rig := newTestRig(t)
	id := rig.addEnemy(t, components.NoShoot, components.TileCoord{X: 5, Y: 5})
	ecs.MustGet[*components.TimeLeftComponent](rig.world, id, components.TimeLeft).Remaining = 0
	rig.world.Despawn(id)

	NewDeathSystem(rig.spawner, rig.director).Update(rig.world, rig.state, tick)

	assert.Equal(t, 1, rig.state.NumEnemiesLeft)
	assert.Zero(t, rig.sounds.count(EnemyDeath))
}

func TestGameOverOnlyFiresOnce(t *testing.T) {
	rig := newTestRig(t)
	var overs int
	rig.world.GetEventManager().Subscribe(EventGameOver, func(ecs.Event) { overs++ })

	system := NewGameOverSystem()
	rig.run(system)
	assert.False(t, rig.state.GameOver)

	rig.player().TimeLeft.Remaining = 0
	rig.run(system)
	rig.run(system)

	assert.True(t, rig.state.GameOver)
	assert.Equal(t, 1, overs)
}
