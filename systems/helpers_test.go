package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/generation"
	"ebiten-timecrawl/spawners"
)

const tick = config.TickDuration

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// recordingPlayer remembers every sound it was asked to play
type recordingPlayer struct {
	played []Sound
}

func (r *recordingPlayer) Play(sound Sound) {
	r.played = append(r.played, sound)
}

func (r *recordingPlayer) count(sound Sound) int {
	n := 0
	for _, s := range r.played {
		if s == sound {
			n++
		}
	}
	return n
}

type testRig struct {
	world    *ecs.World
	state    *GameState
	spawner  *spawners.EntitySpawner
	director *generation.Director
	sounds   *recordingPlayer
}

// openMap is a 10x10 floor room walled on all sides
func openMap() *components.GameMap {
	m := &components.GameMap{}
	for x := 0; x < 12; x++ {
		for y := 0; y < 12; y++ {
			if x == 0 || y == 0 || x == 11 || y == 11 {
				m.SetTile(x, y, components.TileWall)
			} else {
				m.SetTile(x, y, components.TileFloor)
				m.SpawnTiles = append(m.SpawnTiles, components.TileCoord{X: x, Y: y})
			}
		}
	}
	m.PlayerStart = components.TileCoord{X: 2, Y: 2}
	m.SetTile(2, 2, components.TilePlayerStart)
	m.Teleport = components.TileCoord{X: 9, Y: 9}
	m.SetTile(9, 9, components.TileTeleport)
	return m
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	templates, err := data.LoadTemplates()
	require.NoError(t, err)

	rng := testRNG()
	world := ecs.NewWorld()
	rig := &testRig{
		world:    world,
		director: generation.NewDirectorWithRand(rng),
		sounds:   &recordingPlayer{},
		state:    &GameState{Map: openMap(), Log: NewMessageLog()},
	}
	rig.spawner = spawners.NewEntitySpawner(world, templates, rng, nil)
	NewAudioSystem(rig.sounds).Initialize(world)

	player := rig.spawner.CreatePlayer(rig.state.Map.PlayerStart)
	rig.state.PlayerID = player.ID
	rig.spawner.QueueRoomTiles(rig.state.Map)
	world.Flush()
	return rig
}

func (r *testRig) player() playerParts {
	return mustPlayer(r.world, r.state)
}

func (r *testRig) addEnemy(t *testing.T, variant components.EnemyVariant, tile components.TileCoord) ecs.EntityID {
	t.Helper()
	before := make(map[ecs.EntityID]bool)
	for _, e := range r.world.GetEntitiesWithTag(components.TagEnemy) {
		before[e.ID] = true
	}

	require.NoError(t, r.spawner.QueueEnemy(variant, tile, 0))
	r.world.Flush()
	r.state.NumEnemiesLeft++

	for _, e := range r.world.GetEntitiesWithTag(components.TagEnemy) {
		if !before[e.ID] {
			return e.ID
		}
	}
	t.Fatal("enemy was not created")
	return ecs.NoEntity
}

func (r *testRig) run(system ecs.System[*GameState]) {
	system.Update(r.world, r.state, tick)
	r.world.Flush()
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
