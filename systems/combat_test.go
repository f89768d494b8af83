package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

func TestDamagePlayerRespectsInvincibility(t *testing.T) {
	rig := newTestRig(t)
	p := rig.player()

	assert.True(t, DamagePlayer(rig.world, rig.state, ecs.NoEntity))
	assert.Equal(t, config.PlayerStartTime-config.HitDamage, p.TimeLeft.Remaining)
	assert.Equal(t, config.InvincibilityTime, p.Player.Invincible)

	// a second hit inside the window is ignored
	assert.False(t, DamagePlayer(rig.world, rig.state, ecs.NoEntity))
	assert.Equal(t, config.PlayerStartTime-config.HitDamage, p.TimeLeft.Remaining)
	assert.Equal(t, 1, rig.sounds.count(PlayerHit))

	// the window drains with time and then hits land again
	for elapsed := time.Duration(0); elapsed < config.InvincibilityTime; elapsed += tick {
		rig.run(NewTimeSystem())
	}
	assert.False(t, p.Player.IsInvincible())
	assert.True(t, DamagePlayer(rig.world, rig.state, ecs.NoEntity))
}

func TestContactDamage(t *testing.T) {
	rig := newTestRig(t)
	rig.addEnemy(t, components.NoShoot, rig.state.Map.PlayerStart)
	p := rig.player()

	rig.run(NewContactDamageSystem())

	assert.Equal(t, config.PlayerStartTime-config.HitDamage, p.TimeLeft.Remaining)
	assert.Contains(t, rig.state.Log.RecentMessages(1)[0].Text, "Chaser")
}

func TestPlayerBulletHitsOneEnemy(t *testing.T) {
	rig := newTestRig(t)
	tile := components.TileCoord{X: 5, Y: 5}
	first := rig.addEnemy(t, components.NoShoot, tile)
	second := rig.addEnemy(t, components.NoShoot, tile)

	x, y := tile.Center()
	rig.spawner.QueueBullet(x, y, 0, 0, components.PlayerFaction)
	rig.world.Flush()

	rig.run(NewBulletCollisionSystem())

	damage := rig.player().Player.Damage
	firstTime := ecs.MustGet[*components.TimeLeftComponent](rig.world, first, components.TimeLeft)
	secondTime := ecs.MustGet[*components.TimeLeftComponent](rig.world, second, components.TimeLeft)
	assert.Equal(t, firstTime.Max-damage, firstTime.Remaining)
	assert.Equal(t, secondTime.Max, secondTime.Remaining)
	assert.Zero(t, rig.world.CountWithTag(components.TagBullet))
	assert.Equal(t, 1, rig.sounds.count(EnemyHit))
}

func TestKillingShotMarksEnemySlain(t *testing.T) {
	rig := newTestRig(t)
	tile := components.TileCoord{X: 5, Y: 5}
	id := rig.addEnemy(t, components.Full, tile)

	var hits []EnemyHitEvent
	rig.world.GetEventManager().Subscribe(EventEnemyHit, func(e ecs.Event) {
		hits = append(hits, e.(EnemyHitEvent))
	})

	timeLeft := ecs.MustGet[*components.TimeLeftComponent](rig.world, id, components.TimeLeft)
	timeLeft.Remaining = time.Second

	x, y := tile.Center()
	rig.spawner.QueueBullet(x, y, 0, 0, components.PlayerFaction)
	rig.world.Flush()
	rig.run(NewBulletCollisionSystem())

	enemy := ecs.MustGet[*components.EnemyComponent](rig.world, id, components.Enemy)
	assert.True(t, enemy.Slain)
	assert.True(t, timeLeft.IsEmpty())
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Killed)
}

func TestEnemyBulletHitsPlayerAndIgnoresEnemies(t *testing.T) {
	rig := newTestRig(t)
	enemyTile := components.TileCoord{X: 5, Y: 5}
	enemy := rig.addEnemy(t, components.NoShoot, enemyTile)

	// one enemy bullet inside an enemy, one on the player
	ex, ey := enemyTile.Center()
	rig.spawner.QueueBullet(ex, ey, 0, 0, components.EnemyFaction)
	px, py := rig.state.Map.PlayerStart.Center()
	rig.spawner.QueueBullet(px, py, 0, 0, components.EnemyFaction)
	rig.world.Flush()

	rig.run(NewBulletCollisionSystem())

	enemyTime := ecs.MustGet[*components.TimeLeftComponent](rig.world, enemy, components.TimeLeft)
	assert.Equal(t, enemyTime.Max, enemyTime.Remaining)
	assert.Equal(t, config.PlayerStartTime-config.HitDamage, rig.player().TimeLeft.Remaining)
	assert.Equal(t, 1, rig.world.CountWithTag(components.TagBullet))
	assert.Contains(t, rig.state.Log.RecentMessages(1)[0].Text, "an enemy bullet")
}

func TestBulletsStopAtWalls(t *testing.T) {
	rig := newTestRig(t)

	// heading left out of the room through the wall column at x=0
	x, y := components.TileCoord{X: 1, Y: 5}.Center()
	rig.spawner.QueueBullet(x, y, -5, 0, components.PlayerFaction)
	rig.world.Flush()

	for i := 0; i < 10 && rig.world.CountWithTag(components.TagBullet) > 0; i++ {
		rig.run(NewBulletMotionSystem())
		rig.run(NewBulletCollisionSystem())
	}

	assert.Zero(t, rig.world.CountWithTag(components.TagBullet))
}

func TestEnemyShootAimsAtPlayer(t *testing.T) {
	rig := newTestRig(t)
	enemy := rig.addEnemy(t, components.Full, components.TileCoord{X: 2, Y: 6})
	shooter := ecs.MustGet[*components.ShooterComponent](rig.world, enemy, components.Shooter)
	shooter.Cooldown = 0

	rig.run(NewEnemyShootSystem(rig.spawner))

	bullets := rig.world.GetEntitiesWithTag(components.TagBullet)
	require.Len(t, bullets, 1)
	bullet := ecs.MustGet[*components.BulletComponent](rig.world, bullets[0].ID, components.Bullet)
	assert.Equal(t, components.EnemyFaction, bullet.Faction)
	assert.InDelta(t, 0, bullet.VelX, 1e-9)
	assert.InDelta(t, -shooter.Speed, bullet.VelY, 1e-9)
	assert.Equal(t, shooter.Interval, shooter.Cooldown)
	assert.Equal(t, 1, rig.sounds.count(EnemyShoot))
}

func TestPlayerShootsOnlyWhenReady(t *testing.T) {
	rig := newTestRig(t)
	p := rig.player()
	p.Shooter.Cooldown = 0
	rig.state.Input = Input{ShootUp: true}

	rig.run(NewPlayerShootSystem(rig.spawner))
	rig.run(NewPlayerShootSystem(rig.spawner))

	assert.Equal(t, 1, rig.world.CountWithTag(components.TagBullet))
	assert.Equal(t, 1, rig.sounds.count(PlayerShoot))

	for p.Shooter.Cooldown > 0 {
		rig.run(NewCooldownSystem())
	}
	rig.run(NewPlayerShootSystem(rig.spawner))
	assert.Equal(t, 2, rig.world.CountWithTag(components.TagBullet))
}

func TestMutedAudioPlaysNothing(t *testing.T) {
	world := ecs.NewWorld()
	sounds := &recordingPlayer{}
	audio := NewAudioSystem(sounds)
	audio.Initialize(world)
	audio.SetMuted(true)

	playSound(world, EnemyDeath)
	assert.Empty(t, sounds.played)

	audio.SetMuted(false)
	playSound(world, EnemyDeath)
	assert.Equal(t, []Sound{EnemyDeath}, sounds.played)
}
