package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

func TestPlayerFlickersWhileInvincible(t *testing.T) {
	rig := newTestRig(t)
	id := rig.state.PlayerID
	anim := ecs.MustGet[*components.AnimationComponent](rig.world, id, components.Animation)
	render := ecs.MustGet[*components.RenderableComponent](rig.world, id, components.Renderable)
	system := NewAnimationSystem()

	DamagePlayer(rig.world, rig.state, ecs.NoEntity)
	rig.run(system)

	assert.True(t, anim.Playing(components.PlayerInvulFrames))
	assert.Equal(t, components.PlayerInvulFrames[0], render.Sprite)

	rig.player().Player.Invincible = 0
	rig.run(system)

	assert.True(t, anim.Playing(components.PlayerFrames))
	assert.Equal(t, components.PlayerFrames[0], render.Sprite)
	assert.Equal(t, config.PlayerFrameTime, anim.FrameTime)
}

func TestAnimationAdvancesOnFrameTime(t *testing.T) {
	rig := newTestRig(t)
	rig.spawner.QueueCorpse(100, 100)
	rig.world.Flush()

	corpse, ok := rig.world.FirstWithTag(components.TagCorpse)
	if !assert.True(t, ok) {
		return
	}
	anim := ecs.MustGet[*components.AnimationComponent](rig.world, corpse.ID, components.Animation)
	render := ecs.MustGet[*components.RenderableComponent](rig.world, corpse.ID, components.Renderable)
	anim.Index, anim.Cooldown = 0, 3*tick

	system := NewAnimationSystem()
	rig.run(system)
	rig.run(system)
	assert.Equal(t, components.DeadEnemyFrames[0], render.Sprite)

	rig.run(system)
	assert.Equal(t, components.DeadEnemyFrames[1], render.Sprite)
	assert.Equal(t, config.CorpseFrameTime, anim.Cooldown)
}
