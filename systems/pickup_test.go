package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
)

func TestPlusTimePickupChargesCost(t *testing.T) {
	rig := newTestRig(t)
	p := rig.player()
	p.TimeLeft.Remaining = seconds(20)

	rig.spawner.QueueItem(components.NewPlusTimeItem(rig.state.Map.PlayerStart, seconds(10), seconds(5)))
	rig.world.Flush()

	rig.run(NewPickupSystem())

	assert.Equal(t, seconds(25), p.TimeLeft.Remaining)
	assert.Zero(t, rig.world.CountWithTag(components.TagItem))
	assert.Contains(t, rig.state.Log.RecentMessages(1)[0].Text, "for 5s")
}

func TestPickupIgnoresOtherTiles(t *testing.T) {
	rig := newTestRig(t)
	rig.spawner.QueueItem(components.NewPowerUpItem(rig.state.Map.PlayerStart.Offset(1, 0), components.SpeedPowerUp, 0))
	rig.world.Flush()

	rig.run(NewPickupSystem())

	assert.Equal(t, 1, rig.world.CountWithTag(components.TagItem))
	assert.Equal(t, config.PlayerSpeed, rig.player().Player.Speed)
}

func TestApplyPowerUps(t *testing.T) {
	tile := components.TileCoord{X: 1, Y: 1}
	tests := []struct {
		powerUp components.PowerUp
		check   func(t *testing.T, player *components.PlayerComponent, shooter *components.ShooterComponent)
	}{
		{components.DamagePowerUp, func(t *testing.T, player *components.PlayerComponent, _ *components.ShooterComponent) {
			assert.Equal(t, config.PlayerDamage+config.DamageBonus, player.Damage)
		}},
		{components.SpeedPowerUp, func(t *testing.T, player *components.PlayerComponent, _ *components.ShooterComponent) {
			assert.Equal(t, config.PlayerSpeed+config.SpeedBonus, player.Speed)
		}},
		{components.ProjectileSpeedPowerUp, func(t *testing.T, _ *components.PlayerComponent, shooter *components.ShooterComponent) {
			assert.Equal(t, config.PlayerProjectileSpeed+config.ProjectileSpeedBonus, shooter.Speed)
		}},
		{components.ShootRatePowerUp, func(t *testing.T, _ *components.PlayerComponent, shooter *components.ShooterComponent) {
			assert.Equal(t, config.PlayerFireInterval-config.FireRateUpgrades[0], shooter.Interval)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.powerUp.String(), func(t *testing.T) {
			player := components.NewPlayerComponent()
			shooter := components.NewShooterComponent(config.PlayerFireInterval, config.PlayerProjectileSpeed, nil)
			timeLeft := components.NewTimeLeftComponent(config.PlayerStartTime)
			timeLeft.Remaining = seconds(100)

			ApplyItem(components.NewPowerUpItem(tile, tt.powerUp, seconds(7)), player, shooter, timeLeft)

			tt.check(t, player, shooter)
			assert.Equal(t, seconds(93), timeLeft.Remaining)
		})
	}
}

func TestPowerUpCostCanEndTheRun(t *testing.T) {
	player := components.NewPlayerComponent()
	shooter := components.NewShooterComponent(config.PlayerFireInterval, config.PlayerProjectileSpeed, nil)
	timeLeft := components.NewTimeLeftComponent(config.PlayerStartTime)
	timeLeft.Remaining = 3 * time.Second

	ApplyItem(components.NewPowerUpItem(components.TileCoord{}, components.DamagePowerUp, seconds(15)), player, shooter, timeLeft)

	assert.True(t, timeLeft.IsEmpty())
}
