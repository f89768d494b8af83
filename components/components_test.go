package components

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ebiten-timecrawl/config"
)

func TestTimeLeftStaysInRange(t *testing.T) {
	tl := NewTimeLeftComponent(180 * time.Second)

	tl.Subtract(200 * time.Second)
	assert.Equal(t, time.Duration(0), tl.Remaining)
	assert.True(t, tl.IsEmpty())

	tl.Add(500 * time.Second)
	assert.Equal(t, 180*time.Second, tl.Remaining)

	tl.Subtract(90 * time.Second)
	assert.InDelta(t, 0.5, tl.Fraction(), 1e-9)
}

func TestShooterCooldownCycle(t *testing.T) {
	s := NewShooterComponent(time.Second, 5, rand.New(rand.NewSource(1)))

	assert.GreaterOrEqual(t, s.Cooldown, time.Second)
	assert.LessOrEqual(t, s.Cooldown, time.Second+config.MaxFireDither)
	assert.False(t, s.Ready())

	s.Cool(2 * time.Second)
	assert.Equal(t, time.Duration(0), s.Cooldown)
	assert.True(t, s.Ready())

	s.Fire()
	assert.Equal(t, time.Second, s.Cooldown)
}

func TestShooterRateUpgradesFollowTableAndFloor(t *testing.T) {
	s := NewShooterComponent(time.Second, 5, nil)

	s.UpgradeRate()
	assert.Equal(t, 800*time.Millisecond, s.Interval)
	s.UpgradeRate()
	assert.Equal(t, 600*time.Millisecond, s.Interval)

	for i := 0; i < 20; i++ {
		s.UpgradeRate()
	}
	assert.Equal(t, config.MinFireInterval, s.Interval)
	assert.Equal(t, len(config.FireRateUpgrades), s.Upgrades)
}

func TestShootDirectionVectors(t *testing.T) {
	x, y := UpLeft.Vector()
	assert.Equal(t, -0.707, x)
	assert.Equal(t, 0.707, y)

	x, y = DownRight.Vector()
	assert.Equal(t, 0.707, x)
	assert.Equal(t, -0.707, y)

	x, y = NoDirection.Vector()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTileConversions(t *testing.T) {
	x, y := TileCoord{X: 5, Y: 5}.Center()
	assert.Equal(t, 330.0, x)
	assert.Equal(t, 330.0, y)

	assert.Equal(t, TileCoord{X: 5, Y: 0}, TileAtPoint(359.9, 0))
	assert.Equal(t, TileCoord{X: 6, Y: -1}, TileAtPoint(360, -0.1))
}

func TestGameMapOutOfRangeIsNotWall(t *testing.T) {
	var m GameMap
	m.SetTile(0, 0, TileWall)

	assert.True(t, m.IsWall(0, 0))
	assert.False(t, m.IsWall(-1, 0))
	assert.False(t, m.IsWall(config.GridWidth, 0))
	assert.Equal(t, TileNothing, m.TileAt(0, config.GridHeight))
}

func TestAnimationCycles(t *testing.T) {
	a := NewAnimationComponent(100*time.Millisecond, DeadEnemyFrames, nil)

	assert.Equal(t, Sprite(7), a.Current())
	assert.True(t, a.Advance(config.TickDuration))
	assert.Equal(t, Sprite(8), a.Current())
	assert.False(t, a.Advance(50*time.Millisecond))
	assert.True(t, a.Advance(50*time.Millisecond))
	assert.True(t, a.Advance(100*time.Millisecond))
	assert.Equal(t, Sprite(7), a.Current())

	a.Restart(time.Second, PlayerInvulFrames)
	assert.True(t, a.Playing(PlayerInvulFrames))
	assert.True(t, a.Advance(config.TickDuration))
	assert.Equal(t, Sprite(20), a.Current())
	assert.False(t, a.Playing(PlayerFrames))
}
