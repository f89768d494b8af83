package systems

import (
	"fmt"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/ecs"
)

// PickupSystem applies items the player is standing on
type PickupSystem struct{}

// NewPickupSystem creates a new pickup system
func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

// Update collects every item on the player's tile
func (s *PickupSystem) Update(world *ecs.World, state *GameState, dt time.Duration) {
	p := mustPlayer(world, state)
	tile := p.Pos.Tile()

	for _, entity := range world.GetEntitiesWithTag(components.TagItem) {
		if world.IsPendingDespawn(entity.ID) {
			continue
		}
		item, ok := ecs.Get[*components.ItemComponent](world, entity.ID, components.Item)
		if !ok || item.Tile != tile {
			continue
		}

		ApplyItem(item, p.Player, p.Shooter, p.TimeLeft)
		world.Despawn(entity.ID)

		if item.Cost > 0 {
			state.Log.AddItem(fmt.Sprintf("Picked up %s for %ds", item, int(item.Cost.Seconds())))
		} else {
			state.Log.AddItem(fmt.Sprintf("Picked up %s", item))
		}
		world.EmitEvent(ItemPickupEvent{Item: *item})
	}
}

// ApplyItem grants the item's effect and then charges its cost
func ApplyItem(item *components.ItemComponent, player *components.PlayerComponent, shooter *components.ShooterComponent, timeLeft *components.TimeLeftComponent) {
	switch item.Kind {
	case components.PowerUpItem:
		switch item.PowerUp {
		case components.DamagePowerUp:
			player.Damage += config.DamageBonus
		case components.SpeedPowerUp:
			player.Speed += config.SpeedBonus
		case components.ProjectileSpeedPowerUp:
			shooter.Speed += config.ProjectileSpeedBonus
		case components.ShootRatePowerUp:
			shooter.UpgradeRate()
		}
	case components.PlusTimeItem:
		timeLeft.Add(item.Time)
	}

	timeLeft.Subtract(item.Cost)
}
