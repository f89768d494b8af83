package components

import (
	"math/rand"
	"time"

	"ebiten-timecrawl/config"
)

// TimeLeftComponent is both health and lifetime: an entity dies when it runs out.
type TimeLeftComponent struct {
	Remaining time.Duration
	Max       time.Duration
}

// NewTimeLeftComponent creates a full timer
func NewTimeLeftComponent(total time.Duration) *TimeLeftComponent {
	return &TimeLeftComponent{Remaining: total, Max: total}
}

// Subtract removes time, never going below zero
func (t *TimeLeftComponent) Subtract(d time.Duration) {
	t.Remaining = max(t.Remaining-d, 0)
}

// Add grants time, never going above the maximum
func (t *TimeLeftComponent) Add(d time.Duration) {
	t.Remaining = min(t.Remaining+d, t.Max)
}

// IsEmpty reports whether the timer ran out
func (t *TimeLeftComponent) IsEmpty() bool {
	return t.Remaining <= 0
}

// Fraction returns remaining/max in [0, 1]
func (t *TimeLeftComponent) Fraction() float64 {
	if t.Max <= 0 {
		return 0
	}
	return float64(t.Remaining) / float64(t.Max)
}

// ShooterComponent fires projectiles at a fixed interval
type ShooterComponent struct {
	Interval time.Duration
	Cooldown time.Duration
	Speed    float64
	Upgrades int
}

// NewShooterComponent creates a shooter whose first shot is delayed by the
// interval plus a random dither.
func NewShooterComponent(interval time.Duration, speed float64, rng *rand.Rand) *ShooterComponent {
	var dither time.Duration
	if rng != nil {
		dither = time.Duration(rng.Int63n(int64(config.MaxFireDither)+1))
	}
	return &ShooterComponent{
		Interval: interval,
		Cooldown: interval + dither,
		Speed:    speed,
	}
}

// Ready reports whether the shooter may fire this tick
func (s *ShooterComponent) Ready() bool {
	return s.Cooldown <= 0
}

// Fire restarts the cooldown
func (s *ShooterComponent) Fire() {
	s.Cooldown = s.Interval
}

// Cool decays the cooldown, clamped at zero
func (s *ShooterComponent) Cool(dt time.Duration) {
	s.Cooldown = max(s.Cooldown-dt, 0)
}

// UpgradeRate applies the next fire rate upgrade, if any are left
func (s *ShooterComponent) UpgradeRate() {
	if s.Upgrades >= len(config.FireRateUpgrades) {
		return
	}
	s.Interval = max(s.Interval-config.FireRateUpgrades[s.Upgrades], config.MinFireInterval)
	s.Upgrades++
}

// ShootDirection is one of the eight directions the player can fire in
type ShootDirection int

const (
	NoDirection ShootDirection = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Vector returns the direction scaled to unit length on cardinal axes and
// 0.707 per axis on diagonals. Up is +Y.
func (d ShootDirection) Vector() (float64, float64) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -config.Diagonal, config.Diagonal
	case UpRight:
		return config.Diagonal, config.Diagonal
	case DownLeft:
		return -config.Diagonal, -config.Diagonal
	case DownRight:
		return config.Diagonal, -config.Diagonal
	}
	return 0, 0
}

func (d ShootDirection) String() string {
	return [...]string{"none", "up", "down", "left", "right", "up-left", "up-right", "down-left", "down-right"}[d]
}

// PlayerComponent holds the player's combat stats
type PlayerComponent struct {
	Aim        ShootDirection
	MoveX      float64 // last resolved movement, used as a look hint and for bullet drift
	MoveY      float64
	Damage     time.Duration
	Speed      float64
	Invincible time.Duration
}

// NewPlayerComponent creates a player with starting stats
func NewPlayerComponent() *PlayerComponent {
	return &PlayerComponent{
		Damage: config.PlayerDamage,
		Speed:  config.PlayerSpeed,
	}
}

// IsInvincible reports whether incoming damage is currently ignored
func (p *PlayerComponent) IsInvincible() bool {
	return p.Invincible > 0
}

// EnemyVariant is the archetype an enemy is spawned from
type EnemyVariant int

const (
	Stationary EnemyVariant = iota
	NoShoot
	Full
)

func (v EnemyVariant) String() string {
	switch v {
	case Stationary:
		return "stationary"
	case NoShoot:
		return "no_shoot"
	case Full:
		return "full"
	}
	return "unknown"
}

// EnemyComponent marks a hostile entity
type EnemyComponent struct {
	Variant EnemyVariant
	Moves   bool
	Speed   float64 // units per tick when chasing
	Slain   bool    // set when player damage emptied the timer
}

// Faction says who fired a bullet
type Faction int

const (
	PlayerFaction Faction = iota
	EnemyFaction
)

// BulletComponent is a projectile moving at constant velocity
type BulletComponent struct {
	VelX, VelY float64
	Faction    Faction
}

// PowerUp is a permanent player upgrade
type PowerUp int

const (
	SpeedPowerUp PowerUp = iota
	ShootRatePowerUp
	ProjectileSpeedPowerUp
	DamagePowerUp
)

// PowerUps lists every power-up, in the order random picks index into
var PowerUps = []PowerUp{SpeedPowerUp, ShootRatePowerUp, ProjectileSpeedPowerUp, DamagePowerUp}

func (p PowerUp) String() string {
	switch p {
	case SpeedPowerUp:
		return "speed"
	case ShootRatePowerUp:
		return "fire rate"
	case ProjectileSpeedPowerUp:
		return "projectile speed"
	case DamagePowerUp:
		return "damage"
	}
	return "unknown"
}

// ItemKind distinguishes power-ups from time pickups
type ItemKind int

const (
	PowerUpItem ItemKind = iota
	PlusTimeItem
)

// ItemComponent is something lying on a tile that the player can collect
type ItemComponent struct {
	Tile    TileCoord
	Kind    ItemKind
	PowerUp PowerUp       // for PowerUpItem
	Time    time.Duration // for PlusTimeItem
	Cost    time.Duration // subtracted from the player's time on pickup
}

// NewPowerUpItem creates a power-up lying on a tile
func NewPowerUpItem(tile TileCoord, powerUp PowerUp, cost time.Duration) *ItemComponent {
	return &ItemComponent{Tile: tile, Kind: PowerUpItem, PowerUp: powerUp, Cost: cost}
}

// NewPlusTimeItem creates a time pickup lying on a tile
func NewPlusTimeItem(tile TileCoord, bonus, cost time.Duration) *ItemComponent {
	return &ItemComponent{Tile: tile, Kind: PlusTimeItem, Time: bonus, Cost: cost}
}

// Sprite returns the resting sprite of the item
func (i *ItemComponent) Sprite() Sprite {
	return i.Frames()[0]
}

// Frames returns the animation of the item
func (i *ItemComponent) Frames() []Sprite {
	if i.Kind == PlusTimeItem {
		return MoarTimeFrames
	}
	switch i.PowerUp {
	case SpeedPowerUp:
		return SpeedPowerFrames
	case ShootRatePowerUp:
		return ShootFastPowerFrames
	case ProjectileSpeedPowerUp:
		return ProjPowerFrames
	default:
		return DamagePowerFrames
	}
}

func (i *ItemComponent) String() string {
	if i.Kind == PlusTimeItem {
		return "+" + i.Time.String()
	}
	return i.PowerUp.String()
}
