package config

import "time"

// Tick rate of the fixed-step simulation
const (
	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond
)

// Player defaults
const (
	PlayerStartTime       = 180 * time.Second
	PlayerDamage          = 10 * time.Second
	PlayerSpeed           = 4.0
	PlayerFireInterval    = time.Second
	PlayerProjectileSpeed = 5.0
	PlayerHalfExtent      = 22.5

	// Damage taken from enemy bullets and enemy contact
	HitDamage         = 15 * time.Second
	InvincibilityTime = time.Second

	RoomBonusTime = 10 * time.Second
	BulletDrift   = 0.2
	Diagonal      = 0.707
)

// Power-up effects
const (
	DamageBonus          = 10 * time.Second
	SpeedBonus           = 1.0
	ProjectileSpeedBonus = 2.0
	MinFireInterval      = 100 * time.Millisecond
	MaxFireDither        = 300 * time.Millisecond
)

// FireRateUpgrades is how much each successive ShootRate power-up shortens
// the fire interval. Upgrades past the end have no effect.
var FireRateUpgrades = []time.Duration{
	200 * time.Millisecond, 200 * time.Millisecond,
	100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond,
	50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond,
	25 * time.Millisecond, 25 * time.Millisecond, 25 * time.Millisecond,
}

// Enemy defaults
const (
	EnemyFireInterval      = 2 * time.Second
	EnemyHalfExtent        = 22.5
	StationaryHalfWidth    = 30.0
	StationaryHalfHeight   = 50.0
	BulletHalfExtent       = 5.0
	WallHalfExtent         = TileSize / 2.0
	DropChance             = 0.25
	DropTime               = 10 * time.Second
	StationaryVariantOdds  = 0.35
	NoShootVariantOdds     = 0.35
	MaxLevelSelectAttempts = 32
)

// Animation frame durations
const (
	PlayerFrameTime     = time.Second
	InvulFrameTime      = 100 * time.Millisecond
	ItemFrameTime       = 200 * time.Millisecond
	StationaryFrameTime = 500 * time.Millisecond
	CorpseFrameTime     = 300 * time.Millisecond
)

// Message log
const (
	MaxMessages = 100
)
