package systems

import (
	"ebiten-timecrawl/ecs"
)

// Sound identifies a sound effect
type Sound int

const (
	EnemyDeath Sound = iota
	EnemyHit
	PlayerHit
	PlayerShoot
	EnemyShoot
)

// Sounds lists every sound effect
var Sounds = []Sound{EnemyDeath, EnemyHit, PlayerHit, PlayerShoot, EnemyShoot}

func (s Sound) String() string {
	switch s {
	case EnemyDeath:
		return "enemy death"
	case EnemyHit:
		return "enemy hit"
	case PlayerHit:
		return "player hit"
	case PlayerShoot:
		return "player shoot"
	case EnemyShoot:
		return "enemy shoot"
	}
	return "unknown"
}

// SoundPlayer plays sound effects. Implementations must not block the tick.
type SoundPlayer interface {
	Play(sound Sound)
}

// SilentPlayer discards every sound
type SilentPlayer struct{}

// Play does nothing
func (SilentPlayer) Play(Sound) {}

// AudioSystem forwards sound events raised by the simulation to a player
type AudioSystem struct {
	player SoundPlayer
	muted  bool
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	if player == nil {
		player = SilentPlayer{}
	}
	return &AudioSystem{player: player}
}

// Initialize subscribes to sound events
func (s *AudioSystem) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(EventSound, func(event ecs.Event) {
		if s.muted {
			return
		}
		s.player.Play(event.(SoundEvent).Sound)
	})
}

// SetMuted silences or restores playback
func (s *AudioSystem) SetMuted(muted bool) {
	s.muted = muted
}

// IsMuted reports whether playback is silenced
func (s *AudioSystem) IsMuted() bool {
	return s.muted
}

func playSound(world *ecs.World, sound Sound) {
	world.EmitEvent(SoundEvent{Sound: sound})
}
