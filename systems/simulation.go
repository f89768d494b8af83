package systems

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/ecs"
	"ebiten-timecrawl/generation"
	"ebiten-timecrawl/spawners"
)

// Options configures a Simulation. Zero values pick the defaults.
type Options struct {
	// Seed for every random decision; 0 seeds from the clock
	Seed int64
	// Levels to play; nil loads the embedded set
	Levels *data.LevelLibrary
	// Templates for enemies; nil loads the embedded set
	Templates *data.TemplateLibrary
	// Sound output; nil is silent
	Sound SoundPlayer
	// StartLevel picks the first room; negative picks one at random
	StartLevel int
	// CaveChance is the chance in [0, 1] that a room after the first is a
	// generated cave
	CaveChance float64
}

// Drawable is everything a front-end needs to draw one entity
type Drawable struct {
	X, Y         float64 // world center
	HalfW, HalfH float64
	Sprite       components.Sprite
	Z            float64
	FlipX        bool
}

// PlayerStats summarises the player's upgrades for display
type PlayerStats struct {
	Damage          time.Duration
	Speed           float64
	FireInterval    time.Duration
	ProjectileSpeed float64
	Invincible      bool
}

// Simulation owns the world, the shared state and the system schedule
type Simulation struct {
	world     *ecs.World
	state     *GameState
	schedule  *ecs.Schedule[*GameState]
	spawner   *spawners.EntitySpawner
	director  *generation.Director
	rooms     *RoomSystem
	audio     *AudioSystem
	levels    *data.LevelLibrary
	templates *data.TemplateLibrary
	messages  *MessageLog
	opts      Options
	paused    bool
}

// NewSimulation builds the schedule and the first room
func NewSimulation(opts Options) (*Simulation, error) {
	var err error
	if opts.Levels == nil {
		if opts.Levels, err = data.LoadLevels(); err != nil {
			return nil, err
		}
	}
	if opts.Templates == nil {
		if opts.Templates, err = data.LoadTemplates(); err != nil {
			return nil, err
		}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	sim := &Simulation{
		world:     ecs.NewWorld(),
		director:  generation.NewDirectorWithRand(rng),
		levels:    opts.Levels,
		templates: opts.Templates,
		messages:  NewMessageLog(),
		audio:     NewAudioSystem(opts.Sound),
		opts:      opts,
	}
	sim.spawner = spawners.NewEntitySpawner(sim.world, opts.Templates, rng, sim.messages.AddItem)
	sim.rooms = NewRoomSystem(opts.Levels, sim.director, sim.spawner)
	sim.rooms.SetCaveChance(opts.CaveChance)
	sim.audio.Initialize(sim.world)

	sim.schedule = ecs.NewSchedule[*GameState]()
	sim.schedule.
		MustAdd(NewPlayerMovementSystem(), "move_player").
		MustAdd(NewCameraSystem(), "camera", "move_player").
		MustAdd(NewEnemyMovementSystem(), "move_enemies", "move_player").
		MustAdd(NewPlayerShootSystem(sim.spawner), "player_shoot", "move_player").
		MustAdd(NewEnemyShootSystem(sim.spawner), "enemy_shoot", "move_player").
		MustAdd(NewContactDamageSystem(), "contact_damage", "move_enemies").
		MustAdd(NewCooldownSystem(), "cooldowns", "player_shoot", "enemy_shoot").
		MustAdd(NewBulletMotionSystem(), "move_bullets", "player_shoot").
		MustAdd(NewBulletCollisionSystem(), "bullet_collide", "move_bullets").
		MustAdd(NewTimeSystem(), "decrement_time").
		MustAdd(NewDeathSystem(sim.spawner, sim.director), "kill_enemies", "bullet_collide", "contact_damage", "decrement_time").
		MustAdd(sim.rooms, "next_room", "kill_enemies").
		MustAdd(NewPowerUpSystem(sim.director, sim.spawner), "power_ups", "next_room").
		MustAdd(NewPickupSystem(), "pickup_items", "power_ups").
		MustAdd(NewAnimationSystem(), "animate", "decrement_time").
		MustAdd(NewGameOverSystem(), "game_over", "pickup_items")

	if err := sim.setup(); err != nil {
		return nil, err
	}
	return sim, nil
}

func (s *Simulation) setup() error {
	start := s.opts.StartLevel
	if start < 0 || start >= s.levels.Len() {
		start = s.director.Rand().Intn(s.levels.Len())
	}
	level, err := s.levels.Get(start)
	if err != nil {
		return err
	}
	gameMap, err := generation.BuildLevel(level, start)
	if err != nil {
		return fmt.Errorf("failed to build level %q: %w", level.Name, err)
	}

	s.state = &GameState{Map: gameMap, Log: s.messages}
	player := s.spawner.CreatePlayer(gameMap.PlayerStart)
	s.state.PlayerID = player.ID

	if err := s.rooms.Populate(s.state); err != nil {
		return err
	}
	s.world.Flush()

	s.state.CameraX, s.state.CameraY = CameraOffset(gameMap.PlayerStart.Center())
	s.messages.AddAlert(fmt.Sprintf("Floor 0: %s. Clear the room, then find the teleport.", level.Name))
	logger.Info().Int64("seed", s.opts.Seed).Str("level", level.Name).Int("enemies", s.state.NumEnemiesLeft).Msg("simulation ready")
	return nil
}

// Restart throws the current run away and starts over on floor 0
func (s *Simulation) Restart() error {
	s.world.Clear()
	s.messages.Clear()
	s.paused = false
	return s.setup()
}

// Step advances the simulation by one tick. It does nothing while paused or
// after the game is over.
func (s *Simulation) Step(dt time.Duration, input Input) {
	if s.paused || s.state.GameOver {
		return
	}
	s.state.Input = input
	s.schedule.Run(s.world, s.state, dt)
}

// SetPaused freezes or resumes the simulation
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether Step is frozen
func (s *Simulation) Paused() bool {
	return s.paused
}

// SetMuted silences or restores sound effects
func (s *Simulation) SetMuted(muted bool) {
	s.audio.SetMuted(muted)
}

// Muted reports whether sound effects are silenced
func (s *Simulation) Muted() bool {
	return s.audio.IsMuted()
}

// PlayerTime returns the player's remaining and maximum time
func (s *Simulation) PlayerTime() (time.Duration, time.Duration) {
	timeLeft := ecs.MustGet[*components.TimeLeftComponent](s.world, s.state.PlayerID, components.TimeLeft)
	return timeLeft.Remaining, timeLeft.Max
}

// PlayerStats returns the player's current upgrades
func (s *Simulation) PlayerStats() PlayerStats {
	p := mustPlayer(s.world, s.state)
	return PlayerStats{
		Damage:          p.Player.Damage,
		Speed:           p.Player.Speed,
		FireInterval:    p.Shooter.Interval,
		ProjectileSpeed: p.Shooter.Speed,
		Invincible:      p.Player.IsInvincible(),
	}
}

// Floors returns the number of rooms cleared
func (s *Simulation) Floors() int {
	return s.state.FloorsVisited
}

// EnemiesLeft returns the live enemy count
func (s *Simulation) EnemiesLeft() int {
	return s.state.NumEnemiesLeft
}

// RoomState returns the room progression state
func (s *Simulation) RoomState() RoomState {
	return s.state.Room
}

// GameOver reports whether the player ran out of time
func (s *Simulation) GameOver() bool {
	return s.state.GameOver
}

// TeleportDistance is the walking distance in tiles from the player to the
// teleport, or -1 when there is no path
func (s *Simulation) TeleportDistance() int {
	pos := ecs.MustGet[*components.PositionComponent](s.world, s.state.PlayerID, components.Position)
	return generation.PathLength(s.state.Map, pos.Tile(), s.state.Map.Teleport)
}

// CameraOffset returns the world-to-screen translation
func (s *Simulation) CameraOffset() (float64, float64) {
	return s.state.CameraX, s.state.CameraY
}

// Messages returns the n newest log messages, newest first
func (s *Simulation) Messages(n int) []ColoredMessage {
	return s.messages.RecentMessages(n)
}

// Drawables returns every renderable entity, lowest layer first
func (s *Simulation) Drawables() []Drawable {
	entities := s.world.GetEntitiesWithComponent(components.Renderable)
	result := make([]Drawable, 0, len(entities))

	for _, entity := range entities {
		pos, ok := ecs.Get[*components.PositionComponent](s.world, entity.ID, components.Position)
		if !ok {
			continue
		}
		render := ecs.MustGet[*components.RenderableComponent](s.world, entity.ID, components.Renderable)

		d := Drawable{
			X:      pos.X,
			Y:      pos.Y,
			HalfW:  config.TileSize / 2,
			HalfH:  config.TileSize / 2,
			Sprite: render.Sprite,
			Z:      render.Z,
			FlipX:  render.FlipX,
		}
		if box, ok := ecs.Get[*components.CollisionComponent](s.world, entity.ID, components.Collision); ok {
			d.HalfW, d.HalfH = box.HalfW, box.HalfH
		}
		result = append(result, d)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Z < result[j].Z
	})
	return result
}

// World exposes the entity store
func (s *Simulation) World() *ecs.World {
	return s.world
}

// State exposes the shared state
func (s *Simulation) State() *GameState {
	return s.state
}

// Schedule exposes the system schedule
func (s *Simulation) Schedule() *ecs.Schedule[*GameState] {
	return s.schedule
}
