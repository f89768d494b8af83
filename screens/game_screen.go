package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/config"
	"ebiten-timecrawl/systems"
)

// MusicPlayer is the slice of the audio back-end the game screen drives
type MusicPlayer interface {
	PauseBGM()
	ResumeBGM()
}

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	sim         *systems.Simulation
	renderer    *Renderer
	music       MusicPlayer
	screenStack *ScreenStack
}

// NewGameScreen creates a new game screen. music may be nil.
func NewGameScreen(sim *systems.Simulation, tileset *Tileset, music MusicPlayer) *GameScreen {
	return &GameScreen{
		BaseScreen:  NewBaseScreen(),
		sim:         sim,
		renderer:    NewRenderer(sim, tileset),
		music:       music,
		screenStack: NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.sim.SetMuted(!s.sim.Muted())
	}

	// Modal screens freeze the simulation until they close
	if s.screenStack.Len() > 0 {
		if err := s.screenStack.Update(); err != nil {
			return err
		}
		if s.screenStack.Len() == 0 {
			s.setPaused(false)
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		s.openModal(NewMessageLogScreen(s.sim))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.openModal(NewPauseScreen())
		return nil
	}

	s.sim.Step(config.TickDuration, ReadInput())

	if s.sim.GameOver() {
		log.Info().Int("floors", s.sim.Floors()).Msg("showing game over screen")
		s.openModal(NewGameOverScreen(s.sim))
	}
	return nil
}

func (s *GameScreen) openModal(screen Screen) {
	s.screenStack.Push(screen)
	s.setPaused(true)
}

func (s *GameScreen) setPaused(paused bool) {
	s.sim.SetPaused(paused)
	if s.music == nil {
		return
	}
	if paused {
		s.music.PauseBGM()
	} else {
		s.music.ResumeBGM()
	}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)

	// If there's a screen on the stack, draw it
	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}
