package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-timecrawl/config"
	"ebiten-timecrawl/screens/theme"
	"ebiten-timecrawl/systems"
)

// GameOverScreen shows how far the run got and offers a restart
type GameOverScreen struct {
	*BaseScreen
	sim *systems.Simulation
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(sim *systems.Simulation) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		sim:        sim,
	}
}

// Update restarts the run on Space
func (s *GameOverScreen) Update() error {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}
	if err := s.sim.Restart(); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}
	return ErrCloseScreen
}

// Draw draws the game over screen over the frozen room
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	w, h := float32(config.ArenaWidth), float32(config.ArenaHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 180}, false)

	headline := fmt.Sprintf("You Cleared %d Floors!", s.sim.Floors())
	// shadow, then text
	drawText(screen, headline, float64(w)/2-float64(len(headline))*10.5+2, float64(h)/2-80+2, 3, color.Black)
	drawText(screen, headline, float64(w)/2-float64(len(headline))*10.5, float64(h)/2-80, 3, theme.Text)

	y := float64(h)/2 - 10
	for _, msg := range s.sim.Messages(4) {
		DrawString(screen, msg.Text, float64(w)/2-150, y, msg.GetColor())
		y += 16
	}

	prompt := "Press Space to play again"
	DrawString(screen, prompt, float64(w)/2-float64(len(prompt))*3.5, float64(h)/2+80, theme.Warning)
}
