package screens

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/screens/theme"
)

// Error constants for screen transitions
var (
	ErrNewGame = errors.New("new game")
	ErrQuit    = errors.New("quit")
)

const (
	optionStart = iota
	optionSound
	optionQuit
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	tileset        *Tileset
	selectedOption int
	muted          bool
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(tileset *Tileset, muted bool) *StartScreen {
	return &StartScreen{
		BaseScreen:    NewBaseScreen(),
		tileset:       tileset,
		muted:         muted,
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Muted reports whether the player switched sound off in the menu
func (s *StartScreen) Muted() bool {
	return s.muted
}

func (s *StartScreen) options() []string {
	sound := "Sound: On"
	if s.muted {
		sound = "Sound: Off"
	}
	return []string{"Start", sound, "Quit"}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	count := len(s.options())
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selectedOption = (s.selectedOption - 1 + count) % count
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selectedOption = (s.selectedOption + 1) % count
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return ErrNewGame
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return nil
	}
	switch s.selectedOption {
	case optionStart:
		return ErrNewGame
	case optionSound:
		s.muted = !s.muted
	case optionQuit:
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Background)

	centerX := float64(config.ArenaWidth) / 2
	centerY := float64(config.ArenaHeight) / 2

	title := "TIME CRAWLER"
	drawText(screen, title, centerX-float64(len(title))*14, centerY-200, 4, s.titleColor)
	subtitle := "Your time is your health. Spend it wisely."
	DrawString(screen, subtitle, centerX-float64(len(subtitle))*3.5, centerY-130, theme.Dim)

	// a row of the cast
	cast := []components.Sprite{components.SpritePlayer, components.SpriteEnemy, components.SpriteStationary, components.SpriteTeleport}
	for i, sprite := range cast {
		x := centerX + float64(i-len(cast)/2)*90 + 45
		s.tileset.DrawSprite(screen, sprite, x, centerY-60, 30, 30, false)
	}

	// Draw options
	optionSpacing := 30.0
	startY := centerY + 20
	for i, option := range s.options() {
		textColor := s.optionColor
		if i == s.selectedOption {
			textColor = s.selectedColor
			option = "> " + option + " <"
		}
		drawText(screen, option, centerX-float64(len(option))*7, startY+float64(i)*optionSpacing, 2, textColor)
	}

	help := "WASD move   Arrow keys shoot   Esc pause   Enter select"
	DrawString(screen, help, centerX-float64(len(help))*3.5, float64(config.ArenaHeight)-40, theme.Dim)
}
