package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
// and closes on one of its keys.
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	closeKeys  []ebiten.Key
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		closeKeys:  closeKeys,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// NewPauseScreen is the modal shown while the simulation is frozen
func NewPauseScreen() *ModalScreen {
	return NewModalScreen("PAUSED",
		"Space or Esc: resume\nM: toggle sound\nF1: message log",
		300, 110, ebiten.KeySpace, ebiten.KeyEscape)
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	// Approximate text width of the 7px face
	titleX := float64(x) + float64(s.width-len(s.title)*7)/2
	DrawString(screen, s.title, titleX, float64(y)+10, s.textColor)
	DrawString(screen, s.content, float64(x)+10, float64(y)+36, s.textColor)
}

// Update closes the modal when one of its keys is pressed
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.BaseScreen.Layout(outsideWidth, outsideHeight)
}
