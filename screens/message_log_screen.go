package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-timecrawl/config"
	"ebiten-timecrawl/systems"
)

// MessageLogScreen shows the full message history in a scrollable window
type MessageLogScreen struct {
	*BaseScreen
	sim          *systems.Simulation
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewMessageLogScreen creates a new message log screen
func NewMessageLogScreen(sim *systems.Simulation) *MessageLogScreen {
	return &MessageLogScreen{
		BaseScreen:   NewBaseScreen(),
		sim:          sim,
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    color.White,
	}
}

// messages returns the history oldest first
func (s *MessageLogScreen) messages() []systems.ColoredMessage {
	newest := s.sim.Messages(config.MaxMessages)
	out := make([]systems.ColoredMessage, len(newest))
	for i, msg := range newest {
		out[len(newest)-1-i] = msg
	}
	return out
}

// Update handles input for the message log screen
func (s *MessageLogScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.messages())-1 {
		s.scrollOffset++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the message log
func (s *MessageLogScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	title := "MESSAGE LOG"
	DrawString(screen, title, float64(x)+float64(s.width-len(title)*7)/2, float64(y)+8, s.textColor)

	messages := s.messages()
	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := min(s.scrollOffset, max(len(messages)-maxLines, 0))

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		DrawString(screen, msg.Text, float64(x)+10, float64(y)+float64(startY+i*lineHeight), msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		span := float32(s.height - startY)
		barHeight := float32(maxLines) / float32(len(messages)) * span
		barY := y + float32(startY) + float32(startIdx)/float32(len(messages))*span
		vector.DrawFilledRect(screen, x+float32(s.width-10), barY, 5, barHeight, color.White, false)
	}

	DrawString(screen, "Up/Down: scroll  Esc: close", float64(x)+10, float64(y)+float64(s.height-20), s.textColor)
}
