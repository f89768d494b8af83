package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/screens"
	"ebiten-timecrawl/screens/theme"
)

// SpriteViewer implements ebiten.Game interface. It lays the sprite palette
// out as a grid so colors and glyphs can be checked without playing.
type SpriteViewer struct {
	templates     *data.TemplateLibrary
	tileset       *screens.Tileset
	sprites       []int
	screenWidth   int
	screenHeight  int
	tileSize      int
	displayWidth  int // How many sprites to display horizontally
	displayHeight int // How many sprites to display vertically
	offsetRow     int // Scrolling offset in rows
}

// NewSpriteViewer creates a new sprite viewer
func NewSpriteViewer(templates *data.TemplateLibrary, tileSize int) *SpriteViewer {
	displayWidth := 12
	displayHeight := 8

	return &SpriteViewer{
		templates:     templates,
		tileset:       screens.NewTileset(templates),
		sprites:       templates.Sprites(),
		tileSize:      tileSize,
		screenWidth:   displayWidth*tileSize + 50,   // Add some margin
		screenHeight:  displayHeight*tileSize + 120, // Add space for header and footer
		displayWidth:  displayWidth,
		displayHeight: displayHeight,
	}
}

func (v *SpriteViewer) rows() int {
	return (len(v.sprites) + v.displayWidth - 1) / v.displayWidth
}

// Update handles input for scrolling
func (v *SpriteViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	maxRow := max(0, v.rows()-v.displayHeight)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && v.offsetRow < maxRow {
		v.offsetRow++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && v.offsetRow > 0 {
		v.offsetRow--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		v.offsetRow = min(maxRow, v.offsetRow+v.displayHeight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		v.offsetRow = max(0, v.offsetRow-v.displayHeight)
	}
	return nil
}

// Draw displays the sprites with their index and glyph
func (v *SpriteViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Sprite palette: %d entries", len(v.sprites)), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Arrow keys scroll, Page Up/Down to navigate faster", 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Row %d of %d", v.offsetRow+1, max(1, v.rows())), 10, 50)

	half := float64(v.tileSize) / 2
	for i := v.offsetRow * v.displayWidth; i < len(v.sprites); i++ {
		slot := i - v.offsetRow*v.displayWidth
		x, y := slot%v.displayWidth, slot/v.displayWidth
		if y >= v.displayHeight {
			break
		}

		screenX := x * v.tileSize
		screenY := y*v.tileSize + 80 // Add vertical offset for the header text
		sprite := components.Sprite(v.sprites[i])

		// Draw a background box, then the sprite at its palette fill
		ebitenutil.DrawRect(screen, float64(screenX), float64(screenY),
			float64(v.tileSize-2), float64(v.tileSize-2), color.RGBA{60, 60, 60, 255})
		v.tileset.DrawSprite(screen, sprite, float64(screenX)+half, float64(screenY)+half, half-4, half-4, false)

		label := fmt.Sprintf("%d %c", v.sprites[i], theme.Glyph(v.templates, sprite))
		ebitenutil.DebugPrintAt(screen, label, screenX+2, screenY+v.tileSize-16)
	}

	ebitenutil.DebugPrintAt(screen, "ESC: Quit | Arrow keys: Navigate | Page Up/Down: Fast navigation", 10, v.screenHeight-20)
}

// Layout implements ebiten.Game's Layout.
func (v *SpriteViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenWidth, v.screenHeight
}

func runSpriteViewer(templates *data.TemplateLibrary) {
	viewer := NewSpriteViewer(templates, 72)
	ebiten.SetWindowSize(viewer.screenWidth, viewer.screenHeight)
	ebiten.SetWindowTitle("Time Crawler - Sprite Palette")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("sprite viewer exited")
	}
}
