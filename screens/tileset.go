package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/screens/theme"
)

// Tileset draws sprite tokens. Each sprite is rendered once from the palette,
// a filled square with its glyph, and then scaled to the entity box.
type Tileset struct {
	templates *data.TemplateLibrary
	images    map[components.Sprite]*ebiten.Image
	TileSize  int
}

// NewTileset creates a tileset over the sprite palette
func NewTileset(templates *data.TemplateLibrary) *Tileset {
	return &Tileset{
		templates: templates,
		images:    make(map[components.Sprite]*ebiten.Image),
		TileSize:  config.TileSize,
	}
}

// tileImage returns the cached image of a sprite, building it on first use
func (t *Tileset) tileImage(sprite components.Sprite) *ebiten.Image {
	if img, ok := t.images[sprite]; ok {
		return img
	}

	size := float32(t.TileSize)
	fill := float32(theme.Fill(t.templates, sprite))
	inset := size * (1 - fill) / 2
	clr := theme.SpriteColor(t.templates, sprite)

	img := ebiten.NewImage(t.TileSize, t.TileSize)
	vector.DrawFilledRect(img, inset, inset, size*fill, size*fill, clr, false)
	vector.StrokeRect(img, inset, inset, size*fill, size*fill, 2, theme.Shade(clr, 0.4), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(size)/2, float64(size)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(theme.Shade(clr, 0.7))
	text.Draw(img, string(theme.Glyph(t.templates, sprite)), uiFace, op)

	t.images[sprite] = img
	return img
}

// DrawSprite draws a sprite centered on x, y stretched over the half extents
func (t *Tileset) DrawSprite(target *ebiten.Image, sprite components.Sprite, x, y, halfW, halfH float64, flip bool) {
	op := &ebiten.DrawImageOptions{}

	scaleX := 2 * halfW / float64(t.TileSize)
	scaleY := 2 * halfH / float64(t.TileSize)
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(t.TileSize), 0)
	}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(x-halfW, y-halfH)

	target.DrawImage(t.tileImage(sprite), op)
}

// DrawString draws a line of HUD text at x, y in the given color
func DrawString(target *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawText(target, s, x, y, 1, clr)
}

func drawText(target *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = uiFace.Metrics().HAscent + uiFace.Metrics().HDescent + 2
	text.Draw(target, s, uiFace, op)
}
