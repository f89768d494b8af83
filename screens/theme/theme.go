// Package theme holds the colors and text formats shared by the window and
// terminal front-ends.
package theme

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/data"
)

// Timer warning thresholds
const (
	TimerWarning  = 90 * time.Second
	TimerCritical = 45 * time.Second
)

var (
	Background = color.RGBA{12, 12, 16, 255}
	Text       = color.RGBA{230, 230, 230, 255}
	Dim        = color.RGBA{140, 140, 150, 255}
	Warning    = color.RGBA{255, 242, 54, 255}
	Critical   = color.RGBA{255, 0, 0, 255}

	barFull  = colorful.Color{R: 0.25, G: 0.85, B: 0.35}
	barEmpty = colorful.Color{R: 0.9, G: 0.15, B: 0.15}
)

// TimerText formats a remaining time as seconds and tenths, e.g. "163.4"
func TimerText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d.%d", int64(d/time.Second), int64(d%time.Second/(100*time.Millisecond)))
}

// ClearHint tells the player how far the teleport is once the room is empty.
// A negative distance means no path is known.
func ClearHint(distance int) string {
	if distance < 0 {
		return "Room clear! Find the teleport."
	}
	return fmt.Sprintf("Room clear! Teleport %d tiles away.", distance)
}

// TimerColor turns the timer text yellow and then red as time runs low
func TimerColor(remaining time.Duration) color.RGBA {
	switch {
	case remaining < TimerCritical:
		return Critical
	case remaining < TimerWarning:
		return Warning
	}
	return Text
}

// BarColor blends the time bar from red when empty to green when full
func BarColor(fraction float64) color.RGBA {
	fraction = max(0, min(1, fraction))
	return toRGBA(barEmpty.BlendHcl(barFull, fraction).Clamped())
}

// Shade darkens a color by amount in [0, 1], keeping its hue
func Shade(c color.RGBA, amount float64) color.RGBA {
	base, _ := colorful.MakeColor(c)
	black := colorful.Color{}
	return toRGBA(base.BlendLab(black, max(0, min(1, amount))).Clamped())
}

// SpriteColor is the palette fill of a sprite
func SpriteColor(templates *data.TemplateLibrary, sprite components.Sprite) color.RGBA {
	return data.ParseHexColor(templates.Style(int(sprite)).Color)
}

// Glyph is the terminal character of a sprite
func Glyph(templates *data.TemplateLibrary, sprite components.Sprite) rune {
	for _, r := range templates.Style(int(sprite)).Glyph {
		return r
	}
	return '?'
}

// Fill is the fraction of its box a sprite covers
func Fill(templates *data.TemplateLibrary, sprite components.Sprite) float64 {
	if size := templates.Style(int(sprite)).Size; size > 0 {
		return min(size, 1)
	}
	return 1
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
