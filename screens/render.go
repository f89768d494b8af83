package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-timecrawl/config"
	"ebiten-timecrawl/screens/theme"
	"ebiten-timecrawl/systems"
)

const (
	hudMargin       = 16
	timerBarWidth   = 320
	timerBarHeight  = 12
	messageLines    = 5
	messageLineSize = 16
)

// Renderer draws the simulation: the room, its entities and the HUD
type Renderer struct {
	sim     *systems.Simulation
	tileset *Tileset
}

// NewRenderer creates a renderer for a simulation
func NewRenderer(sim *systems.Simulation, tileset *Tileset) *Renderer {
	return &Renderer{sim: sim, tileset: tileset}
}

// Draw renders all entities with position and renderable components
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Background)

	r.drawGameScreen(screen)
	r.drawStatsPanel(screen)
	r.drawMessagesPanel(screen)
}

// drawGameScreen draws every drawable inside the arena, lowest layer first
func (r *Renderer) drawGameScreen(screen *ebiten.Image) {
	state := r.sim.State()
	for _, d := range r.sim.Drawables() {
		x, y := systems.WorldToScreen(state, d.X, d.Y)
		if x+d.HalfW < 0 || x-d.HalfW > config.ArenaWidth || y+d.HalfH < 0 || y-d.HalfH > config.ArenaHeight {
			continue
		}
		r.tileset.DrawSprite(screen, d.Sprite, x, y, d.HalfW, d.HalfH, d.FlipX)
	}
}

// drawStatsPanel draws the timer, floor count and upgrades
func (r *Renderer) drawStatsPanel(screen *ebiten.Image) {
	remaining, total := r.sim.PlayerTime()

	drawText(screen, theme.TimerText(remaining), hudMargin, hudMargin, 3, theme.TimerColor(remaining))

	// time bar
	barY := float32(hudMargin + 48)
	fraction := 0.0
	if total > 0 {
		fraction = float64(remaining) / float64(total)
	}
	vector.DrawFilledRect(screen, hudMargin, barY, timerBarWidth, timerBarHeight, color.RGBA{40, 40, 48, 255}, false)
	vector.DrawFilledRect(screen, hudMargin, barY, float32(fraction*timerBarWidth), timerBarHeight, theme.BarColor(fraction), false)
	vector.StrokeRect(screen, hudMargin, barY, timerBarWidth, timerBarHeight, 1, theme.Dim, false)

	stats := r.sim.PlayerStats()
	DrawString(screen, fmt.Sprintf("DMG %ds  SPD %.0f  ROF %.2fs  SHOT %.0f",
		int(stats.Damage.Seconds()), stats.Speed, stats.FireInterval.Seconds(), stats.ProjectileSpeed),
		hudMargin, float64(barY)+timerBarHeight+8, theme.Dim)

	right := float64(config.ArenaWidth - 180)
	DrawString(screen, fmt.Sprintf("FLOOR   %d", r.sim.Floors()), right, hudMargin, theme.Text)
	DrawString(screen, fmt.Sprintf("ENEMIES %d", r.sim.EnemiesLeft()), right, hudMargin+messageLineSize, theme.Text)
	if r.sim.Muted() {
		DrawString(screen, "MUTED", right, hudMargin+2*messageLineSize, theme.Dim)
	}

	if r.sim.RoomState() == systems.Clearing {
		msg := theme.ClearHint(r.sim.TeleportDistance())
		DrawString(screen, msg, float64(config.ArenaWidth)/2-float64(len(msg))*3.5, hudMargin, theme.Warning)
	}

	DrawString(screen, "WASD move  Arrows shoot  Esc pause  M mute  F1 log",
		right-220, float64(config.ArenaHeight-hudMargin-messageLineSize), theme.Dim)
}

// drawMessagesPanel draws the newest messages, oldest at the top
func (r *Renderer) drawMessagesPanel(screen *ebiten.Image) {
	messages := r.sim.Messages(messageLines)
	y := float64(config.ArenaHeight - hudMargin - messageLineSize)
	for _, msg := range messages {
		DrawString(screen, msg.Text, hudMargin, y, msg.GetColor())
		y -= messageLineSize
	}
}

