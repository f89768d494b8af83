// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/components"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/screens/theme"
	"ebiten-timecrawl/systems"
)

// Terminals report presses but not releases; a key counts as held until it
// has been silent this long. Long enough to bridge the keyboard repeat delay.
const keyHold = 250 * time.Millisecond

const (
	hudRows    = 2
	footerRows = 1
)

// Terminal drives a simulation from key events and draws it as character cells
type Terminal struct {
	screen    tcell.Screen
	sim       *systems.Simulation
	templates *data.TemplateLibrary

	runes  map[rune]time.Time
	arrows map[tcell.Key]time.Time
	quit   bool
}

// New opens the controlling terminal
func New(sim *systems.Simulation, templates *data.TemplateLibrary) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(screen, sim, templates)
}

// NewWithScreen wraps an existing screen and initialises it
func NewWithScreen(screen tcell.Screen, sim *systems.Simulation, templates *data.TemplateLibrary) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(rgb(theme.Background)).Foreground(rgb(theme.Text)))
	screen.HideCursor()

	return &Terminal{
		screen:    screen,
		sim:       sim,
		templates: templates,
		runes:     make(map[rune]time.Time),
		arrows:    make(map[tcell.Key]time.Time),
	}, nil
}

// Run steps the simulation at the tick rate until the player quits
func (t *Terminal) Run() error {
	defer t.screen.Fini()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(config.TickDuration)
	defer ticker.Stop()

	for {
		now := time.Now()
	drain:
		for {
			select {
			case ev := <-events:
				t.handleEvent(ev, now)
			default:
				break drain
			}
		}
		if t.quit {
			log.Info().Int("floors", t.sim.Floors()).Msg("leaving terminal")
			return nil
		}

		t.sim.Step(config.TickDuration, t.input(now))
		t.Draw()
		<-ticker.C
	}
}

func (t *Terminal) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		t.handleKey(ev, now)
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyEscape:
		t.togglePause()
		return
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		t.arrows[ev.Key()] = now
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch r {
	case 'q':
		t.quit = true
	case 'p':
		t.togglePause()
	case 'm':
		t.sim.SetMuted(!t.sim.Muted())
	case ' ':
		switch {
		case t.sim.GameOver():
			if err := t.sim.Restart(); err != nil {
				log.Error().Err(err).Msg("restart failed")
				t.quit = true
			}
		case t.sim.Paused():
			t.sim.SetPaused(false)
		}
	case 'w', 'a', 's', 'd':
		t.runes[r] = now
	}
}

func (t *Terminal) togglePause() {
	if t.sim.GameOver() {
		return
	}
	t.sim.SetPaused(!t.sim.Paused())
}

// input resolves the keys still considered held at now
func (t *Terminal) input(now time.Time) systems.Input {
	held := func(r rune) bool {
		at, ok := t.runes[r]
		return ok && now.Sub(at) < keyHold
	}
	arrow := func(k tcell.Key) bool {
		at, ok := t.arrows[k]
		return ok && now.Sub(at) < keyHold
	}

	var in systems.Input
	if held('a') {
		in.MoveX--
	}
	if held('d') {
		in.MoveX++
	}
	if held('w') {
		in.MoveY++
	}
	if held('s') {
		in.MoveY--
	}
	in.ShootLeft = arrow(tcell.KeyLeft)
	in.ShootRight = arrow(tcell.KeyRight)
	in.ShootUp = arrow(tcell.KeyUp)
	in.ShootDown = arrow(tcell.KeyDown)
	return in
}

// Draw paints the room around the player, the HUD and the newest message
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	t.drawField(w, h)
	t.drawHUD(w)
	t.drawFooter(w, h)
	if t.sim.GameOver() {
		t.drawGameOver(w, h)
	} else if t.sim.Paused() {
		t.drawCentered(w, h/2, "PAUSED - Space to resume", theme.Warning)
	}

	t.screen.Show()
}

// cellAt converts arena screen coordinates to a terminal cell, keeping the
// arena center on the center of the play field
func cellAt(sx, sy float64, w, fieldH int) (int, int) {
	col := float64(w)/2 + (sx-config.ArenaWidth/2)/config.TerminalCellWidth
	row := float64(hudRows) + float64(fieldH)/2 + (sy-config.ArenaHeight/2)/config.TerminalCellHeight
	return int(math.Floor(col)), int(math.Floor(row))
}

func (t *Terminal) drawField(w, h int) {
	fieldH := h - hudRows - footerRows
	if fieldH <= 0 {
		return
	}
	state := t.sim.State()
	inField := func(col, row int) bool {
		return col >= 0 && col < w && row >= hudRows && row < hudRows+fieldH
	}

	for _, d := range t.sim.Drawables() {
		sx, sy := systems.WorldToScreen(state, d.X, d.Y)
		style := tcell.StyleDefault.
			Background(rgb(theme.Background)).
			Foreground(rgb(theme.SpriteColor(t.templates, d.Sprite)))
		glyph := theme.Glyph(t.templates, d.Sprite)

		// Room tiles cover every cell of their square; actors take their center cell
		if d.Z <= components.ZWall {
			c0, r0 := cellAt(sx-d.HalfW, sy-d.HalfH, w, fieldH)
			c1, r1 := cellAt(sx+d.HalfW-1, sy+d.HalfH-1, w, fieldH)
			for row := r0; row <= r1; row++ {
				for col := c0; col <= c1; col++ {
					if inField(col, row) {
						t.screen.SetContent(col, row, glyph, nil, style)
					}
				}
			}
			continue
		}

		col, row := cellAt(sx, sy, w, fieldH)
		if inField(col, row) {
			t.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (t *Terminal) drawHUD(w int) {
	remaining, total := t.sim.PlayerTime()

	x := t.drawString(0, 0, w, "TIME ", theme.Dim)
	x = t.drawString(x, 0, w, theme.TimerText(remaining), theme.TimerColor(remaining))
	x = t.drawString(x, 0, w, fmt.Sprintf("  FLOOR %d  ENEMIES %d", t.sim.Floors(), t.sim.EnemiesLeft()), theme.Text)
	if t.sim.Muted() {
		x = t.drawString(x, 0, w, "  MUTED", theme.Dim)
	}
	if t.sim.RoomState() == systems.Clearing {
		t.drawString(x, 0, w, "  "+theme.ClearHint(t.sim.TeleportDistance()), theme.Warning)
	}

	// Time bar across the second row
	fraction := 0.0
	if total > 0 {
		fraction = math.Max(0, math.Min(1, float64(remaining)/float64(total)))
	}
	barWidth := min(w, 40)
	filled := int(math.Round(fraction * float64(barWidth)))
	barStyle := tcell.StyleDefault.Foreground(rgb(theme.BarColor(fraction))).Background(rgb(theme.Background))
	emptyStyle := tcell.StyleDefault.Foreground(rgb(theme.Shade(theme.Dim, 0.5))).Background(rgb(theme.Background))
	for i := 0; i < barWidth; i++ {
		if i < filled {
			t.screen.SetContent(i, 1, '█', nil, barStyle)
		} else {
			t.screen.SetContent(i, 1, '░', nil, emptyStyle)
		}
	}

	stats := t.sim.PlayerStats()
	t.drawString(barWidth+1, 1, w, fmt.Sprintf("DMG %ds SPD %.0f ROF %.2fs",
		int(stats.Damage.Seconds()), stats.Speed, stats.FireInterval.Seconds()), theme.Dim)
}

func (t *Terminal) drawFooter(w, h int) {
	messages := t.sim.Messages(1)
	if len(messages) == 0 {
		t.drawString(0, h-1, w, "WASD move  Arrows shoot  Esc pause  m mute  q quit", theme.Dim)
		return
	}
	t.drawString(0, h-1, w, messages[0].Text, messages[0].GetColor())
}

func (t *Terminal) drawGameOver(w, h int) {
	t.drawCentered(w, h/2-1, fmt.Sprintf("You Cleared %d Floors!", t.sim.Floors()), theme.Warning)
	t.drawCentered(w, h/2+1, "Space to play again, q to quit", theme.Text)
}

func (t *Terminal) drawCentered(w, row int, s string, clr color.RGBA) {
	x := max(0, (w-runewidth.StringWidth(s))/2)
	t.drawString(x, row, w, s, clr)
}

// drawString writes s from column x, truncated at the right edge, and returns
// the column after it
func (t *Terminal) drawString(x, y, w int, s string, clr color.RGBA) int {
	if x >= w {
		return x
	}
	s = runewidth.Truncate(s, w-x, "…")
	style := tcell.StyleDefault.Foreground(rgb(clr)).Background(rgb(theme.Background))
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
