package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/audio"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/screens"
	"ebiten-timecrawl/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	sim         *systems.Simulation
	tileset     *screens.Tileset
	player      *audio.EbitenPlayer
	screenStack *screens.ScreenStack
	start       *screens.StartScreen
	musicPath   string
	debug       bool
}

// NewGame creates the window front-end over a simulation. player may be nil.
func NewGame(sim *systems.Simulation, tileset *screens.Tileset, player *audio.EbitenPlayer, musicPath string, debug bool) *Game {
	g := &Game{
		sim:         sim,
		tileset:     tileset,
		player:      player,
		screenStack: screens.NewScreenStack(),
		start:       screens.NewStartScreen(tileset, sim.Muted()),
		musicPath:   musicPath,
		debug:       debug,
	}
	g.screenStack.Push(g.start)
	return g
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case errors.Is(err, screens.ErrNewGame):
		g.startGame()
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	}
	return err
}

func (g *Game) startGame() {
	g.sim.SetMuted(g.start.Muted())
	log.Info().Bool("muted", g.sim.Muted()).Msg("starting run")

	var music screens.MusicPlayer
	if g.player != nil {
		music = g.player
		if g.musicPath != "" {
			if err := g.player.PlayBGM(g.musicPath); err != nil {
				log.Warn().Err(err).Str("path", g.musicPath).Msg("background music unavailable")
			}
		}
	}

	g.screenStack.Pop()
	g.screenStack.Push(screens.NewGameScreen(g.sim, g.tileset, music))
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
