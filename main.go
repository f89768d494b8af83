package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/audio"
	"ebiten-timecrawl/config"
	"ebiten-timecrawl/data"
	"ebiten-timecrawl/screens"
	"ebiten-timecrawl/screens/terminal"
	"ebiten-timecrawl/systems"
)

func main() {
	terminalMode := flag.Bool("terminal", false, "Play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "Start with sound effects off")
	music := flag.String("music", "", "Loop an .ogg or .mp3 file as background music")
	seed := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	level := flag.Int("level", -1, "First room index; negative picks one at random")
	caves := flag.Float64("caves", 0, "Chance from 0 to 1 that a new room is a generated cave")
	debug := flag.Bool("debug", false, "Debug logging and an FPS counter")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	viewSprites := flag.Bool("view-sprites", false, "Browse the sprite palette and exit")
	flag.Parse()

	closeLog := setupLogging(*logPath, *terminalMode, *debug)
	defer closeLog()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", *seed).Bool("terminal", *terminalMode).Msg("starting")

	templates, err := data.LoadTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	if *viewSprites {
		runSpriteViewer(templates)
		return
	}

	if *terminalMode {
		runTerminal(templates, systems.Options{Seed: *seed, StartLevel: *level, CaveChance: *caves}, *mute)
		return
	}
	runWindow(templates, systems.Options{Seed: *seed, StartLevel: *level, CaveChance: *caves}, *mute, *music, *debug)
}

// setupLogging points the global and simulation loggers at stderr or a file.
// The terminal front-end owns the screen, so it logs nowhere unless asked.
func setupLogging(path string, terminalMode, debug bool) func() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	closeFn := func() {}
	switch {
	case path != "":
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open log file")
		}
		out = file
		closeFn = func() { _ = file.Close() }
	case terminalMode:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	systems.SetLogger(log.Logger)
	return closeFn
}

func runTerminal(templates *data.TemplateLibrary, opts systems.Options, mute bool) {
	speaker := audio.NewSpeakerPlayer(rand.New(rand.NewSource(opts.Seed + 1)))
	var sound systems.SoundPlayer = speaker
	if err := speaker.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, playing silently")
		sound = nil
	}
	defer speaker.Close()

	opts.Templates = templates
	opts.Sound = sound
	sim, err := systems.NewSimulation(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build simulation")
	}
	sim.SetMuted(mute)

	term, err := terminal.New(sim, templates)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	if err := term.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal exited")
	}
}

func runWindow(templates *data.TemplateLibrary, opts systems.Options, mute bool, musicPath string, debug bool) {
	player := audio.NewEbitenPlayer(rand.New(rand.NewSource(opts.Seed + 1)))
	defer player.Close()

	opts.Templates = templates
	opts.Sound = player
	sim, err := systems.NewSimulation(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build simulation")
	}
	sim.SetMuted(mute)

	game := NewGame(sim, screens.NewTileset(templates), player, musicPath, debug)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowTitle("Time Crawler")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
