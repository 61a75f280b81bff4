package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/audio"
	"github.com/lixenwraith/lightcycle/config"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/parameter"
)

var (
	configDir   = flag.String("config", "", "Directory containing lightcycle.toml")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the log directory")
	statsFlag   = flag.Bool("stats", false, "Show live metrics on the HUD")
	playersFlag = flag.Int("players", 0, "Number of players (1-6), overrides the config file")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Panic Recovery: terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *playersFlag > 0 {
		settings.Players = min(*playersFlag, parameter.MaxPlayers)
	}
	if *muteFlag {
		settings.Audio.Enabled = false
	}

	level := settings.Log.Level
	if *debugFlag {
		level = "debug"
	}
	logger, logFile := setupLogging(settings.Log.Enabled || *debugFlag, settings.Log.Dir, level)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)

	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager()
	if settings.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}

	g := newGame(screen, settings, logger, sound)
	if *statsFlag {
		g.renderer.ShowStats(g.reg)
	}

	if err := g.run(); err != nil {
		logger.Error().Err(err).Msg("game stopped")
		screen.Fini()
		fmt.Fprintf(os.Stderr, "lightcycle: %v\n", err)
		os.Exit(1)
	}
}
