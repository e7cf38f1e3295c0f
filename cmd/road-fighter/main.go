package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/asset"
	"github.com/lixenwraith/road-fighter/audio"
	"github.com/lixenwraith/road-fighter/config"
	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/input"
	"github.com/lixenwraith/road-fighter/logger"
	"github.com/lixenwraith/road-fighter/status"
)

var (
	configFlag      = flag.String("config", config.DefaultPath, "Path to the ini config file")
	assetsFlag      = flag.String("assets", "", "Asset directory, overrides [Assets] Dir (empty: built-in assets)")
	seedFlag        = flag.Int64("seed", 0, "Cloud placement seed, overrides [Game] Seed (0: time-based)")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config to the -config path and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Exit only from here so every deferred cleanup in session has run
	if err := start(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func start() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg, *assetsFlag, *seedFlag)

	if *writeConfigFlag {
		if err := cfg.Save(*configFlag); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		color.Green("Config written to %s", *configFlag)
		return nil
	}

	return session(cfg, tcell.NewScreen)
}

// session runs one game from log setup to the exit summary
// A failure is logged before the log file is closed
func session(cfg *config.Config, newScreen func() (tcell.Screen, error)) (err error) {
	logFile, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logFile.Close()
	defer func() {
		if err != nil {
			logger.Session.WithError(err).Error("session failed")
		}
	}()

	provider, err := openAssets(cfg.Assets.Dir)
	if err != nil {
		return fmt.Errorf("failed to open assets: %w", err)
	}
	track, err := provider.LoadTrack(cfg.Game.Track)
	if err != nil {
		return fmt.Errorf("failed to load track: %w", err)
	}
	keys, err := input.WithBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashScreen(screen)

	sound := audio.NewSoundManager(audioConfig(cfg))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Session.WithError(err).Warn("audio initialization failed, continuing without sound")
	}
	defer sound.Cleanup()

	g, err := newGame(screen, cfg, provider, track, keys, sound)
	if err != nil {
		core.SetCrashScreen(nil)
		screen.Fini()
		return fmt.Errorf("failed to start session: %w", err)
	}

	summary := g.run()

	core.SetCrashScreen(nil)
	screen.Fini()
	printSummary(summary, g.sim.Phase(), g.stats, cfg.Log.File)
	return nil
}

// applyFlags lets command-line flags override the config file
func applyFlags(cfg *config.Config, assets string, seed int64) {
	if assets != "" {
		cfg.Assets.Dir = assets
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
}

func openAssets(dir string) (asset.Provider, error) {
	if dir == "" {
		return asset.Embedded(), nil
	}
	return asset.Dir(dir)
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}

func printSummary(summary string, phase engine.Phase, stats *status.Registry, logPath string) {
	if phase == engine.PhaseEnded {
		color.Red("%s", summary)
	} else {
		color.Green("%s", summary)
	}
	color.Cyan("Shots fired: %d  Bombs destroyed: %d", stats.Int(status.ShotsFired), stats.Int(status.BombsDestroyed))
	if logPath != "" {
		color.New(color.FgWhite, color.Faint).Printf("Session log: %s\n", logPath)
	}
}
