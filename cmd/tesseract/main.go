package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tesseract/audio"
	"github.com/lixenwraith/tesseract/config"
	"github.com/lixenwraith/tesseract/core"
	"github.com/lixenwraith/tesseract/game"
	"github.com/lixenwraith/tesseract/input"
	"github.com/lixenwraith/tesseract/maze"
	"github.com/lixenwraith/tesseract/render"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tesseract: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers file, .env, environment and command-line flags, in that order
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("tesseract", flag.ContinueOnError)
	path := fs.String("config", "tesseract.toml", "path to the TOML config file")
	debug := fs.Bool("debug", false, "write debug logs")
	seed := fs.Int64("seed", 0, "maze seed (0 = random)")
	size := fs.Int("size", 0, "maze edge length")
	mute := fs.Bool("mute", false, "disable audio")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	// Only explicitly passed flags override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debug
		case "seed":
			cfg.Maze.Seed = *seed
		case "size":
			cfg.Maze.Size = *size
		case "mute":
			cfg.Audio.Enabled = !*mute
		}
	})

	return cfg, cfg.Validate()
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	override, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	logger, logFile, err := setupLogging(cfg.Log.Dir, cfg.Log.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	gen := maze.NewGenerator(maze.Config{Size: cfg.Maze.Size, Seed: cfg.Maze.Seed})
	session := game.NewSession(gen, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Audio is optional, the game runs silent when the device is unavailable
	cues := audio.NewCues(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer cues.Cleanup()
		}
	}

	renderer := render.NewSliceRenderer(screen, cfg.Display.CellWidth, cfg.Display.HUD)
	newApp(screen, session, renderer, keys, cues, logger).run()
	return nil
}
