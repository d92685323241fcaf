package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/maze"
)

var (
	ErrInvalidSize   = maze.ErrInvalidSize
	ErrInvalidVolume = errors.New("audio volume out of range")
	ErrInvalidWidth  = errors.New("cell width must be positive")
)

// Environment overrides, applied after the config file
const (
	EnvSize  = "TESSERACT_SIZE"
	EnvSeed  = "TESSERACT_SEED"
	EnvAudio = "TESSERACT_AUDIO"
	EnvDebug = "TESSERACT_DEBUG"
)

// Config holds every runtime setting of the game
type Config struct {
	Maze    MazeConfig    `toml:"maze"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`

	// Key name -> action name overrides, see input.LoadKeyConfig
	Keys map[string]string `toml:"keys"`
}

type MazeConfig struct {
	Size int   `toml:"size"`
	Seed int64 `toml:"seed"` // 0 = random
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0 - 1.0
}

type DisplayConfig struct {
	HUD       bool `toml:"hud"`
	CellWidth int  `toml:"cell_width"` // terminal columns per maze cell
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Size: constants.DefaultMazeSize,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
		},
		Display: DisplayConfig{
			HUD:       true,
			CellWidth: constants.CellWidth,
		},
		Log: LogConfig{
			Dir: constants.LogDir,
		},
		Keys: map[string]string{},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping values absent from data
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	return nil
}

// ApplyEnv loads an optional .env file and applies TESSERACT_* overrides
func (c *Config) ApplyEnv(envFiles ...string) error {
	// .env is optional, only a malformed file is worth reporting
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}

	if v, ok := os.LookupEnv(EnvSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSize, err)
		}
		c.Maze.Size = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		c.Maze.Seed = n
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", EnvDebug, err)
		}
		c.Log.Debug = b
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if err := maze.CheckSize(c.Maze.Size); err != nil {
		return err
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	if c.Display.CellWidth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.Display.CellWidth)
	}
	return nil
}
