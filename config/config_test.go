package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/maze"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.DefaultMazeSize, cfg.Maze.Size)
	assert.True(t, cfg.Audio.Enabled)
	assert.NotNil(t, cfg.Keys)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tesseract.toml")
	data := `
[maze]
size = 11
seed = 1234

[audio]
enabled = false

[keys]
x = "rotate"
Left = "none"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Maze.Size)
	assert.Equal(t, int64(1234), cfg.Maze.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, constants.DefaultVolume, cfg.Audio.Volume, "absent keys keep defaults")
	assert.True(t, cfg.Display.HUD)
	assert.Equal(t, map[string]string{"x": "rotate", "Left": "none"}, cfg.Keys)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[maze\nsize = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"size too small", func(c *Config) { c.Maze.Size = 3 }, ErrInvalidSize},
		{"size too large", func(c *Config) { c.Maze.Size = maze.MaxSize + 1 }, ErrInvalidSize},
		{"size overflows cube", func(c *Config) { c.Maze.Size = 1 << 21 }, ErrInvalidSize},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.1 }, ErrInvalidVolume},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, ErrInvalidVolume},
		{"zero width", func(c *Config) { c.Display.CellWidth = 0 }, ErrInvalidWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	even := Default()
	even.Maze.Size = 8
	assert.NoError(t, even.Validate(), "even sizes are allowed")
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TESSERACT_SIZE=13\n"), 0644))

	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvDebug, "true")
	// godotenv never overwrites variables that are already set
	t.Setenv(EnvSize, "")
	os.Unsetenv(EnvSize)

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.Equal(t, 13, cfg.Maze.Size)
	assert.Equal(t, int64(77), cfg.Maze.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Log.Debug)
	os.Unsetenv(EnvSize)
}

func TestApplyEnvMissingFileIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
	assert.Equal(t, Default().Maze, cfg.Maze)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
}
