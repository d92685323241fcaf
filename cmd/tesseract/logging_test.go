package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tesseract/constants"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(dir, false)
	require.NoError(t, err)
	assert.Nil(t, logFile, "no file when debug=false")
	require.NotNil(t, logger)

	logger.Info("dropped")
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log dir must not be created")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(dir, true)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logger.Debug("level generated", "size", 9)

	data, err := os.ReadFile(filepath.Join(dir, constants.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level generated")
	assert.Contains(t, string(data), "size=9")
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, constants.LogFileName)

	// Write just over the limit
	require.NoError(t, os.WriteFile(logPath, make([]byte, constants.MaxLogSize+1), 0644))

	_, logFile, err := setupLogging(dir, true)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		name := entry.Name()
		if name != constants.LogFileName && strings.HasPrefix(name, "tesseract-") && filepath.Ext(name) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(constants.MaxLogSize))
}

func TestSetupLogging_SmallLogAppends(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, constants.LogFileName)
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0644))

	logger, logFile, err := setupLogging(dir, true)
	require.NoError(t, err)
	defer logFile.Close()
	logger.Info("next run")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous run\n"))
	assert.Contains(t, string(data), "next run")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no rotation below the limit")
}
