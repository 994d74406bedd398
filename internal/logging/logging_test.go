package logging

import (
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentLevel(t *testing.T) log.Level {
	t.Helper()
	logger, ok := log.Log.(*log.Logger)
	require.True(t, ok)
	return logger.Level
}

func TestInit_DefaultsToError(t *testing.T) {
	t.Setenv("JSONDELTA_LOG", "")
	Init(false, "")
	assert.Equal(t, log.ErrorLevel, currentLevel(t))
}

func TestInit_ConfiguredLevel(t *testing.T) {
	t.Setenv("JSONDELTA_LOG", "")
	Init(false, "warn")
	assert.Equal(t, log.WarnLevel, currentLevel(t))
}

func TestInit_EnvironmentLevel(t *testing.T) {
	t.Setenv("JSONDELTA_LOG", "info")
	Init(false, "")
	assert.Equal(t, log.InfoLevel, currentLevel(t))
}

func TestInit_DebugFlagWins(t *testing.T) {
	t.Setenv("JSONDELTA_LOG", "error")
	Init(true, "warn")
	assert.Equal(t, log.DebugLevel, currentLevel(t))
}

func TestInit_UnknownLevelFallsBackToError(t *testing.T) {
	t.Setenv("JSONDELTA_LOG", "")
	Init(false, "loud")
	assert.Equal(t, log.ErrorLevel, currentLevel(t))
}
