package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceConfig_DefaultsUnderHome(t *testing.T) {
	configDir = ""
	defer func() { configDir = "" }()

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ConfigDir)
	assert.Contains(t, cfg.ConfigDir, "loadorder")
}

func TestGetServiceConfig_RespectsFlag(t *testing.T) {
	configDir = "/tmp/custom-loadorder-config"
	defer func() { configDir = "" }()

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-loadorder-config", cfg.ConfigDir)
}

func TestGetServiceConfig_RejectsRelativeFlag(t *testing.T) {
	configDir = "relative/loadorder-config"
	defer func() { configDir = "" }()

	_, err := getServiceConfig()
	assert.Error(t, err)
}

func TestRequireGame_FallsBackToActiveGame(t *testing.T) {
	gameSlug = ""
	defer func() { gameSlug = "" }()

	configDir = t.TempDir()
	defer func() { configDir = "" }()

	svc, err := initService()
	require.NoError(t, err)

	_, err = requireGame(svc)
	assert.Error(t, err, "no active game and no --game flag should fail")

	require.NoError(t, svc.AddGame(testGameSettings("skyrimse")))
	require.NoError(t, svc.SetActiveGame("skyrimse"))

	slug, err := requireGame(svc)
	require.NoError(t, err)
	assert.Equal(t, "skyrimse", slug)
}

func TestRequireGame_FlagWins(t *testing.T) {
	gameSlug = "falloutnv"
	defer func() { gameSlug = "" }()

	configDir = t.TempDir()
	defer func() { configDir = "" }()

	svc, err := initService()
	require.NoError(t, err)

	slug, err := requireGame(svc)
	require.NoError(t, err)
	assert.Equal(t, "falloutnv", slug)
}

func TestParseGameID_RejectsUnknown(t *testing.T) {
	_, err := parseGameID("NotARealGame")
	assert.Error(t, err)
}

func TestParseGameID_AcceptsKnown(t *testing.T) {
	id, err := parseGameID("SkyrimSE")
	require.NoError(t, err)
	assert.Equal(t, "SkyrimSE", id.String())
}
