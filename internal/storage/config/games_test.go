package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"loadorder/internal/domain"
	"loadorder/internal/storage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGames_Empty(t *testing.T) {
	dir := t.TempDir()
	games, err := config.LoadGames(dir)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestLoadGames_FromFile(t *testing.T) {
	dir := t.TempDir()
	gamesPath := filepath.Join(dir, "games.yaml")

	content := `
games:
  skyrimse:
    game: SkyrimSE
    game_master_name: Skyrim.esm
    plugins_dir: /games/skyrimse/Data
    load_order_file: /games/skyrimse/plugins.txt
    active_plugins_file: /games/skyrimse/loadorder.txt
    implicitly_active:
      - Update.esm
`
	require.NoError(t, os.WriteFile(gamesPath, []byte(content), 0644))

	games, err := config.LoadGames(dir)
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games["skyrimse"]
	assert.Equal(t, domain.SkyrimSE, g.ID)
	assert.Equal(t, "Skyrim.esm", g.GameMasterName)
	assert.Equal(t, []string{"Update.esm"}, g.ImplicitlyActive)
}

func TestLoadGames_RejectsUnknownGame(t *testing.T) {
	dir := t.TempDir()
	gamesPath := filepath.Join(dir, "games.yaml")
	content := "games:\n  mystery:\n    game: NotAGame\n"
	require.NoError(t, os.WriteFile(gamesPath, []byte(content), 0644))

	_, err := config.LoadGames(dir)
	require.Error(t, err)
}

func TestSaveGame_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	settings := &domain.GameSettings{
		ID:                domain.Fallout4,
		Slug:              "fallout4",
		GameMasterName:    "Fallout4.esm",
		PluginsDir:        "/games/fallout4/Data",
		ActivePluginsFile: "/games/fallout4/plugins.txt",
	}

	require.NoError(t, config.SaveGame(dir, settings))

	games, err := config.LoadGames(dir)
	require.NoError(t, err)
	require.Contains(t, games, "fallout4")
	assert.Equal(t, domain.Fallout4, games["fallout4"].ID)
}

func TestDeleteGame(t *testing.T) {
	dir := t.TempDir()
	settings := &domain.GameSettings{ID: domain.Oblivion, Slug: "oblivion", PluginsDir: "/x"}
	require.NoError(t, config.SaveGame(dir, settings))

	require.NoError(t, config.DeleteGame(dir, "oblivion"))

	games, err := config.LoadGames(dir)
	require.NoError(t, err)
	assert.NotContains(t, games, "oblivion")
}

func TestDeleteGame_MissingFails(t *testing.T) {
	dir := t.TempDir()
	err := config.DeleteGame(dir, "nope")
	require.Error(t, err)
}

func TestLoadGames_ExpandsTilde(t *testing.T) {
	dir := t.TempDir()
	gamesPath := filepath.Join(dir, "games.yaml")

	content := `
games:
  morrowind:
    game: Morrowind
    plugins_dir: ~/games/morrowind/Data Files
    active_plugins_file: ~/games/morrowind/Morrowind.ini
`
	require.NoError(t, os.WriteFile(gamesPath, []byte(content), 0644))

	games, err := config.LoadGames(dir)
	require.NoError(t, err)
	require.Len(t, games, 1)

	home, _ := os.UserHomeDir()
	g := games["morrowind"]
	assert.NotContains(t, g.PluginsDir, "~")
	assert.Equal(t, filepath.Join(home, "games/morrowind/Data Files"), g.PluginsDir)
}
