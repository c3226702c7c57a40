package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUpSkyrimGame(t *testing.T) string {
	t.Helper()
	configDir = t.TempDir()
	gameSlug = ""

	pluginsDir := filepath.Join(configDir, "Data")
	require.NoError(t, os.MkdirAll(pluginsDir, 0755))
	writePluginHeader(t, pluginsDir, "Skyrim.esm", "TES4", 0x1)
	writePluginHeader(t, pluginsDir, "Blank.esp", "TES4", 0x0)
	writePluginHeader(t, pluginsDir, "Other.esp", "TES4", 0x0)

	root := newTestRoot()
	root.SetArgs([]string{"games", "add", "skyrimse", "--game", "SkyrimSE", "--master", "Skyrim.esm",
		"--plugins-dir", pluginsDir,
		"--load-order-file", filepath.Join(configDir, "loadorder.txt"),
		"--active-plugins-file", filepath.Join(configDir, "plugins.txt")})
	require.NoError(t, root.Execute())

	root = newTestRoot()
	root.SetArgs([]string{"games", "use", "skyrimse"})
	require.NoError(t, root.Execute())

	return pluginsDir
}

func TestActivateDeactivateCmd_RoundTrip(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	root := newTestRoot()
	root.SetArgs([]string{"activate", "Blank.esp"})
	require.NoError(t, root.Execute())

	root = newTestRoot()
	root.SetArgs([]string{"deactivate", "Blank.esp"})
	require.NoError(t, root.Execute())
}

func TestDeactivateCmd_GameMasterFails(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	root := newTestRoot()
	root.SetArgs([]string{"activate", "Blank.esp"})
	require.NoError(t, root.Execute())

	root = newTestRoot()
	root.SetArgs([]string{"deactivate", "Skyrim.esm"})
	assert.Error(t, root.Execute())
}
