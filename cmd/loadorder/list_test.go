package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_ShowsPlugins(t *testing.T) {
	configDir = t.TempDir()
	defer func() { configDir = "" }()
	gameSlug = ""
	defer func() { gameSlug = "" }()

	pluginsDir := filepath.Join(configDir, "Data")
	require.NoError(t, os.MkdirAll(pluginsDir, 0755))
	writePluginHeader(t, pluginsDir, "Skyrim.esm", "TES4", 0x1)
	writePluginHeader(t, pluginsDir, "Blank.esp", "TES4", 0x0)

	root := newTestRoot()
	root.SetArgs([]string{"games", "add", "skyrimse", "--game", "SkyrimSE", "--master", "Skyrim.esm",
		"--plugins-dir", pluginsDir,
		"--load-order-file", filepath.Join(configDir, "loadorder.txt"),
		"--active-plugins-file", filepath.Join(configDir, "plugins.txt")})
	require.NoError(t, root.Execute())

	root = newTestRoot()
	root.SetArgs([]string{"games", "use", "skyrimse"})
	require.NoError(t, root.Execute())

	root = newTestRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Skyrim.esm")
	assert.Contains(t, buf.String(), "Blank.esp")
}

func TestListCmd_NoActiveGameFails(t *testing.T) {
	configDir = t.TempDir()
	defer func() { configDir = "" }()
	gameSlug = ""

	root := newTestRoot()
	root.SetArgs([]string{"list"})
	assert.Error(t, root.Execute())
}
