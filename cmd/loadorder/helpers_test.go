package main

import (
	"os"
	"path/filepath"
	"testing"

	"loadorder/internal/domain"

	"github.com/stretchr/testify/require"
)

func testGameSettings(slug string) *domain.GameSettings {
	return &domain.GameSettings{
		ID:                domain.SkyrimSE,
		Slug:              slug,
		GameMasterName:    "Skyrim.esm",
		PluginsDir:        "/nonexistent",
		ActivePluginsFile: "/nonexistent/plugins.txt",
	}
}

func writePluginHeader(t *testing.T, dir, name, tag string, flags uint32) {
	t.Helper()
	header := make([]byte, 12)
	copy(header[0:4], tag)
	header[8] = byte(flags)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), header, 0o644))
}
