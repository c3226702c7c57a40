package strategy_test

import (
	"os"
	"path/filepath"
	"testing"

	"loadorder/internal/domain"
	"loadorder/internal/loadorder/strategy"
	"loadorder/internal/pluginfo"

	"github.com/stretchr/testify/require"
)

func fallout4Settings(dir string) *domain.GameSettings {
	return &domain.GameSettings{
		ID:                domain.Fallout4,
		GameMasterName:    "Fallout4.esm",
		PluginsDir:        dir,
		ActivePluginsFile: filepath.Join(dir, "plugins.txt"),
	}
}

// TestAsterisk_S2FileFormat checks the Fallout 4 file format: the game master is
// never written, and active plugins are prefixed with `*`.
func TestAsterisk_S2FileFormat(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "Fallout4.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank - Different.esp", "TES4", 0x0)

	settings := fallout4Settings(dir)
	info := pluginfo.New(dir)

	entries, err := strategy.Asterisk{}.Load(settings, info)
	require.NoError(t, err)
	require.Equal(t, "Fallout4.esm", entries[0].Name)

	setActive(entries, "Fallout4.esm", true)
	setActive(entries, "Blank.esm", true)
	setActive(entries, "Blank - Different.esp", true)

	require.NoError(t, strategy.Asterisk{}.Save(settings, entries))

	raw, err := os.ReadFile(settings.ActivePluginsFile)
	require.NoError(t, err)
	content := string(raw)

	require.NotContains(t, content, "Fallout4.esm")
	require.Contains(t, content, "*Blank.esm")
	require.Contains(t, content, "*Blank - Different.esp")
}

func TestAsterisk_GameMasterSynthesizedAndActive(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "Fallout4.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esp", "TES4", 0x0)

	settings := fallout4Settings(dir)
	require.NoError(t, os.WriteFile(settings.ActivePluginsFile, []byte("*Blank.esp\n"), 0o644))

	entries, err := strategy.Asterisk{}.Load(settings, pluginfo.New(dir))
	require.NoError(t, err)

	require.Equal(t, "Fallout4.esm", entries[0].Name)
	require.True(t, entries[0].Active)
}
