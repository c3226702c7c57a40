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

func skyrimGameSettings(dir string) *domain.GameSettings {
	return &domain.GameSettings{
		ID:                domain.Skyrim,
		GameMasterName:    "Skyrim.esm",
		PluginsDir:        dir,
		LoadOrderFile:     filepath.Join(dir, "loadorder.txt"),
		ActivePluginsFile: filepath.Join(dir, "plugins.txt"),
		ImplicitlyActive:  []string{"Update.esm"},
	}
}

// TestTextfile_S1RoundTrip implements the concrete scenario from
// a Skyrim load order with Update.esm auto-forced active.
func TestTextfile_S1RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "Skyrim.esm", "TES4", 0x1)
	writePlugin(t, dir, "Update.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank - Different.esm", "TES4", 0x1)

	settings := skyrimGameSettings(dir)
	info := pluginfo.New(dir)
	s := strategy.Textfile{}

	entries, err := s.Load(settings, info)
	require.NoError(t, err)

	names := namesOf(entries)
	require.Contains(t, names, "Skyrim.esm")
	require.Equal(t, "Skyrim.esm", entries[0].Name)

	setActive(entries, "Blank.esm", true)
	require.NoError(t, s.Save(settings, entries))

	reloaded, err := s.Load(settings, info)
	require.NoError(t, err)

	activeNames := map[string]bool{}
	for _, p := range reloaded {
		if p.Active {
			activeNames[p.Name] = true
		}
	}
	require.True(t, activeNames["Skyrim.esm"])
	require.True(t, activeNames["Update.esm"])
	require.True(t, activeNames["Blank.esm"])
	require.False(t, activeNames["Blank - Different.esm"])
}

func TestTextfile_FallsBackToActiveFileWhenLoadOrderMissing(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "Skyrim.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esm", "TES4", 0x1)

	settings := skyrimGameSettings(dir)
	require.NoError(t, os.WriteFile(settings.ActivePluginsFile, []byte("Skyrim.esm\nBlank.esm\n"), 0o644))

	entries, err := strategy.Textfile{}.Load(settings, pluginfo.New(dir))
	require.NoError(t, err)
	require.Equal(t, []string{"Skyrim.esm", "Blank.esm"}, namesOf(entries))
}

func namesOf(entries []domain.Plugin) []string {
	out := make([]string, len(entries))
	for i, p := range entries {
		out[i] = p.Name
	}
	return out
}

func setActive(entries []domain.Plugin, name string, active bool) {
	for i := range entries {
		if entries[i].NameMatches(name) {
			entries[i].Active = active
			return
		}
	}
}
