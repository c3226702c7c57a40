package strategy_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"loadorder/internal/domain"
	"loadorder/internal/loadorder/strategy"
	"loadorder/internal/pluginfo"

	"github.com/stretchr/testify/require"
)

func newFalloutNVSettings(dir string) *domain.GameSettings {
	return &domain.GameSettings{
		ID:                domain.FalloutNV,
		GameMasterName:    "FalloutNV.esm",
		PluginsDir:        dir,
		ActivePluginsFile: filepath.Join(dir, "plugins.txt"),
	}
}

func TestTimestamp_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "FalloutNV.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esp", "TES4", 0x0)

	now := time.Now()
	require.NoError(t, os.Chtimes(filepath.Join(dir, "FalloutNV.esm"), now, now))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "Blank.esp"), now.Add(10*time.Second), now.Add(10*time.Second)))

	settings := newFalloutNVSettings(dir)
	info := pluginfo.New(dir)
	s := strategy.Timestamp{}

	entries, err := s.Load(settings, info)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "FalloutNV.esm", entries[0].Name)
	require.Equal(t, "Blank.esp", entries[1].Name)

	entries[1].Active = true
	require.NoError(t, s.Save(settings, entries))

	reloaded, err := s.Load(settings, info)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	require.True(t, reloaded[1].Active)
	require.False(t, reloaded[0].Active)
}

func TestTimestamp_RepairDropsUnknownActiveEntry(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "FalloutNV.esm", "TES4", 0x1)
	writePlugin(t, dir, "Blank.esp", "TES4", 0x0)

	activePath := filepath.Join(dir, "plugins.txt")
	require.NoError(t, os.WriteFile(activePath, []byte("FalloutNV.esm\nGhost.esp\nBlank.esp\n"), 0o644))

	settings := newFalloutNVSettings(dir)
	info := pluginfo.New(dir)

	entries, err := strategy.Timestamp{}.Load(settings, info)
	require.NoError(t, err)

	active := 0
	for _, p := range entries {
		if p.Active {
			active++
		}
	}
	require.Equal(t, 2, active)
}

func TestTimestamp_ActiveCapTruncatesAt255(t *testing.T) {
	dir := t.TempDir()
	var fileLines string
	for i := 0; i < 300; i++ {
		name := pluginFileName(i)
		writePlugin(t, dir, name, "TES4", 0x0)
		fileLines += name + "\n"
	}
	activePath := filepath.Join(dir, "plugins.txt")
	require.NoError(t, os.WriteFile(activePath, []byte(fileLines), 0o644))

	settings := &domain.GameSettings{PluginsDir: dir, ActivePluginsFile: activePath}
	info := pluginfo.New(dir)

	entries, err := strategy.Timestamp{}.Load(settings, info)
	require.NoError(t, err)

	active := 0
	for _, p := range entries {
		if p.Active {
			active++
		}
	}
	require.Equal(t, 255, active)
}

func pluginFileName(i int) string {
	return fmt.Sprintf("Plugin%03d.esp", i)
}
