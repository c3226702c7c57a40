package loadorder_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"loadorder/internal/domain"
	"loadorder/internal/loadorder"

	"github.com/stretchr/testify/require"
)

func TestFreshness_UnprimedAlwaysChanged(t *testing.T) {
	settings := &domain.GameSettings{PluginsDir: t.TempDir()}
	var f loadorder.Freshness

	changed, err := f.HasFilesystemChanged(settings)
	require.NoError(t, err)
	require.True(t, changed)
}

func TestFreshness_SyncThenNoChange(t *testing.T) {
	dir := t.TempDir()
	active := filepath.Join(dir, "plugins.txt")
	require.NoError(t, os.WriteFile(active, []byte("Blank.esp\n"), 0o644))

	settings := &domain.GameSettings{PluginsDir: dir, ActivePluginsFile: active}
	var f loadorder.Freshness

	require.NoError(t, f.Sync(settings))
	changed, err := f.HasFilesystemChanged(settings)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestFreshness_TriggersOnEitherDirectionOfMtimeChange(t *testing.T) {
	dir := t.TempDir()
	active := filepath.Join(dir, "plugins.txt")
	require.NoError(t, os.WriteFile(active, []byte("Blank.esp\n"), 0o644))

	settings := &domain.GameSettings{PluginsDir: dir, ActivePluginsFile: active}
	var f loadorder.Freshness
	require.NoError(t, f.Sync(settings))

	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(active, older, older))

	changed, err := f.HasFilesystemChanged(settings)
	require.NoError(t, err)
	require.True(t, changed)
}

func TestFreshness_ResetForcesReload(t *testing.T) {
	dir := t.TempDir()
	settings := &domain.GameSettings{PluginsDir: dir}
	var f loadorder.Freshness
	require.NoError(t, f.Sync(settings))

	f.Reset()
	changed, err := f.HasFilesystemChanged(settings)
	require.NoError(t, err)
	require.True(t, changed)
}
