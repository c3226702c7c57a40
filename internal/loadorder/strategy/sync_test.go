package strategy_test

import (
	"os"
	"testing"

	"loadorder/internal/loadorder/strategy"

	"github.com/stretchr/testify/require"
)

func TestIsSynchronised_TimestampIsTrivial(t *testing.T) {
	ok, err := strategy.IsSynchronised(newFalloutNVSettings(t.TempDir()))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsSynchronised_TextfileAgreeing(t *testing.T) {
	dir := t.TempDir()
	settings := skyrimGameSettings(dir)
	require.NoError(t, os.WriteFile(settings.LoadOrderFile, []byte("Skyrim.esm\nBlank.esm\nBlank2.esm\n"), 0o644))
	require.NoError(t, os.WriteFile(settings.ActivePluginsFile, []byte("Skyrim.esm\nBlank2.esm\n"), 0o644))

	ok, err := strategy.IsSynchronised(settings)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsSynchronised_TextfileDisagreeing(t *testing.T) {
	dir := t.TempDir()
	settings := skyrimGameSettings(dir)
	require.NoError(t, os.WriteFile(settings.LoadOrderFile, []byte("Skyrim.esm\nBlank.esm\nBlank2.esm\n"), 0o644))
	require.NoError(t, os.WriteFile(settings.ActivePluginsFile, []byte("Blank2.esm\nBlank.esm\n"), 0o644))

	ok, err := strategy.IsSynchronised(settings)
	require.NoError(t, err)
	require.False(t, ok)
}
