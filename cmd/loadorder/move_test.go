package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCmd_InvalidIndexFails(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	root := newTestRoot()
	root.SetArgs([]string{"move", "Blank.esp", "notanumber"})
	assert.Error(t, root.Execute())
}

func TestMoveCmd_RejectsDisplacingGameMaster(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	root := newTestRoot()
	root.SetArgs([]string{"move", "Skyrim.esm", "1"})
	assert.Error(t, root.Execute())
}

func TestMoveCmd_ValidMoveSucceeds(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	// Reordering among the non-master plugins (indices 1+) stays valid as
	// long as the game master keeps index 0.
	root := newTestRoot()
	root.SetArgs([]string{"move", "Other.esp", "1"})
	require.NoError(t, root.Execute())
}
