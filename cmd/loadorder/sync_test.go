package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCmd_FreshGameIsSynchronised(t *testing.T) {
	setUpSkyrimGame(t)
	defer func() { configDir = ""; gameSlug = "" }()

	root := newTestRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"sync"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "in sync")
}
