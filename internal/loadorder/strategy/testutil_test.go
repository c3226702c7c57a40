package strategy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writePlugin drops a minimal valid plugin header on disk: a 4-byte
// record-type tag, a 4-byte size field (unused by the provider), and a
// 4-byte flags field whose bit 0 is the master flag.
func writePlugin(t *testing.T, dir, name, tag string, flags uint32) {
	t.Helper()
	header := make([]byte, 12)
	copy(header[0:4], tag)
	header[8] = byte(flags)
	header[9] = byte(flags >> 8)
	header[10] = byte(flags >> 16)
	header[11] = byte(flags >> 24)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), header, 0o644))
}
