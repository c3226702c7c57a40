package strategy

import (
	"golang.org/x/text/encoding/charmap"
)

// decodeWin1252 converts Windows-1252-encoded bytes, as stored in the
// active-plugins file formats, to a UTF-8 string.
func decodeWin1252(b []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeWin1252 converts a UTF-8 string to Windows-1252 bytes for writing.
func encodeWin1252(s string) ([]byte, error) {
	return charmap.Windows1252.NewEncoder().Bytes([]byte(s))
}
