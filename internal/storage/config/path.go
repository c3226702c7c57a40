// Package config provides configuration file parsing and validation.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ParseConfigDir validates a --config directory path before it's used to load or
// create config.yaml/games.yaml. Unlike a config file, the directory need
// not exist yet: Service creates it on first run. It returns an error if:
//   - The path is empty
//   - The path is not absolute
//   - The path contains parent directory traversal (..)
//   - Something already exists at the path but isn't a directory
func ParseConfigDir(path string) (string, error) {
	if path == "" {
		return "", errors.New("config directory cannot be empty")
	}

	if !filepath.IsAbs(path) {
		return "", errors.New("config directory must be absolute")
	}

	if strings.Contains(path, "..") {
		return "", errors.New("config directory contains invalid traversal")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Clean(path), nil
		}
		return "", err
	}

	if !info.IsDir() {
		return "", errors.New("config directory path points to a file, not a directory")
	}

	return filepath.Clean(path), nil
}
