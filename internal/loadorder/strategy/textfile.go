package strategy

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"loadorder/internal/domain"
)

// Textfile implements the persistence method used by Skyrim and its
// re-releases, and Starfield: order comes from a plain
// UTF-8 load-order file, one filename per line with `#`-comments; the
// active set comes from a separate Windows-1252 active-plugins file.
type Textfile struct{}

// Load implements Strategy.
func (Textfile) Load(settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error) {
	seed, err := readLoadOrderFile(settings.LoadOrderFile)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		// Load-order file missing: fall back to the active-plugins file
		// for the seed ordering.
		seed, err = readActiveFilePlain(settings.ActivePluginsFile)
		if err != nil {
			return nil, err
		}
	}

	var entries []domain.Plugin
	for _, name := range seed {
		if !info.IsValid(name) {
			continue
		}
		if indexOfFold(entries, name) != -1 {
			continue
		}
		entries = append(entries, classify(info, name))
	}

	entries, err = admitFromDisk(entries, settings, info)
	if err != nil {
		return nil, err
	}

	activeNames, err := readActiveFilePlain(settings.ActivePluginsFile)
	if err != nil {
		return nil, err
	}
	applyActiveCap(entries, activeNames, info)

	forceImplicitlyActive(entries, settings, info)

	return entries, nil
}

// Save implements Strategy.
func (Textfile) Save(settings *domain.GameSettings, entries []domain.Plugin) error {
	if err := writeLoadOrderFile(settings.LoadOrderFile, entries); err != nil {
		return err
	}
	return writeActiveFilePlain(settings.ActivePluginsFile, entries)
}

// forceImplicitlyActive activates the game master and any
// profile-configured implicitly-active plugin present on disk, per
// the "forced active after load" rule for implicitly-active plugins.
func forceImplicitlyActive(entries []domain.Plugin, settings *domain.GameSettings, info domain.PluginInfo) {
	if settings.GameMasterName != "" {
		if idx := indexOfFold(entries, settings.GameMasterName); idx != -1 {
			entries[idx].Active = true
		}
	}
	for _, name := range settings.ImplicitlyActive {
		if !info.Exists(name) {
			continue
		}
		if idx := indexOfFold(entries, name); idx != -1 {
			entries[idx].Active = true
		}
	}
}

// readLoadOrderFile reads UTF-8 lines, skipping blanks and `#` comments.
// A missing file is reported as a nil slice (not an error, not an empty
// non-nil slice) so Load can fall back to the active-plugins seed.
func readLoadOrderFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading load order file: %w", err)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := trimLine(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// writeLoadOrderFile enumerates the full ordering, one UTF-8 filename per
// line.
func writeLoadOrderFile(path string, entries []domain.Plugin) error {
	var buf bytes.Buffer
	for _, p := range entries {
		buf.WriteString(p.Name)
		buf.WriteByte('\n')
	}
	return atomicWriteFile(path, buf.Bytes(), 0o644)
}
