package strategy

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"loadorder/internal/domain"
)

// Timestamp implements the persistence method used by Oblivion, Fallout 3,
// and Fallout: New Vegas: order comes from the plugin
// files' own modification times, with masters kept ahead of non-masters,
// and the active set comes from one
// filename per line in a Windows-1252-encoded active-plugins file.
type Timestamp struct{}

// Load implements Strategy.
func (Timestamp) Load(settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error) {
	onDisk, err := scanPluginsDir(settings)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Plugin, 0, len(onDisk))
	for _, name := range onDisk {
		if !info.IsValid(name) {
			continue
		}
		entries = append(entries, classify(info, name))
	}
	sortByMtime(entries)

	activeNames, err := readActiveFilePlain(settings.ActivePluginsFile)
	if err != nil {
		return nil, err
	}
	applyActiveCap(entries, activeNames, info)

	return entries, nil
}

// Save implements Strategy.
func (Timestamp) Save(settings *domain.GameSettings, entries []domain.Plugin) error {
	if err := assignSequentialMtimes(settings, entries); err != nil {
		return err
	}
	return writeActiveFilePlain(settings.ActivePluginsFile, entries)
}

// readActiveFilePlain reads one Windows-1252-encoded filename per line. A
// missing file means no active plugins, not an error.
func readActiveFilePlain(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading active plugins file: %w", err)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		decoded, err := decodeWin1252(scanner.Bytes())
		if err != nil {
			continue
		}
		name := trimLine(decoded)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// writeActiveFilePlain writes one filename per line, in entries' own
// iteration order, for every active entry.
func writeActiveFilePlain(path string, entries []domain.Plugin) error {
	var buf bytes.Buffer
	for _, p := range entries {
		if !p.Active {
			continue
		}
		encoded, err := encodeWin1252(p.Name)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		buf.Write(encoded)
		buf.WriteByte('\n')
	}
	return atomicWriteFile(path, buf.Bytes(), 0o644)
}

// applyActiveCap marks entries active from names, in file order, silently
// dropping unknown/invalid names and truncating once 255 have been
// accepted, per the shared repair policy.
func applyActiveCap(entries []domain.Plugin, names []string, info domain.PluginInfo) {
	const maxActive = 255
	accepted := 0
	for _, name := range names {
		if accepted >= maxActive {
			return
		}
		if !info.IsValid(name) {
			continue
		}
		idx := indexOfFold(entries, name)
		if idx == -1 {
			continue
		}
		entries[idx].Active = true
		accepted++
	}
}

// assignSequentialMtimes stamps entries' files with monotonically
// increasing mtimes, 2 seconds apart, anchored at the earliest existing
// mtime among them — wide enough to be observable on coarser-granularity
// filesystems.
func assignSequentialMtimes(settings *domain.GameSettings, entries []domain.Plugin) error {
	if len(entries) == 0 {
		return nil
	}

	anchor := entries[0].ModTime
	for _, p := range entries {
		if p.ModTime.Before(anchor) {
			anchor = p.ModTime
		}
	}
	if anchor.IsZero() {
		anchor = time.Now()
	}

	const step = 2 * time.Second
	for i, p := range entries {
		t := anchor.Add(time.Duration(i) * step)
		path := filepath.Join(settings.PluginsDir, p.Name)
		if err := os.Chtimes(path, t, t); err != nil {
			return fmt.Errorf("stamping mtime for %s: %w", p.Name, err)
		}
	}
	return nil
}

func trimLine(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t' || s[start] == '\r') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\r') {
		end--
	}
	return s[start:end]
}
