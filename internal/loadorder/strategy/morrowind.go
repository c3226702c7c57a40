package strategy

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"loadorder/internal/domain"
)

const morrowindSection = "Game Files"

// Morrowind implements the persistence method used by Morrowind itself
// order comes from plugin mtimes, same as Timestamp, but
// the active set lives in an INI-style section with numbered
// GameFile<N>=<name> entries rather than bare lines.
type Morrowind struct{}

// Load implements Strategy.
func (Morrowind) Load(settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error) {
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

	activeNames, err := readMorrowindIni(settings.ActivePluginsFile)
	if err != nil {
		return nil, err
	}
	applyActiveCap(entries, activeNames, info)

	return entries, nil
}

// Save implements Strategy.
func (Morrowind) Save(settings *domain.GameSettings, entries []domain.Plugin) error {
	if err := assignSequentialMtimes(settings, entries); err != nil {
		return err
	}
	return writeMorrowindIni(settings.ActivePluginsFile, entries)
}

// readMorrowindIni extracts GameFile<N>=<name> lines from the [Game Files]
// section, ignoring every other section and any malformed line. A missing
// file means no active plugins.
func readMorrowindIni(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading morrowind ini: %w", err)
	}

	var found []gameFileLine

	inSection := false
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		decoded, err := decodeWin1252(scanner.Bytes())
		if err != nil {
			continue
		}
		line := trimLine(decoded)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inSection = strings.EqualFold(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"), morrowindSection)
			continue
		}
		if !inSection {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(key), "gamefile") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(key[len("GameFile"):]))
		if err != nil {
			continue
		}
		found = append(found, gameFileLine{n: n, name: value})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.name
	}
	return names, nil
}

// gameFileLine is one parsed GameFile<N>=<name> entry.
type gameFileLine struct {
	n    int
	name string
}

// writeMorrowindIni emits a [Game Files] section with one numbered
// GameFile<N>= line per active entry, in entries' own iteration order.
func writeMorrowindIni(path string, entries []domain.Plugin) error {
	var buf bytes.Buffer
	buf.WriteString("[" + morrowindSection + "]\r\n")

	n := 0
	for _, p := range entries {
		if !p.Active {
			continue
		}
		line := fmt.Sprintf("GameFile%d=%s\r\n", n, p.Name)
		encoded, err := encodeWin1252(line)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		buf.Write(encoded)
		n++
	}

	return atomicWriteFile(path, buf.Bytes(), 0o644)
}
