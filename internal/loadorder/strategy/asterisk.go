package strategy

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"loadorder/internal/domain"
)

// Asterisk implements the persistence method used by Fallout 4 and its VR
// release: a single Windows-1252 file carries both order
// and activation, one filename per line, active ones prefixed with `*`.
// The game master is implicit: synthesized at index 0 on load, and never
// written to the file.
type Asterisk struct{}

// Load implements Strategy.
func (Asterisk) Load(settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error) {
	lines, err := readAsteriskFile(settings.ActivePluginsFile)
	if err != nil {
		return nil, err
	}

	var entries []domain.Plugin
	if settings.GameMasterName != "" && info.Exists(settings.GameMasterName) {
		gm := classify(info, settings.GameMasterName)
		gm.Active = true
		entries = append(entries, gm)
	}

	accepted := 0
	const maxActive = 255
	for _, line := range lines {
		active := strings.HasPrefix(line, "*")
		name := strings.TrimPrefix(line, "*")
		if name == "" || !info.IsValid(name) {
			continue
		}
		if domain.NamesEqual(name, settings.GameMasterName) {
			continue
		}
		if indexOfFold(entries, name) != -1 {
			continue
		}
		p := classify(info, name)
		if active {
			if accepted >= maxActive {
				active = false
			} else {
				accepted++
			}
		}
		p.Active = active
		entries = insertClassified(entries, p, settings)
	}

	entries, err = admitFromDisk(entries, settings, info)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Save implements Strategy.
func (Asterisk) Save(settings *domain.GameSettings, entries []domain.Plugin) error {
	var buf bytes.Buffer
	for _, p := range entries {
		if domain.NamesEqual(p.Name, settings.GameMasterName) {
			continue
		}
		line := p.Name
		if p.Active {
			line = "*" + line
		}
		encoded, err := encodeWin1252(line)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		buf.Write(encoded)
		buf.WriteByte('\n')
	}
	return atomicWriteFile(settings.ActivePluginsFile, buf.Bytes(), 0o644)
}

func readAsteriskFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plugins file: %w", err)
	}

	var lines []string
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
		lines = append(lines, line)
	}
	return lines, nil
}
