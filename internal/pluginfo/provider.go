// Package pluginfo provides a disk-based implementation of
// domain.PluginInfo. Plugin header parsing is explicitly out of scope for
// the load order engine: this package is the narrow,
// swappable collaborator the engine consults, not part of the engine
// itself.
package pluginfo

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"loadorder/internal/domain"
)

const masterFlagBit = 0x1

// Provider answers PluginInfo questions by reading plugin files directly
// off disk, on demand and without caching: it holds no state across
// calls.
type Provider struct {
	// Dirs is searched in order for each named plugin; the first directory
	// containing a file of that name wins, so additional plugin
	// directories can override the main plugins directory.
	Dirs []string
	// LightExtensions are treated as light plugins regardless of header
	// flags (".esl").
	LightExtensions []string
}

// New creates a Provider that looks for plugins only in pluginsDir.
func New(pluginsDir string) *Provider {
	return &Provider{Dirs: []string{pluginsDir}, LightExtensions: []string{".esl"}}
}

func (p *Provider) resolve(name string) (string, bool) {
	for _, dir := range p.Dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && domain.NamesEqual(e.Name(), name) {
				return filepath.Join(dir, e.Name()), true
			}
		}
	}
	return "", false
}

// Exists implements domain.PluginInfo.
func (p *Provider) Exists(name string) bool {
	_, ok := p.resolve(name)
	return ok
}

// ModTime implements domain.PluginInfo.
func (p *Provider) ModTime(name string) (time.Time, error) {
	path, ok := p.resolve(name)
	if !ok {
		return time.Time{}, fmt.Errorf("pluginfo: %s: %w", name, domain.ErrPluginNotFound)
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// IsValid implements domain.PluginInfo. A plugin is valid if it exists and
// its header can be read: at least 12 bytes, starting with a recognised
// record-type tag ("TES3" for Morrowind, "TES4" for every later game).
func (p *Provider) IsValid(name string) bool {
	_, _, ok := p.readHeader(name)
	return ok
}

// IsMaster implements domain.PluginInfo, reading the master flag bit out of
// the plugin's record header flags field.
func (p *Provider) IsMaster(name string) bool {
	flags, _, ok := p.readHeader(name)
	if !ok {
		return false
	}
	return flags&masterFlagBit != 0
}

// IsLightPlugin implements domain.PluginInfo.
func (p *Provider) IsLightPlugin(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.LightExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// readHeader returns the record flags field and the record type tag.
func (p *Provider) readHeader(name string) (flags uint32, tag string, ok bool) {
	path, found := p.resolve(name)
	if !found {
		return 0, "", false
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, "", false
	}
	defer f.Close()

	var header [12]byte
	if _, err := f.Read(header[:]); err != nil {
		return 0, "", false
	}

	tag = string(header[0:4])
	if tag != "TES3" && tag != "TES4" {
		return 0, "", false
	}

	flags = binary.LittleEndian.Uint32(header[8:12])
	return flags, tag, true
}
