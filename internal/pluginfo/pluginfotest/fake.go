// Package pluginfotest provides an in-memory domain.PluginInfo double for
// exercising the load order engine and persistence strategies without
// touching disk.
package pluginfotest

import (
	"fmt"
	"time"

	"loadorder/internal/domain"
)

// Entry describes one plugin's fixed metadata in a Provider.
type Entry struct {
	Master  bool
	Light   bool
	Invalid bool
	ModTime time.Time
}

// Provider is a fixed-table domain.PluginInfo implementation keyed by
// filename, compared with domain.NamesEqual so it matches the engine's own
// case-folding behaviour.
type Provider struct {
	entries map[string]Entry
	order   []string
}

// NewProvider builds an empty Provider.
func NewProvider() *Provider {
	return &Provider{entries: make(map[string]Entry)}
}

// Add registers a plugin. Subsequent Add calls for the same name (under
// ASCII case folding) replace the entry.
func (p *Provider) Add(name string, entry Entry) *Provider {
	key := domain.AsciiFold(name)
	if _, exists := p.entries[key]; !exists {
		p.order = append(p.order, name)
	}
	p.entries[key] = entry
	return p
}

// Remove deletes a plugin from the table, simulating deletion from disk.
func (p *Provider) Remove(name string) {
	key := domain.AsciiFold(name)
	delete(p.entries, key)
	for i, n := range p.order {
		if domain.NamesEqual(n, name) {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Touch updates a plugin's ModTime, simulating an external edit.
func (p *Provider) Touch(name string, t time.Time) {
	key := domain.AsciiFold(name)
	e, ok := p.entries[key]
	if !ok {
		return
	}
	e.ModTime = t
	p.entries[key] = e
}

// Names returns every registered plugin name, in registration order.
func (p *Provider) Names() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Provider) lookup(name string) (Entry, bool) {
	e, ok := p.entries[domain.AsciiFold(name)]
	return e, ok
}

// Exists implements domain.PluginInfo.
func (p *Provider) Exists(name string) bool {
	_, ok := p.lookup(name)
	return ok
}

// IsValid implements domain.PluginInfo.
func (p *Provider) IsValid(name string) bool {
	e, ok := p.lookup(name)
	return ok && !e.Invalid
}

// IsMaster implements domain.PluginInfo.
func (p *Provider) IsMaster(name string) bool {
	e, ok := p.lookup(name)
	return ok && e.Master
}

// IsLightPlugin implements domain.PluginInfo.
func (p *Provider) IsLightPlugin(name string) bool {
	e, ok := p.lookup(name)
	return ok && e.Light
}

// ModTime implements domain.PluginInfo.
func (p *Provider) ModTime(name string) (time.Time, error) {
	e, ok := p.lookup(name)
	if !ok {
		return time.Time{}, fmt.Errorf("pluginfotest: %s: %w", name, domain.ErrPluginNotFound)
	}
	return e.ModTime, nil
}
