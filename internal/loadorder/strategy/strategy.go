// Package strategy implements the four on-disk persistence encodings for a
// load order: Timestamp, Textfile, Asterisk, and Morrowind. Each shares the
// same two-operation contract, modeled here as a narrow interface rather
// than a class hierarchy, matching a tagged variant rather than deep
// inheritance.
package strategy

import (
	"loadorder/internal/domain"
)

// Strategy loads and saves an ordered plugin sequence against disk for one
// persistence method. Implementations hold no state beyond the
// domain.GameSettings and domain.PluginInfo they're given per call.
type Strategy interface {
	// Load rebuilds the ordered sequence from disk, repairing as it goes:
	// unknown, invalid, or missing entries named in persisted state are
	// dropped; the 255-active cap truncates excess active markers in
	// file order; plugins present on disk but absent from persisted
	// state are admitted from the directory scan.
	Load(settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error)
	// Save persists entries, which callers must supply in final load
	// order with Active already resolved.
	Save(settings *domain.GameSettings, entries []domain.Plugin) error
}

// masterPartitionPoint returns the index of the first non-master entry,
// i.e. the count of leading master entries. Entries are assumed to already
// satisfy the master-partition rule (masters precede non-masters).
func masterPartitionPoint(entries []domain.Plugin) int {
	for i, p := range entries {
		if !p.IsMaster {
			return i
		}
	}
	return len(entries)
}

// insertClassified places a freshly classified plugin into entries
// following the activate() placement rules: the game
// master (when the method requires it first) goes to index 0, other
// masters go to the master partition point, non-masters are appended.
func insertClassified(entries []domain.Plugin, p domain.Plugin, settings *domain.GameSettings) []domain.Plugin {
	if settings.RequiresGameMasterFirst() && settings.GameMasterName != "" && domain.NamesEqual(p.Name, settings.GameMasterName) {
		out := make([]domain.Plugin, 0, len(entries)+1)
		out = append(out, p)
		out = append(out, entries...)
		return out
	}
	if p.IsMaster {
		point := masterPartitionPoint(entries)
		out := make([]domain.Plugin, 0, len(entries)+1)
		out = append(out, entries[:point]...)
		out = append(out, p)
		out = append(out, entries[point:]...)
		return out
	}
	return append(entries, p)
}

// classify builds a domain.Plugin for name using info, defaulting Active to
// false. Callers set Active afterward.
func classify(info domain.PluginInfo, name string) domain.Plugin {
	mtime, _ := info.ModTime(name)
	return domain.Plugin{
		Name:     name,
		IsMaster: info.IsMaster(name),
		IsLight:  info.IsLightPlugin(name),
		ModTime:  mtime,
	}
}

// indexOfFold returns the index of target in entries under ASCII case
// folding, or -1.
func indexOfFold(entries []domain.Plugin, target string) int {
	for i, p := range entries {
		if p.NameMatches(target) {
			return i
		}
	}
	return -1
}
