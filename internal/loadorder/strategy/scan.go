package strategy

import (
	"os"
	"sort"

	"loadorder/internal/domain"
)

// scanPluginsDir lists every regular file in settings.PluginsDir, valid or
// not — validity is decided by the caller via info.IsValid, not by this
// directory walk.
func scanPluginsDir(settings *domain.GameSettings) ([]string, error) {
	dirEntries, err := os.ReadDir(settings.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// admitFromDisk appends every valid plugin on disk that isn't already
// represented in entries, using the activate() placement rules (masters at
// the partition point, non-masters appended). This is the "full plugin
// directory is always scanned" repair rule every strategy shares.
func admitFromDisk(entries []domain.Plugin, settings *domain.GameSettings, info domain.PluginInfo) ([]domain.Plugin, error) {
	onDisk, err := scanPluginsDir(settings)
	if err != nil {
		return nil, err
	}
	sort.Strings(onDisk)

	for _, name := range onDisk {
		if indexOfFold(entries, name) != -1 {
			continue
		}
		if !info.IsValid(name) {
			continue
		}
		entries = insertClassified(entries, classify(info, name), settings)
	}
	return entries, nil
}

// sortByMtime orders masters ahead of non-masters and, within each group,
// by ascending modification time, breaking ties with ASCII-folded filename
// order as the tiebreak.
func sortByMtime(entries []domain.Plugin) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsMaster != b.IsMaster {
			return a.IsMaster
		}
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.Before(b.ModTime)
		}
		return domain.AsciiFold(a.Name) < domain.AsciiFold(b.Name)
	})
}
