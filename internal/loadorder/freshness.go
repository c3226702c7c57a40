package loadorder

import (
	"os"
	"time"

	"loadorder/internal/domain"
)

// Freshness tracks the newest modification time observed across a game's
// plugins directory and metadata files. Any inequality
// between the stored watermark and a freshly computed one — older or
// newer — means the filesystem has moved since the last load or save.
type Freshness struct {
	watermark time.Time
	primed    bool
}

// HasFilesystemChanged reports whether the filesystem state differs from
// the last recorded snapshot. An unprimed Freshness (never loaded or
// saved) always reports changed.
func (f *Freshness) HasFilesystemChanged(settings *domain.GameSettings) (bool, error) {
	if !f.primed {
		return true, nil
	}
	current, err := watermark(settings)
	if err != nil {
		return false, err
	}
	return !current.Equal(f.watermark), nil
}

// Sync recomputes and stores the current watermark, called after a
// successful load() or save().
func (f *Freshness) Sync(settings *domain.GameSettings) error {
	current, err := watermark(settings)
	if err != nil {
		return err
	}
	f.watermark = current
	f.primed = true
	return nil
}

// Reset clears the snapshot back to zero, as clear() requires.
func (f *Freshness) Reset() {
	f.watermark = time.Time{}
	f.primed = false
}

func watermark(settings *domain.GameSettings) (time.Time, error) {
	var latest time.Time
	paths := make([]string, 0, 3)
	paths = append(paths, settings.PluginsDir)
	if settings.LoadOrderFile != "" {
		paths = append(paths, settings.LoadOrderFile)
	}
	if settings.ActivePluginsFile != "" {
		paths = append(paths, settings.ActivePluginsFile)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return time.Time{}, err
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}
