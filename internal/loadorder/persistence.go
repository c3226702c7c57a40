package loadorder

import (
	"loadorder/internal/domain"
	"loadorder/internal/loadorder/strategy"
)

// Load rebuilds the in-memory state from disk if the freshness monitor
// reports the filesystem has changed since the last load or save. A fresh
// OrderedSet is always considered stale.
func (s *OrderedSet) Load() error {
	stale, err := s.fresh.HasFilesystemChanged(s.settings)
	if err != nil {
		return domain.WrapOrderError(domain.FileError, "checking freshness", err)
	}
	if !stale {
		return nil
	}

	entries, err := s.strategy.Load(s.settings, s.info)
	if err != nil {
		return domain.WrapOrderError(domain.FileError, "loading load order", err)
	}

	s.entries = entries
	if err := s.fresh.Sync(s.settings); err != nil {
		return domain.WrapOrderError(domain.FileError, "syncing freshness snapshot", err)
	}
	return nil
}

// Save flushes the current state through the matching persistence
// strategy and updates the freshness snapshot to match the post-write
// mtimes.
func (s *OrderedSet) Save() error {
	if err := s.strategy.Save(s.settings, s.entries); err != nil {
		return domain.WrapOrderError(domain.FileError, "saving load order", err)
	}
	if err := s.fresh.Sync(s.settings); err != nil {
		return domain.WrapOrderError(domain.FileError, "syncing freshness snapshot", err)
	}
	return nil
}

// IsSynchronised reports whether the on-disk files agree with each other.
// It does not consult in-memory state.
func (s *OrderedSet) IsSynchronised() (bool, error) {
	return strategy.IsSynchronised(s.settings)
}
