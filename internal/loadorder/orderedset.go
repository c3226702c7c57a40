// Package loadorder implements the in-memory load order engine: the
// ordered-sequence data structure paired with an active set, the
// invariant-preserving mutations it exposes, and the load()/save() cycle
// that ties a persistence strategy and a freshness snapshot to it.
package loadorder

import (
	"loadorder/internal/domain"
	"loadorder/internal/loadorder/strategy"
)

const maxActive = 255

// OrderedSet is the canonical in-memory representation of a game's load
// order: a sequence of domain.Plugin entries, each carrying identity,
// active flag, and cached is-master classification.
type OrderedSet struct {
	settings *domain.GameSettings
	info     domain.PluginInfo
	strategy strategy.Strategy
	fresh    Freshness
	entries  []domain.Plugin
}

// New builds an OrderedSet bound to settings for its entire lifetime. info
// is the PluginInfo provider consulted for every admission; the
// persistence strategy is selected from settings.Method().
func New(settings *domain.GameSettings, info domain.PluginInfo) *OrderedSet {
	return &OrderedSet{
		settings: settings,
		info:     info,
		strategy: strategy.For(settings.Method()),
	}
}

// GetLoadOrder returns a snapshot sequence of filenames in order.
func (s *OrderedSet) GetLoadOrder() []string {
	out := make([]string, len(s.entries))
	for i, p := range s.entries {
		out[i] = p.Name
	}
	return out
}

// Position returns the case-insensitive index of name, or len(entries) as
// a not-found sentinel.
func (s *OrderedSet) Position(name string) int {
	for i, p := range s.entries {
		if p.NameMatches(name) {
			return i
		}
	}
	return len(s.entries)
}

// PluginAt returns the filename at index i, failing InvalidArgs if i is out
// of range.
func (s *OrderedSet) PluginAt(i int) (string, error) {
	if i < 0 || i >= len(s.entries) {
		return "", domain.WrapOrderError(domain.InvalidArgs, "index out of range", domain.ErrIndexOutOfRange)
	}
	return s.entries[i].Name, nil
}

// Plugins returns a snapshot copy of every entry, in order, for callers
// that need more than a filename (e.g. to render master/active state).
func (s *OrderedSet) Plugins() []domain.Plugin {
	out := make([]domain.Plugin, len(s.entries))
	copy(out, s.entries)
	return out
}

// GetActive returns the case-insensitive set of active filenames.
func (s *OrderedSet) GetActive() []string {
	var out []string
	for _, p := range s.entries {
		if p.Active {
			out = append(out, p.Name)
		}
	}
	return out
}

// IsActive reports whether name is active, case-insensitively. An absent
// plugin is never active.
func (s *OrderedSet) IsActive(name string) bool {
	idx := indexOf(s.entries, name)
	return idx != -1 && s.entries[idx].Active
}

// Clear empties the load order and resets the freshness snapshot to zero.
func (s *OrderedSet) Clear() {
	s.entries = nil
	s.fresh.Reset()
}

// SetLoadOrder replaces the entire order, validating the rejection rules
// below before committing. Active flags are copied from the
// prior state by case-insensitive name match; genuinely new plugins start
// inactive.
func (s *OrderedSet) SetLoadOrder(seq []string) error {
	if err := s.checkNoDuplicates(seq); err != nil {
		return err
	}

	candidate := make([]domain.Plugin, 0, len(seq))
	for _, name := range seq {
		if !s.info.IsValid(name) {
			return domain.WrapOrderError(domain.InvalidPlugin, "plugin is not valid: "+name, domain.ErrPluginNotFound)
		}
		candidate = append(candidate, s.classifyOrReuse(name))
	}

	if err := checkMasterPartition(candidate); err != nil {
		return err
	}
	if err := checkGameMasterFirst(candidate, s.settings); err != nil {
		return err
	}

	if s.settings.RequiresGameMasterFirst() && s.settings.GameMasterName != "" {
		if idx := indexOf(candidate, s.settings.GameMasterName); idx != -1 {
			candidate[idx].Active = true
		}
	}

	s.entries = candidate
	return nil
}

// SetPosition inserts name at index i if absent, or moves it there if
// present, clamped to the end, preserving its active flag. Rejects moves
// that would put a master after a non-master, or move the game master
// out of index 0.
func (s *OrderedSet) SetPosition(name string, i int) error {
	existingIdx := indexOf(s.entries, name)

	var plugin domain.Plugin
	base := make([]domain.Plugin, len(s.entries))
	copy(base, s.entries)

	if existingIdx != -1 {
		plugin = base[existingIdx]
		base = append(base[:existingIdx], base[existingIdx+1:]...)
	} else {
		if !s.info.IsValid(name) {
			return domain.WrapOrderError(domain.InvalidPlugin, "plugin is not valid: "+name, domain.ErrPluginNotFound)
		}
		plugin = s.classifyOrReuse(name)
	}

	newSize := len(base) + 1
	clamped := i
	if clamped > newSize-1 {
		clamped = newSize - 1
	}
	if clamped < 0 {
		clamped = 0
	}

	candidate := make([]domain.Plugin, 0, newSize)
	candidate = append(candidate, base[:clamped]...)
	candidate = append(candidate, plugin)
	candidate = append(candidate, base[clamped:]...)

	if err := checkMasterPartition(candidate); err != nil {
		return err
	}
	if err := checkGameMasterFirst(candidate, s.settings); err != nil {
		return err
	}

	s.entries = candidate
	return nil
}

// Activate marks name active, inserting it into the load order first if
// absent, per the placement rules used by activate().
func (s *OrderedSet) Activate(name string) error {
	idx := indexOf(s.entries, name)
	if idx != -1 {
		if s.entries[idx].Active {
			return nil
		}
		if s.activeCount() >= maxActive {
			return domain.NewOrderError(domain.TooManyActive, "already at the 255 active plugin limit")
		}
		s.entries[idx].Active = true
		return nil
	}

	if !s.info.Exists(name) || !s.info.IsValid(name) {
		return domain.WrapOrderError(domain.InvalidPlugin, "plugin is not valid: "+name, domain.ErrPluginNotFound)
	}
	if s.activeCount() >= maxActive {
		return domain.NewOrderError(domain.TooManyActive, "already at the 255 active plugin limit")
	}

	p := s.freshClassify(name)
	p.Active = true
	s.entries = insertPlacement(s.entries, p, s.settings)
	return nil
}

// Deactivate clears name's active flag if present. An absent plugin is a
// no-op success. Deactivating the game master (Textfile/Asterisk) or a
// profile-configured implicitly-active plugin (e.g. Update.esm on TES5,
// when present on disk) fails RequiredActive.
func (s *OrderedSet) Deactivate(name string) error {
	idx := indexOf(s.entries, name)
	if idx == -1 {
		return nil
	}
	if !s.entries[idx].Active {
		return nil
	}

	if s.settings.RequiresGameMasterFirst() && domain.NamesEqual(name, s.settings.GameMasterName) {
		return domain.NewOrderError(domain.RequiredActive, "the game master must remain active")
	}
	if s.settings.IsImplicitlyActive(name) && s.info.Exists(name) {
		return domain.NewOrderError(domain.RequiredActive, name+" must remain active")
	}

	s.entries[idx].Active = false
	return nil
}

// SetActivePlugins replaces the active set wholesale. Plugins named in set
// but absent from the load order are appended keeping masters ahead of
// non-masters. Unlike SetLoadOrder, required-active plugins are a
// precondition here, not auto-corrected: a set that omits the game master
// when required fails rather than being fixed up.
func (s *OrderedSet) SetActivePlugins(set []string) error {
	if len(set) > maxActive {
		return domain.NewOrderError(domain.TooManyActive, "active set exceeds the 255 plugin limit")
	}
	for _, name := range set {
		if !s.info.IsValid(name) {
			return domain.WrapOrderError(domain.InvalidPlugin, "plugin is not valid: "+name, domain.ErrPluginNotFound)
		}
	}

	candidate := make([]domain.Plugin, len(s.entries))
	copy(candidate, s.entries)

	for _, name := range set {
		if indexOf(candidate, name) != -1 {
			continue
		}
		candidate = insertPlacement(candidate, s.freshClassify(name), s.settings)
	}

	for i := range candidate {
		candidate[i].Active = containsNameFold(set, candidate[i].Name)
	}

	if s.settings.RequiresGameMasterFirst() && anyActive(candidate) && s.settings.GameMasterName != "" {
		gmIdx := indexOf(candidate, s.settings.GameMasterName)
		if gmIdx == -1 || !candidate[gmIdx].Active {
			return domain.NewOrderError(domain.OrderingViolation, "the game master must be active whenever any plugin is active")
		}
	}
	for _, name := range s.settings.ImplicitlyActive {
		if !s.info.Exists(name) {
			continue
		}
		idx := indexOf(candidate, name)
		if idx == -1 || !candidate[idx].Active {
			return domain.NewOrderError(domain.RequiredActive, name+" must be active")
		}
	}

	s.entries = candidate
	return nil
}

// classifyOrReuse reuses the cached classification of an already-present
// plugin (by case-insensitive name) so is-master stays derived once for
// the Plugin's lifetime, or classifies it fresh if it's new.
func (s *OrderedSet) classifyOrReuse(name string) domain.Plugin {
	if idx := indexOf(s.entries, name); idx != -1 {
		p := s.entries[idx]
		p.Name = name
		return p
	}
	return s.freshClassify(name)
}

func (s *OrderedSet) freshClassify(name string) domain.Plugin {
	mtime, _ := s.info.ModTime(name)
	return domain.Plugin{
		Name:     name,
		IsMaster: s.info.IsMaster(name),
		IsLight:  s.info.IsLightPlugin(name),
		ModTime:  mtime,
	}
}

func (s *OrderedSet) activeCount() int {
	n := 0
	for _, p := range s.entries {
		if p.Active {
			n++
		}
	}
	return n
}

func (s *OrderedSet) checkNoDuplicates(seq []string) error {
	seen := make(map[string]bool, len(seq))
	for _, name := range seq {
		folded := domain.AsciiFold(name)
		if seen[folded] {
			return domain.NewOrderError(domain.InvalidArgs, "duplicate plugin name: "+name)
		}
		seen[folded] = true
	}
	return nil
}

// checkMasterPartition rejects orderings where a master follows a
// non-master.
func checkMasterPartition(entries []domain.Plugin) error {
	seenNonMaster := false
	for _, p := range entries {
		if !p.IsMaster {
			seenNonMaster = true
			continue
		}
		if seenNonMaster {
			return domain.NewOrderError(domain.OrderingViolation, "master "+p.Name+" follows a non-master")
		}
	}
	return nil
}

// checkGameMasterFirst only applies when the game master is present
// somewhere in entries: occupying index 0 "when present" is a conditional
// rule, not a requirement that the game master be present at all.
func checkGameMasterFirst(entries []domain.Plugin, settings *domain.GameSettings) error {
	if !settings.RequiresGameMasterFirst() || settings.GameMasterName == "" {
		return nil
	}
	idx := indexOf(entries, settings.GameMasterName)
	if idx == -1 {
		return nil
	}
	if idx != 0 {
		return domain.NewOrderError(domain.OrderingViolation, "the game master must load first")
	}
	return nil
}

// insertPlacement places a freshly classified plugin following the
// activate() placement rules: the game master goes to
// index 0 when the method requires it first, other masters go to the
// master partition point, non-masters are appended.
func insertPlacement(entries []domain.Plugin, p domain.Plugin, settings *domain.GameSettings) []domain.Plugin {
	if settings.RequiresGameMasterFirst() && settings.GameMasterName != "" && domain.NamesEqual(p.Name, settings.GameMasterName) {
		out := make([]domain.Plugin, 0, len(entries)+1)
		out = append(out, p)
		out = append(out, entries...)
		return out
	}
	if p.IsMaster {
		point := 0
		for point < len(entries) && entries[point].IsMaster {
			point++
		}
		out := make([]domain.Plugin, 0, len(entries)+1)
		out = append(out, entries[:point]...)
		out = append(out, p)
		out = append(out, entries[point:]...)
		return out
	}
	return append(entries, p)
}

func indexOf(entries []domain.Plugin, name string) int {
	for i, p := range entries {
		if p.NameMatches(name) {
			return i
		}
	}
	return -1
}

func containsNameFold(names []string, target string) bool {
	for _, n := range names {
		if domain.NamesEqual(n, target) {
			return true
		}
	}
	return false
}

func anyActive(entries []domain.Plugin) bool {
	for _, p := range entries {
		if p.Active {
			return true
		}
	}
	return false
}
