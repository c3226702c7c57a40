package domain

// GameSettings is the immutable per-game descriptor an OrderedSet is bound
// to for its lifetime: game identity, persistence method, privileged
// filenames, and filesystem paths. It is read-only once constructed and is
// borrowed by reference, never copied, by the components that consult it.
type GameSettings struct {
	// ID identifies which game this descriptor belongs to.
	ID GameID
	// Slug is the short config-file identifier, e.g. "skyrimse".
	Slug string
	// GameMasterName is the game's own built-in master file, e.g.
	// "Skyrim.esm". Empty for games with no privileged master (none of the
	// currently supported games omit one, but the field stays optional so
	// the game-master-first checks degrade gracefully).
	GameMasterName string
	// PluginsDir is the directory the game loads plugin files from.
	PluginsDir string
	// LoadOrderFile is the plain-text ordering file used by MethodTextfile.
	// Empty for the other methods.
	LoadOrderFile string
	// ActivePluginsFile is the file recording which plugins are active.
	// Used by every method; under MethodAsterisk it is the single file that
	// carries both order and activation.
	ActivePluginsFile string
	// ImplicitlyActive is the set of filenames that must be active whenever
	// present, e.g. {"Update.esm"} for TES5. Compared case-insensitively.
	ImplicitlyActive []string
}

// Method returns the persistence method this game uses.
func (g *GameSettings) Method() Method {
	return MethodForGame(g.ID)
}

// RequiresGameMasterFirst reports whether this game's method places the
// game master at index 0 and forces it active whenever anything is
// active.
func (g *GameSettings) RequiresGameMasterFirst() bool {
	m := g.Method()
	return m == MethodTextfile || m == MethodAsterisk
}

// IsImplicitlyActive reports whether name is one of this game's
// unconditionally-active filenames, compared case-insensitively.
func (g *GameSettings) IsImplicitlyActive(name string) bool {
	folded := AsciiFold(name)
	for _, n := range g.ImplicitlyActive {
		if AsciiFold(n) == folded {
			return true
		}
	}
	return false
}
