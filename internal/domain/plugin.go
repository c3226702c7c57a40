package domain

import "time"

// Plugin is a single entry in a load order: a game-content file plus the
// state the engine tracks for it. Identity is case-insensitive filename
// equality, with no two entries sharing a folded name; the canonical,
// case-preserved form is kept for display and for writing back to disk,
// while comparisons fold through AsciiFold/NamesEqual.
type Plugin struct {
	// Name is the canonical, case-preserved filename as the caller
	// submitted it or as it was read from disk.
	Name string
	// Active reports whether the game will load this plugin.
	Active bool
	// IsMaster is derived once, at admission time, from the plugin's
	// header and cached for the Plugin's lifetime: validity decisions
	// depend on the PluginInfo provider having classified it at that
	// moment.
	IsMaster bool
	// IsLight reports whether the plugin is flagged as a light plugin
	// (.esl, or the light-master header flag on games that support it).
	// Only meaningful for GameID.SupportsLightPlugins games.
	IsLight bool
	// ModTime is the plugin file's modification time at admission time.
	ModTime time.Time
}

// NameMatches reports whether this plugin's name matches other under
// ASCII case folding.
func (p *Plugin) NameMatches(other string) bool {
	return NamesEqual(p.Name, other)
}
