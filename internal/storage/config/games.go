package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loadorder/internal/domain"

	"gopkg.in/yaml.v3"
)

// GameEntry is the YAML representation of one roster entry. GameID is
// parsed from the string form so the file stays a human-editable name
// rather than the internal enum value.
type GameEntry struct {
	Game              string   `yaml:"game"`
	GameMasterName    string   `yaml:"game_master_name"`
	PluginsDir        string   `yaml:"plugins_dir"`
	LoadOrderFile     string   `yaml:"load_order_file,omitempty"`
	ActivePluginsFile string   `yaml:"active_plugins_file"`
	ImplicitlyActive  []string `yaml:"implicitly_active,omitempty"`
}

// GamesFile is the top-level games.yaml structure: a roster keyed by slug.
type GamesFile struct {
	Games map[string]GameEntry `yaml:"games"`
}

// LoadGames reads the game roster from the config directory. A missing
// file means an empty roster, not an error.
func LoadGames(configDir string) (map[string]*domain.GameSettings, error) {
	gamesPath := filepath.Join(configDir, "games.yaml")
	data, err := os.ReadFile(gamesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*domain.GameSettings), nil
		}
		return nil, fmt.Errorf("reading games.yaml: %w", err)
	}

	var gamesFile GamesFile
	if err := yaml.Unmarshal(data, &gamesFile); err != nil {
		return nil, fmt.Errorf("parsing games.yaml: %w", err)
	}

	games := make(map[string]*domain.GameSettings, len(gamesFile.Games))
	for slug, entry := range gamesFile.Games {
		id, ok := domain.ParseGameID(entry.Game)
		if !ok {
			return nil, fmt.Errorf("games.yaml: roster entry %q names unknown game %q", slug, entry.Game)
		}
		games[slug] = &domain.GameSettings{
			ID:                id,
			Slug:              slug,
			GameMasterName:    entry.GameMasterName,
			PluginsDir:        expandTilde(entry.PluginsDir),
			LoadOrderFile:     expandTilde(entry.LoadOrderFile),
			ActivePluginsFile: expandTilde(entry.ActivePluginsFile),
			ImplicitlyActive:  entry.ImplicitlyActive,
		}
	}

	return games, nil
}

// SaveGame adds or updates a roster entry in games.yaml.
func SaveGame(configDir string, settings *domain.GameSettings) error {
	games, err := LoadGames(configDir)
	if err != nil {
		return err
	}

	games[settings.Slug] = settings

	return saveGames(configDir, games)
}

func saveGames(configDir string, games map[string]*domain.GameSettings) error {
	gamesFile := GamesFile{Games: make(map[string]GameEntry, len(games))}

	for slug, g := range games {
		gamesFile.Games[slug] = GameEntry{
			Game:              g.ID.String(),
			GameMasterName:    g.GameMasterName,
			PluginsDir:        g.PluginsDir,
			LoadOrderFile:     g.LoadOrderFile,
			ActivePluginsFile: g.ActivePluginsFile,
			ImplicitlyActive:  g.ImplicitlyActive,
		}
	}

	data, err := yaml.Marshal(&gamesFile)
	if err != nil {
		return fmt.Errorf("marshaling games: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	gamesPath := filepath.Join(configDir, "games.yaml")
	if err := os.WriteFile(gamesPath, data, 0644); err != nil {
		return fmt.Errorf("writing games.yaml: %w", err)
	}

	return nil
}

// DeleteGame removes a roster entry from games.yaml.
func DeleteGame(configDir string, slug string) error {
	games, err := LoadGames(configDir)
	if err != nil {
		return err
	}

	if _, exists := games[slug]; !exists {
		return domain.ErrGameNotFound
	}

	delete(games, slug)
	return saveGames(configDir, games)
}

// expandTilde expands a leading "~" to the current user's home directory,
// so roster entries can be written portably across machines.
func expandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, "/")
	return filepath.Join(home, rest)
}
