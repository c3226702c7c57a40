// Package core orchestrates the load order engine across a roster of
// configured games.
package core

import (
	"fmt"

	"loadorder/internal/domain"
	"loadorder/internal/loadorder"
	"loadorder/internal/pluginfo"
	"loadorder/internal/storage/config"
)

// ServiceConfig holds configuration for the core service.
type ServiceConfig struct {
	// ConfigDir is the directory holding config.yaml and games.yaml.
	ConfigDir string
}

// Service is the main orchestrator: it owns the game roster and hands out
// an OrderedSet engine bound to whichever game a caller asks for.
type Service struct {
	config *config.Config
	games  map[string]*domain.GameSettings

	configDir string
}

// NewService creates a Service, loading configuration and the game roster
// from cfg.ConfigDir.
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	games, err := config.LoadGames(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}

	return &Service{
		config:    appConfig,
		games:     games,
		configDir: cfg.ConfigDir,
	}, nil
}

// ConfigDir returns the configuration directory.
func (s *Service) ConfigDir() string {
	return s.configDir
}

// ActiveGame returns the slug of the last-used game, or "" if none is set.
func (s *Service) ActiveGame() string {
	return s.config.ActiveGame
}

// Keybindings returns the configured TUI keybinding mode ("vim" or
// "default").
func (s *Service) Keybindings() string {
	return s.config.Keybindings
}

// SetActiveGame records slug as the last-used game and persists it.
func (s *Service) SetActiveGame(slug string) error {
	if _, ok := s.games[slug]; !ok {
		return domain.ErrGameNotFound
	}
	s.config.ActiveGame = slug
	return s.config.Save(s.configDir)
}

// GetGame retrieves a roster entry by slug.
func (s *Service) GetGame(slug string) (*domain.GameSettings, error) {
	g, ok := s.games[slug]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return g, nil
}

// ListGames returns every configured roster entry.
func (s *Service) ListGames() []*domain.GameSettings {
	games := make([]*domain.GameSettings, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	return games
}

// AddGame adds or replaces a roster entry, persisting it to games.yaml.
func (s *Service) AddGame(settings *domain.GameSettings) error {
	if err := config.SaveGame(s.configDir, settings); err != nil {
		return err
	}
	s.games[settings.Slug] = settings
	return nil
}

// RemoveGame deletes a roster entry.
func (s *Service) RemoveGame(slug string) error {
	if err := config.DeleteGame(s.configDir, slug); err != nil {
		return err
	}
	delete(s.games, slug)
	return nil
}

// OpenOrderedSet builds a loadorder.OrderedSet bound to slug's roster
// entry and a disk-based PluginInfo provider, and performs the initial
// load from disk.
func (s *Service) OpenOrderedSet(slug string) (*loadorder.OrderedSet, error) {
	settings, err := s.GetGame(slug)
	if err != nil {
		return nil, err
	}

	info := pluginfo.New(settings.PluginsDir)
	set := loadorder.New(settings, info)
	if err := set.Load(); err != nil {
		return nil, fmt.Errorf("loading load order for %s: %w", slug, err)
	}
	return set, nil
}
