package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"loadorder/internal/core"
	"loadorder/internal/domain"
	"loadorder/internal/storage/config"

	"github.com/spf13/cobra"
)

// ErrCancelled is returned when the user cancels an operation. When
// returned from a command, Execute exits with code 2.
var ErrCancelled = errors.New("cancelled")

var (
	version = "0.1.0"

	configDir  string
	gameSlug   string
	verbose    bool
	jsonOutput bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "loadorder",
	Short: "Manage plugin load order and activation state",
	Long: `loadorder reads, validates, and persists the load order and
activation state of plugin files for Bethesda-style single-player RPGs
(Morrowind, Oblivion, Skyrim, Fallout 3/NV/4, Starfield).

Use subcommands for operations. Run 'loadorder --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/loadorder)")
	rootCmd.PersistentFlags().StringVarP(&gameSlug, "game", "g", "", "game slug to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

const (
	ansiReset = "\033[0m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
)

func colorGreen(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiGreen + s + ansiReset
}

func colorRed(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiRed + s + ansiReset
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error,
// 2 = user cancelled.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrCancelled) {
			os.Exit(2)
		}
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// initService creates and initializes the core service.
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	return core.NewService(cfg)
}

// getServiceConfig returns the service configuration with defaults applied.
// The resolved directory is validated through config.ParseConfigDir before
// use, whether it came from --config or from the default.
func getServiceConfig() (core.ServiceConfig, error) {
	dir := configDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config", "loadorder")
	}

	dir, err := config.ParseConfigDir(dir)
	if err != nil {
		return core.ServiceConfig{}, fmt.Errorf("invalid config directory: %w", err)
	}

	return core.ServiceConfig{ConfigDir: dir}, nil
}

// requireGame ensures a game slug is available, falling back to the
// service's active game if --game was not given.
func requireGame(svc *core.Service) (string, error) {
	if gameSlug != "" {
		return gameSlug, nil
	}
	if active := svc.ActiveGame(); active != "" {
		if verbose {
			fmt.Printf("Using active game: %s\n", active)
		}
		return active, nil
	}
	return "", fmt.Errorf("no game specified; use --game/-g, or set one with 'loadorder games use <slug>'")
}

func parseGameID(s string) (domain.GameID, error) {
	id, ok := domain.ParseGameID(s)
	if !ok {
		return 0, fmt.Errorf("unknown game id: %s", s)
	}
	return id, nil
}
