package main

import (
	"fmt"
	"strings"

	"loadorder/internal/domain"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage the configured game roster",
}

var (
	addGameID         string
	addMasterName     string
	addPluginsDir     string
	addLoadOrderFile  string
	addActivePlugins  string
	addImplicitActive string
)

var gamesAddCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Add a game to the roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runGamesAdd,
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured games",
	RunE:  runGamesList,
}

var gamesRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a game from the roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runGamesRemove,
}

var gamesUseCmd = &cobra.Command{
	Use:   "use <slug>",
	Short: "Set the default game for commands that omit --game",
	Args:  cobra.ExactArgs(1),
	RunE:  runGamesUse,
}

func init() {
	gamesAddCmd.Flags().StringVar(&addGameID, "game", "", "game id, e.g. SkyrimSE (required)")
	gamesAddCmd.Flags().StringVar(&addMasterName, "master", "", "game master filename, e.g. Skyrim.esm")
	gamesAddCmd.Flags().StringVar(&addPluginsDir, "plugins-dir", "", "directory the game loads plugins from (required)")
	gamesAddCmd.Flags().StringVar(&addLoadOrderFile, "load-order-file", "", "load order text file (textfile method only)")
	gamesAddCmd.Flags().StringVar(&addActivePlugins, "active-plugins-file", "", "active plugins file")
	gamesAddCmd.Flags().StringVar(&addImplicitActive, "implicit-active", "", "comma-separated filenames that must stay active, e.g. Update.esm")
	_ = gamesAddCmd.MarkFlagRequired("game")
	_ = gamesAddCmd.MarkFlagRequired("plugins-dir")

	gamesCmd.AddCommand(gamesAddCmd, gamesListCmd, gamesRemoveCmd, gamesUseCmd)
	rootCmd.AddCommand(gamesCmd)
}

func runGamesAdd(cmd *cobra.Command, args []string) error {
	slug := args[0]

	id, err := parseGameID(addGameID)
	if err != nil {
		return err
	}

	var implicit []string
	if addImplicitActive != "" {
		for _, name := range strings.Split(addImplicitActive, ",") {
			if name = strings.TrimSpace(name); name != "" {
				implicit = append(implicit, name)
			}
		}
	} else if id.UsesUpdateEsmRule() {
		implicit = []string{"Update.esm"}
	}

	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	settings := &domain.GameSettings{
		ID:                id,
		Slug:              slug,
		GameMasterName:    addMasterName,
		PluginsDir:        addPluginsDir,
		LoadOrderFile:     addLoadOrderFile,
		ActivePluginsFile: addActivePlugins,
		ImplicitlyActive:  implicit,
	}

	if err := svc.AddGame(settings); err != nil {
		return fmt.Errorf("adding game: %w", err)
	}

	fmt.Printf("%s added (%s, %s method)\n", slug, id, settings.Method())
	return nil
}

func runGamesList(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	games := svc.ListGames()
	if len(games) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No games configured. Add one with 'loadorder games add'.")
		return nil
	}

	active := svc.ActiveGame()
	for _, g := range games {
		marker := "  "
		if g.Slug == active {
			marker = "* "
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\t%s\t%s\n", marker, g.Slug, g.ID, g.Method())
	}
	return nil
}

func runGamesRemove(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	if err := svc.RemoveGame(args[0]); err != nil {
		return fmt.Errorf("removing game: %w", err)
	}
	fmt.Printf("%s removed\n", args[0])
	return nil
}

func runGamesUse(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	if err := svc.SetActiveGame(args[0]); err != nil {
		return fmt.Errorf("setting active game: %w", err)
	}
	fmt.Printf("active game set to %s\n", args[0])
	return nil
}
