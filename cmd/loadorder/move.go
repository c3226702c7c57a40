package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <plugin> <index>",
	Short: "Move a plugin to a new position in the load order",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}

	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	slug, err := requireGame(svc)
	if err != nil {
		return err
	}
	set, err := svc.OpenOrderedSet(slug)
	if err != nil {
		return fmt.Errorf("opening load order: %w", err)
	}
	if err := set.SetPosition(args[0], index); err != nil {
		return fmt.Errorf("moving %s: %w", args[0], err)
	}
	if err := set.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	fmt.Printf("%s moved to position %d\n", args[0], index)
	return nil
}
