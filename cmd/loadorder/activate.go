package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <plugin>",
	Short: "Mark a plugin active and save",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <plugin>",
	Short: "Mark a plugin inactive and save",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeactivate,
}

func init() {
	rootCmd.AddCommand(activateCmd, deactivateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
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
	if err := set.Activate(args[0]); err != nil {
		return fmt.Errorf("activating %s: %w", args[0], err)
	}
	if err := set.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	fmt.Printf("%s activated\n", args[0])
	return nil
}

func runDeactivate(cmd *cobra.Command, args []string) error {
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
	if err := set.Deactivate(args[0]); err != nil {
		return fmt.Errorf("deactivating %s: %w", args[0], err)
	}
	if err := set.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	fmt.Printf("%s deactivated\n", args[0])
	return nil
}
