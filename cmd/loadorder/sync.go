package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Check whether the load order and active-plugins files agree",
	Long: `For games using the textfile method, checks that every active plugin's
position in the active-plugins file is consistent with its position in the
load order file. Other methods are always synchronised, since they have a
single file to read order and activation from.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	ok, err := set.IsSynchronised()
	if err != nil {
		return fmt.Errorf("checking sync state: %w", err)
	}
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), colorGreen("in sync"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), colorRed("out of sync"))
	return nil
}
