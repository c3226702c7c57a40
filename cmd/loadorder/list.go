package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the load order for a game",
	Long: `Print every plugin in load order along with its active and master state.

Examples:
  loadorder list
  loadorder list --game skyrimse`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tACTIVE\tMASTER\tPLUGIN")
	for i, p := range set.Plugins() {
		active := "-"
		if p.Active {
			active = colorGreen("yes")
		}
		master := "-"
		if p.IsMaster {
			master = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, active, master, p.Name)
	}
	return w.Flush()
}
