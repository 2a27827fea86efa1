package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/piratecove/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset <level>",
	Short: "Forget a level's checkpoint so the next run starts fresh",
	Long: `Delete the saved checkpoint of a level. Lifetime totals and best runs
are kept.

Examples:
  piratecove reset cove_01`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ResetLevelProgress(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reset progress for %s\n", args[0])
	return nil
}
