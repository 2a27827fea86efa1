package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/piratecove/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime totals, best runs and saved checkpoints",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	totals, err := store.Totals()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Totals")
	fmt.Fprintf(out, "  coins %d  kills %d  deaths %d  played %s\n",
		totals.Coins, totals.EnemiesKilled, totals.Deaths, formatSeconds(totals.TimePlayed))

	best, err := store.BestStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Best runs")
	if len(best) == 0 {
		fmt.Fprintln(out, "  none yet")
	}
	for _, b := range best {
		fmt.Fprintf(out, "  %-16s deaths %-3d coins %-4d kills %-3d %s\n",
			b.LevelID, b.Deaths, b.Coins, b.EnemiesKilled, formatSeconds(b.TimeTaken))
	}

	progress, err := store.ListLevelProgress()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checkpoints")
	if len(progress) == 0 {
		fmt.Fprintln(out, "  none")
	}
	for _, p := range progress {
		state := "in progress"
		switch {
		case p.ReachedEnd:
			state = "finished"
		case !p.HasCheckpoint:
			state = "started"
		}
		fmt.Fprintf(out, "  %-16s %-11s coins %-4d deaths %-3d %s\n",
			p.LevelID, state, p.Coins, p.Deaths, formatSeconds(p.TimeTaken))
	}
	return nil
}

func formatSeconds(s float64) string {
	total := int(s)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
