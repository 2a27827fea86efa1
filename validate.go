package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/systems/factory"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check levels for missing spawns, broken danger zones and stranded waypoints",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, lvl := range levels {
		if len(args) > 0 && !slices.Contains(args, lvl.Name) {
			continue
		}
		r := factory.InspectLevel(lvl)
		status := "ok"
		if !r.OK() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-16s %s  enemies %d/%d/%d  pickups %d  checkpoints %d  zones %d  waypoints %d\n",
			r.Name, status,
			r.Enemies[config.SpeciesFierceTooth], r.Enemies[config.SpeciesSeashell], r.Enemies[config.SpeciesPinkStar],
			r.Pickups, r.Checkpoints, r.Zones, r.Waypoints)
		for _, p := range r.Problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d level(s) failed validation", failed)
	}
	return nil
}
