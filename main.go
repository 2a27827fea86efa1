// piratecove is a single-player pirate platformer.
//
// Usage:
//
//	piratecove                   - Play from the last level played
//	piratecove stats             - Show lifetime totals and best runs
//	piratecove validate [level]  - Check level files for layout problems
//	piratecove reset <level>     - Forget a level's checkpoint
//
// Global flags:
//
//	--config <path>  - Tuning YAML layered over the defaults
//	--assets <dir>   - Directory with images, audio, fonts and levels
//	--db <path>      - Progress database (default: ~/.piratecove/progress.db)
//	--seed <value>   - RNG seed for reproducible runs
//	--debug          - Debug logging and collider overlay
//	--level <index>  - Start at this level instead of the last one played
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "piratecove"

var (
	flagConfig string
	flagAssets string
	flagDBPath string
	flagSeed   uint64
	flagDebug  bool
	flagLevel  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A pirate platformer",
	Long: `Run through the cove, stomp crabs and dodge the PinkStar.

Controls:
  Arrows/WASD  move and jump
  Shift        sprint
  Space        shoot
  G            throw a grenade
  M            mute
  Esc/P        pause
  F1/F2        collider and navigation overlays
  F11          fullscreen`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: levels built into the binary)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.piratecove/progress.db", "Path to the progress database")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlays")
	rootCmd.Flags().IntVar(&flagLevel, "level", -1, "Level index to start at")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resetCmd)
}
