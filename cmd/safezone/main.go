// safezone is a terminal survival game: stay inside the circle while
// enemies try to shove you out, until the countdown runs out.
//
// Usage:
//
//	safezone play [variant]   - Play locally (default: safezone)
//	safezone list             - List available variants
//	safezone serve            - Start SSH server for remote play
//	safezone history [game]   - Show the round journal
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible enemy spawns
//	--config <path>       - Gameplay config YAML
//	--animations <path>   - Sprite and animation sheet YAML
//	--db <path>           - Round journal (default: ~/.safezone/rounds.db)
//	--log <path>          - Log file (default: ~/.safezone/safezone.log)
//	--debug               - Log phase changes and other debug events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/safezone/internal/games/safezone"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagAnimations string
	flagLogPath    string
	flagDebug      bool
	flagHitboxes   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "safezone",
	Short: "Safe Zone - survive inside the circle",
	Long: `Safe Zone is a terminal survival game. Enemies stream across the
arena and push you around; leave the safe circle and you lose a life.
Last until the timer runs out to win the round.

Available commands:
  play     - Play a variant locally
  list     - Show all available variants
  serve    - Start SSH server for remote play
  history  - View the round journal

Examples:
  safezone play
  safezone play safezone-classic --seed 42
  safezone serve --ssh :2222
  safezone history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.safezone/rounds.db", "Path to round journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAnimations, "animations", "", "Path to animation sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagHitboxes, "hitboxes", false, "Draw hitboxes and the safe circle rim")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
