// grid is a real-time cellular automaton that runs in the terminal.
//
// Usage:
//
//	grid                 - Run the simulation
//	grid rules           - List built-in rules
//	grid history         - Browse recorded sessions
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--preset <name>      - Starting density: empty, sparse, normal, dense
//	--seed <value>       - RNG seed for a reproducible start
//	--db <path>          - Session database (default from config)
//	--log-file <path>    - Log file (default from config)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the world package to register built-in rules
	_ "github.com/vovakirdan/tui-grid/internal/world"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grid",
	Short: "Grid - a cellular automaton in your terminal",
	Long: `Grid runs a 500x500 cellular automaton at 1000 ticks per second and
renders a scrollable viewport of it in the terminal.

Controls:
  Arrows/hjkl     - Scroll by one cell
  HJKL/PgUp/PgDn  - Scroll by one page
  G               - Center the view
  P/Space         - Pause
  N               - Step one generation while paused
  R               - Randomize
  C               - Clear
  +/-             - Faster/slower generations
  Mouse           - Left paints cells, right erases
  Q/Esc/Ctrl+C    - Quit

Examples:
  grid
  grid --preset dense --seed 42
  grid --config ./my-grid.yaml
  grid rules
  grid history`,
	Args: cobra.NoArgs,
	Run:  runGrid,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "Starting density preset: empty, sparse, normal, dense")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default from config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
}
