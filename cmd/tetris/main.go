// tetris is a falling-block puzzle for the terminal or a desktop window.
//
// Usage:
//
//	tetris                   - Play in the terminal
//	tetris play              - Play in the terminal
//	tetris window            - Play in a desktop window
//	tetris list              - List available games
//	tetris shapes            - Print the piece table and palette
//
// Global flags:
//
//	--config <path>    - Load configuration from a YAML file
//	--seed <value>     - Set RNG seed for reproducible gameplay (default from config: 42)
//	--fps <rate>       - Set tick rate (default from config: 60)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/MrBanana2045/Teteis/internal/games/tetris"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagFPS     int
	flagLogFile string
	flagVerbose bool
)

// logger is set up before any subcommand runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tetris",
})

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - a falling-block puzzle",
	Long: `Tetris on a 10x20 playfield with seven pieces, gravity and line clears.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  list     - Show all available games
  shapes   - Print the piece table and palette

Examples:
  tetris
  tetris --seed 7
  tetris window
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides gameplay.seed)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (overrides gameplay.tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
}
