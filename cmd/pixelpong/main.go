// pixelpong is a software-rendered Pong arcade for the terminal.
//
// Usage:
//
//	pixelpong play           - Play locally in the current terminal
//	pixelpong serve          - Start SSH server for remote play
//	pixelpong scores         - Show recent match results
//	pixelpong config         - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible AI and effects
//	--db <path>     - Set database path (default: ~/.pixelpong/matches.db)
//	--config <path> - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelpong",
	Short: "Pixel Pong - a retro pong arcade in your terminal",
	Long: `Pixel Pong renders a classic two-paddle ball game into a pixel
framebuffer and draws it with half-block characters, so any truecolor
terminal becomes the screen.

Available commands:
  play     - Play locally (vs AI or a friend on the same keyboard)
  serve    - Start SSH server for remote play
  scores   - View recent match results
  config   - Print the resolved configuration

Examples:
  pixelpong play
  pixelpong play --difficulty HARD --duration 60
  pixelpong serve --ssh :2222
  pixelpong scores --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelpong/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
