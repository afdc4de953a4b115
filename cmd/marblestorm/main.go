// marblestorm is a terminal marble shooter: clear the chain of marbles
// rolling toward the core before it gets there.
//
// Usage:
//
//	marblestorm play              - Play the campaign
//	marblestorm play --endless    - Play endless mode
//	marblestorm menu              - Interactive mode picker
//	marblestorm curves            - List available track shapes
//	marblestorm serve             - Start SSH server for remote play
//	marblestorm scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.marblestorm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/arcadekit/marblestorm/internal/games/marble"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marblestorm",
	Short: "Marble Storm - a terminal marble shooter",
	Long: `Marble Storm is a terminal game where a chain of colored marbles
rolls along a winding track toward the core. Shoot marbles into the
chain to form groups of three or more and clear them before the chain
reaches the end.

Available commands:
  play     - Play the campaign (or endless mode)
  menu     - Interactive mode picker
  curves   - List available track shapes
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  marblestorm play
  marblestorm play --endless --difficulty hard
  marblestorm play --curve spiral --level 3
  marblestorm serve --ssh :2222
  marblestorm scores marble`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.marblestorm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(curvesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
