// tankduel is a two-player tank duel played on one terminal.
//
// Usage:
//
//	tankduel list              - List available arenas
//	tankduel play [arena]      - Start a duel directly
//	tankduel menu              - Start with the arena picker
//	tankduel serve             - Start SSH server for remote play
//	tankduel history           - Show recent match results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible obstacle layouts
//	--db <path>     - Set database path (default: ~/.tankduel/matches.db)
//	--sound         - Enable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tankduel/internal/core"

	// Import the game to register it
	_ "tankduel/internal/games/tanks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagSound  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tankduel",
	Short: "Tank Duel - A two-player tank battle in your terminal",
	Long: `Tank Duel puts two players at one keyboard: WASD and Space for
Player 1, arrow keys and Enter for Player 2. Three hits decide the duel.

Available commands:
  list     - Show all available arenas
  play     - Start a duel in a specific arena
  menu     - Interactive arena picker
  serve    - Start SSH server for remote play
  history  - View recent match results

Examples:
  tankduel list
  tankduel play dense
  tankduel menu
  tankduel serve --ssh :2222
  tankduel history --limit 50`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tankduel/matches.db", "Path to match database")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
