package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tankduel/internal/config"
	"tankduel/internal/core"
	"tankduel/internal/games/tanks"
	"tankduel/internal/platform/tui"
	"tankduel/internal/registry"
	"tankduel/internal/sound"
	"tankduel/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [arena]",
	Short: "Start a duel",
	Long: `Start a duel in the specified arena (default: classic).

Controls:
  Player 1: W/A/S/D  - Move and turn
            Space    - Fire
  Player 2: Arrows   - Move and turn
            Enter    - Fire
  P          - Pause
  R          - Rematch (after game over)
  Q/Ctrl+C   - Quit

Arenas:
  classic - 20 obstacles, the standard duel
  open    - No cover, pure reflexes
  dense   - 40 obstacles, close quarters

Examples:
  tankduel play
  tankduel play dense
  tankduel play open --sound
  tankduel play --config ./my-tanks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset := config.ArenaClassic
	if len(args) > 0 {
		preset = config.ArenaPreset(args[0])
	}

	// Check if arena exists
	if !config.IsKnownPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown arena %q\n", string(preset))
		fmt.Fprintln(os.Stderr, "Run 'tankduel list' to see available arenas.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and arena before creation
	tanks.SetConfigPath(flagConfig)
	tanks.SetArenaPreset(string(preset))

	// Create game instance
	game, err := registry.Create("tanks")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Bring up sound if requested
	var snd *sound.Manager
	if flagSound {
		snd = sound.NewManager()
		if sndErr := snd.Initialize(); sndErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", sndErr)
			snd = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, snd, cfg, string(preset))

	// Release audio and close store before potential exit
	if snd != nil {
		snd.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		if tui.IsInterrupt(runErr) {
			// SIGINT from outside the terminal: shut down politely
			fmt.Println("\nGame interrupted.")
			fmt.Println("Thanks for playing!")
			return
		}
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println("Thanks for playing!")
}
