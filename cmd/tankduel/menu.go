package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tankduel/internal/core"
	"tankduel/internal/games/tanks"
	"tankduel/internal/platform/tui"
	"tankduel/internal/registry"
	"tankduel/internal/sound"
	"tankduel/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the duel with an arena picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an arena.
After a duel ends, you return to the menu for a rematch.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select arena
  H            - Match history
  Q            - Quit

Examples:
  tankduel menu
  tankduel menu --sound
  tankduel menu --db ./matches.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --sound)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
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

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			if tui.IsInterrupt(err) {
				fmt.Println("\nGame interrupted.")
				break
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the match history
		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				if tui.IsInterrupt(histErr) {
					fmt.Println("\nGame interrupted.")
					break
				}
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		preset := menuResult.Preset
		if preset == "" {
			break
		}

		// Set config path and arena before creation
		tanks.SetConfigPath(flagConfig)
		tanks.SetArenaPreset(string(preset))

		// Create game instance
		game, err := registry.Create("tanks")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each duel
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, snd, cfg, string(preset)); err != nil {
			if tui.IsInterrupt(err) {
				fmt.Println("\nGame interrupted.")
				break
			}
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if snd != nil {
		snd.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	fmt.Println("Thanks for playing!")
}
