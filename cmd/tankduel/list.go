package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tankduel/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available arenas",
	Long:  `Shows a list of all arenas the duel can be fought in.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	arenas := []struct {
		Preset      config.ArenaPreset
		Description string
	}{
		{config.ArenaClassic, "The standard duel"},
		{config.ArenaOpen, "No cover, pure reflexes"},
		{config.ArenaDense, "Close quarters behind heavy cover"},
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-9s  %s\n", "Arena", "Obstacles", "Description")
	fmt.Printf("  %-8s  %-9s  %s\n", "-----", "---------", "-----------")

	// Print arenas
	for _, a := range arenas {
		fmt.Printf("  %-8s  %-9d  %s\n", string(a.Preset), config.ObstaclesForPreset(a.Preset), a.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tankduel play <arena>' to start a duel.")
}
