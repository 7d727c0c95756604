package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the default tank duel configuration.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Arena: ArenaConfig{
			Obstacles:    20,
			ObstacleMinX: 10,
			ObstacleMinY: 3,
			SpawnMargin:  5,
		},
		Tank: TankConfig{
			Health:         3,
			FireCooldownMS: 500,
		},
		Shell: ShellConfig{
			AdvanceMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML. Useful for writing a
// starter config file the player can then edit.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
