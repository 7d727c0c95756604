// Package config provides YAML-based game configuration loading and
// arena preset management for the duel platform.
package config

// TanksConfig contains all tunable parameters for the tank duel.
type TanksConfig struct {
	Arena ArenaConfig `yaml:"arena"`
	Tank  TankConfig  `yaml:"tank"`
	Shell ShellConfig `yaml:"shell"`
}

// ArenaConfig defines obstacle placement and spawn geometry.
type ArenaConfig struct {
	Obstacles    int `yaml:"obstacles"`      // number of obstacles scattered at reset
	ObstacleMinX int `yaml:"obstacle_min_x"` // obstacles land in [min_x, width-min_x]
	ObstacleMinY int `yaml:"obstacle_min_y"` // obstacles land in [min_y, height-min_y]
	SpawnMargin  int `yaml:"spawn_margin"`   // tank spawn distance from the side walls
}

// TankConfig defines per-tank combat parameters.
type TankConfig struct {
	Health         int `yaml:"health"`           // hits a tank survives
	FireCooldownMS int `yaml:"fire_cooldown_ms"` // minimum delay between shots
}

// ShellConfig defines projectile parameters.
type ShellConfig struct {
	AdvanceMS int `yaml:"advance_ms"` // time per one-cell shell advance
}

// Normalize replaces unset or nonsensical values with defaults so a
// partial YAML file still yields a playable game. A zero obstacle count
// is legal (an open arena); negative counts are not.
func (c *TanksConfig) Normalize() {
	def := DefaultTanksConfig()

	if c.Arena.Obstacles < 0 {
		c.Arena.Obstacles = 0
	}
	if c.Arena.ObstacleMinX <= 0 {
		c.Arena.ObstacleMinX = def.Arena.ObstacleMinX
	}
	if c.Arena.ObstacleMinY <= 0 {
		c.Arena.ObstacleMinY = def.Arena.ObstacleMinY
	}
	if c.Arena.SpawnMargin <= 0 {
		c.Arena.SpawnMargin = def.Arena.SpawnMargin
	}
	if c.Tank.Health <= 0 {
		c.Tank.Health = def.Tank.Health
	}
	if c.Tank.FireCooldownMS < 0 {
		c.Tank.FireCooldownMS = def.Tank.FireCooldownMS
	}
	if c.Shell.AdvanceMS <= 0 {
		c.Shell.AdvanceMS = def.Shell.AdvanceMS
	}
}

// ArenaPreset represents a named obstacle layout.
type ArenaPreset string

const (
	ArenaClassic ArenaPreset = "classic"
	ArenaOpen    ArenaPreset = "open"
	ArenaDense   ArenaPreset = "dense"
)

// ObstaclesForPreset returns the obstacle count for an arena preset.
func ObstaclesForPreset(preset ArenaPreset) int {
	switch preset {
	case ArenaOpen:
		return 0
	case ArenaDense:
		return 40
	default:
		return 20
	}
}

// IsKnownPreset returns true for a recognized arena preset name.
func IsKnownPreset(preset ArenaPreset) bool {
	switch preset {
	case ArenaClassic, ArenaOpen, ArenaDense:
		return true
	}
	return false
}
