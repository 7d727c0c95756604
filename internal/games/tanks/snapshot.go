package tanks

import (
	"fmt"
	"strings"
)

// Snapshot is a flattened copy of the duel state using primitive types
// only. Two games that were stepped identically produce equal snapshots,
// which makes it the backbone of determinism checks.
type Snapshot struct {
	Tick     int64
	Phase    int
	Winner   int
	Paused   bool
	TooSmall bool

	Tank1X, Tank1Y, Tank1Heading, Tank1Health int
	Tank1Alive                                bool
	Tank2X, Tank2Y, Tank2Heading, Tank2Health int
	Tank2Alive                                bool

	Shots1, Shots2 int

	// Shells flattened as [x, y, heading, lastMoveTick] runs, in
	// creation order.
	Shells []int64
	// Obstacles flattened as [x, y] pairs, in creation order.
	Obstacles []int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Phase:    int(g.phase),
		Winner:   int(g.winner),
		Paused:   g.paused,
		TooSmall: g.tooSmall,

		Tank1X:       g.tank1.X,
		Tank1Y:       g.tank1.Y,
		Tank1Heading: int(g.tank1.Heading),
		Tank1Health:  g.tank1.Health,
		Tank1Alive:   g.tank1.Alive,

		Tank2X:       g.tank2.X,
		Tank2Y:       g.tank2.Y,
		Tank2Heading: int(g.tank2.Heading),
		Tank2Health:  g.tank2.Health,
		Tank2Alive:   g.tank2.Alive,

		Shots1: g.shots1,
		Shots2: g.shots2,
	}

	for _, sh := range g.shells {
		snap.Shells = append(snap.Shells,
			int64(sh.X), int64(sh.Y), int64(sh.Heading), sh.lastMoveTick)
	}
	for _, ob := range g.obstacles {
		snap.Obstacles = append(snap.Obstacles, ob.X, ob.Y)
	}

	return snap
}

// DebugState returns a human-readable dump of the simulation.
func (g *Game) DebugState() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "tick=%d phase=%s winner=%s paused=%v\n",
		g.tick, g.phase, g.winner, g.paused)
	fmt.Fprintf(&sb, "tank1: pos=(%d,%d) heading=%s hp=%d alive=%v shots=%d\n",
		g.tank1.X, g.tank1.Y, g.tank1.Heading, g.tank1.Health, g.tank1.Alive, g.shots1)
	fmt.Fprintf(&sb, "tank2: pos=(%d,%d) heading=%s hp=%d alive=%v shots=%d\n",
		g.tank2.X, g.tank2.Y, g.tank2.Heading, g.tank2.Health, g.tank2.Alive, g.shots2)
	fmt.Fprintf(&sb, "shells=%d obstacles=%d\n", len(g.shells), len(g.obstacles))

	for i, sh := range g.shells {
		fmt.Fprintf(&sb, "  shell[%d]: pos=(%d,%d) heading=%s\n", i, sh.X, sh.Y, sh.Heading)
	}

	return sb.String()
}
