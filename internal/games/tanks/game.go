// Package tanks implements the two-player tank duel: two tanks, one
// walled arena, a scattering of destructible obstacles, and the last
// armor standing wins.
package tanks

import (
	"math/rand"

	"tankduel/internal/config"
	"tankduel/internal/core"
	"tankduel/internal/match"
	"tankduel/internal/registry"
)

func init() {
	registry.Register("tanks", func() registry.Game { return New() })
}

// Package-level configuration hooks, set by the CLI before the game is
// created. New captures them as per-instance defaults, so concurrent
// games (one per SSH session) can override them independently.
var (
	configPath  string
	arenaPreset string
)

// SetConfigPath sets a custom YAML config path for upcoming matches.
func SetConfigPath(path string) {
	configPath = path
}

// SetArenaPreset selects the obstacle layout for upcoming matches.
func SetArenaPreset(preset string) {
	arenaPreset = preset
}

// ArenaPresetName returns the preset selected for upcoming matches,
// defaulting to classic.
func ArenaPresetName() string {
	if arenaPreset == "" {
		return string(config.ArenaClassic)
	}
	return arenaPreset
}

// Heading is the direction a tank or shell is facing.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Delta returns the one-cell movement for this heading.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// Glyph returns the display marker for a tank facing this heading.
func (h Heading) Glyph() rune {
	switch h {
	case HeadingUp:
		return '^'
	case HeadingDown:
		return 'v'
	case HeadingLeft:
		return '<'
	case HeadingRight:
		return '>'
	}
	return '^'
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	}
	return "up"
}

// Phase is the match lifecycle state.
type Phase int

const (
	// PhaseBriefing shows the controls until either player acts.
	PhaseBriefing Phase = iota
	// PhaseRunning is live simulation.
	PhaseRunning
	// PhaseOver follows a victory or a quit.
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "briefing"
	}
}

// Tank is one player's vehicle.
type Tank struct {
	X, Y    int
	Heading Heading
	Health  int
	Alive   bool

	lastFireTick int64 // tick of the last accepted shot
}

// move advances one cell in the given heading if the target cell stays
// strictly inside the walls. A rejected move changes nothing, not even
// the facing.
func (t *Tank) move(h Heading, interior core.Rect) {
	dx, dy := h.Delta()
	nx, ny := t.X+dx, t.Y+dy
	if !interior.Contains(nx, ny) {
		return
	}
	t.X = nx
	t.Y = ny
	t.Heading = h
}

// canFire reports whether the fire cooldown has fully elapsed.
func (t *Tank) canFire(tick, cooldownTicks int64) bool {
	return tick-t.lastFireTick > cooldownTicks
}

// fire spawns a shell one cell ahead of the muzzle and restarts the
// cooldown. Returns false while the cooldown is still running.
func (t *Tank) fire(tick, cooldownTicks int64) (Shell, bool) {
	if !t.canFire(tick, cooldownTicks) {
		return Shell{}, false
	}
	t.lastFireTick = tick
	dx, dy := t.Heading.Delta()
	return Shell{
		X:            t.X + dx,
		Y:            t.Y + dy,
		Heading:      t.Heading,
		Alive:        true,
		lastMoveTick: tick,
	}, true
}

// applyHit removes one health point and kills the tank at zero.
func (t *Tank) applyHit() {
	t.Health--
	if t.Health <= 0 {
		t.Health = 0
		t.Alive = false
	}
}

// Shell is a fired projectile. Shells carry no owner: damage goes to
// whichever tank occupies the cell, and the kill credits that tank's
// opponent.
type Shell struct {
	X, Y    int
	Heading Heading
	Alive   bool

	lastMoveTick int64 // tick of the last one-cell advance
}

// advance moves the shell one cell once enough ticks have elapsed and
// kills it on reaching the border.
func (s *Shell) advance(tick, advanceTicks int64, w, h int) {
	if tick-s.lastMoveTick < advanceTicks {
		return
	}
	dx, dy := s.Heading.Delta()
	s.X += dx
	s.Y += dy
	s.lastMoveTick = tick
	if s.X <= 0 || s.X >= w-1 || s.Y <= 0 || s.Y >= h-1 {
		s.Alive = false
	}
}

// Obstacle is a destructible block. One hit removes it.
type Obstacle struct {
	X, Y  int
	Alive bool
}

// rules are the tick-domain constants derived from config at reset.
type rules struct {
	healthMax     int
	cooldownTicks int64 // ticks that must fully elapse between shots
	advanceTicks  int64 // ticks between one-cell shell advances
	obstacleCount int
	obstacleMinX  int
	obstacleMinY  int
	spawnMargin   int
}

// Minimum playfield that fits the walls, both spawn columns, and the
// default obstacle band.
const (
	minWidth  = 30
	minHeight = 12
)

// Game implements registry.Game for the tank duel.
type Game struct {
	// Configuration
	width       int
	height      int
	tickRate    int
	configPath  string
	arenaPreset string
	rules       rules
	theme       Theme

	// Simulation clock; advances only while running and unpaused
	tick int64

	// Entities
	tank1     Tank
	tank2     Tank
	shells    []Shell
	obstacles []Obstacle

	// Match state
	phase    Phase
	winner   core.PlayerID
	paused   bool
	tooSmall bool
	shots1   int
	shots2   int

	// Infrastructure
	rng    *rand.Rand
	events []core.Event
}

var _ match.Reporter = (*Game)(nil)

// New creates an unstarted duel; call Reset before stepping.
func New() *Game {
	return &Game{
		configPath:  configPath,
		arenaPreset: arenaPreset,
	}
}

// SetArenaPreset overrides the obstacle layout for this instance's
// upcoming resets.
func (g *Game) SetArenaPreset(preset string) {
	g.arenaPreset = preset
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tank Duel"
}

// Reset loads configuration and builds a fresh arena.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		if g.tickRate > 0 {
			cfg.TickRate = g.tickRate
		} else {
			cfg.TickRate = core.DefaultConfig().TickRate
		}
	}
	g.width = cfg.ScreenW
	g.height = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.theme = DefaultTheme()
	g.loadRules(cfg.TickRate)

	g.tick = 0
	g.phase = PhaseBriefing
	g.winner = core.PlayerNone
	g.paused = false
	g.shots1 = 0
	g.shots2 = 0
	g.shells = nil
	g.obstacles = nil
	g.events = nil

	g.tooSmall = g.width < minWidth || g.height < minHeight
	if g.tooSmall {
		return
	}

	g.spawnTanks()
	g.scatterObstacles()
}

// loadRules converts the YAML config into tick-domain rules.
func (g *Game) loadRules(tickRate int) {
	tc, err := config.LoadTanks(g.configPath)
	if err != nil {
		tc = config.DefaultTanksConfig()
	}
	if g.arenaPreset != "" {
		config.ApplyArenaPreset(&tc, config.ArenaPreset(g.arenaPreset))
	}

	g.rules = rules{
		healthMax:     tc.Tank.Health,
		cooldownTicks: int64(tickRate) * int64(tc.Tank.FireCooldownMS) / 1000,
		advanceTicks:  int64(core.Max(1, tickRate*tc.Shell.AdvanceMS/1000)),
		obstacleCount: tc.Arena.Obstacles,
		obstacleMinX:  tc.Arena.ObstacleMinX,
		obstacleMinY:  tc.Arena.ObstacleMinY,
		spawnMargin:   tc.Arena.SpawnMargin,
	}
}

// spawnTanks places both tanks on the vertical midline, facing up.
func (g *Game) spawnTanks() {
	margin := g.rules.spawnMargin
	midY := g.height / 2
	// Backdate the cooldown so the first shot is never throttled.
	coldStart := -(g.rules.cooldownTicks + 1)

	g.tank1 = Tank{
		X:            margin,
		Y:            midY,
		Heading:      HeadingUp,
		Health:       g.rules.healthMax,
		Alive:        true,
		lastFireTick: coldStart,
	}
	g.tank2 = Tank{
		X:            g.width - margin,
		Y:            midY,
		Heading:      HeadingUp,
		Health:       g.rules.healthMax,
		Alive:        true,
		lastFireTick: coldStart,
	}
}

// scatterObstacles drops obstacles uniformly inside the obstacle band,
// away from the walls and the spawn columns. Overlapping obstacles are
// allowed.
func (g *Game) scatterObstacles() {
	bandW := g.width - 2*g.rules.obstacleMinX + 1
	bandH := g.height - 2*g.rules.obstacleMinY + 1
	if bandW <= 0 || bandH <= 0 {
		return
	}

	g.obstacles = make([]Obstacle, 0, g.rules.obstacleCount)
	for range g.rules.obstacleCount {
		g.obstacles = append(g.obstacles, Obstacle{
			X:     g.rules.obstacleMinX + g.rng.Intn(bandW),
			Y:     g.rules.obstacleMinY + g.rng.Intn(bandH),
			Alive: true,
		})
	}
}

// Step advances the duel by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.events = g.events[:0]

	p1 := in.Player1()
	p2 := in.Player2()

	// Restart only makes sense once the match is decided.
	if g.phase == PhaseOver && (p1.Has(core.ActionRestart) || p2.Has(core.ActionRestart)) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.width,
			ScreenH:  g.height,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return g.result()
	}

	// Either player can end the match at any point. Ending before a
	// decision leaves no winner.
	if p1.Has(core.ActionQuit) || p2.Has(core.ActionQuit) {
		if g.phase != PhaseOver {
			g.phase = PhaseOver
			g.winner = core.PlayerNone
		}
		return g.result()
	}

	if g.tooSmall || g.phase == PhaseOver {
		return g.result()
	}

	if g.phase == PhaseBriefing {
		if startRequested(p1) || startRequested(p2) {
			g.phase = PhaseRunning
		}
		return g.result()
	}

	if p1.Has(core.ActionPause) || p2.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++

	g.applyTankInput(&g.tank1, p1, &g.shots1)
	g.applyTankInput(&g.tank2, p2, &g.shots2)

	g.advanceShells()
	g.resolveCollisions()
	g.compact()

	return g.result()
}

// startRequested reports whether a frame contains an action that should
// launch the match from the briefing screen.
func startRequested(f core.InputFrame) bool {
	return f.Has(core.ActionUp) || f.Has(core.ActionDown) ||
		f.Has(core.ActionLeft) || f.Has(core.ActionRight) ||
		f.Has(core.ActionFire) || f.Has(core.ActionConfirm)
}

// applyTankInput dispatches one player's frame: at most one move, then
// an optional shot. When several direction keys land in the same frame,
// up wins, then down, then left, then right.
func (g *Game) applyTankInput(t *Tank, in core.InputFrame, shots *int) {
	if !t.Alive {
		return
	}

	interior := core.NewRect(1, 1, g.width-2, g.height-2)
	switch {
	case in.Has(core.ActionUp):
		t.move(HeadingUp, interior)
	case in.Has(core.ActionDown):
		t.move(HeadingDown, interior)
	case in.Has(core.ActionLeft):
		t.move(HeadingLeft, interior)
	case in.Has(core.ActionRight):
		t.move(HeadingRight, interior)
	}

	if in.Has(core.ActionFire) {
		if sh, ok := t.fire(g.tick, g.rules.cooldownTicks); ok {
			g.shells = append(g.shells, sh)
			*shots++
			g.events = append(g.events, core.EventFire)
		}
	}
}

// advanceShells moves every live shell that is due this tick.
func (g *Game) advanceShells() {
	for i := range g.shells {
		if g.shells[i].Alive {
			g.shells[i].advance(g.tick, g.rules.advanceTicks, g.width, g.height)
		}
	}
}

// resolveCollisions tests every live shell against tank 1, then tank 2,
// then the obstacles in creation order. The first match consumes the
// shell; its remaining targets are not tested.
func (g *Game) resolveCollisions() {
	for i := range g.shells {
		sh := &g.shells[i]
		if !sh.Alive {
			continue
		}

		if g.tank1.Alive && sh.X == g.tank1.X && sh.Y == g.tank1.Y {
			g.hitTank(&g.tank1, core.Player1)
			sh.Alive = false
			continue
		}
		if g.tank2.Alive && sh.X == g.tank2.X && sh.Y == g.tank2.Y {
			g.hitTank(&g.tank2, core.Player2)
			sh.Alive = false
			continue
		}

		for j := range g.obstacles {
			ob := &g.obstacles[j]
			if ob.Alive && sh.X == ob.X && sh.Y == ob.Y {
				ob.Alive = false
				sh.Alive = false
				g.events = append(g.events, core.EventObstacleHit)
				break
			}
		}
	}
}

// hitTank applies damage and, on a kill, credits the victim's opponent.
// A later kill in the same tick overwrites the winner.
func (g *Game) hitTank(t *Tank, victim core.PlayerID) {
	t.applyHit()
	g.events = append(g.events, core.EventTankHit)
	if !t.Alive {
		g.winner = victim.Opponent()
		if g.phase != PhaseOver {
			g.phase = PhaseOver
			g.events = append(g.events, core.EventVictory)
		}
	}
}

// compact drops dead shells and obstacles, preserving creation order.
// Runs once per tick, after collision resolution.
func (g *Game) compact() {
	liveShells := g.shells[:0]
	for _, sh := range g.shells {
		if sh.Alive {
			liveShells = append(liveShells, sh)
		}
	}
	g.shells = liveShells

	liveObstacles := g.obstacles[:0]
	for _, ob := range g.obstacles {
		if ob.Alive {
			liveObstacles = append(liveObstacles, ob)
		}
	}
	g.obstacles = liveObstacles
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the platform-visible match status.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
		Winner:   g.winner,
	}
}

// Winner returns the deciding player, or PlayerNone for aborted duels.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}

// Health1 returns Player 1's remaining health.
func (g *Game) Health1() int {
	return g.tank1.Health
}

// Health2 returns Player 2's remaining health.
func (g *Game) Health2() int {
	return g.tank2.Health
}

// Shots1 returns the number of shells Player 1 fired.
func (g *Game) Shots1() int {
	return g.shots1
}

// Shots2 returns the number of shells Player 2 fired.
func (g *Game) Shots2() int {
	return g.shots2
}

// Ticks returns the simulation tick count.
func (g *Game) Ticks() int64 {
	return g.tick
}
