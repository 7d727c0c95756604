package tanks

import (
	"fmt"

	"tankduel/internal/core"
)

// Theme maps entity kinds to display attributes. Rendering consults only
// this table, so recoloring the game is a one-struct change.
type Theme struct {
	Tank1    core.Color
	Tank2    core.Color
	Shell    core.Color
	Obstacle core.Color
	Border   core.Color
	Status   core.Color
	Banner   core.Color
}

// DefaultTheme is the classic look: green versus red, yellow shells,
// white obstacles.
func DefaultTheme() Theme {
	return Theme{
		Tank1:    core.ColorGreen,
		Tank2:    core.ColorRed,
		Shell:    core.ColorYellow,
		Obstacle: core.ColorWhite,
		Border:   core.ColorDefault,
		Status:   core.ColorDefault,
		Banner:   core.ColorYellow,
	}
}

const (
	shellGlyph    = '•'
	obstacleGlyph = '#'
)

// Render draws the full frame: border, status line, obstacles, tanks,
// shells, then any overlay. Every frame is drawn from scratch.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBorder(dst)
	g.renderStatus(dst)

	for _, ob := range g.obstacles {
		if ob.Alive {
			dst.SetCell(ob.X, ob.Y, obstacleGlyph, g.theme.Obstacle)
		}
	}
	if g.tank1.Alive {
		dst.SetCell(g.tank1.X, g.tank1.Y, g.tank1.Heading.Glyph(), g.theme.Tank1)
	}
	if g.tank2.Alive {
		dst.SetCell(g.tank2.X, g.tank2.Y, g.tank2.Heading.Glyph(), g.theme.Tank2)
	}
	for _, sh := range g.shells {
		if sh.Alive {
			dst.SetCell(sh.X, sh.Y, shellGlyph, g.theme.Shell)
		}
	}

	switch {
	case g.phase == PhaseBriefing:
		g.renderBriefing(dst)
	case g.paused:
		g.renderPaused(dst)
	case g.phase == PhaseOver && g.winner != core.PlayerNone:
		g.renderVictory(dst)
	}
}

// renderBorder draws the double-line arena wall.
func (g *Game) renderBorder(dst *core.Screen) {
	w, h := g.width, g.height
	for x := 1; x < w-1; x++ {
		dst.SetCell(x, 0, '═', g.theme.Border)
		dst.SetCell(x, h-1, '═', g.theme.Border)
	}
	for y := 1; y < h-1; y++ {
		dst.SetCell(0, y, '║', g.theme.Border)
		dst.SetCell(w-1, y, '║', g.theme.Border)
	}
	dst.SetCell(0, 0, '╔', g.theme.Border)
	dst.SetCell(w-1, 0, '╗', g.theme.Border)
	dst.SetCell(0, h-1, '╚', g.theme.Border)
	dst.SetCell(w-1, h-1, '╝', g.theme.Border)
}

// renderStatus writes the health line over the top border, truncated to
// keep the corners intact.
func (g *Game) renderStatus(dst *core.Screen) {
	text := fmt.Sprintf(" %s  P1 HP: %d  P2 HP: %d  [P] pause  [Q] quit ",
		g.Title(), g.tank1.Health, g.tank2.Health)
	runes := []rune(text)
	maxLen := core.Clamp(g.width-4, 0, len(runes))
	dst.DrawTextColored(2, 0, string(runes[:maxLen]), g.theme.Status)
}

// renderBriefing shows the controls until either player acts.
func (g *Game) renderBriefing(dst *core.Screen) {
	g.renderOverlayBox(dst, []string{
		"TANK DUEL",
		"",
		"P1: WASD moves, Space fires",
		"P2: Arrows move, Enter fires",
		"",
		"Three hits destroy a tank.",
		"[P] pause   [Q] quit",
		"",
		"Press any key to start",
	})
}

func (g *Game) renderPaused(dst *core.Screen) {
	g.renderOverlayBox(dst, []string{
		"PAUSED",
		"",
		"[P] resume   [Q] quit",
	})
}

// renderVictory draws the winner banner across the middle of the arena.
// Aborted matches (no winner) get no banner.
func (g *Game) renderVictory(dst *core.Screen) {
	banner := fmt.Sprintf(" %s wins! Press any key to exit ", g.winner)
	dst.DrawTextCenteredColored(g.height/2, banner, g.theme.Banner)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.height/2-1, "Terminal too small")
	dst.DrawTextCentered(g.height/2, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
}

// renderOverlayBox clears a centered rectangle and draws the lines
// inside a box frame.
func (g *Game) renderOverlayBox(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((g.width-boxW)/2, (g.height-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}
