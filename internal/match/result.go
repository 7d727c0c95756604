// Package match describes finished duels: who won, how, and how long it
// took. The tui layer builds results when a game ends; the storage layer
// persists them.
package match

import (
	"tankduel/internal/core"
)

// EndReason describes how a match ended.
type EndReason int

const (
	// ReasonVictory means a tank was destroyed and a winner declared.
	ReasonVictory EndReason = iota
	// ReasonQuit means a player ended the match before a decision.
	ReasonQuit
)

func (r EndReason) String() string {
	switch r {
	case ReasonVictory:
		return "victory"
	case ReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseEndReason converts a stored reason string back to an EndReason.
func ParseEndReason(s string) EndReason {
	switch s {
	case "victory":
		return ReasonVictory
	default:
		return ReasonQuit
	}
}

// Result is one finished duel.
type Result struct {
	GameID        string        // registry ID of the game
	ArenaPreset   string        // arena layout the duel was played on
	Winner        core.PlayerID // PlayerNone for aborted matches
	Health1       int           // Player 1's remaining health
	Health2       int           // Player 2's remaining health
	Shots1        int           // shells fired by Player 1
	Shots2        int           // shells fired by Player 2
	DurationTicks int64         // simulation ticks from first move to the end
	Reason        EndReason
}

// Reporter is implemented by games that can describe a finished duel.
// The tui layer type-asserts for it when a game reaches game over.
type Reporter interface {
	Winner() core.PlayerID
	Health1() int
	Health2() int
	Shots1() int
	Shots2() int
	Ticks() int64
}

// Saver persists finished duels. The storage layer implements it.
type Saver interface {
	SaveMatch(res Result) error
}

// FromReporter builds a Result from a finished game. A match with no
// winner counts as quit.
func FromReporter(gameID, preset string, rep Reporter) Result {
	reason := ReasonQuit
	if rep.Winner() != core.PlayerNone {
		reason = ReasonVictory
	}
	return Result{
		GameID:        gameID,
		ArenaPreset:   preset,
		Winner:        rep.Winner(),
		Health1:       rep.Health1(),
		Health2:       rep.Health2(),
		Shots1:        rep.Shots1(),
		Shots2:        rep.Shots2(),
		DurationTicks: rep.Ticks(),
		Reason:        reason,
	}
}
