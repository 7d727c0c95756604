package core

// PlayerID identifies one of the two seats in a duel. PlayerNone marks
// "no player": an undecided winner, or input that belongs to neither seat.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "nobody"
	}
}

// Opponent returns the other seat. PlayerNone has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}
