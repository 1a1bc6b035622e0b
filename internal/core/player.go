package core

// PlayerID identifies one of the two players of a match.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// Other returns the opponent.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index maps the player to 0 or 1 for array lookups.
func (p PlayerID) Index() int {
	if p == Player2 {
		return 1
	}
	return 0
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}
