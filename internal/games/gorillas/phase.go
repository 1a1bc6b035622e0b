package gorillas

import "github.com/vovakirdan/tui-gorillas/internal/core"

// Phase is the step of the current turn.
type Phase int

const (
	PhaseEnter    Phase = iota // aiming
	PhaseThrowing              // banana still near the thrower
	PhaseWatching              // banana in flight, collisions end the turn
	PhaseWinner                // round over
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "Enter"
	case PhaseThrowing:
		return "Throwing"
	case PhaseWatching:
		return "Watching"
	case PhaseWinner:
		return "Winner"
	default:
		return "Unknown"
	}
}

// Turn is the phase state machine. Methods return false and leave the turn
// unchanged when a transition is not allowed from the current phase.
type Turn struct {
	Phase  Phase
	Player core.PlayerID
	Winner core.PlayerID
}

// NewTurn starts a round with first to aim.
func NewTurn(first core.PlayerID) Turn {
	return Turn{Phase: PhaseEnter, Player: first}
}

// Throw moves Enter to Throwing.
func (t *Turn) Throw() bool {
	if t.Phase != PhaseEnter {
		return false
	}
	t.Phase = PhaseThrowing
	return true
}

// Release moves Throwing to Watching once the banana has cleared the thrower.
func (t *Turn) Release() bool {
	if t.Phase != PhaseThrowing {
		return false
	}
	t.Phase = PhaseWatching
	return true
}

// Pass hands the turn to the other player after a miss.
func (t *Turn) Pass() bool {
	if t.Phase != PhaseWatching {
		return false
	}
	t.Phase = PhaseEnter
	t.Player = t.Player.Other()
	return true
}

// Win ends the round because hit's gorilla was struck. The opponent of hit wins.
func (t *Turn) Win(hit core.PlayerID) bool {
	if t.Phase == PhaseWinner {
		return false
	}
	t.Phase = PhaseWinner
	t.Winner = hit.Other()
	return true
}

// Over reports whether the round has a winner.
func (t Turn) Over() bool { return t.Phase == PhaseWinner }
