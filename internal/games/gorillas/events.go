package gorillas

import "github.com/vovakirdan/tui-gorillas/internal/core"

// EventKind tags what happened during an update.
type EventKind int

const (
	EventThrow        EventKind = iota // banana launched
	EventCollision                     // banana hit something; play the explosion sound
	EventMiss                          // banana left the screen
	EventPhaseChanged                  // Phase field holds the new phase
	EventWindChanged                   // Wind field holds the new acceleration
	EventRoundOver                     // Player field holds the winner
)

func (k EventKind) String() string {
	switch k {
	case EventThrow:
		return "throw"
	case EventCollision:
		return "collision"
	case EventMiss:
		return "miss"
	case EventPhaseChanged:
		return "phase"
	case EventWindChanged:
		return "wind"
	case EventRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget signal for frontends.
type Event struct {
	Kind   EventKind
	Player core.PlayerID
	Phase  Phase
	Wind   float64
	Pos    core.Vec2
}

// Result is returned by Update and Step.
type Result struct {
	Ticks  int
	Events []Event
}

// Has reports whether an event of kind k occurred.
func (r Result) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
