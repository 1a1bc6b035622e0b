package gorillas

import "math"

// Snapshot is a flat copy of the simulation used to compare runs.
type Snapshot struct {
	Tick         uint64
	Round        int
	Phase        int
	Player       int
	Winner       int
	Wins         [2]int
	Wind         int
	Throws       int
	SolidBricks  int
	DebrisBricks int
	Explosions   int

	// Banana is X, Y, VX, VY in thousandths, empty when no banana is live.
	Banana []int64
	// Aims is angle and speed per player.
	Aims [4]int
	// Debris is X, Y, opacity in thousandths per debris brick.
	Debris []int64
}

func milli(v float64) int64 { return int64(math.Round(v * 1000)) }

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:       g.tick,
		Round:      g.round,
		Phase:      int(g.turn.Phase),
		Player:     int(g.turn.Player),
		Winner:     int(g.turn.Winner),
		Wins:       g.wins,
		Wind:       w.Wind.Raw,
		Throws:     g.throws,
		Explosions: len(w.Explosions),
	}
	for _, b := range w.Bricks {
		if b.State == BrickSolid {
			snap.SolidBricks++
			continue
		}
		snap.DebrisBricks++
		snap.Debris = append(snap.Debris, milli(b.Body.Cur.X), milli(b.Body.Cur.Y), milli(b.Opacity))
	}
	if b := w.Banana; b != nil {
		snap.Banana = []int64{milli(b.Cur.X), milli(b.Cur.Y), milli(b.Vel.X), milli(b.Vel.Y)}
	}
	for i, gor := range w.Gorillas {
		if gor != nil {
			snap.Aims[i*2] = gor.Aim.Angle
			snap.Aims[i*2+1] = gor.Aim.Speed
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Round, snap.Phase, snap.Player, snap.Winner, snap.Wins[0], snap.Wins[1],
		snap.Wind, snap.Throws, snap.SolidBricks, snap.DebrisBricks, snap.Explosions,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Aims {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Banana {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Debris {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
