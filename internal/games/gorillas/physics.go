package gorillas

import (
	"time"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Rand is the randomness the simulation draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// between returns a uniform value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Body is a moving point with the position of the previous and current tick.
// Rendering blends between the two.
type Body struct {
	Prev core.Vec2
	Cur  core.Vec2
	Vel  core.Vec2
}

// NewBody places a body at rest position pos with velocity vel.
func NewBody(pos, vel core.Vec2) Body {
	return Body{Prev: pos, Cur: pos, Vel: vel}
}

// Integrate advances the body one fixed step with semi-implicit Euler.
func (b *Body) Integrate(accel core.Vec2, dt float64) {
	b.Vel = b.Vel.Add(accel.Scale(dt))
	b.Prev = b.Cur
	b.Cur = b.Cur.Add(b.Vel.Scale(dt))
}

// At returns the rendered position for the given overstep.
func (b Body) At(alpha float64) core.Vec2 {
	return Interpolate(b.Prev, b.Cur, alpha)
}

// Interpolate returns the display position between two ticks.
// alpha 0 yields prev and alpha 1 yields cur.
func Interpolate(prev, cur core.Vec2, alpha float64) core.Vec2 {
	return core.Lerp(prev, cur, alpha)
}

// maxFrame caps one frame's contribution to the accumulator.
const maxFrame = 250 * time.Millisecond

// Clock turns variable frame times into a whole number of fixed ticks.
type Clock struct {
	step        time.Duration
	accumulator time.Duration
}

// NewClock creates a clock ticking hz times per second.
func NewClock(hz int) *Clock {
	return &Clock{step: time.Second / time.Duration(hz)}
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration { return c.step }

// Advance adds frame time and returns how many ticks are due.
func (c *Clock) Advance(frame time.Duration) int {
	if frame > maxFrame {
		frame = maxFrame
	}
	if frame > 0 {
		c.accumulator += frame
	}
	n := int(c.accumulator / c.step)
	c.accumulator -= time.Duration(n) * c.step
	return n
}

// Overstep is the fraction of a tick left in the accumulator, in [0, 1).
func (c *Clock) Overstep() float64 {
	return float64(c.accumulator) / float64(c.step)
}

// Reset drops any accumulated time.
func (c *Clock) Reset() { c.accumulator = 0 }
