package gorillas

import (
	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// BrickState is the one-way lifecycle of a brick.
type BrickState int

const (
	BrickSolid BrickState = iota
	BrickDebris
)

// Brick is the smallest destructible piece of a building.
type Brick struct {
	Collider
	Color   core.Color
	State   BrickState
	Opacity float64
	Fade    float64 // opacity lost per tick once debris
	Body    Body
}

func newBrick(index int, center core.Vec2, w, h float64, c core.Color) *Brick {
	return &Brick{
		Collider: Collider{
			Kind:   KindBrick,
			Box:    core.BoxAt(center, w, h),
			Active: true,
			Index:  index,
		},
		Color:   c,
		Opacity: 1,
		Body:    NewBody(center, core.Vec2{}),
	}
}

// Shatter turns a solid brick into debris with a random scatter velocity and
// fade step. It returns false if the brick was already debris.
func (b *Brick) Shatter(rng Rand, d config.DebrisConfig) bool {
	if b.State != BrickSolid {
		return false
	}
	b.State = BrickDebris
	b.Active = false
	b.Body = NewBody(b.Box.Center, core.V(
		between(rng, d.VelXMin, d.VelXMax),
		between(rng, d.VelYMin, d.VelYMax),
	))
	b.Fade = between(rng, d.FadeStepMin, d.FadeStepMax)
	return true
}

// Decay fades debris by one tick. A brick whose opacity already reached zero
// reports true and must be removed.
func (b *Brick) Decay() (remove bool) {
	if b.State != BrickDebris {
		return false
	}
	if b.Opacity <= 0 {
		return true
	}
	b.Opacity = core.ClampF(b.Opacity-b.Fade, 0, b.Opacity)
	return false
}
