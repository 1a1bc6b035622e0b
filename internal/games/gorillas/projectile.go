package gorillas

import (
	"math"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Banana is the thrown projectile.
type Banana struct {
	Body
	Thrower      core.PlayerID
	Size         float64
	Rotation     float64
	PrevRotation float64
}

// Box returns the banana's collision footprint.
func (b *Banana) Box() core.AABB {
	return core.BoxAt(b.Cur, b.Size, b.Size)
}

// Spin adds the cosmetic rotation for one tick.
func (b *Banana) Spin(rate, dt float64) {
	b.PrevRotation = b.Rotation
	b.Rotation -= rate * dt
}

// Launch converts an aim into an unscaled velocity for player one.
// θ=90 points straight up; smaller angles lean toward the opponent.
func Launch(angle, speed int) core.Vec2 {
	r := float64(90-angle) * math.Pi / 180
	return core.V(math.Sin(r), math.Cos(r)).Scale(float64(speed))
}

// ThrowVelocity returns the launch velocity in world units per second.
// Player two mirrors the horizontal component so both throw toward the other side.
func ThrowVelocity(aim AngleSpeed, p core.PlayerID, unitScale float64) core.Vec2 {
	v := Launch(aim.Angle, aim.Speed).Scale(unitScale)
	if p == core.Player2 {
		v.X = -v.X
	}
	return v
}

// OffScreen reports whether a point left the playable area through the
// sides or the bottom. There is no ceiling.
func OffScreen(pos core.Vec2, width, height float64) bool {
	return pos.X <= -width/2 || pos.X >= width/2 || pos.Y <= -height/2
}
