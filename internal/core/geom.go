// Package core provides the engine-agnostic primitives shared by the game
// simulation and its frontends: vectors, boxes, the cell buffer and input frames.
// It imports nothing outside the standard library so game logic stays pure
// and testable.
package core

import "math"

// Vec2 is a point or direction in world space. World space has its origin at
// the screen centre with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Lerp blends a toward b by t. t=0 yields a exactly and t=1 yields b exactly.
func Lerp(a, b Vec2, t float64) Vec2 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// AABB is an axis-aligned box described by its centre and half extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// BoxAt builds a box of the given full size centred on c.
func BoxAt(c Vec2, w, h float64) AABB {
	return AABB{Center: c, Half: Vec2{w / 2, h / 2}}
}

func (b AABB) Min() Vec2 { return b.Center.Sub(b.Half) }
func (b AABB) Max() Vec2 { return b.Center.Add(b.Half) }

// Intersects reports whether two boxes overlap. Touching edges count.
func (b AABB) Intersects(o AABB) bool {
	if math.Abs(b.Center.X-o.Center.X) > b.Half.X+o.Half.X {
		return false
	}
	return math.Abs(b.Center.Y-o.Center.Y) <= b.Half.Y+o.Half.Y
}

// Rect is an integer cell rectangle on a Screen (top-left origin, +Y down).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
