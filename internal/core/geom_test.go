package core

import (
	"math"
	"testing"
)

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "apart horizontally",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(20, 0), 10, 10),
			expected: false,
		},
		{
			name:     "apart vertically",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(0, -11), 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(10, 0), 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        BoxAt(V(0, 0), 40, 40),
			b:        BoxAt(V(3, -3), 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() not symmetric: %v", got)
			}
		})
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := V(1.5, -2), V(7.25, 40)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %v, expected %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %v, expected %v", got, b)
	}

	mid := Lerp(V(0, 0), V(10, -10), 0.5)
	if mid != V(5, -5) {
		t.Errorf("Lerp(0.5) = %v, expected (5,-5)", mid)
	}
}

func TestVecDist(t *testing.T) {
	if d := V(0, 0).Dist(V(3, 4)); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if l := V(-6, 8).Len(); math.Abs(l-10) > 1e-9 {
		t.Errorf("Len = %f, expected 10", l)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{231, 0, 230, 230},
		{9, 10, 200, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.2, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.2, 0, 1) = %f, expected 0", got)
	}
}

func TestPlayerOther(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 {
		t.Error("Other() should swap players")
	}
	if Player1.Index() != 0 || Player2.Index() != 1 {
		t.Error("Index() should be 0 and 1")
	}
}
