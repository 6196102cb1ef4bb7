package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecBetween(t *testing.T) {
	v := Between(V(1, 2), V(4, 6))
	if v.X != 3 || v.Y != 4 {
		t.Errorf("Between() = %+v, expected (3, 4)", v)
	}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
}

func TestVecNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis x", V(100, 0), V(1, 0)},
		{"axis y", V(0, -3), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized()
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("Normalized(%+v) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	if got := a.Add(b); got != V(4, 1) {
		t.Errorf("Add() = %+v, expected (4, 1)", got)
	}
	if got := a.Sub(b); got != V(-2, 3) {
		t.Errorf("Sub() = %+v, expected (-2, 3)", got)
	}
	if got := a.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale() = %+v, expected (2.5, 5)", got)
	}
	if !V(0, 0).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestDist(t *testing.T) {
	if d := Dist(V(0, 0), V(0, 32)); d != 32 {
		t.Errorf("Dist() = %f, expected 32", d)
	}
	if Dist(V(5, 5), V(1, 2)) != Dist(V(1, 2), V(5, 5)) {
		t.Error("Dist() should be symmetric")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
