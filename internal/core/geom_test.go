package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edge", NewRect(10, 0, 5, 5), false},
		{"separate", NewRect(20, 20, 5, 5), false},
		{"negative overlap", NewRect(-5, -5, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("Contains(2, 3) should be true for top-left corner")
	}
	if !r.Contains(5, 7) {
		t.Error("Contains(5, 7) should be true for bottom-right interior")
	}
	if r.Contains(6, 3) {
		t.Error("Contains(6, 3) should be false past the right edge")
	}
	if r.Contains(2, 8) {
		t.Error("Contains(2, 8) should be false past the bottom edge")
	}
	if r.Contains(1, 3) {
		t.Error("Contains(1, 3) should be false left of the rect")
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 10, 6)
	cx, cy := r.Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center() = (%d, %d), want (5, 3)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, want 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, want 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f, want 0", got)
	}
	if got := ClampF(1.7, 0, 1); got != 1 {
		t.Errorf("ClampF(1.7, 0, 1) = %f, want 1", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %f, want 5", got)
	}

	zero := Vec2{}
	if got := zero.Length(); got != 0 {
		t.Errorf("zero Length() = %f, want 0", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalized().Length() = %f, want 1", n.Length())
	}

	// Normalizing the zero vector must not divide by zero.
	zero := Vec2{}
	n = zero.Normalized()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("zero Normalized() = %v, want zero vector", n)
	}
}

func TestVec2AddScale(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -1})
	if v.X != 4 || v.Y != 1 {
		t.Errorf("Add = %v, want {4 1}", v)
	}

	v = Vec2{X: 2, Y: -3}.Scale(1.5)
	if v.X != 3 || v.Y != -4.5 {
		t.Errorf("Scale = %v, want {3 -4.5}", v)
	}
}

func TestDist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 6, Y: 8}
	if got := Dist(a, b); got != 10 {
		t.Errorf("Dist = %f, want 10", got)
	}
	if got := Dist(b, a); got != 10 {
		t.Errorf("Dist should be symmetric, got %f", got)
	}
}
