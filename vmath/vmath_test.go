package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0.3, 2.0, 0, 0.3},
		{0.3, 2.0, 1, 2.0},
		{0.3, 2.0, 0.5, 1.15},
		{255, 0, 0.25, 191.25},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Lerp(%v, %v, %v): expected %v, got %v", tt.a, tt.b, tt.t, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(7, -6.7, 6.7) != 6.7 {
		t.Error("Expected upper clamp")
	}
	if Clamp(-7, -6.7, 6.7) != -6.7 {
		t.Error("Expected lower clamp")
	}
	if Clamp01(0.4) != 0.4 {
		t.Error("Expected in-range value unchanged")
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	n := Normalize2D(V2(0, 0))
	if n[0] != 0 || n[1] != 0 {
		t.Errorf("Expected zero vector, got %v", n)
	}

	n = Normalize2D(V2(3, 4))
	if math.Abs(n.Len()-1) > epsilon {
		t.Errorf("Expected unit length, got %v", n.Len())
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(V2(-1, 0), V2(1, 2), 0.5)
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected (0,1), got %v", got)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		ra, rb float64
		want   bool
	}{
		{"overlapping", V2(0, 0), V2(0.5, 0), 0.4, 0.4, true},
		{"touching is not a hit", V2(0, 0), V2(1, 0), 0.5, 0.5, false},
		{"apart", V2(0, 0), V2(3, 3), 0.5, 0.5, false},
		{"diagonal inside", V2(1, 1), V2(1.5, 1.5), 0.4, 0.4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCrossedInterval(t *testing.T) {
	tests := []struct {
		prev, now, period float64
		want              bool
	}{
		{19.9, 20.0, 20, true},
		{19.95, 20.05, 20, true},
		{20.0, 20.1, 20, false},
		{0, 0.016, 20, false},
		{0.95, 1.05, 1, true},
		{5, 5, 1, false},
	}
	for _, tt := range tests {
		if got := CrossedInterval(tt.prev, tt.now, tt.period); got != tt.want {
			t.Errorf("CrossedInterval(%v, %v, %v): expected %v, got %v", tt.prev, tt.now, tt.period, tt.want, got)
		}
	}
}

func TestCrossedMarkFiresOnce(t *testing.T) {
	fired := 0
	prev := 0.0
	for now := 0.5; now <= 70; now += 0.5 {
		if CrossedMark(prev, now, 60) {
			fired++
		}
		prev = now
	}
	if fired != 1 {
		t.Errorf("Expected mark to fire once, fired %d times", fired)
	}
}
