package math

import (
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{80, 100, 0, 80},
		{80, 100, 1, 100},
		{80, 100, 0.5, 90},
		{-310, -30, 0.5, -170},
		{10, -5, 1, -5},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestLerpFloat32(t *testing.T) {
	got := Lerp(float32(0), float32(-30), float32(0.5))
	if got != -15 {
		t.Errorf("Lerp() = %v, want -15", got)
	}
}

func TestInverseLerp(t *testing.T) {
	if got := InverseLerp(80.0, 100.0, 90.0); got != 0.5 {
		t.Errorf("InverseLerp() = %v, want 0.5", got)
	}
	if got := InverseLerp(1.0, 1.0, 5.0); got != 0 {
		t.Errorf("InverseLerp() with a == b = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.v); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := Clamp(float32(5), 1, 3); got != 3 {
		t.Errorf("Clamp() = %v, want 3", got)
	}
}
