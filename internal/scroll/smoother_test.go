package scroll

import (
	gomath "math"
	"testing"
)

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(60, 6, 1)

	prev := s.Value()
	for i := 0; i < 600; i++ {
		v := s.Next(1)
		if v < prev-1e-9 {
			t.Fatalf("step %d: Next() = %v, went below previous %v", i, v, prev)
		}
		prev = v
	}
	if gomath.Abs(prev-1) > 1e-3 {
		t.Errorf("Value() after 10s = %v, want ~1", prev)
	}
}

func TestSmootherFirstStepLags(t *testing.T) {
	s := NewSmoother(60, 6, 1)
	if v := s.Next(1); v <= 0 || v >= 1 {
		t.Errorf("Next(1) = %v, want in (0, 1)", v)
	}
}

func TestSmootherSnap(t *testing.T) {
	s := NewSmoother(0, 6, 1)
	s.Snap(0.75)
	if v := s.Value(); v != 0.75 {
		t.Errorf("Value() = %v, want 0.75", v)
	}
	if v := s.Next(0.75); gomath.Abs(v-0.75) > 1e-9 {
		t.Errorf("Next(0.75) after Snap = %v, want 0.75", v)
	}
}

func TestSmootherClampsOutput(t *testing.T) {
	s := NewSmoother(60, 6, 1)
	s.Snap(1.5)
	if v := s.Value(); v != 1 {
		t.Errorf("Value() = %v, want 1", v)
	}
}
