package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name   string
		az, el float32
		want   mgl32.Vec3
	}{
		{"zenith", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"horizon north", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"horizon east", 90, 0, mgl32.Vec3{1, 0, 0}},
		{"horizon south", 180, 0, mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.az, tt.el)
			if !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.az, tt.el, got, tt.want)
			}
			if l := got.Len(); l < 0.9999 || l > 1.0001 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}

func TestLambert(t *testing.T) {
	sun := NewSun(0, 90)
	if got := sun.Lambert(mgl32.Vec3{0, 2, 0}); got < 0.9999 {
		t.Errorf("Lambert(up) = %v, want 1", got)
	}
	if got := sun.Lambert(mgl32.Vec3{0, -1, 0}); got != 0 {
		t.Errorf("Lambert(down) = %v, want 0", got)
	}
}
