package scroll

import (
	"github.com/charmbracelet/harmonica"

	"github.com/Faultbox/meadow/pkg/math"
)

// Smoother eases a progress signal with a critically damped spring.
// It sits between the accumulator and its consumers; the accumulator
// itself never smooths.
type Smoother struct {
	spring   harmonica.Spring
	value    float64
	velocity float64
}

// NewSmoother creates a smoother stepping at fps frames per second.
// frequency controls speed and damping 1.0 means no overshoot.
func NewSmoother(fps int, frequency, damping float64) *Smoother {
	if fps <= 0 {
		fps = 60
	}
	return &Smoother{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Next advances one step toward target and returns the eased value in [0, 1].
func (s *Smoother) Next(target float64) float64 {
	s.value, s.velocity = s.spring.Update(s.value, s.velocity, target)
	return math.Clamp01(s.value)
}

// Value returns the last eased value.
func (s *Smoother) Value() float64 {
	return math.Clamp01(s.value)
}

// Snap jumps straight to v with no velocity.
func (s *Smoother) Snap(v float64) {
	s.value = v
	s.velocity = 0
}
