// Package scroll turns wheel input into the normalized progress value that
// drives the camera and the overlay chrome.
package scroll

import (
	gomath "math"

	"github.com/Faultbox/meadow/pkg/math"
)

// DefaultSensitivity scales raw wheel deltas into progress units.
const DefaultSensitivity = 0.001

// Target identifies the screen region an input event landed on.
type Target string

// Known input regions.
const (
	TargetViewport Target = "webgl"   // The 3D view
	TargetOverlay  Target = "overlay" // Overlay content panel
	TargetChrome   Target = "chrome"  // Navigation bar and title
)

// Accumulator holds scroll progress in [0, 1].
// It is the only writer of the value; everything else reads Progress.
type Accumulator struct {
	progress    float64
	sensitivity float64
	region      Target
}

// NewAccumulator creates an accumulator listening to region.
// A non-positive sensitivity falls back to DefaultSensitivity.
func NewAccumulator(sensitivity float64, region Target) *Accumulator {
	if sensitivity <= 0 || gomath.IsNaN(sensitivity) || gomath.IsInf(sensitivity, 0) {
		sensitivity = DefaultSensitivity
	}
	if region == "" {
		region = TargetViewport
	}
	return &Accumulator{
		sensitivity: sensitivity,
		region:      region,
	}
}

// OnWheel applies a wheel delta if it landed on the designated region.
// Returns true when progress changed.
func (a *Accumulator) OnWheel(deltaY float64, target Target) bool {
	if target != a.region {
		return false
	}
	if gomath.IsNaN(deltaY) || gomath.IsInf(deltaY, 0) {
		return false
	}

	next := math.Clamp01(a.progress + deltaY*a.sensitivity)
	if next == a.progress {
		return false
	}
	a.progress = next
	return true
}

// Progress returns the current value.
func (a *Accumulator) Progress() float64 {
	return a.progress
}

// Region returns the designated input region.
func (a *Accumulator) Region() Target {
	return a.region
}

// Sensitivity returns the delta scale.
func (a *Accumulator) Sensitivity() float64 {
	return a.sensitivity
}

// Reset returns progress to 0.
func (a *Accumulator) Reset() {
	a.progress = 0
}
