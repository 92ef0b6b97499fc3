package grass

import (
	"errors"
	"fmt"
)

// ErrUniformMismatch is returned when the uniform vector disagrees with the
// parameters the topology was built from. The GPU does not detect this; it
// just draws garbage.
var ErrUniformMismatch = errors.New("grass: uniforms do not match field geometry")

// Uniforms is the contract between the field and the grass program.
type Uniforms struct {
	// GrassParams is {segments, patchSize, bladeWidth, bladeHeight}.
	GrassParams [4]float32
	// Time is elapsed seconds, updated once per frame.
	Time float32
	// Resolution is the viewport size in pixels, updated on resize.
	Resolution [2]float32
}

// Uniforms returns a uniform set seeded from the field parameters.
func (f *Field) Uniforms() Uniforms {
	return Uniforms{
		GrassParams: [4]float32{
			float32(f.params.Segments),
			float32(f.params.PatchSize),
			f.params.BladeWidth,
			f.params.BladeHeight,
		},
		Resolution: [2]float32{1, 1},
	}
}

// CheckUniforms verifies that u describes the same blade geometry as f.
func (f *Field) CheckUniforms(u Uniforms) error {
	if u.GrassParams[0] != float32(f.params.Segments) {
		return fmt.Errorf("%w: segments uniform %v, topology %d", ErrUniformMismatch, u.GrassParams[0], f.params.Segments)
	}
	if u.GrassParams[1] != float32(f.params.PatchSize) {
		return fmt.Errorf("%w: patch uniform %v, field %d", ErrUniformMismatch, u.GrassParams[1], f.params.PatchSize)
	}
	return nil
}

// SetResolution updates the viewport uniform. Re-applying the same size is a no-op.
func (u *Uniforms) SetResolution(width, height int) {
	u.Resolution = [2]float32{float32(width), float32(height)}
}
