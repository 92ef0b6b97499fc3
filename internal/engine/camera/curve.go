package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/pkg/math"
)

// Pose is everything the scroll curve controls on the camera.
type Pose struct {
	FOV      float32    // Vertical field of view, degrees
	Position mgl32.Vec3 // World position
	Rotation mgl32.Vec3 // Euler XYZ, radians; the camera looks down local -Z
}

// Curve maps scroll progress to a camera pose by interpolating each axis
// independently between a rest pose (t=0) and an engaged pose (t=1).
type Curve struct {
	Rest    Pose
	Engaged Pose
}

// Evaluate returns the pose at t. It keeps no state, so the same t always
// yields the same pose. t is clamped to [0, 1]; callers wanting easing
// warp t before calling.
func (c Curve) Evaluate(t float64) Pose {
	f := float32(math.Clamp01(t))
	return Pose{
		FOV: math.Lerp(c.Rest.FOV, c.Engaged.FOV, f),
		Position: mgl32.Vec3{
			math.Lerp(c.Rest.Position[0], c.Engaged.Position[0], f),
			math.Lerp(c.Rest.Position[1], c.Engaged.Position[1], f),
			math.Lerp(c.Rest.Position[2], c.Engaged.Position[2], f),
		},
		Rotation: mgl32.Vec3{
			math.Lerp(c.Rest.Rotation[0], c.Engaged.Rotation[0], f),
			math.Lerp(c.Rest.Rotation[1], c.Engaged.Rotation[1], f),
			math.Lerp(c.Rest.Rotation[2], c.Engaged.Rotation[2], f),
		},
	}
}
