// Package camera provides the scroll-driven perspective camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective is a perspective camera whose pose is set every frame.
type Perspective struct {
	Pose

	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a camera at pose with the given clip planes.
func NewPerspective(pose Pose, width, height int, near, far float32) *Perspective {
	c := &Perspective{
		Pose:   pose,
		Aspect: 1,
		Near:   near,
		Far:    far,
	}
	c.SetAspect(width, height)
	return c
}

// Apply replaces the pose.
func (c *Perspective) Apply(p Pose) {
	c.Pose = p
}

// SetAspect updates the aspect ratio from a viewport size.
// Zero or negative sizes (minimized windows) are ignored.
func (c *Perspective) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Orientation returns the rotation matrix for the Euler XYZ rotation.
func (c *Perspective) Orientation() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(c.Rotation[0])
	ry := mgl32.HomogRotate3DY(c.Rotation[1])
	rz := mgl32.HomogRotate3DZ(c.Rotation[2])
	return rx.Mul4(ry).Mul4(rz)
}

// WorldMatrix returns the camera-to-world transform.
func (c *Perspective) WorldMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(c.Position[0], c.Position[1], c.Position[2])
	return t.Mul4(c.Orientation())
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() mgl32.Mat4 {
	// Orientation is orthonormal, so its inverse is its transpose.
	rt := c.Orientation().Transpose()
	t := mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
	return rt.Mul4(t)
}

// ProjectionMatrix returns the perspective projection.
func (c *Perspective) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Forward returns the world-space viewing direction.
func (c *Perspective) Forward() mgl32.Vec3 {
	return c.Orientation().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize()
}
