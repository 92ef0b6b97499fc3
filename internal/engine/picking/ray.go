// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized for rays from ScreenToRay
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BoxFromSize returns an AABB of the given full extents centred on the origin.
func BoxFromSize(size mgl32.Vec3) AABB {
	h := size.Mul(0.5)
	return AABB{Min: h.Mul(-1), Max: h}
}

// ScreenToRay converts pixel coordinates (origin top-left) to a world-space
// ray through the near and far planes.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, x, y, z float32) mgl32.Vec3 {
	p := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return p.Vec3()
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math32.Abs(r.Direction.Y()) < 1e-3 {
		return 0, 0, false
	}
	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false
	}
	p := r.At(t)
	return p.X(), p.Z(), true
}

// IntersectAABB tests the ray against box with the slab method. It returns
// the entry distance, or the exit distance when the origin is inside.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for axis := range 3 {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectOBB tests the ray against box placed in the world by model. The
// ray is moved into the box's local space; the returned distance is in
// world units along the original ray.
func (r Ray) IntersectOBB(box AABB, model mgl32.Mat4) (t float32, hit bool) {
	inv := model.Inv()
	local := Ray{
		Origin:    inv.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Direction: inv.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
	return local.IntersectAABB(box)
}
