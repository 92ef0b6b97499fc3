package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/internal/engine/picking"
)

// Landmark is the clickable box standing in the meadow.
type Landmark struct {
	Size     mgl32.Vec3 // Full extents
	Rotation mgl32.Vec3 // Euler XYZ, radians
	Position mgl32.Vec3
}

// Model returns the local-to-world transform.
func (l Landmark) Model() mgl32.Mat4 {
	t := mgl32.Translate3D(l.Position[0], l.Position[1], l.Position[2])
	r := mgl32.HomogRotate3DX(l.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(l.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(l.Rotation[2]))
	return t.Mul4(r)
}

// Box returns the local bounds.
func (l Landmark) Box() picking.AABB {
	return picking.BoxFromSize(l.Size)
}

// Hit tests a world ray against the rotated box.
func (l Landmark) Hit(r picking.Ray) (float32, bool) {
	return r.IntersectOBB(l.Box(), l.Model())
}

// BoxVertex is a landmark mesh vertex.
type BoxVertex struct {
	Position [3]float32
	Normal   [3]float32
}

// boxFaces lists each face as its normal and the two in-plane axes,
// ordered so (u x v) = normal and the quad winds counter-clockwise.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// BuildBox returns a box mesh of the given full extents with flat
// per-face normals: 24 vertices and 36 indices.
func BuildBox(size mgl32.Vec3) ([]BoxVertex, []uint32) {
	h := size.Mul(0.5)
	verts := make([]BoxVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(verts))
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1]))
			p = mgl32.Vec3{p[0] * h[0], p[1] * h[1], p[2] * h[2]}
			verts = append(verts, BoxVertex{Position: p, Normal: n})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}
