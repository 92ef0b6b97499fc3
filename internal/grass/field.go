package grass

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParams is returned when field parameters cannot describe a field.
var ErrInvalidParams = errors.New("grass: invalid field parameters")

// Params describes a grass field.
type Params struct {
	Segments    int     // Segments per blade
	PatchSize   int     // Half-extent of the square patch in world units
	Density     int     // Blades per square unit of patch
	BladeWidth  float32 // Blade base width
	BladeHeight float32 // Blade height before per-instance scaling

	// InstanceCount overrides PatchSize² * Density when > 0.
	InstanceCount int
}

// Bounds is a conservative culling sphere for the whole field.
type Bounds struct {
	Center mgl32.Vec3
	Radius float32
}

// Contains reports whether the planar point (x, z) lies inside the sphere.
func (b Bounds) Contains(x, z float32) bool {
	dx := x - b.Center.X()
	dz := z - b.Center.Z()
	return math32.Sqrt(dx*dx+dz*dz) <= b.Radius
}

// Field is the drawable unit for the meadow: one blade topology drawn
// InstanceCount times. It holds no per-instance data; the grass program
// derives placement from the instance id.
type Field struct {
	params        Params
	indices       []uint32
	instanceCount int
	bounds        Bounds
}

// NewField validates p and builds the field descriptor.
func NewField(p Params) (*Field, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	indices, err := defaultCache.Get(p.Segments)
	if err != nil {
		return nil, err
	}

	count := p.PatchSize * p.PatchSize * p.Density
	if p.InstanceCount > 0 {
		count = p.InstanceCount
	}

	return &Field{
		params:        p,
		indices:       indices,
		instanceCount: count,
		bounds: Bounds{
			Center: mgl32.Vec3{0, 0, 0},
			Radius: 1 + float32(p.PatchSize)*2,
		},
	}, nil
}

func (p Params) validate() error {
	if p.Segments < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSegments, p.Segments)
	}
	if p.PatchSize < 1 {
		return fmt.Errorf("%w: patch size %d", ErrInvalidParams, p.PatchSize)
	}
	if p.Density < 1 && p.InstanceCount <= 0 {
		return fmt.Errorf("%w: density %d", ErrInvalidParams, p.Density)
	}
	if p.InstanceCount < 0 {
		return fmt.Errorf("%w: instance count %d", ErrInvalidParams, p.InstanceCount)
	}
	if p.BladeWidth <= 0 || p.BladeHeight <= 0 {
		return fmt.Errorf("%w: blade size %vx%v", ErrInvalidParams, p.BladeWidth, p.BladeHeight)
	}
	return nil
}

// Params returns the parameters the field was built with.
func (f *Field) Params() Params { return f.params }

// Indices returns a copy of the blade index buffer.
func (f *Field) Indices() []uint32 {
	return clone(f.indices)
}

// IndexCount returns the number of indices per blade.
func (f *Field) IndexCount() int { return len(f.indices) }

// VertexCount returns the vertex slots one blade references.
func (f *Field) VertexCount() int { return VertexCount(f.params.Segments) }

// InstanceCount returns how many blades are drawn.
func (f *Field) InstanceCount() int { return f.instanceCount }

// Bounds returns the culling sphere.
func (f *Field) Bounds() Bounds { return f.bounds }
