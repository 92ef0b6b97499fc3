// Package grass builds the instanced blade geometry for the meadow and
// describes the uniform contract the grass program consumes.
package grass

import (
	"errors"
	"fmt"
)

// IndicesPerSegment is the number of indices one blade segment emits:
// two front triangles and two back triangles.
const IndicesPerSegment = 12

// ErrInvalidSegments is returned when a blade has fewer than one segment.
var ErrInvalidSegments = errors.New("grass: segments must be >= 1")

// VertexCount returns the number of vertex slots one blade references.
// Front and back faces each own (segments+1)*2 slots.
func VertexCount(segments int) int {
	return (segments + 1) * 2 * 2
}

// BuildBladeIndices returns the triangle index buffer for a single blade.
//
// Each segment is a quad between two vertex rows. Front faces use slots
// [0, (segments+1)*2) and back faces use the same layout offset by
// (segments+1)*2 with mirrored winding, so both sides are front-facing
// for their own side of the blade and back-face culling can stay on.
func BuildBladeIndices(segments int) ([]uint32, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegments, segments)
	}

	rowVerts := uint32(segments+1) * 2
	indices := make([]uint32, segments*IndicesPerSegment)

	for i := 0; i < segments; i++ {
		vi := uint32(i) * 2
		o := i * IndicesPerSegment

		// Front face
		indices[o+0] = vi + 0
		indices[o+1] = vi + 1
		indices[o+2] = vi + 2

		indices[o+3] = vi + 2
		indices[o+4] = vi + 1
		indices[o+5] = vi + 3

		// Back face, mirrored winding
		fi := rowVerts + vi
		indices[o+6] = fi + 2
		indices[o+7] = fi + 1
		indices[o+8] = fi + 0

		indices[o+9] = fi + 3
		indices[o+10] = fi + 1
		indices[o+11] = fi + 2
	}

	return indices, nil
}
