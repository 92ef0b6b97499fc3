package grass

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meadow/pkg/math"
)

// Blade is the per-instance state the grass program derives from an
// instance id. This is the CPU mirror of grass.vert; keep them in sync.
type Blade struct {
	X, Z        float32 // Position on the patch
	Yaw         float32 // Facing, radians
	HeightScale float32 // Multiplier on blade height, [0.75, 1.25)
	Phase       float32 // Wind phase offset, radians
}

// Placement derives blade id's placement for a patch of the given half-extent.
func Placement(id uint32, patchSize int) Blade {
	half := float32(patchSize)
	return Blade{
		X:           (math.HashUnitN(id, 0)*2 - 1) * half,
		Z:           (math.HashUnitN(id, 1)*2 - 1) * half,
		Yaw:         math.HashUnitN(id, 2) * 2 * math32.Pi,
		HeightScale: 0.75 + math.HashUnitN(id, 3)*0.5,
		Phase:       math.HashUnitN(id, 4) * 2 * math32.Pi,
	}
}
