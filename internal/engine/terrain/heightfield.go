// Package terrain builds the ground heightfield and its mesh.
package terrain

import (
	"errors"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

// ErrInvalidHeightfield is returned for non-positive size or resolution.
var ErrInvalidHeightfield = errors.New("terrain: invalid heightfield parameters")

// Noise defaults for go-perlin.
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// HeightfieldParams configure a Heightfield.
type HeightfieldParams struct {
	Size       float32 // World extent along X and Z, centred on the origin
	Resolution int     // Samples per side, at least 2
	Amplitude  float32 // Peak height; 0 gives a flat field
	Frequency  float32 // Noise cycles per world unit
	Seed       int64
}

// Heightfield is a square grid of height samples centred on the origin.
type Heightfield struct {
	size       float32
	resolution int
	samples    []float32 // row-major, z rows of x samples
}

// NewHeightfield samples perlin noise over the field.
func NewHeightfield(p HeightfieldParams) (*Heightfield, error) {
	if p.Size <= 0 || p.Resolution < 2 {
		return nil, ErrInvalidHeightfield
	}

	hf := &Heightfield{
		size:       p.Size,
		resolution: p.Resolution,
		samples:    make([]float32, p.Resolution*p.Resolution),
	}
	if p.Amplitude == 0 {
		return hf, nil
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, p.Seed)
	for z := 0; z < p.Resolution; z++ {
		for x := 0; x < p.Resolution; x++ {
			wx, wz := hf.sampleToWorld(x, z)
			n := noise.Noise2D(float64(wx*p.Frequency), float64(wz*p.Frequency))
			hf.samples[z*p.Resolution+x] = float32(n) * p.Amplitude
		}
	}
	return hf, nil
}

// Size returns the world extent of the field.
func (h *Heightfield) Size() float32 { return h.size }

// Resolution returns the samples per side.
func (h *Heightfield) Resolution() int { return h.resolution }

// Samples returns the raw samples, row-major by z. Callers must not modify them.
func (h *Heightfield) Samples() []float32 { return h.samples }

func (h *Heightfield) sampleToWorld(x, z int) (float32, float32) {
	step := h.size / float32(h.resolution-1)
	half := h.size / 2
	return float32(x)*step - half, float32(z)*step - half
}

func (h *Heightfield) at(x, z int) float32 {
	return h.samples[z*h.resolution+x]
}

// HeightAt returns the bilinearly interpolated height at world (x, z).
// Positions outside the field clamp to its edge.
func (h *Heightfield) HeightAt(x, z float32) float32 {
	last := float32(h.resolution - 1)
	fx := clamp((x/h.size+0.5)*last, 0, last)
	fz := clamp((z/h.size+0.5)*last, 0, last)

	x0, z0 := int(fx), int(fz)
	x1, z1 := min(x0+1, h.resolution-1), min(z0+1, h.resolution-1)
	tx, tz := fx-float32(x0), fz-float32(z0)

	south := h.at(x0, z0)*(1-tx) + h.at(x1, z0)*tx
	north := h.at(x0, z1)*(1-tx) + h.at(x1, z1)*tx
	return south*(1-tz) + north*tz
}

// NormalAt returns the surface normal at world (x, z) by central differences.
func (h *Heightfield) NormalAt(x, z float32) [3]float32 {
	e := h.size / float32(h.resolution-1)
	dx := h.HeightAt(x+e, z) - h.HeightAt(x-e, z)
	dz := h.HeightAt(x, z+e) - h.HeightAt(x, z-e)

	nx, ny, nz := -dx, 2*e, -dz
	l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	return [3]float32{nx / l, ny / l, nz / l}
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
