// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts an azimuth (degrees around Y, 0 along +Z) and an
// elevation (degrees above the horizon) into a unit vector pointing toward
// the sun.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := mgl32.DegToRad(azimuth)
	el := mgl32.DegToRad(elevation)

	cosEl := math32.Cos(el)
	return mgl32.Vec3{
		cosEl * math32.Sin(az),
		math32.Sin(el),
		cosEl * math32.Cos(az),
	}.Normalize()
}

// Sun is a directional light.
type Sun struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Ambient   mgl32.Vec3
}

// NewSun creates a white sun at the given angles with a soft sky ambient.
func NewSun(azimuth, elevation float32) Sun {
	return Sun{
		Direction: SunDirection(azimuth, elevation),
		Color:     mgl32.Vec3{1, 0.96, 0.88},
		Ambient:   mgl32.Vec3{0.35, 0.38, 0.42},
	}
}

// Lambert returns the diffuse term for a surface normal.
func (s Sun) Lambert(normal mgl32.Vec3) float32 {
	return math32.Max(0, normal.Normalize().Dot(s.Direction))
}
