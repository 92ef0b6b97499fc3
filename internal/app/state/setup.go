package state

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/engine/terrain"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/overlay"
	"github.com/Faultbox/meadow/internal/scroll"
)

// heightfieldResolution is the number of height samples per side.
const heightfieldResolution = 257

func pose(p config.PoseConfig) camera.Pose {
	return camera.Pose{
		FOV:      p.FOV,
		Position: mgl32.Vec3(p.Position),
		Rotation: mgl32.Vec3(p.Rotation),
	}
}

// FieldParams maps the grass section onto field parameters.
func FieldParams(cfg *config.Config) grass.Params {
	g := cfg.Grass
	return grass.Params{
		Segments:      g.Segments,
		PatchSize:     g.PatchSize,
		Density:       g.Density,
		BladeWidth:    g.BladeWidth,
		BladeHeight:   g.BladeHeight,
		InstanceCount: g.InstanceCount,
	}
}

// HeightfieldParams sizes the ground to cover the grass patch.
func HeightfieldParams(cfg *config.Config) terrain.HeightfieldParams {
	t := cfg.Terrain
	return terrain.HeightfieldParams{
		Size:       float32(cfg.Grass.PatchSize) * 2,
		Resolution: heightfieldResolution,
		Amplitude:  t.Amplitude,
		Frequency:  t.Frequency,
		Seed:       t.Seed,
	}
}

// ControllerOptions builds controller options from cfg.
func ControllerOptions(cfg *config.Config, field *grass.Field, width, height int) Options {
	return Options{
		Curve: camera.Curve{
			Rest:    pose(cfg.Camera.Rest),
			Engaged: pose(cfg.Camera.Engaged),
		},
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		Width:       width,
		Height:      height,
		Sensitivity: cfg.Scroll.Sensitivity,
		Region:      scroll.Target(cfg.Scroll.Region),
		Rules: overlay.Rules{
			Threshold: cfg.UI.Threshold,
			HomeRoute: cfg.UI.HomeRoute,
		},
		Smoothing:     cfg.Camera.Smoothing,
		Frequency:     cfg.Camera.Frequency,
		Damping:       cfg.Camera.Damping,
		FPS:           60,
		Field:         field,
		LandmarkRoute: cfg.Landmark.Route,
	}
}
