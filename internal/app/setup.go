package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/internal/app/state"
	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/lighting"
	"github.com/Faultbox/meadow/internal/engine/scene"
	"github.com/Faultbox/meadow/internal/engine/terrain"
	"github.com/Faultbox/meadow/internal/engine/ui2d"
	"github.com/Faultbox/meadow/internal/grass"
)

// SceneConfig builds the scene description. The landmark stands on the
// ground at the origin.
func SceneConfig(cfg *config.Config, field *grass.Field, hf *terrain.Heightfield) scene.Config {
	return scene.Config{
		Field:          field,
		Heightfield:    hf,
		GroundSegments: cfg.Terrain.Segments,
		TileScale:      cfg.Terrain.TileScale,
		Sky: scene.Sky{
			Rotation: cfg.Sky.Rotation,
			Zenith:   cfg.Sky.Zenith,
			Horizon:  cfg.Sky.Horizon,
		},
		Sun: lighting.NewSun(cfg.Sky.SunAzimuth, cfg.Sky.SunElevation),
		Fog: scene.Fog{
			Near: cfg.Camera.Far * 0.3,
			Far:  cfg.Camera.Far * 0.95,
		},
		Landmark: scene.Landmark{
			Size:     mgl32.Vec3(cfg.Landmark.Size),
			Rotation: mgl32.Vec3(cfg.Landmark.Rotation),
			Position: mgl32.Vec3{0, hf.HeightAt(0, 0), 0},
		},
		LandmarkColor: cfg.Landmark.Color,
	}
}

// Links converts the configured navigation links.
func Links(cfg *config.Config) []ui2d.Link {
	links := make([]ui2d.Link, len(cfg.UI.Links))
	for i, l := range cfg.UI.Links {
		links[i] = ui2d.Link{Label: l.Label, Route: l.Route}
	}
	return links
}

// clickHit resolves a layout hit and the landmark pick into a controller
// click. Only navigation hits carry their route.
func clickHit(h ui2d.Hit, landmark bool) state.Hit {
	hit := state.Hit{
		Target:   h.Target,
		Expand:   h.Action == ui2d.ActionExpand,
		Landmark: landmark,
	}
	if h.Action == ui2d.ActionNavigate {
		hit.Route = h.Route
	}
	return hit
}
