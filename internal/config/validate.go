package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports every out-of-range setting in one error.
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.MSAA >= 0, "window.msaa %d must not be negative", c.Window.MSAA)

	check(c.Grass.Segments >= 1, "grass.segments %d must be at least 1", c.Grass.Segments)
	check(c.Grass.PatchSize >= 1, "grass.patch_size %d must be at least 1", c.Grass.PatchSize)
	check(c.Grass.Density >= 1, "grass.density %d must be at least 1", c.Grass.Density)
	check(c.Grass.BladeWidth > 0, "grass.blade_width must be positive")
	check(c.Grass.BladeHeight > 0, "grass.blade_height must be positive")
	check(c.Grass.InstanceCount >= 0, "grass.instance_count %d must not be negative", c.Grass.InstanceCount)

	check(c.Terrain.Segments >= 1, "terrain.segments %d must be at least 1", c.Terrain.Segments)
	check(c.Terrain.TileScale > 0, "terrain.tile_scale must be positive")

	check(c.Camera.Near > 0, "camera.near must be positive")
	check(c.Camera.Far > c.Camera.Near, "camera.far %v must exceed near %v", c.Camera.Far, c.Camera.Near)
	check(validFOV(c.Camera.Rest.FOV), "camera.rest.fov %v out of (0, 180)", c.Camera.Rest.FOV)
	check(validFOV(c.Camera.Engaged.FOV), "camera.engaged.fov %v out of (0, 180)", c.Camera.Engaged.FOV)
	if c.Camera.Smoothing {
		check(c.Camera.Frequency > 0, "camera.frequency must be positive when smoothing")
		check(c.Camera.Damping >= 0, "camera.damping must not be negative")
	}

	check(c.Scroll.Sensitivity > 0, "scroll.sensitivity must be positive")
	check(c.Scroll.Region != "", "scroll.region must be set")

	check(c.UI.Threshold > 0 && c.UI.Threshold < 1, "ui.threshold %v out of (0, 1)", c.UI.Threshold)
	check(strings.HasPrefix(c.UI.HomeRoute, "/"), "ui.home_route %q must start with /", c.UI.HomeRoute)
	check(c.UI.FontSize > 0, "ui.font_size must be positive")
	for i, l := range c.UI.Links {
		check(l.Label != "" && strings.HasPrefix(l.Route, "/"), "ui.links[%d] needs a label and a /route", i)
	}
	check(strings.HasPrefix(c.Landmark.Route, "/"), "landmark.route %q must start with /", c.Landmark.Route)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

func validFOV(fov float32) bool {
	return fov > 0 && fov < 180
}
