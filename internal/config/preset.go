package config

import (
	"fmt"
	"math"
	"sort"
)

// Preset names.
const (
	PresetMeadow = "meadow"
	PresetDrift  = "drift"
)

// Preset is a named set of overrides applied on top of defaults.
type Preset struct {
	Name        string
	Description string
	Apply       func(*Config)
}

var presets = map[string]Preset{
	PresetMeadow: {
		Name:        PresetMeadow,
		Description: "slow push in from the field edge toward the landmark",
		Apply: func(c *Config) {
			c.Camera.Rest = PoseConfig{
				FOV:      80,
				Position: [3]float32{0, 10, -310},
				Rotation: [3]float32{math.Pi, 0, math.Pi},
			}
			c.Camera.Engaged = PoseConfig{
				FOV:      100,
				Position: [3]float32{-30, -5, -30},
				Rotation: [3]float32{math.Pi, -0.2 * math.Pi, math.Pi},
			}
		},
	},
	PresetDrift: {
		Name:        PresetDrift,
		Description: "wide rolling sweep that banks across the field",
		Apply: func(c *Config) {
			c.Camera.Rest = PoseConfig{
				FOV:      80,
				Position: [3]float32{0, 10, -310},
				Rotation: [3]float32{math.Pi, 0, -math.Pi},
			}
			c.Camera.Engaged = PoseConfig{
				FOV:      110,
				Position: [3]float32{30, -5, -20},
				Rotation: [3]float32{math.Pi / 1.25, math.Pi / 3.5, -math.Pi / 1.2},
			}
		},
	},
}

// ApplyPreset applies the named preset to cfg and records it in
// cfg.Scene.Preset.
func ApplyPreset(cfg *Config, name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	p.Apply(cfg)
	cfg.Scene.Preset = name
	return nil
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
