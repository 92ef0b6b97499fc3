// Package config handles scene configuration loading and management.
package config

import "math"

// Config holds all settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Scene    SceneConfig    `yaml:"scene"`
	Grass    GrassConfig    `yaml:"grass"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Sky      SkyConfig      `yaml:"sky"`
	Landmark LandmarkConfig `yaml:"landmark"`
	Camera   CameraConfig   `yaml:"camera"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	UI       UIConfig       `yaml:"ui"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	MSAA       int    `yaml:"msaa"` // Sample count, 0 disables
}

// SceneConfig selects the preset applied under the config file.
type SceneConfig struct {
	Preset string `yaml:"preset"`
}

// GrassConfig describes the instanced grass field.
type GrassConfig struct {
	Segments      int     `yaml:"segments"`
	PatchSize     int     `yaml:"patch_size"`
	Density       int     `yaml:"density"` // Blades per unit² of patch
	BladeWidth    float32 `yaml:"blade_width"`
	BladeHeight   float32 `yaml:"blade_height"`
	InstanceCount int     `yaml:"instance_count,omitempty"` // Overrides patch²·density when > 0
}

// TerrainConfig describes the ground heightfield.
type TerrainConfig struct {
	Segments  int     `yaml:"segments"`
	TileScale float32 `yaml:"tile_scale"`
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
	Seed      int64   `yaml:"seed"`
	Texture   string  `yaml:"texture"` // Relative to assets.root
}

// SkyConfig describes the background gradient and sun.
type SkyConfig struct {
	Rotation     float32    `yaml:"rotation"` // Radians about Y
	Zenith       [3]float32 `yaml:"zenith"`
	Horizon      [3]float32 `yaml:"horizon"`
	SunAzimuth   float32    `yaml:"sun_azimuth"`   // Degrees
	SunElevation float32    `yaml:"sun_elevation"` // Degrees
}

// LandmarkConfig describes the clickable landmark.
type LandmarkConfig struct {
	Size     [3]float32 `yaml:"size"`
	Rotation [3]float32 `yaml:"rotation"` // Euler XYZ radians
	Color    [3]float32 `yaml:"color"`
	Route    string     `yaml:"route"` // Navigated to on click
}

// PoseConfig is a camera pose endpoint.
type PoseConfig struct {
	FOV      float32    `yaml:"fov"` // Degrees
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"` // Euler XYZ radians
}

// CameraConfig holds the projection and the scroll-driven curve.
type CameraConfig struct {
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	Rest      PoseConfig `yaml:"rest"`
	Engaged   PoseConfig `yaml:"engaged"`
	Smoothing bool       `yaml:"smoothing"`
	Frequency float64    `yaml:"frequency"` // Spring angular frequency
	Damping   float64    `yaml:"damping"`   // Spring damping ratio
}

// ScrollConfig holds wheel input settings.
type ScrollConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	Region      string  `yaml:"region"` // Input region that drives progress
}

// LinkConfig is a navigation link shown in the chrome.
type LinkConfig struct {
	Label string `yaml:"label"`
	Route string `yaml:"route"`
}

// UIConfig holds overlay settings.
type UIConfig struct {
	Threshold float64      `yaml:"threshold"`
	HomeRoute string       `yaml:"home_route"`
	Title     string       `yaml:"title"`
	Links     []LinkConfig `yaml:"links"`
	FontSize  float64      `yaml:"font_size"` // Points
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	Root string `yaml:"root"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// Default returns a Config with the meadow preset applied.
func Default() *Config {
	cfg := &Config{
		Window: WindowConfig{
			Title:  "Meadow",
			Width:  1280,
			Height: 720,
			VSync:  true,
			MSAA:   4,
		},
		Scene: SceneConfig{
			Preset: PresetMeadow,
		},
		Grass: GrassConfig{
			Segments:    5,
			PatchSize:   300,
			Density:     3,
			BladeWidth:  0.75,
			BladeHeight: 4.5,
		},
		Terrain: TerrainConfig{
			Segments:  512,
			TileScale: 30,
			Amplitude: 3,
			Frequency: 0.01,
			Seed:      7,
			Texture:   "textures/terrain.png",
		},
		Sky: SkyConfig{
			Rotation:     math.Pi * 1.125,
			Zenith:       [3]float32{0.29, 0.50, 0.82},
			Horizon:      [3]float32{0.86, 0.88, 0.84},
			SunAzimuth:   225,
			SunElevation: 35,
		},
		Landmark: LandmarkConfig{
			Size:     [3]float32{10, 75, 10},
			Rotation: [3]float32{0.2, 0.3, -0.2},
			Color:    [3]float32{1, 1, 1},
			Route:    "/about",
		},
		Camera: CameraConfig{
			Near:      0.1,
			Far:       750,
			Frequency: 6,
			Damping:   1,
		},
		Scroll: ScrollConfig{
			Sensitivity: 0.001,
			Region:      "webgl",
		},
		UI: UIConfig{
			Threshold: 0.5,
			HomeRoute: "/",
			Title:     "meadow",
			Links: []LinkConfig{
				{Label: "About", Route: "/about"},
				{Label: "Projects", Route: "/projects"},
				{Label: "Contact", Route: "/contact"},
			},
			FontSize: 16,
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
	_ = ApplyPreset(cfg, PresetMeadow)
	return cfg
}
