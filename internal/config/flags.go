package config

import "github.com/spf13/pflag"

// Flags are the command-line overrides. They take priority over the file.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string
	Preset     string
	Debug      bool
	Fullscreen bool
	Width      int
	Height     int
	Segments   int
	PatchSize  int
	Density    int
	AssetsRoot string
	LogFile    string
	Smoothing  bool
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to config file")
	fs.StringVar(&f.Preset, "preset", "", "scene preset (meadow, drift)")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging and the FPS counter")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "run fullscreen")
	fs.IntVar(&f.Width, "width", 0, "window width")
	fs.IntVar(&f.Height, "height", 0, "window height")
	fs.IntVar(&f.Segments, "segments", 0, "blade segments")
	fs.IntVar(&f.PatchSize, "patch-size", 0, "grass patch half-extent")
	fs.IntVar(&f.Density, "density", 0, "blades per unit² of patch")
	fs.StringVar(&f.AssetsRoot, "assets", "", "assets directory")
	fs.StringVar(&f.LogFile, "log-file", "", "log file path")
	fs.BoolVar(&f.Smoothing, "smoothing", false, "ease camera motion with a spring")
	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply writes every flag the user set into cfg.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if f.changed("fullscreen") {
		cfg.Window.Fullscreen = f.Fullscreen
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Segments > 0 {
		cfg.Grass.Segments = f.Segments
	}
	if f.PatchSize > 0 {
		cfg.Grass.PatchSize = f.PatchSize
	}
	if f.Density > 0 {
		cfg.Grass.Density = f.Density
	}
	if f.AssetsRoot != "" {
		cfg.Assets.Root = f.AssetsRoot
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.changed("smoothing") {
		cfg.Camera.Smoothing = f.Smoothing
	}
}
