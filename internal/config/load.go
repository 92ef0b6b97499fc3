package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for on disk.
const FileName = "meadow.yaml"

// Load loads configuration with priority: defaults < preset < file < flags.
// flags may be nil.
func Load(flags *Flags) (*Config, error) {
	if flags == nil {
		flags = &Flags{}
	}

	path := flags.ConfigPath
	if path == "" {
		path = findConfigFile()
	}

	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	cfg, err := Parse(data, flags.Preset)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a config from YAML data over the defaults. The preset is
// taken from preset when non-empty, otherwise from scene.preset in data.
// The preset is applied before the file so explicit file values win.
func Parse(data []byte, preset string) (*Config, error) {
	cfg := Default()

	if preset == "" && len(data) > 0 {
		var probe struct {
			Scene SceneConfig `yaml:"scene"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		preset = probe.Scene.Preset
	}
	if preset != "" {
		if err := ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		cfg.Scene.Preset = preset
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Meadow")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Meadow")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meadow")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meadow")
	}
}
