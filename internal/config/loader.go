package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir for file discovery.
func LoadFrom(dir string) (*Config, error) {
	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}
	return load(path)
}

// LoadFile loads an explicit config file, as passed with --config. The file
// must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
		// relative snapshot paths are resolved against the config file
		if cfg.Source.Path != "" && override.Source.Path != "" && !filepath.IsAbs(cfg.Source.Path) {
			cfg.Source.Path = filepath.Join(filepath.Dir(path), cfg.Source.Path)
		}
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	// 1. ./buildwall.yaml
	local := filepath.Join(dir, "buildwall.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	// 2. ~/.config/buildwall/config.yaml
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "buildwall", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// loadFromFile reads and unmarshals a YAML config file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge overlays override onto base. Scalar fields override when non-zero;
// pointer fields override when non-nil.
func merge(base *Config, override *Config) {
	// Source
	if override.Source.Kind != "" {
		base.Source.Kind = override.Source.Kind
	}
	if override.Source.Path != "" {
		base.Source.Path = override.Source.Path
	}
	if override.Source.RefreshInterval != 0 {
		base.Source.RefreshInterval = override.Source.RefreshInterval
	}
	if override.Source.Timeout != 0 {
		base.Source.Timeout = override.Source.Timeout
	}

	// UI
	if override.UI.TileWidth != 0 {
		base.UI.TileWidth = override.UI.TileWidth
	}
	if override.UI.TileMargin != nil {
		base.UI.TileMargin = override.UI.TileMargin
	}
	if override.UI.RelabelInterval != 0 {
		base.UI.RelabelInterval = override.UI.RelabelInterval
	}
	if override.UI.Mouse != nil {
		base.UI.Mouse = override.UI.Mouse
	}

	if override.SettingsPath != "" {
		base.SettingsPath = override.SettingsPath
	}
}

// applyEnvOverrides applies BUILDWALL_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUILDWALL_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("BUILDWALL_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("BUILDWALL_REFRESH_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.RefreshInterval = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: BUILDWALL_REFRESH_INTERVAL=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("BUILDWALL_TILE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.TileWidth = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: BUILDWALL_TILE_WIDTH=%q is not a valid integer, ignoring\n", v)
		}
	}
}

// DefaultSettingsPath is ~/.config/buildwall/settings.toml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "buildwall", "settings.toml"), nil
}

// ResolveSettingsPath returns SettingsPath or the default location.
func (c *Config) ResolveSettingsPath() (string, error) {
	if c.SettingsPath != "" {
		return c.SettingsPath, nil
	}
	return DefaultSettingsPath()
}
