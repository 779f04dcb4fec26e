package config

import "time"

type Config struct {
	Source       SourceConfig `yaml:"source"`
	UI           UIConfig     `yaml:"ui"`
	SettingsPath string       `yaml:"settings_path"`
}

type SourceConfig struct {
	// Kind is "demo" or "file".
	Kind string `yaml:"kind"`
	// Path is the snapshot file for the file source (.yaml, .yml or .json).
	Path            string `yaml:"path"`
	RefreshInterval int    `yaml:"refresh_interval"` // seconds
	Timeout         int    `yaml:"timeout"`          // seconds per fetch
}

type UIConfig struct {
	TileWidth       int   `yaml:"tile_width"`
	TileMargin      *int  `yaml:"tile_margin"`
	RelabelInterval int   `yaml:"relabel_interval"` // seconds
	Mouse           *bool `yaml:"mouse"`
}

func (s SourceConfig) RefreshEvery() time.Duration {
	return time.Duration(s.RefreshInterval) * time.Second
}

func (s SourceConfig) FetchTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

func (u UIConfig) RelabelEvery() time.Duration {
	return time.Duration(u.RelabelInterval) * time.Second
}

// Margin returns the tile margin, 0 when unset.
func (u UIConfig) Margin() int {
	if u.TileMargin == nil {
		return 0
	}
	return *u.TileMargin
}

// MouseEnabled reports whether mouse support is on. Defaults to true.
func (u UIConfig) MouseEnabled() bool {
	return u.Mouse == nil || *u.Mouse
}
