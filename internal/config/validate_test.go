package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := validate(&cfg); err != nil {
		t.Fatalf("DefaultConfig() should pass validation, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown kind", func(c *Config) { c.Source.Kind = "jenkins" }, "source.kind"},
		{"file without path", func(c *Config) { c.Source.Kind = SourceFile }, "source.path is required"},
		{"file bad extension", func(c *Config) {
			c.Source.Kind = SourceFile
			c.Source.Path = "builds.xml"
		}, "must end in"},
		{"zero refresh", func(c *Config) { c.Source.RefreshInterval = 0 }, "refresh_interval"},
		{"negative timeout", func(c *Config) { c.Source.Timeout = -1 }, "source.timeout"},
		{"zero tile width", func(c *Config) { c.UI.TileWidth = 0 }, "tile_width"},
		{"negative margin", func(c *Config) { c.UI.TileMargin = intPtr(-1) }, "tile_margin"},
		{"zero relabel", func(c *Config) { c.UI.RelabelInterval = 0 }, "relabel_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := validate(&cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error about %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Kind = "nope"
	cfg.UI.TileWidth = -1
	cfg.UI.RelabelInterval = 0

	var ve *ValidationError
	if !errors.As(validate(&cfg), &ve) {
		t.Fatal("expected *ValidationError")
	}
	if len(ve.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func TestValidateFileSourceOK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Kind = SourceFile
	cfg.Source.Path = "builds.JSON"
	if err := validate(&cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
