package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty dir so the user's own config is never read.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	return tmp
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source.Kind != SourceDemo {
		t.Errorf("expected source kind %q, got %q", SourceDemo, cfg.Source.Kind)
	}
	if cfg.Source.RefreshInterval != 10 {
		t.Errorf("expected refresh interval 10, got %d", cfg.Source.RefreshInterval)
	}
	if cfg.UI.TileWidth != 26 || cfg.UI.Margin() != 1 {
		t.Errorf("expected tile 26/1, got %d/%d", cfg.UI.TileWidth, cfg.UI.Margin())
	}
	if cfg.UI.RelabelEvery().Seconds() != 20 {
		t.Errorf("expected relabel every 20s, got %v", cfg.UI.RelabelEvery())
	}
	if !cfg.UI.MouseEnabled() {
		t.Error("expected mouse enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "buildwall.yaml"), `
source:
  kind: file
  path: snapshots/builds.yaml
  refresh_interval: 30
ui:
  tile_margin: 0
  mouse: false
`)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source.Kind != SourceFile {
		t.Errorf("expected kind file, got %q", cfg.Source.Kind)
	}
	if want := filepath.Join(tmp, "snapshots", "builds.yaml"); cfg.Source.Path != want {
		t.Errorf("expected path %q, got %q", want, cfg.Source.Path)
	}
	if cfg.Source.RefreshInterval != 30 {
		t.Errorf("expected refresh 30, got %d", cfg.Source.RefreshInterval)
	}
	if cfg.Source.Timeout != 5 {
		t.Errorf("expected default timeout preserved, got %d", cfg.Source.Timeout)
	}
	if cfg.UI.Margin() != 0 {
		t.Errorf("expected explicit zero margin, got %d", cfg.UI.Margin())
	}
	if cfg.UI.MouseEnabled() {
		t.Error("expected mouse disabled")
	}
}

func TestLoadUserConfig(t *testing.T) {
	tmp := t.TempDir()
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "buildwall", "config.yaml"), "ui:\n  tile_width: 30\n")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.TileWidth != 30 {
		t.Errorf("expected tile width from user config, got %d", cfg.UI.TileWidth)
	}
}

func TestLoadLocalBeatsUser(t *testing.T) {
	tmp := t.TempDir()
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "buildwall", "config.yaml"), "ui:\n  tile_width: 30\n")
	writeFile(t, filepath.Join(tmp, "buildwall.yaml"), "ui:\n  tile_width: 40\n")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.TileWidth != 40 {
		t.Errorf("expected local config to win, got %d", cfg.UI.TileWidth)
	}
}

func TestLoadFile(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "custom.yaml")
	writeFile(t, path, "source:\n  kind: file\n  path: /var/ci/builds.json\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Source.Path != "/var/ci/builds.json" {
		t.Errorf("absolute path should be kept, got %q", cfg.Source.Path)
	}

	if _, err := LoadFile(filepath.Join(tmp, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "buildwall.yaml"), "source: [unclosed")

	if _, err := LoadFrom(tmp); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadValidationFailure(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "buildwall.yaml"), "source:\n  kind: jenkins\n")

	_, err := LoadFrom(tmp)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("BUILDWALL_SOURCE", "file")
	t.Setenv("BUILDWALL_SOURCE_PATH", "/tmp/builds.yml")
	t.Setenv("BUILDWALL_REFRESH_INTERVAL", "3")
	t.Setenv("BUILDWALL_TILE_WIDTH", "20")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Source.Kind != SourceFile || cfg.Source.Path != "/tmp/builds.yml" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Source.RefreshInterval != 3 {
		t.Errorf("expected refresh 3, got %d", cfg.Source.RefreshInterval)
	}
	if cfg.UI.TileWidth != 20 {
		t.Errorf("expected tile width 20, got %d", cfg.UI.TileWidth)
	}
}

func TestEnvOverrideInvalidIgnored(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("BUILDWALL_REFRESH_INTERVAL", "soon")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Source.RefreshInterval != 10 {
		t.Errorf("invalid env should be ignored, got %d", cfg.Source.RefreshInterval)
	}
}

func TestMergePreservesDefaults(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	merge(&base, &Config{Source: SourceConfig{Timeout: 9}})

	if base.Source.Timeout != 9 {
		t.Errorf("expected timeout 9, got %d", base.Source.Timeout)
	}
	if base.Source.Kind != SourceDemo || base.UI.TileWidth != 26 || base.UI.Margin() != 1 {
		t.Errorf("defaults lost: %+v", base)
	}
}

func TestResolveSettingsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	got, err := cfg.ResolveSettingsPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".config", "buildwall", "settings.toml"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cfg.SettingsPath = "/etc/buildwall/settings.toml"
	if got, _ := cfg.ResolveSettingsPath(); got != cfg.SettingsPath {
		t.Errorf("explicit path ignored: %q", got)
	}
}
