package settings

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are the user preferences that survive restarts.
type Settings struct {
	NeverShowGettingStarted bool   `toml:"never_show_getting_started"`
	LastFocused             string `toml:"last_focused,omitempty"`
}

// Store is a Settings value bound to the file it was loaded from.
type Store struct {
	path     string
	settings Settings
}

// Open loads settings from path. A missing file yields defaults; an
// unreadable or corrupt one is logged and also yields defaults so a bad
// settings file never stops the wall from starting.
//
// An empty path gives an in-memory store that never touches the disk.
func Open(path string) *Store {
	s := &Store{path: path}
	if path == "" {
		return s
	}
	loaded, err := Load(path)
	if err != nil {
		log.Printf("warning: settings: %v (using defaults)", err)
		return s
	}
	s.settings = loaded
	return s
}

// Load reads a settings file. A missing file is not an error.
func Load(path string) (Settings, error) {
	var st Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &st); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return st, nil
}

// Save writes settings atomically: a temp file in the same directory is
// renamed over the target.
func Save(path string, st Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename settings file: %w", err)
	}
	return nil
}

func (s *Store) Path() string { return s.path }

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings { return s.settings }

// IsGettingStarted reports whether the getting-started panel should show.
func (s *Store) IsGettingStarted() bool { return !s.settings.NeverShowGettingStarted }

// Update applies fn and persists the result. The in-memory value is only
// replaced when the write succeeds.
func (s *Store) Update(fn func(*Settings)) error {
	next := s.settings
	fn(&next)
	if next == s.settings {
		return nil
	}
	if s.path == "" {
		s.settings = next
		return nil
	}
	if err := Save(s.path, next); err != nil {
		return err
	}
	s.settings = next
	return nil
}
