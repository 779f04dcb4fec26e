package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	st, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if st != (Settings{}) {
		t.Errorf("expected zero settings, got %+v", st)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	want := Settings{NeverShowGettingStarted: true, LastFocused: "api-main-42"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "never_show_getting_started = true") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadCorrupt(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("never_show_getting_started = maybe"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
	if s := Open(path); !s.IsGettingStarted() {
		t.Error("corrupt settings should fall back to defaults")
	}
}

func TestStoreUpdate(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.toml")
	s := Open(path)

	if !s.IsGettingStarted() {
		t.Fatal("getting started should show by default")
	}
	if err := s.Update(func(st *Settings) { st.NeverShowGettingStarted = true }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if s.IsGettingStarted() {
		t.Error("getting started should be hidden after update")
	}
	if reopened := Open(path); reopened.IsGettingStarted() {
		t.Error("update was not persisted")
	}
}

func TestStoreUpdateNoChangeSkipsWrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.toml")
	s := Open(path)
	if err := s.Update(func(*Settings) {}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no-op update should not create the file")
	}
}

func TestStoreUpdateFailureKeepsState(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	os.WriteFile(blocker, nil, 0o644)
	s := Open(filepath.Join(blocker, "settings.toml")) // parent is a file

	err := s.Update(func(st *Settings) { st.LastFocused = "x" })
	if err == nil {
		t.Fatal("expected write error")
	}
	if s.Settings().LastFocused != "" {
		t.Error("failed update should not change in-memory settings")
	}
}

func TestStoreWithoutPathStaysInMemory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	s := Open("")
	if !s.IsGettingStarted() {
		t.Error("expected defaults")
	}
	if err := s.Update(func(st *Settings) { st.LastFocused = "web-main" }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if s.Settings().LastFocused != "web-main" {
		t.Errorf("LastFocused = %q, want web-main", s.Settings().LastFocused)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("in-memory store wrote %d files to the working directory", len(entries))
	}
}
