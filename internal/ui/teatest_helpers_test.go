package ui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/config"
	"github.com/justinpbarnett/buildwall/internal/settings"
)

const waitDuration = 3 * time.Second

var testBase = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

// stubSource returns a fixed batch, or err when set.
type stubSource struct {
	records []build.Record
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) ([]build.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

var errUnreachable = errors.New("ci server unreachable")

func testRecords() []build.Record {
	return []build.Record{
		{ID: "a", Name: "api-main", Status: build.StatusPassed, LocalStartTime: testBase, URL: "https://ci.example.com/a"},
		{ID: "b", Name: "web-main", Status: build.StatusFailed, LocalStartTime: testBase.Add(5 * time.Minute), URL: "https://ci.example.com/b"},
		{ID: "c", Name: "docs-site", Status: build.StatusBuilding, LocalStartTime: testBase.Add(10 * time.Minute)},
	}
}

// newTestApp builds an App with the getting-started banner already
// dismissed and settings isolated in a temp dir.
func newTestApp(t *testing.T) App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := settings.Save(path, settings.Settings{NeverShowGettingStarted: true}); err != nil {
		t.Fatal(err)
	}
	return newTestAppWith(t, settings.Open(path))
}

func newTestAppWith(t *testing.T, prefs *settings.Store) App {
	t.Helper()
	cfg := config.DefaultConfig()
	a := NewApp(&cfg, &stubSource{records: testRecords()}, prefs)
	a.copy = func(string) error { return nil }
	return a
}

// appAdapter wraps the App (value receiver model) and skips Init so no
// timers or fetches run behind the test's back.
type appAdapter struct {
	app App
}

func (a *appAdapter) Init() tea.Cmd { return nil }

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
