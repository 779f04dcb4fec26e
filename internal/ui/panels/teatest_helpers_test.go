package panels

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/buildwall/internal/board"
	"github.com/justinpbarnett/buildwall/internal/build"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// wrapStatusBar creates a tea.Model adapter around a StatusBar for teatest use.
// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// wrapHelpOverlay creates a tea.Model adapter around a HelpOverlay for teatest use.
func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

// wrapGettingStarted records every close message the panel emits.
func wrapGettingStarted(g *GettingStarted, closed *[]GettingStartedClosedMsg) tea.Model {
	return panelAdapter{
		view: func() string { return g.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			if m, ok := msg.(GettingStartedClosedMsg); ok {
				*closed = append(*closed, m)
				return nil
			}
			newG, cmd := g.Update(msg)
			*g = newG
			return cmd
		},
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

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

var testBase = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

// testBoard returns an engine holding three builds started 9:00, 9:05, 9:10.
func testBoard(width int) *board.Engine {
	e := board.New(board.Options{
		TileWidth:  26,
		TileMargin: 1,
		Clock:      func() time.Time { return testBase.Add(15 * time.Minute) },
	})
	e.Resize(width)
	e.Refresh([]build.Record{
		{ID: "a", Name: "api-main", Status: build.StatusPassed, LocalStartTime: testBase, RequestedBy: "ana", Duration: "4m"},
		{ID: "b", Name: "web-main", Status: build.StatusFailed, LocalStartTime: testBase.Add(5 * time.Minute), Comment: "lint failed"},
		{ID: "c", Name: "docs-site", Status: build.StatusBuilding, LocalStartTime: testBase.Add(10 * time.Minute), URL: "https://ci.example.com/c"},
	})
	return e
}
