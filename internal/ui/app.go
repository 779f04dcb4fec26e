package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/board"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/config"
	"github.com/justinpbarnett/buildwall/internal/settings"
	"github.com/justinpbarnett/buildwall/internal/ui/clipboard"
	"github.com/justinpbarnett/buildwall/internal/ui/layout"
	"github.com/justinpbarnett/buildwall/internal/ui/panels"
	"github.com/justinpbarnett/buildwall/internal/ui/selection"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
)

const spinnerInterval = 120 * time.Millisecond

// App is the terminal host for the board engine. Every input (fetch results,
// resizes, clicks, keys, timer ticks) arrives as a tea.Msg, so the engine only
// ever runs on the bubbletea event loop.
type App struct {
	config *config.Config
	source build.Source
	prefs  *settings.Store
	board  *board.Engine
	now    func() time.Time
	copy   func(string) error

	width  int
	height int
	layout layout.Layout
	ready  bool

	header         *panels.Header
	gettingStarted *panels.GettingStarted
	showBanner     bool
	grid           panels.Grid
	viewport       viewport.Model
	statusBar      panels.StatusBar
	helpOverlay    *panels.HelpOverlay

	plan       board.Plan
	placements []panels.Placement
	cursorID   string

	keys     KeyMap
	pollGen  int
	fetching bool
	restore  string
}

func NewApp(cfg *config.Config, src build.Source, prefs *settings.Store) App {
	eng := board.New(board.Options{
		TileWidth:  cfg.UI.TileWidth,
		TileMargin: cfg.UI.Margin(),
		Logf:       func(format string, args ...any) { log.Printf("board: "+format, args...) },
	})

	header := panels.NewHeader()
	eng.OnSelectionChanged(func(st selection.State) {
		name := ""
		if r, ok := eng.Lookup(st.BuildID); ok {
			name = r.DisplayName()
		}
		header.SetSelection(st, name)
		err := prefs.Update(func(s *settings.Settings) { s.LastFocused = st.BuildID })
		if err != nil {
			log.Printf("warning: saving settings: %v", err)
		}
	})

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = cfg.UI.MouseEnabled()

	a := App{
		config:    cfg,
		source:    src,
		prefs:     prefs,
		board:     eng,
		now:       time.Now,
		copy:      clipboard.Write,
		header:    header,
		grid:      panels.NewGrid(),
		viewport:  vp,
		statusBar: panels.NewStatusBar(src.Name(), time.Now),
		keys:      DefaultKeyMap(),
		restore:   prefs.Settings().LastFocused,
	}
	if prefs.IsGettingStarted() {
		a.gettingStarted = panels.NewGettingStarted(src.Name())
	}
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetch(), a.scheduleRelabel())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.relayout()
		return a, nil

	case RefreshMsg:
		a.fetching = false
		a.statusBar.SetFetching(false)
		a.board.Refresh(msg.Records)
		a.statusBar.SetBuilds(a.board.Records(), msg.At)
		if a.restore != "" {
			if a.board.Has(a.restore) {
				a.board.Select(a.restore)
			}
			a.restore = ""
		}
		a.syncGrid()
		return a, a.schedulePoll()

	case FetchErrMsg:
		a.fetching = false
		a.statusBar.SetFetching(false)
		log.Printf("warning: fetching builds from %s: %v", a.source.Name(), msg.Err)
		a.statusBar.SetFlashWithLevel("Refresh failed: "+msg.Err.Error(), panels.FlashError)
		return a, tea.Batch(a.schedulePoll(), clearFlashAfter())

	case PollMsg:
		if msg.Gen != a.pollGen {
			return a, nil
		}
		return a, a.startFetch()

	case RelabelTickMsg:
		a.board.Relabel()
		a.syncGrid()
		return a, a.scheduleRelabel()

	case SpinnerTickMsg:
		if !a.fetching {
			return a, nil
		}
		a.statusBar.Tick()
		return a, spinnerTick()

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case GettingStartedClosedMsg:
		a.gettingStarted = nil
		a.relayout()
		if msg.Never {
			err := a.prefs.Update(func(s *settings.Settings) { s.NeverShowGettingStarted = true })
			if err != nil {
				a.statusBar.SetFlashWithLevel("Could not save settings: "+err.Error(), panels.FlashError)
				return a, clearFlashAfter()
			}
		}
		return a, nil

	case tea.MouseMsg:
		if a.helpOverlay != nil || !a.ready || a.layout.TooSmall {
			return a, nil
		}
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.helpOverlay = panels.NewHelpOverlay()
		return a, nil
	case key.Matches(msg, a.keys.Left):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-a.plan.PerRow)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(a.plan.PerRow)
	case key.Matches(msg, a.keys.Select):
		for _, el := range a.plan.Tiles {
			if el.BuildID() == a.cursorID {
				el.Click()
				break
			}
		}
		a.syncGrid()
		a.viewport.GotoTop()
	case key.Matches(msg, a.keys.Back):
		if a.board.Back() {
			a.syncGrid()
		}
	case key.Matches(msg, a.keys.PageUp):
		a.viewport.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		a.viewport.PageDown()
	case key.Matches(msg, a.keys.Refresh):
		if a.fetching {
			return a, nil
		}
		a.pollGen++
		return a, a.startFetch()
	case key.Matches(msg, a.keys.Copy):
		return a, a.copyURL()
	default:
		if a.gettingStarted != nil && a.showBanner {
			var cmd tea.Cmd
			*a.gettingStarted, cmd = a.gettingStarted.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	// the breadcrumb row doubles as the back button
	if msg.Y == 0 {
		if a.header.BackVisible() && a.board.Back() {
			a.syncGrid()
		}
		return a, nil
	}

	y := msg.Y - a.layout.HeaderHeight
	if y < 0 || y >= a.layout.BodyHeight {
		return a, nil
	}
	el := panels.HitTest(a.placements, msg.X, y+a.viewport.YOffset)
	if el == nil {
		return a, nil
	}
	if el.Mode() != board.Big {
		a.cursorID = el.BuildID()
		el.Click()
		a.viewport.GotoTop()
	}
	a.syncGrid()
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	parts := []string{a.header.View()}
	if a.gettingStarted != nil && a.showBanner {
		parts = append(parts, a.gettingStarted.View())
	}
	parts = append(parts, a.viewport.View(), a.statusBar.View())
	full := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}

// Board exposes the engine, mainly for tests and embedding.
func (a App) Board() *board.Engine { return a.board }

// relayout recomputes the screen split and pushes the body width into the
// engine.
func (a *App) relayout() {
	banner := 0
	if a.gettingStarted != nil {
		banner = a.gettingStarted.Height()
	}
	l := layout.Calculate(a.width, a.height, banner)
	a.showBanner = banner > 0
	if !l.TooSmall && l.HeaderHeight-1 < banner {
		// no room for the whole banner: hide it rather than crop it
		l = layout.Calculate(a.width, a.height, 0)
		a.showBanner = false
	}
	a.layout = l

	a.header.SetSize(l.TermWidth)
	a.statusBar.SetSize(l.StatusBarWidth)
	if a.gettingStarted != nil {
		a.gettingStarted.SetSize(l.TermWidth)
	}
	a.grid.SetSize(l.BodyWidth)
	a.viewport.Width = l.BodyWidth
	a.viewport.Height = l.BodyHeight
	a.board.Resize(l.BodyWidth)
	a.syncGrid()
}

// syncGrid pulls a fresh plan from the engine and re-renders the grid.
func (a *App) syncGrid() {
	a.plan = a.board.Plan()
	a.placements = panels.Arrange(a.plan)

	if !a.hasTile(a.cursorID) {
		a.cursorID = ""
		if len(a.plan.Tiles) > 0 {
			a.cursorID = a.plan.Tiles[0].BuildID()
		}
	}
	a.grid.CursorID = a.cursorID
	a.viewport.SetContent(a.grid.Render(a.plan, a.placements))
}

func (a *App) hasTile(id string) bool {
	if id == "" {
		return false
	}
	for _, el := range a.plan.Tiles {
		if el.BuildID() == id {
			return true
		}
	}
	return false
}

func (a *App) moveCursor(delta int) {
	tiles := a.plan.Tiles
	if len(tiles) == 0 || delta == 0 {
		return
	}
	i := 0
	for j, el := range tiles {
		if el.BuildID() == a.cursorID {
			i = j
			break
		}
	}
	i = min(max(i+delta, 0), len(tiles)-1)
	a.cursorID = tiles[i].BuildID()
	a.grid.CursorID = a.cursorID
	a.viewport.SetContent(a.grid.Render(a.plan, a.placements))
	a.scrollToCursor()
}

func (a *App) scrollToCursor() {
	for _, pl := range a.placements {
		if pl.Big || pl.Element.BuildID() != a.cursorID {
			continue
		}
		top, bottom := pl.Rect.Y, pl.Rect.Y+pl.Rect.H
		switch {
		case top < a.viewport.YOffset:
			a.viewport.SetYOffset(top)
		case bottom > a.viewport.YOffset+a.viewport.Height:
			a.viewport.SetYOffset(bottom - a.viewport.Height)
		}
		return
	}
}

// copyURL copies the focused build's URL, or the cursor tile's when showing
// all builds.
func (a *App) copyURL() tea.Cmd {
	id := a.cursorID
	if st := a.board.Selection(); st.IsFocused() {
		id = st.BuildID
	}
	r, ok := a.board.Lookup(id)
	if !ok {
		return nil
	}
	target := r.URL
	if target == "" {
		target = r.ID
	}
	if err := a.copy(target); err != nil {
		a.statusBar.SetFlashWithLevel("Copy failed: "+err.Error(), panels.FlashError)
	} else {
		a.statusBar.SetFlashWithLevel("Copied "+target, panels.FlashSuccess)
	}
	return clearFlashAfter()
}

func (a *App) startFetch() tea.Cmd {
	a.fetching = true
	a.statusBar.SetFetching(true)
	return tea.Batch(a.fetch(), spinnerTick())
}

func (a App) fetch() tea.Cmd {
	src := a.source
	timeout := a.config.Source.FetchTimeout()
	now := a.now
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		records, err := src.Fetch(ctx)
		if err != nil {
			return FetchErrMsg{Err: err}
		}
		return RefreshMsg{Records: records, At: now()}
	}
}

func (a App) schedulePoll() tea.Cmd {
	gen := a.pollGen
	return tea.Tick(a.config.Source.RefreshEvery(), func(time.Time) tea.Msg {
		return PollMsg{Gen: gen}
	})
}

func (a App) scheduleRelabel() tea.Cmd {
	return tea.Tick(a.config.UI.RelabelEvery(), func(time.Time) tea.Msg {
		return RelabelTickMsg{}
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return SpinnerTickMsg{} })
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}
