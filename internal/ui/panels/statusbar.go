package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
	"github.com/justinpbarnett/buildwall/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width       int
	source      string
	counts      map[build.Status]int
	lastRefresh time.Time
	fetching    bool
	now         func() time.Time
	flash       string
	flashLevel  FlashLevel
	flashUntil  time.Time
	tickStep    int
}

func NewStatusBar(source string, now func() time.Time) StatusBar {
	if now == nil {
		now = time.Now
	}
	return StatusBar{source: source, now: now}
}

// SetBuilds records the per-status counts of the latest refresh.
func (s *StatusBar) SetBuilds(records []build.Record, at time.Time) {
	s.counts = build.Counts(records)
	s.lastRefresh = at
}

// SetFetching toggles the refresh spinner.
func (s *StatusBar) SetFetching(v bool) { s.fetching = v }

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	appName := "buildwall " + Version
	if s.fetching {
		frame := statusSpinnerFrames[s.tickStep%len(statusSpinnerFrames)]
		appName = lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(frame) + " " + appName
	}
	left := " " + styles.TextSecondaryStyle.Render(appName)

	count := func(st build.Status, label string) string {
		return lipgloss.NewStyle().Foreground(styles.BuildStatusColor(st)).
			Render(fmt.Sprintf("%d %s", s.counts[st], label))
	}
	active := s.counts[build.StatusBuilding] + s.counts[build.StatusQueued]
	failing := s.counts[build.StatusFailed] + s.counts[build.StatusBroken]
	left += sep + strings.Join([]string{
		lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(fmt.Sprintf("%d active", active)),
		count(build.StatusPassed, "passed"),
		lipgloss.NewStyle().Foreground(styles.StatusError).Render(fmt.Sprintf("%d failing", failing)),
	}, " ")

	src := s.source
	if !s.lastRefresh.IsZero() {
		src += " · updated " + text.FormatElapsed(s.now().Sub(s.lastRefresh)) + " ago"
	}
	source := sep + styles.TextSecondaryStyle.Render(src)

	flash := ""
	if s.flash != "" && s.now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		flash = sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	// the source segment gives way to a flash, then everything is cut to fit
	room := s.width - lipgloss.Width(right) - 1
	full := left + source + flash
	if s.width > 0 && lipgloss.Width(full) > room {
		if flash != "" {
			full = left + flash
		}
		full = text.Truncate(full, max(room, 0))
	}
	left = full

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = s.now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

// Tick advances the animation frame for the status bar spinner.
func (s *StatusBar) Tick() {
	s.tickStep++
}
