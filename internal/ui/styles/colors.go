package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/build"
)

// Semantic colors: AdaptiveColor{Light, Dark}
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusRunning = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	StatusPending = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	StatusFixed   = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bb9af7"}

	CursorBorder = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
)

// BuildStatusColor returns the tile color for a build status.
func BuildStatusColor(s build.Status) lipgloss.AdaptiveColor {
	switch s {
	case build.StatusBuilding:
		return StatusRunning
	case build.StatusPassed:
		return StatusSuccess
	case build.StatusFixed:
		return StatusFixed
	case build.StatusFailed:
		return StatusError
	case build.StatusBroken:
		return StatusWarning
	case build.StatusQueued:
		return StatusPending
	default:
		return TextDim
	}
}

// BuildStatusIcon returns a one-cell glyph for a build status.
func BuildStatusIcon(s build.Status) string {
	switch s {
	case build.StatusBuilding:
		return "●"
	case build.StatusPassed, build.StatusFixed:
		return "✓"
	case build.StatusFailed:
		return "✗"
	case build.StatusBroken:
		return "⚠"
	case build.StatusQueued:
		return "○"
	default:
		return "?"
	}
}
