package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
)

// Border characters
const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// Frame describes the decoration around a box: a title in the top edge and
// either keybind hints or a footer label in the bottom edge.
type Frame struct {
	Title      string
	TitleStyle lipgloss.Style
	Footer     string
	Keybinds   []Keybind
	Color      lipgloss.TerminalColor
}

// PanelFrame is the frame used by overlays and panels.
func PanelFrame(title string, keybinds []Keybind, focused bool) Frame {
	f := Frame{
		Title:      title,
		Keybinds:   keybinds,
		Color:      styles.BorderUnfocused,
		TitleStyle: styles.TextSecondaryStyle.Bold(true),
	}
	if focused {
		f.Color = styles.BorderFocused
		f.TitleStyle = styles.TitleStyle
	} else {
		f.Keybinds = nil
	}
	return f
}

func (f Frame) edgeStyle() lipgloss.Style {
	if f.Color == nil {
		return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
	}
	return lipgloss.NewStyle().Foreground(f.Color)
}

// RenderTop renders: ╭─ Title ────────────╮
func (f Frame) RenderTop(width int) string {
	if width < 2 {
		return ""
	}
	bs := f.edgeStyle()
	innerWidth := width - 2
	if f.Title == "" {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}

	// "─ " + title + " " must fit; the title is cut before the corners are.
	maxTitle := innerWidth - 3
	if maxTitle < 1 {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}
	title := lipgloss.NewStyle().MaxWidth(maxTitle).Render(f.Title)
	titleRendered := f.TitleStyle.Render(title)
	fill := max(innerWidth-3-lipgloss.Width(titleRendered), 0)

	return bs.Render(cornerTL+horizBar+" ") +
		titleRendered +
		bs.Render(" "+strings.Repeat(horizBar, fill)+cornerTR)
}

// RenderBottom renders the bottom edge. Keybinds win over the footer; hints
// that overflow the edge are dropped.
//
//	╰─ [e]dit  [k]ill ──╯
//	╰───── 3 minutes ago ─╯
func (f Frame) RenderBottom(width int) string {
	if width < 2 {
		return ""
	}
	bs := f.edgeStyle()
	innerWidth := width - 2

	if len(f.Keybinds) > 0 {
		maxKbWidth := max(innerWidth-3, 0)
		var parts []string
		used := 0
		for _, kb := range f.Keybinds {
			rendered := RenderKeybind(kb)
			w := lipgloss.Width(rendered)
			sep := 0
			if len(parts) > 0 {
				sep = 2
			}
			if used+sep+w > maxKbWidth {
				break
			}
			parts = append(parts, rendered)
			used += sep + w
		}
		if len(parts) > 0 {
			return bs.Render(cornerBL+horizBar+" ") +
				strings.Join(parts, "  ") +
				bs.Render(" "+strings.Repeat(horizBar, maxKbWidth-used)+cornerBR)
		}
	}

	if f.Footer != "" && lipgloss.Width(f.Footer)+3 <= innerWidth {
		fill := innerWidth - 3 - lipgloss.Width(f.Footer)
		return bs.Render(cornerBL+strings.Repeat(horizBar, fill)+" ") +
			styles.TextSecondaryStyle.Render(f.Footer) +
			bs.Render(" "+horizBar+cornerBR)
	}

	return bs.Render(cornerBL + strings.Repeat(horizBar, innerWidth) + cornerBR)
}

// RenderSides wraps content lines with │ on each side. Each line is
// truncated or padded to width-2 using ANSI-aware measurement.
func (f Frame) RenderSides(content string, width int) string {
	if width < 2 {
		return content
	}
	bs := f.edgeStyle()
	innerWidth := width - 2
	truncator := lipgloss.NewStyle().MaxWidth(innerWidth)

	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > innerWidth {
			line = truncator.Render(line)
			w = lipgloss.Width(line)
		}
		if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		result = append(result, bs.Render(vertBar)+line+bs.Render(vertBar))
	}
	return strings.Join(result, "\n")
}
