package border

import (
	"strings"
)

// Render assembles a complete bordered box of exactly width x height cells.
// Content is padded or cropped to fill height-2 rows.
func (f Frame) Render(content string, width, height int) string {
	if height < 2 || width < 2 {
		return ""
	}
	innerHeight := height - 2

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	parts := []string{f.RenderTop(width)}
	if innerHeight > 0 {
		parts = append(parts, f.RenderSides(strings.Join(lines, "\n"), width))
	}
	parts = append(parts, f.RenderBottom(width))
	return strings.Join(parts, "\n")
}

// RenderPanel renders a titled panel. Keybind hints show only when focused.
func RenderPanel(title, content string, keybinds []Keybind, width, height int, focused bool) string {
	return PanelFrame(title, keybinds, focused).Render(content, width, height)
}
