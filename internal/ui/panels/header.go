package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/ui/border"
	"github.com/justinpbarnett/buildwall/internal/ui/selection"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
)

const rootCrumb = "All builds"

// Header is the breadcrumb row. It mirrors the board selection and shows a
// back hint only while a build is focused.
type Header struct {
	width   int
	focused bool
	name    string
}

func NewHeader() *Header { return &Header{} }

// SetSelection updates the breadcrumb. name is the focused build's display
// name and is ignored for AllBuilds.
func (h *Header) SetSelection(st selection.State, name string) {
	h.focused = st.IsFocused()
	h.name = ""
	if h.focused {
		h.name = name
	}
}

func (h *Header) SetSize(w int) { h.width = w }

// BackVisible reports whether the back affordance is shown.
func (h *Header) BackVisible() bool { return h.focused }

func (h *Header) View() string {
	sep := styles.TextDimStyle.Render(" › ")
	left := " " + styles.TitleStyle.Render("buildwall") + sep
	if h.focused {
		left += styles.TextSecondaryStyle.Render(rootCrumb) + sep + styles.TitleStyle.Render(h.name)
	} else {
		left += styles.TitleStyle.Render(rootCrumb)
	}

	right := ""
	if h.focused {
		right = border.RenderKeybind(border.Keybind{Key: "esc", Label: " back"}) + " "
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(max(h.width, 0)).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
