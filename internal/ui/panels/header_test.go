package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/ui/selection"
)

func TestHeaderBreadcrumb(t *testing.T) {
	h := NewHeader()
	h.SetSize(80)

	view := h.View()
	if !strings.Contains(view, "All builds") {
		t.Error("expected root crumb")
	}
	if strings.Contains(view, "back") || h.BackVisible() {
		t.Error("back hint shown while showing all builds")
	}

	h.SetSelection(selection.Focus("b"), "web-main")
	view = h.View()
	if !strings.Contains(view, "web-main") {
		t.Error("expected focused build in breadcrumb")
	}
	if !strings.Contains(view, "back") || !h.BackVisible() {
		t.Error("expected back hint while focused")
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("width = %d, want 80", w)
	}

	h.SetSelection(selection.All, "ignored")
	if strings.Contains(h.View(), "ignored") {
		t.Error("name should be dropped when returning to all builds")
	}
}

func TestHeaderNarrow(t *testing.T) {
	h := NewHeader()
	h.SetSize(12)
	h.SetSelection(selection.Focus("x"), "a-very-long-build-name")
	if w := lipgloss.Width(h.View()); w > 12 {
		t.Errorf("width = %d, want <= 12", w)
	}
}
