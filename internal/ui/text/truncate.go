package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate truncates s to maxWidth, appending "…" if truncated.
// ANSI-aware: escape codes are not counted toward visual width.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to width. Wider strings are returned unchanged.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Fit truncates or pads s so its visual width is exactly width.
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// Center places s in the middle of width columns, truncating if needed.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Wrap word-wraps s to width columns and keeps at most maxLines lines; the
// last kept line ends in "…" when text was dropped. maxLines <= 0 means no
// limit.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if ansi.StringWidth(last) >= width {
			last = ansi.Truncate(last, width-1, "")
		}
		lines[maxLines-1] = last + "…"
	}
	return lines
}

func wrapParagraph(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range words {
		ww := ansi.StringWidth(word)
		if ww > width {
			word = ansi.Truncate(word, width, "…")
			ww = width
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteString(" " + word)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
