package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// fallback receives the OSC 52 sequence when no native clipboard is
// available. The terminal on the other end of it does the copy.
var fallback io.Writer = os.Stderr

// Write copies a build URL (or any text) to the clipboard. The native
// clipboard (wl-copy, xclip, pbcopy, ...) is tried first; over SSH or inside
// tmux the OSC 52 escape sequence is used instead.
func Write(text string) error {
	if clipboard.Unsupported {
		return writeOSC52(fallback, text, os.Getenv("TMUX") != "")
	}
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(fallback, text, os.Getenv("TMUX") != "")
}

// OSC52 returns the escape sequence that sets the system clipboard to text.
// Inside tmux the sequence is wrapped in a DCS passthrough.
func OSC52(text string, tmux bool) string {
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(text)))
	if !tmux {
		return seq
	}
	return "\x1bPtmux;" + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + "\x1b\\"
}

func writeOSC52(w io.Writer, text string, tmux bool) error {
	if _, err := io.WriteString(w, OSC52(text, tmux)); err != nil {
		return fmt.Errorf("writing OSC 52 sequence: %w", err)
	}
	return nil
}
