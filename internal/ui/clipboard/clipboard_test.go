package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestOSC52Encoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"url", "https://ci.example.com/api-main-42"},
		{"with spaces", "hello world"},
		{"unicode", "こんにちは"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeOSC52(&buf, tt.input, false); err != nil {
				t.Fatalf("writeOSC52 returned error: %v", err)
			}
			want := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(tt.input)) + "\x07"
			if got := buf.String(); got != want {
				t.Errorf("OSC52 mismatch\ngot:  %q\nwant: %q", got, want)
			}
		})
	}
}

func TestOSC52Tmux(t *testing.T) {
	got := OSC52("x", true)
	if !strings.HasPrefix(got, "\x1bPtmux;\x1b\x1b]52;c;") {
		t.Errorf("expected tmux passthrough prefix, got %q", got)
	}
	if !strings.HasSuffix(got, "\x07\x1b\\") {
		t.Errorf("expected ST terminator, got %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteOSC52Error(t *testing.T) {
	if err := writeOSC52(failWriter{}, "x", false); err == nil {
		t.Fatal("expected error from failing writer")
	}
}

func TestWriteNoPanic(t *testing.T) {
	var buf bytes.Buffer
	orig := fallback
	fallback = &buf
	defer func() { fallback = orig }()

	// the native clipboard is usually missing in CI; either path is fine
	_ = Write("https://ci.example.com/1")
}
