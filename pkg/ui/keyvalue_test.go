package ui

import (
	"strings"
	"testing"
)

func TestRenderKeyValues_AlignsValues(t *testing.T) {
	SetTheme("dark")
	out := RenderKeyValues([]KeyValue{
		{Key: "version", Value: "1.0"},
		{Key: "original_size_bytes", Value: "42"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	col0 := strings.Index(lines[0], "1.0")
	col1 := strings.Index(lines[1], "42")
	if col0 < 0 || col1 < 0 {
		t.Fatalf("values missing from output: %q", out)
	}

	// Styling may add escape codes to the key, so compare visible widths
	if w0, w1 := visibleWidth(lines[0][:col0]), visibleWidth(lines[1][:col1]); w0 != w1 {
		t.Errorf("values not aligned: %d vs %d", w0, w1)
	}
}

func TestRenderKeyValue(t *testing.T) {
	out := RenderKeyValue("Version", "dev")
	if !strings.Contains(out, "Version") || !strings.HasSuffix(out, ": dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFormatHelpersKeepMessage(t *testing.T) {
	for _, out := range []string{
		FormatSuccess("done"),
		FormatError("done"),
		FormatInfo("done"),
		FormatWarning("done"),
		FormatFreeze("done"),
		FormatMuted("done"),
	} {
		if !strings.Contains(out, "done") {
			t.Errorf("message lost in %q", out)
		}
	}
}

func visibleWidth(s string) int {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return len([]rune(b.String()))
}
