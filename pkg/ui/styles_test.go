package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestForDetectsColorOnWriter(t *testing.T) {
	// A color terminal on stdout must not leak escapes into a plain writer
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(previous)
	SetTheme("dark")

	var buf bytes.Buffer
	for _, style := range []lipgloss.Style{StyleSuccess, StyleError, StyleMuted} {
		if got := For(&buf, style).Render("Frozen"); got != "Frozen" {
			t.Errorf("expected unstyled text for a non-terminal writer, got %q", got)
		}
	}
}
