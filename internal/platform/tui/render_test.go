package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "Am", core.ColorYellow)
	s.DrawTextColor(2, 0, "mo", core.ColorRed)
	s.SetColor(5, 1, 'X', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Ammo  " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "Ammo  ")
	}
	if lines[1] != "     X" {
		t.Errorf("row 1 = %q, expected unknown colors to fall back to default", lines[1])
	}
}
