package ui

import (
	"testing"

	"textmathkb/internal/layout"
)

func TestThemeFor(t *testing.T) {
	if !ThemeFor("dark").IsDark {
		t.Error("expected dark theme")
	}
	if ThemeFor("light").IsDark {
		t.Error("expected light theme")
	}
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("TMKB_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("expected dark theme for black background")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Error("expected light theme for white background")
	}

	t.Setenv("TMKB_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("expected TMKB_DARK_MODE to override COLORFGBG")
	}
}

func TestViewportGridColumns(t *testing.T) {
	v := NewViewport(84, 30)
	if got := v.GridColumns(0); got != 20 {
		t.Errorf("expected 20 columns, got %d", got)
	}
	if got := v.GridColumns(6); got != 6 {
		t.Errorf("configured columns should win, got %d", got)
	}
	if got := NewViewport(10, 5).GridRows(); got != 1 {
		t.Errorf("expected at least one row, got %d", got)
	}
}

func TestKeyCells(t *testing.T) {
	tests := []struct {
		w    layout.Width
		want int
	}{
		{layout.Width{Policy: layout.WidthInput}, KeyUnitWidth - 2},
		{layout.Width{Policy: layout.WidthRelative, Factor: 2}, 2*KeyUnitWidth - 2},
		{layout.Width{Policy: layout.WidthFill}, FillKeyUnits*KeyUnitWidth - 2},
		{layout.Width{Policy: layout.WidthRelative, Factor: 0.1}, 1},
	}
	for _, tt := range tests {
		if got := KeyCells(tt.w); got != tt.want {
			t.Errorf("KeyCells(%+v) = %d, want %d", tt.w, got, tt.want)
		}
	}
}
