// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the picker and keyboard pages
const (
	// Viewport padding
	ViewportHorizontalPadding = 4
	ViewportVerticalPadding   = 8

	// Fixed chrome heights
	HeaderHeight = 1
	TabBarHeight = 2
	SearchHeight = 2
	FooterHeight = 2
	TitleHeight  = 2

	// Result grid
	GlyphCellWidth = 4
	MinGridColumns = 4

	// Keyboard page: terminal columns per input-key unit
	KeyUnitWidth = 5
	FillKeyUnits = 5

	MinimumTerminalWidth = 40
	CompactModeWidth     = 80
)

// Viewport provides computed dimensions based on terminal size
type Viewport struct {
	Width     int
	Height    int
	IsCompact bool
}

// NewViewport creates a viewport for the given terminal size
func NewViewport(width, height int) Viewport {
	if width < MinimumTerminalWidth {
		width = MinimumTerminalWidth
	}
	return Viewport{
		Width:     width,
		Height:    height,
		IsCompact: width < CompactModeWidth,
	}
}

// ContentWidth returns the usable content width
func (v Viewport) ContentWidth() int {
	return v.Width - ViewportHorizontalPadding
}

// GridColumns returns how many glyph cells fit on a row. A positive
// configured value wins.
func (v Viewport) GridColumns(configured int) int {
	if configured > 0 {
		return configured
	}
	cols := v.ContentWidth() / GlyphCellWidth
	if cols < MinGridColumns {
		return MinGridColumns
	}
	return cols
}

// GridRows returns how many glyph rows fit below the chrome.
func (v Viewport) GridRows() int {
	rows := v.Height - HeaderHeight - TabBarHeight - SearchHeight - TitleHeight - FooterHeight
	if rows < 1 {
		return 1
	}
	return rows
}
