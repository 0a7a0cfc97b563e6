package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"

	"textmathkb/internal/picker"
)

// PickerPage shows category tabs, the search box and the result grid.
type PickerPage struct {
	ctrl     *picker.Controller
	input    textinput.Model
	styles   Styles
	keys     KeyMap
	viewport Viewport
	columns  int // configured grid columns, 0 = fit
	cursor   int
	picked   string
}

// NewPickerPage creates the picker page around a controller.
func NewPickerPage(ctrl *picker.Controller, styles Styles, keys KeyMap, columns int) PickerPage {
	ti := textinput.New()
	ti.Placeholder = "Search symbols…"
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Focus()

	return PickerPage{
		ctrl:     ctrl,
		input:    ti,
		styles:   styles,
		keys:     keys,
		viewport: NewViewport(CompactModeWidth, 24),
		columns:  columns,
	}
}

// Picked returns the glyph chosen with enter, if any.
func (p PickerPage) Picked() string { return p.picked }

// Cursor returns the index of the highlighted result.
func (p PickerPage) Cursor() int { return p.cursor }

// SetViewport updates the page for a new terminal size.
func (p *PickerPage) SetViewport(v Viewport) {
	p.viewport = v
	p.input.Width = v.ContentWidth() - len(p.input.Prompt)
}

// Update handles a key press. The returned command is tea.Quit once a glyph
// has been picked.
func (p PickerPage) Update(ctx context.Context, msg tea.KeyMsg) (PickerPage, tea.Cmd) {
	cols := p.viewport.GridColumns(p.columns)

	switch {
	case key.Matches(msg, p.keys.NextTab):
		if p.ctrl.SelectNext(ctx) {
			p.cursor = 0
		}
		return p, nil
	case key.Matches(msg, p.keys.PrevTab):
		if p.ctrl.SelectPrevious(ctx) {
			p.cursor = 0
		}
		return p, nil
	case key.Matches(msg, p.keys.Up):
		if p.cursor-cols >= 0 {
			p.cursor -= cols
		}
		return p, nil
	case key.Matches(msg, p.keys.Down):
		// Into the last row even when it is shorter than the cursor column
		if last := len(p.ctrl.Results()) - 1; last >= 0 && p.cursor/cols < last/cols {
			p.cursor = min(p.cursor+cols, last)
		}
		return p, nil
	case key.Matches(msg, p.keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case key.Matches(msg, p.keys.Right):
		if p.cursor < len(p.ctrl.Results())-1 {
			p.cursor++
		}
		return p, nil
	case key.Matches(msg, p.keys.Pick):
		results := p.ctrl.Results()
		if p.cursor < len(results) {
			p.picked = results[p.cursor].Glyph
			return p, tea.Quit
		}
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if v := p.input.Value(); v != before {
		p.ctrl.SetQuery(v)
		p.cursor = 0
	}
	return p, cmd
}

// UpdateInput forwards non-key messages (cursor blink) to the search box.
func (p PickerPage) UpdateInput(msg tea.Msg) (PickerPage, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p PickerPage) View() string {
	var b strings.Builder

	b.WriteString(p.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(p.styles.SearchBox.Render(p.input.View()))
	b.WriteString("\n")

	cats := p.ctrl.Categories()
	if len(cats) == 0 {
		b.WriteString(p.styles.Muted.Render("No symbol categories available."))
		return b.String()
	}

	upper := cases.Upper(p.ctrl.Locale())
	b.WriteString(p.styles.Title.Render(upper.String(p.ctrl.Title())))
	b.WriteString("\n")
	b.WriteString(p.renderGrid())
	return b.String()
}

func (p PickerPage) renderTabs() string {
	cats := p.ctrl.Categories()
	tabs := make([]string, 0, len(cats))
	for _, cat := range cats {
		style := p.styles.Tab
		if cat.ID == p.ctrl.Selection() {
			style = p.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(cat.Title))
	}
	return lipgloss.NewStyle().
		MaxWidth(p.viewport.ContentWidth()).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (p PickerPage) renderGrid() string {
	results := p.ctrl.Results()
	if len(results) == 0 {
		return p.styles.Muted.Render("No matches.")
	}

	cols := p.viewport.GridColumns(p.columns)
	maxRows := p.viewport.GridRows()
	// Scroll so the cursor row stays visible
	first := 0
	if cursorRow := p.cursor / cols; cursorRow >= maxRows {
		first = cursorRow - maxRows + 1
	}

	var rows []string
	for r := first; r < first+maxRows && r*cols < len(results); r++ {
		cells := make([]string, 0, cols)
		for i := r * cols; i < (r+1)*cols && i < len(results); i++ {
			style := p.styles.Glyph
			if i == p.cursor {
				style = p.styles.ActiveGlyph
			}
			cells = append(cells, style.Render(results[i].Glyph))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if p.cursor < len(results) {
		out += "\n" + p.styles.Muted.Render(results[p.cursor].Name)
	}
	return out
}
