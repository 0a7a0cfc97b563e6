package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"textmathkb/internal/layout"
)

// KeyboardPage previews the keyboard layout the provider computes for the
// current context. ctrl+g flips the input mode switch signal and ctrl+d the
// device class, so the spliced emoji key can be watched coming and going.
type KeyboardPage struct {
	provider layout.Provider
	ctx      layout.Context
	styles   Styles
	keys     KeyMap
}

// NewKeyboardPage creates the keyboard preview page.
func NewKeyboardPage(provider layout.Provider, ctx layout.Context, styles Styles, keys KeyMap) KeyboardPage {
	return KeyboardPage{provider: provider, ctx: ctx, styles: styles, keys: keys}
}

// Context returns the layout context currently previewed.
func (k KeyboardPage) Context() layout.Context { return k.ctx }

func (k KeyboardPage) Update(msg tea.KeyMsg) (KeyboardPage, tea.Cmd) {
	switch {
	case key.Matches(msg, k.keys.ToggleSwitch):
		k.ctx.NeedsInputModeSwitchKey = !k.ctx.NeedsInputModeSwitchKey
	case key.Matches(msg, k.keys.ToggleDevice):
		if k.ctx.Device == layout.DevicePad {
			k.ctx.Device = layout.DevicePhone
		} else {
			k.ctx.Device = layout.DevicePad
		}
	}
	return k, nil
}

func (k KeyboardPage) View() string {
	l := k.provider.Layout(k.ctx)

	rows := make([]string, 0, len(l.Rows))
	for _, row := range l.Rows {
		keys := make([]string, 0, len(row))
		for _, item := range row {
			keys = append(keys, k.renderKey(item))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	status := fmt.Sprintf("device: %s · globe key: %s · locale: %s",
		k.ctx.Device, onOff(k.ctx.NeedsInputModeSwitchKey), k.ctx.Locale)
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, rows...),
		"",
		k.styles.Muted.Render(status),
	)
}

func (k KeyboardPage) renderKey(item layout.Item) string {
	style := k.styles.Key
	if item.Action.Kind == layout.ActionEmojiKeyboard {
		style = k.styles.AddedKey
	}
	label := item.Action.Label()
	// Never narrower than the label, e.g. "return" on a pad
	width := max(KeyCells(item.Size.Width), runewidth.StringWidth(label))
	return style.Width(width).Render(label)
}

// KeyCells converts a key width to terminal cells, border excluded.
func KeyCells(w layout.Width) int {
	units := w.Units()
	if w.Policy == layout.WidthFill {
		units = FillKeyUnits
	}
	cells := int(math.Round(units*KeyUnitWidth)) - 2
	if cells < 1 {
		return 1
	}
	return cells
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
