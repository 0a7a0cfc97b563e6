// Package layout models keyboard layouts as rows of keys and post-processes
// them. Layout values are treated as immutable: every transformation returns
// a new value and leaves its input alone.
package layout

import (
	"slices"

	"golang.org/x/text/language"
)

// Device classes with their own key metrics.
const (
	DevicePhone = "phone"
	DevicePad   = "pad"
)

// Devices lists every device class the standard provider knows.
var Devices = []string{DevicePhone, DevicePad}

// ActionKind is what a key does when pressed.
type ActionKind int

const (
	ActionCharacter ActionKind = iota
	ActionShift
	ActionBackspace
	ActionModeChange   // "123" numbers/symbols page
	ActionNextKeyboard // globe key
	ActionSpace
	ActionReturn
	ActionEmojiKeyboard
)

// Action is a key action. Value carries the character for ActionCharacter.
type Action struct {
	Kind  ActionKind
	Value string
}

// Label is the text drawn on the key.
func (a Action) Label() string {
	switch a.Kind {
	case ActionCharacter:
		return a.Value
	case ActionShift:
		return "⇧"
	case ActionBackspace:
		return "⌫"
	case ActionModeChange:
		return "123"
	case ActionNextKeyboard:
		return "🌐"
	case ActionSpace:
		return "space"
	case ActionReturn:
		return "return"
	case ActionEmojiKeyboard:
		return "☺"
	default:
		return "?"
	}
}

// WidthPolicy says how a key's width is derived.
type WidthPolicy int

const (
	// WidthInput is exactly one input-key unit (the width of a letter key).
	WidthInput WidthPolicy = iota
	// WidthRelative is Factor input-key units.
	WidthRelative
	// WidthFill takes whatever the row has left.
	WidthFill
)

// Width is a width policy with its parameter.
type Width struct {
	Policy WidthPolicy
	Factor float64
}

// Units returns the width in input-key units, or 0 for WidthFill.
func (w Width) Units() float64 {
	switch w.Policy {
	case WidthInput:
		return 1
	case WidthRelative:
		return w.Factor
	default:
		return 0
	}
}

// Size is a key's width policy and height in points.
type Size struct {
	Width  Width
	Height float64
}

// Insets is the padding around a key, in points.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Item is one key.
type Item struct {
	Action Action
	Size   Size
	Insets Insets
}

// Row is one horizontal strip of keys.
type Row []Item

// Layout is a keyboard as ordered rows.
type Layout struct {
	Rows []Row
}

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	if l.Rows == nil {
		return Layout{}
	}
	rows := make([]Row, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = slices.Clone(r)
	}
	return Layout{Rows: rows}
}

// LastRow returns the bottom row, or nil for a layout with no rows.
func (l Layout) LastRow() Row {
	if len(l.Rows) == 0 {
		return nil
	}
	return l.Rows[len(l.Rows)-1]
}

// Context is what the host tells a provider about where the keyboard is shown.
type Context struct {
	// NeedsInputModeSwitchKey is set when the host expects the keyboard to
	// offer its own key for switching input modes.
	NeedsInputModeSwitchKey bool
	Device                  string
	Locale                  language.Tag
}

// Provider computes a layout for a context.
type Provider interface {
	Layout(ctx Context) Layout
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(Context) Layout

func (f ProviderFunc) Layout(ctx Context) Layout { return f(ctx) }
