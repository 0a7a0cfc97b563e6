package layout

type metrics struct {
	height float64
	insets Insets
}

var deviceMetrics = map[string]metrics{
	DevicePhone: {height: 42, insets: Insets{Top: 6, Left: 3, Bottom: 6, Right: 3}},
	DevicePad:   {height: 56, insets: Insets{Top: 5, Left: 6, Bottom: 5, Right: 6}},
}

// Letter rows per base language; anything else gets QWERTY.
var letterRows = map[string][3]string{
	"en": {"qwertyuiop", "asdfghjkl", "zxcvbnm"},
	"tr": {"qwertyuıopğü", "asdfghjklşi", "zxcvbnmöç"},
	"de": {"qwertzuiopü", "asdfghjklöä", "yxcvbnm"},
}

// StandardProvider builds a plain letters layout: three letter rows (the
// third flanked by shift and backspace) and a bottom row of
// [123, emoji or globe, space, return].
//
// When the context needs an input mode switch key the globe key takes the
// second slot and the emoji key is left out; wrap the provider with
// NewAugmentingProvider to get it back.
type StandardProvider struct{}

func (StandardProvider) Layout(ctx Context) Layout {
	m, ok := deviceMetrics[ctx.Device]
	if !ok {
		m = deviceMetrics[DevicePhone]
	}
	base, _ := ctx.Locale.Base()
	letters, ok := letterRows[base.String()]
	if !ok {
		letters = letterRows["en"]
	}

	key := func(a Action, w Width) Item {
		return Item{Action: a, Size: Size{Width: w, Height: m.height}, Insets: m.insets}
	}
	input := Width{Policy: WidthInput}
	chars := func(s string) Row {
		row := make(Row, 0, len(s))
		for _, r := range s {
			row = append(row, key(Action{Kind: ActionCharacter, Value: string(r)}, input))
		}
		return row
	}

	third := Row{key(Action{Kind: ActionShift}, Width{Policy: WidthRelative, Factor: 1.5})}
	third = append(third, chars(letters[2])...)
	third = append(third, key(Action{Kind: ActionBackspace}, Width{Policy: WidthRelative, Factor: 1.5}))

	bottom := Row{key(Action{Kind: ActionModeChange}, Width{Policy: WidthRelative, Factor: 1.25})}
	if ctx.NeedsInputModeSwitchKey {
		bottom = append(bottom, key(Action{Kind: ActionNextKeyboard}, input))
	} else {
		bottom = append(bottom, key(EmojiKey, input))
	}
	bottom = append(bottom,
		key(Action{Kind: ActionSpace}, Width{Policy: WidthFill}),
		key(Action{Kind: ActionReturn}, Width{Policy: WidthRelative, Factor: 2}),
	)

	return Layout{Rows: []Row{chars(letters[0]), chars(letters[1]), third, bottom}}
}
