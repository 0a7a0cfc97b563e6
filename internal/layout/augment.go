package layout

import (
	"slices"

	"go.uber.org/zap"

	"textmathkb/internal/logging"
)

// EmojiKey is the action of the key spliced in by Augment.
var EmojiKey = Action{Kind: ActionEmojiKeyboard}

// keyIndex is where the extra key goes: right after the first key, which is
// reserved for the mode change key.
const keyIndex = 1

// Augmenter inserts a key with Action into the last row of a layout.
type Augmenter struct {
	Action Action
}

// Augment inserts the emoji keyboard key. See Augmenter.Augment.
func Augment(l Layout, addKey bool) Layout {
	return Augmenter{Action: EmojiKey}.Augment(l, addKey)
}

// Augment returns l unchanged when addKey is false. Otherwise it returns a
// copy of l whose last row has a new key at index 1. The new key is one
// input unit wide and copies its height and insets from the row's first key.
//
// A layout with no rows or an empty last row is returned unchanged.
// l itself is never modified.
func (a Augmenter) Augment(l Layout, addKey bool) Layout {
	if !addKey {
		return l
	}
	last := l.LastRow()
	if len(last) == 0 {
		logging.Get(logging.CategoryLayout).Warn("cannot augment layout without a bottom key",
			zap.Int("rows", len(l.Rows)))
		return l
	}

	ref := last[0]
	key := Item{
		Action: a.Action,
		Size: Size{
			Width:  Width{Policy: WidthInput},
			Height: ref.Size.Height,
		},
		Insets: ref.Insets,
	}

	out := l.Clone()
	n := len(out.Rows) - 1
	out.Rows[n] = slices.Insert(out.Rows[n], keyIndex, key)
	logging.Get(logging.CategoryLayout).Debug("augmented bottom row",
		zap.Int("keys", len(out.LastRow())))
	return out
}

// AugmentingProvider runs its base provider's layout through an Augmenter,
// adding the key whenever the context needs an input mode switch key.
type AugmentingProvider struct {
	Base      Provider
	Augmenter Augmenter
}

// NewAugmentingProvider wraps base with the emoji key augmenter.
func NewAugmentingProvider(base Provider) *AugmentingProvider {
	return &AugmentingProvider{Base: base, Augmenter: Augmenter{Action: EmojiKey}}
}

func (p *AugmentingProvider) Layout(ctx Context) Layout {
	return p.Augmenter.Augment(p.Base.Layout(ctx), ctx.NeedsInputModeSwitchKey)
}
