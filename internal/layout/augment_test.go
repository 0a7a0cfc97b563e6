package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"textmathkb/internal/config"
	"textmathkb/internal/logging"
)

func char(s string, h float64, in Insets) Item {
	return Item{
		Action: Action{Kind: ActionCharacter, Value: s},
		Size:   Size{Width: Width{Policy: WidthInput}, Height: h},
		Insets: in,
	}
}

func twoRows() Layout {
	k0 := Item{
		Action: Action{Kind: ActionModeChange},
		Size:   Size{Width: Width{Policy: WidthRelative, Factor: 1.25}, Height: 40},
		Insets: Insets{Top: 1, Left: 2, Bottom: 3, Right: 4},
	}
	k1 := Item{
		Action: Action{Kind: ActionSpace},
		Size:   Size{Width: Width{Policy: WidthFill}, Height: 38},
		Insets: Insets{Top: 9, Left: 9, Bottom: 9, Right: 9},
	}
	return Layout{Rows: []Row{
		{char("a", 40, Insets{}), char("b", 40, Insets{})},
		{k0, k1},
	}}
}

func TestAugmentIdentity(t *testing.T) {
	l := twoRows()
	got := Augment(l, false)
	if diff := cmp.Diff(l, got); diff != "" {
		t.Errorf("Augment(l, false) changed the layout (-want +got):\n%s", diff)
	}
}

func TestAugmentInsertsAtIndexOne(t *testing.T) {
	l := twoRows()
	k0, k1 := l.Rows[1][0], l.Rows[1][1]

	got := Augment(l, true)

	want := Row{k0, {
		Action: EmojiKey,
		Size:   Size{Width: Width{Policy: WidthInput}, Height: k0.Size.Height},
		Insets: k0.Insets,
	}, k1}
	if diff := cmp.Diff(want, got.LastRow()); diff != "" {
		t.Errorf("last row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(l.Rows[0], got.Rows[0]); diff != "" {
		t.Errorf("other rows must be kept (-want +got):\n%s", diff)
	}
}

func TestAugmentDoesNotMutateInput(t *testing.T) {
	l := twoRows()
	// Spare capacity would let a careless append write into l's backing array
	l.Rows[1] = append(make(Row, 0, 8), l.Rows[1]...)
	before := l.Clone()

	got := Augment(l, true)
	got.Rows[0][0].Action.Value = "z"
	got.Rows[1][0].Size.Height = 1

	if diff := cmp.Diff(before, l); diff != "" {
		t.Errorf("input layout was modified (-before +after):\n%s", diff)
	}
	assert.Len(t, l.Rows[1], 2)
}

func TestAugmentDegenerateLayouts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	for name, l := range map[string]Layout{
		"no rows":        {},
		"empty last row": {Rows: []Row{{char("a", 40, Insets{})}, {}}},
	} {
		t.Run(name, func(t *testing.T) {
			got := Augment(l, true)
			if diff := cmp.Diff(l, got); diff != "" {
				t.Errorf("expected no-op (-want +got):\n%s", diff)
			}
		})
	}
	assert.Equal(t, 2, logs.FilterMessage("cannot augment layout without a bottom key").Len())
}

func TestAugmenterCustomAction(t *testing.T) {
	a := Augmenter{Action: Action{Kind: ActionCharacter, Value: "∑"}}
	got := a.Augment(twoRows(), true)
	require.Len(t, got.LastRow(), 3)
	assert.Equal(t, "∑", got.LastRow()[1].Action.Label())
}

func TestSingleKeyRowGetsKeyAppended(t *testing.T) {
	l := Layout{Rows: []Row{{char("x", 30, Insets{Left: 2})}}}
	got := Augment(l, true)
	require.Len(t, got.LastRow(), 2)
	assert.Equal(t, EmojiKey, got.LastRow()[1].Action)
	assert.Equal(t, 30.0, got.LastRow()[1].Size.Height)
	assert.Equal(t, Insets{Left: 2}, got.LastRow()[1].Insets)
}

func TestStandardProviderBottomRow(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want []ActionKind
	}{
		{
			name: "no switch key",
			ctx:  Context{Device: DevicePhone},
			want: []ActionKind{ActionModeChange, ActionEmojiKeyboard, ActionSpace, ActionReturn},
		},
		{
			name: "switch key",
			ctx:  Context{Device: DevicePhone, NeedsInputModeSwitchKey: true},
			want: []ActionKind{ActionModeChange, ActionNextKeyboard, ActionSpace, ActionReturn},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := StandardProvider{}.Layout(tt.ctx)
			require.Len(t, l.Rows, 4)
			assert.Equal(t, tt.want, kinds(l.LastRow()))
		})
	}
}

func TestAugmentingProvider(t *testing.T) {
	p := NewAugmentingProvider(StandardProvider{})

	withSwitch := p.Layout(Context{Device: DevicePad, NeedsInputModeSwitchKey: true})
	assert.Equal(t,
		[]ActionKind{ActionModeChange, ActionEmojiKeyboard, ActionNextKeyboard, ActionSpace, ActionReturn},
		kinds(withSwitch.LastRow()))
	assert.Equal(t, 56.0, withSwitch.LastRow()[1].Size.Height)

	plain := p.Layout(Context{Device: DevicePad})
	if diff := cmp.Diff(StandardProvider{}.Layout(Context{Device: DevicePad}), plain); diff != "" {
		t.Errorf("augmenting provider changed a layout without switch key (-want +got):\n%s", diff)
	}
}

func TestAugmentingProviderWithFunc(t *testing.T) {
	calls := 0
	p := NewAugmentingProvider(ProviderFunc(func(Context) Layout {
		calls++
		return twoRows()
	}))
	got := p.Layout(Context{NeedsInputModeSwitchKey: true})
	assert.Equal(t, 1, calls)
	assert.Len(t, got.LastRow(), 3)
}

func TestStandardProviderLocaleRows(t *testing.T) {
	tr := StandardProvider{}.Layout(Context{Locale: language.Turkish})
	assert.Equal(t, "ı", tr.Rows[0][7].Action.Value)

	und := StandardProvider{}.Layout(Context{Device: "watch"})
	assert.Equal(t, "q", und.Rows[0][0].Action.Value)
	assert.Equal(t, 42.0, und.Rows[0][0].Size.Height, "unknown devices use phone metrics")
}

func TestWidthUnits(t *testing.T) {
	assert.Equal(t, 1.0, Width{Policy: WidthInput, Factor: 9}.Units())
	assert.Equal(t, 1.5, Width{Policy: WidthRelative, Factor: 1.5}.Units())
	assert.Equal(t, 0.0, Width{Policy: WidthFill}.Units())
}

func kinds(r Row) []ActionKind {
	out := make([]ActionKind, len(r))
	for i, it := range r {
		out[i] = it.Action.Kind
	}
	return out
}

func TestDevicesMatchConfig(t *testing.T) {
	assert.Equal(t, Devices, config.ValidDevices, "config accepts exactly the devices with metrics")
	assert.Contains(t, Devices, config.DefaultLayoutConfig().Device)
	for _, d := range Devices {
		_, ok := deviceMetrics[d]
		assert.True(t, ok, "missing metrics for %s", d)
	}

	unknown := StandardProvider{}.Layout(Context{Device: "watch"})
	assert.Equal(t, 42.0, unknown.LastRow()[0].Size.Height, "unknown device falls back to phone")
}
