package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textmathkb/internal/layout"
)

var (
	layoutSwitchKey bool
	layoutDevice    string
)

// layoutCmd prints the computed keyboard layout
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the keyboard layout after augmentation",
	Long: `Computes the base layout for the configured device and runs it through
the augmenter. With --switch-key the emoji key is spliced in at the second
slot of the bottom row.

Each key prints as label:width where width is in input-key units
("*" fills the rest of the row).`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&layoutSwitchKey, "switch-key", false, "Host needs an input mode switch key (default from config)")
	layoutCmd.Flags().StringVar(&layoutDevice, "device", "", "Device class: phone or pad (default from config)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	ctx := layout.Context{
		NeedsInputModeSwitchKey: cfg.Layout.NeedsInputModeSwitchKey,
		Device:                  cfg.Layout.Device,
		Locale:                  cfg.LocaleTag(),
	}
	if cmd.Flags().Changed("switch-key") {
		ctx.NeedsInputModeSwitchKey = layoutSwitchKey
	}
	if layoutDevice != "" {
		if !isValidDevice(layoutDevice) {
			return fmt.Errorf("invalid device %q (valid: %v)", layoutDevice, layout.Devices)
		}
		ctx.Device = layoutDevice
	}

	l := layout.NewAugmentingProvider(layout.StandardProvider{}).Layout(ctx)
	out := cmd.OutOrStdout()
	for _, row := range l.Rows {
		keys := make([]string, len(row))
		for i, item := range row {
			keys[i] = item.Action.Label() + ":" + formatWidth(item.Size.Width)
		}
		fmt.Fprintln(out, strings.Join(keys, " "))
	}
	return nil
}

func formatWidth(w layout.Width) string {
	if w.Policy == layout.WidthFill {
		return "*"
	}
	return fmt.Sprintf("%g", w.Units())
}

func isValidDevice(d string) bool {
	for _, v := range layout.Devices {
		if v == d {
			return true
		}
	}
	return false
}
