package config

// ValidDevices lists the device classes the layout package has metrics for.
var ValidDevices = []string{"phone", "pad"}

// LayoutConfig configures the base keyboard layout.
type LayoutConfig struct {
	// Device selects key heights and the bottom row shape
	Device string `yaml:"device"`

	// NeedsInputModeSwitchKey mirrors the host's "needs globe key" signal.
	// When true the emoji key is spliced back into the bottom row.
	NeedsInputModeSwitchKey bool `yaml:"needs_input_mode_switch_key"`
}

// DefaultLayoutConfig returns sensible layout defaults.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Device:                  ValidDevices[0],
		NeedsInputModeSwitchKey: true,
	}
}
