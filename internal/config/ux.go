package config

// UIConfig holds terminal user interface configuration.
type UIConfig struct {
	// Theme is "auto", "light" or "dark"
	Theme string `yaml:"theme"`

	// GridColumns is the number of glyphs per result row (0 = fit to width)
	GridColumns int `yaml:"grid_columns,omitempty"`

	// ShowKeyboard opens the keyboard page instead of the picker
	ShowKeyboard bool `yaml:"show_keyboard"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Theme:       "auto",
		GridColumns: 0, // Fit to width
	}
}
