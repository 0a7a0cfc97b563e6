package config

// Match rules understood by the matcher package.
const (
	MatchRuleSubstring = "substring"
	MatchRuleTokens    = "tokens"
)

// ValidMatchRules lists all supported match rules.
var ValidMatchRules = []string{MatchRuleSubstring, MatchRuleTokens}

// PickerConfig configures the emoji picker.
type PickerConfig struct {
	// DefaultCategory is selected until a persisted category is loaded
	DefaultCategory string `yaml:"default_category"`

	// Locale is a BCP 47 tag used for matching rules (e.g. "en", "tr", "el")
	Locale string `yaml:"locale"`

	// MatchRule is "substring" (whole query) or "tokens" (every word)
	MatchRule string `yaml:"match_rule"`
}

// DefaultPickerConfig returns sensible picker defaults.
func DefaultPickerConfig() PickerConfig {
	return PickerConfig{
		DefaultCategory: "greek",
		Locale:          "en",
		MatchRule:       MatchRuleSubstring,
	}
}
