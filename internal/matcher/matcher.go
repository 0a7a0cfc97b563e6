// Package matcher filters catalog entries by a search query.
//
// Queries and entry text are compared after locale-aware normalization:
// lower-casing under the locale's rules, removal of combining marks, and
// whitespace collapse. An empty query matches everything.
package matcher

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"textmathkb/internal/catalog"
)

// Rule selects how a normalized query is compared against entry text.
type Rule int

const (
	// RuleSubstring matches when the whole query is a substring of the name
	// or of one keyword.
	RuleSubstring Rule = iota

	// RuleTokens matches when every query word is a substring of some word
	// of the name or keywords, in any order.
	RuleTokens
)

var ruleNames = [...]string{
	RuleSubstring: "substring",
	RuleTokens:    "tokens",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// ParseRule converts a config value into a Rule.
func ParseRule(s string) (Rule, error) {
	for i, name := range ruleNames {
		if s == name {
			return Rule(i), nil
		}
	}
	return RuleSubstring, fmt.Errorf("unknown match rule %q", s)
}

// Matcher is stateless apart from its rule and safe to share.
type Matcher struct {
	rule Rule
}

// New returns a matcher using rule.
func New(rule Rule) *Matcher {
	return &Matcher{rule: rule}
}

// Rule returns the matcher's rule.
func (m *Matcher) Rule() Rule {
	return m.rule
}

// Match lazily yields the entries matching query, in their original order.
func (m *Matcher) Match(entries []catalog.Entry, query string, locale language.Tag) iter.Seq[catalog.Entry] {
	q := Normalize(query, locale)
	return func(yield func(catalog.Entry) bool) {
		for _, e := range entries {
			if q != "" && !m.matches(e, q, locale) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Filter collects Match into a slice.
func (m *Matcher) Filter(entries []catalog.Entry, query string, locale language.Tag) []catalog.Entry {
	if Normalize(query, locale) == "" {
		return slices.Clone(entries)
	}
	return slices.Collect(m.Match(entries, query, locale))
}

func (m *Matcher) matches(e catalog.Entry, q string, locale language.Tag) bool {
	fields := make([]string, 0, 1+len(e.Keywords))
	fields = append(fields, Normalize(e.Name, locale))
	for _, kw := range e.KeywordsFor(locale) {
		fields = append(fields, Normalize(kw, locale))
	}

	switch m.rule {
	case RuleTokens:
		return matchTokens(fields, strings.Fields(q))
	default:
		for _, f := range fields {
			if strings.Contains(f, q) {
				return true
			}
		}
		return false
	}
}

func matchTokens(fields, tokens []string) bool {
	var words []string
	for _, f := range fields {
		words = append(words, strings.Fields(f)...)
	}
	for _, tok := range tokens {
		found := false
		for _, w := range words {
			if strings.Contains(w, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Normalize folds s for comparison under locale. Whitespace-only input
// normalizes to "".
func Normalize(s string, locale language.Tag) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lowered := strings.Map(foldFinalSigma, cases.Lower(locale).String(s))
	stripped, _, err := transform.String(stripMarks(), lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// foldFinalSigma maps ς to σ. Lowering picks the final form by position,
// so "ΑΣ" and "ΑΣΑ" would otherwise fold to strings where one is not a
// prefix of the other.
func foldFinalSigma(r rune) rune {
	if r == 'ς' {
		return 'σ'
	}
	return r
}

// stripMarks returns a fresh transformer; transform.Chain is not safe for
// concurrent use.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
