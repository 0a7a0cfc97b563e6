package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"textmathkb/internal/catalog"
)

func fixtureEntries() []catalog.Entry {
	el := language.MustParseBase("el")
	return []catalog.Entry{
		{Glyph: "α", Name: "alpha", Keywords: []string{"greek", "letter", "angle"}, Synonyms: map[language.Base][]string{el: {"άλφα"}}},
		{Glyph: "∑", Name: "summation", Keywords: []string{"operator", "sum", "sigma"}},
		{Glyph: "±", Name: "plus minus", Keywords: []string{"operator", "tolerance"}},
		{Glyph: "θ", Name: "theta", Keywords: []string{"greek", "letter", "angle"}},
		{Glyph: "☀", Name: "Işık", Keywords: []string{"sun"}},
	}
}

func glyphs(entries []catalog.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Glyph)
	}
	return out
}

func TestMatch_EmptyQueryReturnsAllInOrder(t *testing.T) {
	entries := fixtureEntries()
	m := New(RuleSubstring)

	for _, q := range []string{"", "   ", "\t\n"} {
		got := m.Filter(entries, q, language.English)
		assert.Equal(t, entries, got, "query %q", q)
	}
}

func TestMatch_CaseInsensitiveSubstring(t *testing.T) {
	m := New(RuleSubstring)

	got := m.Filter(fixtureEntries(), "  ANGLE ", language.English)
	assert.Equal(t, []string{"α", "θ"}, glyphs(got))

	got = m.Filter(fixtureEntries(), "Sum", language.English)
	assert.Equal(t, []string{"∑"}, glyphs(got))
}

func TestMatch_NameAndKeywords(t *testing.T) {
	m := New(RuleSubstring)

	assert.Equal(t, []string{"±"}, glyphs(m.Filter(fixtureEntries(), "plus minus", language.English)))
	assert.Equal(t, []string{"∑", "±"}, glyphs(m.Filter(fixtureEntries(), "operator", language.English)))
	assert.Empty(t, m.Filter(fixtureEntries(), "zeta", language.English))
}

func TestMatch_LocaleSynonymsAndDiacritics(t *testing.T) {
	m := New(RuleSubstring)

	// Greek synonym, typed without the tonos
	got := m.Filter(fixtureEntries(), "αλφα", language.Greek)
	assert.Equal(t, []string{"α"}, glyphs(got))

	// Synonyms for other languages are not searched
	assert.Empty(t, m.Filter(fixtureEntries(), "αλφα", language.English))
}

func TestMatch_TurkishCaseRules(t *testing.T) {
	m := New(RuleSubstring)

	// Turkish lowers "I" to dotless "ı"
	assert.Equal(t, []string{"☀"}, glyphs(m.Filter(fixtureEntries(), "ışık", language.Turkish)))
	assert.Empty(t, m.Filter(fixtureEntries(), "ışık", language.English))
}

func TestMatch_TokensRule(t *testing.T) {
	entries := fixtureEntries()

	sub := New(RuleSubstring)
	tok := New(RuleTokens)

	assert.Empty(t, sub.Filter(entries, "minus plus", language.English))
	assert.Equal(t, []string{"±"}, glyphs(tok.Filter(entries, "minus plus", language.English)))

	// Every token must match somewhere
	assert.Equal(t, []string{"α", "θ"}, glyphs(tok.Filter(entries, "let ang", language.English)))
	assert.Empty(t, tok.Filter(entries, "letter sum", language.English))
}

func TestMatch_Idempotent(t *testing.T) {
	entries := fixtureEntries()
	m := New(RuleSubstring)

	first := m.Filter(entries, "greek", language.English)
	second := m.Filter(entries, "greek", language.English)
	assert.Equal(t, first, second)
	assert.Equal(t, fixtureEntries(), entries, "input must not be modified")
}

func TestMatch_Monotonic(t *testing.T) {
	entries := fixtureEntries()
	chains := [][]string{
		{"a", "an", "ang", "angle"},
		{"s", "su", "sum", "summation"},
		{"p", "plus", "plus m", "plus minus"},
	}

	for _, rule := range []Rule{RuleSubstring, RuleTokens} {
		m := New(rule)
		for _, chain := range chains {
			prev := m.Filter(entries, "", language.English)
			for _, q := range chain {
				cur := m.Filter(entries, q, language.English)
				assert.True(t, isSubsequence(cur, prev), "rule %s: %q not a subsequence of its prefix", rule, q)
				prev = cur
			}
		}
	}
}

func TestMatch_MonotonicGreekFinalSigma(t *testing.T) {
	entries := []catalog.Entry{
		{Glyph: "∑", Name: "sum", Keywords: []string{"ΑΣΑ"}},
		{Glyph: "σ", Name: "sigma", Keywords: []string{"σίγμα"}},
	}
	chain := []string{"Α", "ΑΣ", "ΑΣΑ"}

	for _, rule := range []Rule{RuleSubstring, RuleTokens} {
		m := New(rule)
		prev := m.Filter(entries, "", language.Greek)
		for _, q := range chain {
			cur := m.Filter(entries, q, language.Greek)
			assert.True(t, isSubsequence(cur, prev), "rule %s: %q not a subsequence of its prefix", rule, q)
			prev = cur
		}
		assert.Len(t, prev, 1, "rule %s", rule)
	}

	assert.Equal(t, "ασ", Normalize("ΑΣ", language.Greek))
	assert.Equal(t, "σιγμασ", Normalize("ΣΊΓΜΑΣ", language.Greek))
}

func TestMatch_LazyStopsEarly(t *testing.T) {
	m := New(RuleSubstring)

	var seen []string
	for e := range m.Match(fixtureEntries(), "greek", language.English) {
		seen = append(seen, e.Glyph)
		break
	}
	assert.Equal(t, []string{"α"}, seen)
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("tokens")
	require.NoError(t, err)
	assert.Equal(t, RuleTokens, r)
	assert.Equal(t, "tokens", r.String())

	_, err = ParseRule("regex")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Rule(9).String())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		locale language.Tag
		want   string
	}{
		{"  Plus   Minus ", language.English, "plus minus"},
		{"Ÿ", language.English, "y"},
		{"ΆΛΦΑ", language.Greek, "αλφα"},
		{"I", language.Turkish, "ı"},
		{"I", language.English, "i"},
		{" \t", language.English, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.locale))
		})
	}
}

func isSubsequence(sub, full []catalog.Entry) bool {
	i := 0
	for _, e := range full {
		if i < len(sub) && sub[i].Glyph == e.Glyph {
			i++
		}
	}
	return i == len(sub)
}
