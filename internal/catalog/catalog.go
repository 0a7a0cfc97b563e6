// Package catalog holds the categorized emoji/symbol table shown by the picker.
//
// A Catalog is built once and never modified. The default table is embedded
// as YAML; tests and alternative keyboards construct their own with New.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

var (
	// ErrDuplicateCategory indicates two categories share an identifier.
	ErrDuplicateCategory = errors.New("catalog: duplicate category identifier")

	// ErrEmptyIdentifier indicates a category without an identifier.
	ErrEmptyIdentifier = errors.New("catalog: empty category identifier")

	// ErrEmptyGlyph indicates an entry without a glyph.
	ErrEmptyGlyph = errors.New("catalog: empty glyph")

	// ErrMultipleGlyphs indicates a glyph string that renders as more than
	// one user-perceived character.
	ErrMultipleGlyphs = errors.New("catalog: glyph is more than one grapheme")
)

// Entry is a single emoji or symbol with its searchable metadata.
type Entry struct {
	Glyph    string
	Name     string
	Keywords []string

	// Synonyms holds extra keywords per base language (e.g. Greek names
	// of Greek letters), searched only under that language.
	Synonyms map[language.Base][]string

	// Available restricts the entry to these base languages. Empty means
	// available everywhere.
	Available []language.Base
}

// AvailableIn reports whether the entry may be shown under the locale.
func (e Entry) AvailableIn(locale language.Tag) bool {
	if len(e.Available) == 0 {
		return true
	}
	base, _ := locale.Base()
	return slices.Contains(e.Available, base)
}

// KeywordsFor returns the base keywords followed by the synonyms for the
// locale's base language.
func (e Entry) KeywordsFor(locale language.Tag) []string {
	base, _ := locale.Base()
	synonyms := e.Synonyms[base]
	if len(synonyms) == 0 {
		return e.Keywords
	}
	out := make([]string, 0, len(e.Keywords)+len(synonyms))
	out = append(out, e.Keywords...)
	return append(out, synonyms...)
}

// Category is a named, ordered group of entries.
type Category struct {
	ID      string
	Title   string
	Entries []Entry
}

// IsEmpty reports whether the category has no entries at all.
func (c Category) IsEmpty() bool {
	return len(c.Entries) == 0
}

// EntriesFor returns the entries available under the locale, in order.
func (c Category) EntriesFor(locale language.Tag) []Entry {
	out := make([]Entry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.AvailableIn(locale) {
			out = append(out, e)
		}
	}
	return out
}

// Catalog is an immutable, ordered set of categories with unique identifiers.
// Callers must not modify slices returned from it.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New validates and builds a catalog. An empty catalog is legal.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: slices.Clone(categories),
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range c.categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %d (%q): %w", i, cat.Title, ErrEmptyIdentifier)
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.ID)
		}
		for j, e := range cat.Entries {
			if e.Glyph == "" {
				return nil, fmt.Errorf("category %s entry %d: %w", cat.ID, j, ErrEmptyGlyph)
			}
			if uniseg.GraphemeClusterCount(e.Glyph) != 1 {
				return nil, fmt.Errorf("category %s entry %d (%q): %w", cat.ID, j, e.Glyph, ErrMultipleGlyphs)
			}
		}
		c.index[cat.ID] = i
	}
	return c, nil
}

// Len returns the number of categories, empty ones included.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Categories returns every category in tab order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// NonEmpty returns the selectable categories: those with at least one entry.
func (c *Catalog) NonEmpty() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		if !cat.IsEmpty() {
			out = append(out, cat)
		}
	}
	return out
}

// Lookup finds a category by identifier.
func (c *Catalog) Lookup(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// IsSelectable reports whether id names a known, non-empty category.
func (c *Catalog) IsSelectable(id string) bool {
	cat, ok := c.Lookup(id)
	return ok && !cat.IsEmpty()
}
