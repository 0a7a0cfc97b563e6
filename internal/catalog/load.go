package catalog

import (
	"embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"textmathkb/internal/logging"
)

//go:embed data/default.yaml
var embeddedFS embed.FS

const embeddedPath = "data/default.yaml"

type catalogFile struct {
	Categories []categoryFile `yaml:"categories"`
}

type categoryFile struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Entries []entryFile `yaml:"entries"`
}

type entryFile struct {
	Glyph     string              `yaml:"glyph"`
	Name      string              `yaml:"name"`
	Keywords  []string            `yaml:"keywords"`
	Localized map[string][]string `yaml:"localized"`
	Locales   []string            `yaml:"locales"`
}

// Default returns the catalog embedded in this package.
func Default() (*Catalog, error) {
	data, err := embeddedFS.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	timer := logging.StartTimer(logging.CategoryCatalog, "LoadFile")
	defer timer.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	logging.Get(logging.CategoryCatalog).Info("catalog loaded",
		zap.String("path", path),
		zap.Int("categories", c.Len()),
		zap.Int("selectable", len(c.NonEmpty())))
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	categories := make([]Category, 0, len(doc.Categories))
	for _, cf := range doc.Categories {
		cat := Category{ID: cf.ID, Title: cf.Title}
		if cat.Title == "" {
			cat.Title = cf.ID
		}
		for _, ef := range cf.Entries {
			e, err := ef.entry()
			if err != nil {
				return nil, fmt.Errorf("category %s: %w", cf.ID, err)
			}
			cat.Entries = append(cat.Entries, e)
		}
		categories = append(categories, cat)
	}
	return New(categories...)
}

func (ef entryFile) entry() (Entry, error) {
	e := Entry{
		Glyph:    ef.Glyph,
		Name:     ef.Name,
		Keywords: ef.Keywords,
	}
	if len(ef.Localized) > 0 {
		e.Synonyms = make(map[language.Base][]string, len(ef.Localized))
		for lang, words := range ef.Localized {
			base, err := language.ParseBase(lang)
			if err != nil {
				return Entry{}, fmt.Errorf("entry %q: localized language %q: %w", ef.Glyph, lang, err)
			}
			e.Synonyms[base] = append(e.Synonyms[base], words...)
		}
	}
	for _, lang := range ef.Locales {
		base, err := language.ParseBase(lang)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %q: locale %q: %w", ef.Glyph, lang, err)
		}
		e.Available = append(e.Available, base)
	}
	return e, nil
}
