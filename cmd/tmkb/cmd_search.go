package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textmathkb/internal/catalog"
)

var searchCategory string

// searchCmd searches the catalog from the command line
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search symbols by name or keyword",
	Long: `Prints the symbols matching the query as "glyph  name  category".

Searches every non-empty category unless --category is given. Matching uses
the configured locale and rule (picker.locale, picker.match_rule).

Examples:
  tmkb search arrow
  tmkb search --category greek lam
  TMKB_LOCALE=el tmkb search αλφα`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Restrict to one category")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(commandContext(cmd), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	query := joinArgs(args)
	locale := a.cfg.LocaleTag()

	cats := a.catalog.NonEmpty()
	if searchCategory != "" {
		cat, ok := a.catalog.Lookup(searchCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", searchCategory)
		}
		cats = []catalog.Category{cat}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	found := 0
	for _, cat := range cats {
		for e := range a.matcher.Match(cat.EntriesFor(locale), query, locale) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Glyph, e.Name, cat.ID)
			found++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Debug("search complete", zap.String("query", query), zap.Int("results", found))
	if found == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No symbols match %q\n", query)
	}
	return nil
}
