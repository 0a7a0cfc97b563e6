package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	categoriesStyle string
	categoriesRaw   bool
)

// categoriesCmd lists the catalog categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List symbol categories in tab order",
	Long: `Renders the catalog categories as a markdown table. Empty categories
are listed but marked hidden, since the picker skips them.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesStyle, "style", "auto", "glamour style (auto, dark, light, notty)")
	categoriesCmd.Flags().BoolVar(&categoriesRaw, "raw", false, "Print the markdown source")
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(commandContext(cmd), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	locale := a.cfg.LocaleTag()
	var sb strings.Builder
	sb.WriteString("# Categories\n\n")
	sb.WriteString("| ID | Title | Symbols | Sample |\n")
	sb.WriteString("|----|-------|---------|--------|\n")
	for _, cat := range a.catalog.Categories() {
		entries := cat.EntriesFor(locale)
		count := fmt.Sprintf("%d", len(entries))
		if cat.IsEmpty() {
			count = "hidden"
		}
		var sample []string
		for i := 0; i < len(entries) && i < 5; i++ {
			sample = append(sample, entries[i].Glyph)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", cat.ID, cat.Title, count, strings.Join(sample, " "))
	}

	md := sb.String()
	if categoriesRaw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	out, err := glamour.Render(md, categoriesStyle)
	if err != nil {
		return fmt.Errorf("failed to render categories: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
