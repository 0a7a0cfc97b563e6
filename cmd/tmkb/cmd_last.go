package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lastCmd prints the persisted category
var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last selected category",
	Long: `Prints the category the picker will open on. When nothing valid is saved
this is the configured default category.`,
	Args: cobra.NoArgs,
	RunE: runLast,
}

func runLast(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	a, err := bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl := a.newController()
	ctrl.Appear(ctx)
	if ctrl.Selection() == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "(no categories)")
		return nil
	}

	source := "default"
	if id, ok := a.selection.Load(ctx); ok && id == ctrl.Selection() {
		source = "saved"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", ctrl.Selection(), source)
	return nil
}
