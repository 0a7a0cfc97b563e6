package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textmathkb/cmd/tmkb/ui"
	"textmathkb/internal/config"
	"textmathkb/internal/layout"
	"textmathkb/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	copyPicked bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmkb",
	Short: "textmathkb - math and symbol picker for the terminal",
	Long: `textmathkb is a category-organized symbol picker with live search.

Run without arguments to open the interactive picker. The picked symbol is
printed to stdout; with --copy it also goes to the system clipboard.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPicker,
}

func init() {
	// Assigned here rather than in the literal: loggingFor refers to rootCmd.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		loaded.Logging = loggingFor(cmd, loaded.Logging)
		if err := logging.Initialize(loaded.Logging); err != nil {
			return err
		}
		cfg = loaded
		logger = logging.Get(logging.CategoryBoot)
		logger.Debug("config loaded", zap.String("path", configPath))
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "Config file")

	rootCmd.Flags().BoolVar(&copyPicked, "copy", false, "Copy the picked symbol to the clipboard")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loggingFor adjusts logging for cmd. The picker owns the terminal, so in
// debug mode its logs go to a file even when none is configured.
func loggingFor(cmd *cobra.Command, lc config.LoggingConfig) config.LoggingConfig {
	if cmd == rootCmd && lc.DebugMode && lc.File == "" {
		lc.File = config.DefaultLogPath()
	}
	return lc
}

// runPicker opens the interactive picker
func runPicker(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	a, err := bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	provider := layout.NewAugmentingProvider(layout.StandardProvider{})
	model := ui.New(ctx, a.newController(), provider, a.layoutContext(), cfg.UI)

	picked, err := ui.Run(ctx, model)
	if logging.IsDebugMode() {
		fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", cfg.Logging.File)
	}
	if err != nil {
		return err
	}
	if picked == "" {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), picked)
	if copyPicked {
		if err := clipboard.WriteAll(picked); err != nil {
			logger.Warn("clipboard write failed", zap.Error(err))
			return fmt.Errorf("failed to copy %q to clipboard: %w", picked, err)
		}
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command is invoked directly (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
