package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"textreport/internal/config"
	"textreport/internal/logging"
	"textreport/internal/report"
	"textreport/internal/text"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger = zap.NewNop()

	// stdout is where the report goes; tests swap it out.
	stdout io.Writer = os.Stdout
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textreport",
	Short: "Print a report about the text \"Hello, World!\"",
	Long: `textreport prints a fixed report about the text "Hello, World!":
  1. The original string
  2. Its length
  3. The string reversed
  4. The ASCII code of every character

Flags, the config file and TEXTREPORT_* variables only affect diagnostics
on stderr. An unusable config is reported as a warning and ignored; the
report itself never changes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			// Config only drives diagnostics; the report runs regardless
			fmt.Fprintf(cmd.ErrOrStderr(), "[config] Warning: %v (using defaults)\n", err)
			cfg = config.DefaultConfig()
		}

		logger = logging.Initialize(cfg.Logging, verbose, nil)
		logging.Boot("Logging initialized", zap.Bool("verbose", verbose))
		logging.BootDebug("Config loaded",
			zap.String("path", configPath),
			zap.String("level", cfg.Logging.Level),
			zap.Bool("debug_mode", cfg.Logging.DebugMode))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the config at path.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runReport writes the report for the fixed text to stdout.
func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	t := text.New(text.Hello)
	reportLog := logging.Get(logging.CategoryReport)
	if err := report.Write(ctx, stdout, t, report.WithLogger(reportLog)); err != nil {
		logger.Error("Report failed", zap.Error(err))
		return fmt.Errorf("write report: %w", err)
	}
	reportLog.Info("Report written", zap.Int("length", t.Len()))
	return nil
}
