package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/glyphgrid"
	"github.com/tsawler/glyphgrid/htmldoc"
)

var (
	// Global flags
	sourceURL  string
	debug      bool
	timeout    time.Duration
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd decodes the grid message and prints it to stdout.
var rootCmd = &cobra.Command{
	Use:   "glyphgrid",
	Short: "Decode a grid message from a published HTML document",
	Long: `glyphgrid fetches a published document containing a table of
(x, y, character) triples and prints the hidden message they encode,
reordered row-major and padded into a two-dimensional text grid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.apply(cmd.Flags(), &sourceURL, &debug, &timeout)
		}

		config := zap.NewProductionConfig()
		if debug {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := glyphgrid.FromURL(sourceURL).
			Debug(debug).
			Timeout(timeout).
			Logger(logger).
			Output(cmd.OutOrStdout()).
			Decode(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nProcess finished with value of %t.\n", true)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", glyphgrid.DefaultURL, "URL of the published document")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print raw document, table size, and coordinate sets")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "fetch timeout (0 to disable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, htmldoc.ErrNoTable) {
			fmt.Println("\nERROR: No table found! Can not continue.")
		} else {
			fmt.Printf("\nERROR: %v\n", err)
		}
		os.Exit(1)
	}
}
