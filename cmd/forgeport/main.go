package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Flags
	descriptorURL string
	platformType  string
	outputPath    string
	verbose       bool
	assumeYes     bool
	unsupported   []string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "forgeport",
	Short: "Convert an Atlassian Connect descriptor into a Forge manifest",
	Long: `forgeport downloads a hosted Connect app descriptor, converts it into
an equivalent Forge manifest, and writes the result to manifest.yml.

If a manifest already exists at the output path, the two are merged;
freshly converted content always wins over prior content. Constructs
Forge cannot faithfully represent are collected as warnings and shown
before anything is written.

Example:
  forgeport --url https://example.com/atlassian-connect.json --type jira`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
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
	RunE: runConvert,
}

func init() {
	rootCmd.Flags().StringVar(&descriptorURL, "url", "", "URL of the hosted Connect descriptor (required)")
	rootCmd.Flags().StringVar(&platformType, "type", "", "Host product: jira or confluence (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "manifest.yml", "Path of the manifest to write")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer every prompt with its default (non-interactive)")
	rootCmd.Flags().StringSliceVar(&unsupported, "unsupported", nil, "Descriptor module types to flag as unsupported")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.MarkFlagRequired("url")
	rootCmd.MarkFlagRequired("type")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
