package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"forgeport/internal/ask"
	"forgeport/internal/convert"
	"forgeport/internal/descriptor"
	"forgeport/internal/manifest"
)

var (
	warnHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	warnItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

const (
	choiceOverwrite = "Overwrite it with the freshly converted manifest"
	choiceAbort     = "Abort without writing anything"
)

// runConvert drives the whole pipeline: fetch, convert, merge, gate,
// write. Operator-initiated aborts exit cleanly with nothing written;
// only a failed descriptor download is a hard error.
func runConvert(cmd *cobra.Command, args []string) error {
	platform := convert.Platform(platformType)
	if platform != convert.PlatformJira && platform != convert.PlatformConfluence {
		return fmt.Errorf("invalid --type %q: must be %q or %q",
			platformType, convert.PlatformJira, convert.PlatformConfluence)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	loader := descriptor.NewLoader(logger)
	desc, err := loader.Fetch(ctx, descriptorURL)
	if err != nil {
		return err
	}

	var prompter ask.Prompter = ask.NewTerminal()
	if assumeYes {
		prompter = &ask.Static{}
	}

	m := manifest.NewSkeleton(desc)
	warnings, err := convert.Run(desc, platform, m, prompter,
		convert.Options{UnsupportedModules: unsupported}, logger)
	if err != nil {
		return err
	}

	if prior := manifest.Load(outputPath); prior != nil {
		if prior.HasConnectIdentity() {
			choice, err := prompter.Select(
				fmt.Sprintf("%s already defines the app.connect section.", outputPath),
				[]string{choiceOverwrite, choiceAbort})
			if err != nil {
				return err
			}
			if choice == choiceAbort {
				fmt.Println("Aborted. No manifest written.")
				return nil
			}
			// Overwrite: the prior manifest is discarded entirely.
		} else {
			m, err = manifest.Merge(m, prior)
			if err != nil {
				return err
			}
		}
	}

	if len(warnings) > 0 {
		fmt.Println(warnHeaderStyle.Render(fmt.Sprintf("%d warning(s) during conversion:", len(warnings))))
		for _, warning := range warnings {
			fmt.Println(warnItemStyle.Render("  - " + warning))
		}
		proceed, err := prompter.Confirm("Proceed and write the manifest?", true)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Aborted. No manifest written.")
			return nil
		}
	}

	if err := manifest.Save(outputPath, m); err != nil {
		return err
	}
	logger.Info("Manifest written",
		zap.String("path", outputPath),
		zap.Int("warnings", len(warnings)))
	fmt.Println(successStyle.Render("Wrote " + outputPath))
	return nil
}
