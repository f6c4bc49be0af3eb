package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maiamcc/not-my-locker-room/internal/config"
	"github.com/maiamcc/not-my-locker-room/internal/output"
	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/orchestrator"
)

func newGenerateCmd() *cobra.Command {
	var (
		contentCSV   string
		pageTemplate string
		outfile      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the homepage and write it to the output file",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if contentCSV != "" {
				cfg.ContentCSV = contentCSV
			} else {
				printer.Info("No content csv filepath provided, using default: %s", cfg.ContentCSV)
			}
			if pageTemplate != "" {
				cfg.PageTemplate = pageTemplate
			} else {
				printer.Info("No page template filepath provided, using default: %s", cfg.PageTemplate)
			}
			if outfile != "" {
				cfg.Outfile = outfile
			} else {
				printer.Info("No outfile filepath provided, using default: %s", cfg.Outfile)
			}

			if err := validateFilepath(cfg.ContentCSV); err != nil {
				printer.Error("%v", err)
				os.Exit(1)
			}
			if err := validateFilepath(cfg.PageTemplate); err != nil {
				printer.Error("%v", err)
				os.Exit(1)
			}

			gen := orchestrator.New(
				orchestrator.WithRequestTimeout(cfg.FetchTimeout),
				orchestrator.WithLogger(slog.Default()),
			)

			err = gen.GenerateToFile(cmd.Context(), orchestrator.Request{
				ContentSource:  content.SourceFromFile(cfg.ContentCSV),
				TemplateSource: content.SourceFromFile(cfg.PageTemplate),
			}, cfg.Outfile)
			if err != nil {
				return err
			}

			printer.Success("Successfully wrote generated page to %s", cfg.Outfile)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentCSV, "content-csv", "", "path to csv containing content")
	cmd.Flags().StringVar(&pageTemplate, "page-template", "", "path to page template into which to insert content")
	cmd.Flags().StringVar(&outfile, "outfile", "", "path to write the completed file to")

	return cmd
}

// validateFilepath fails unless the path references a regular file.
func validateFilepath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("filepath provided (%q) is not a file (may be a directory or an invalid path)", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("filepath provided (%q) is not a regular file", path)
	}
	return nil
}
