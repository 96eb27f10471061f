/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/cache"
	"github.com/tristendillon/related/core/config"
	"github.com/tristendillon/related/core/finder"
	"github.com/tristendillon/related/core/walker"
)

var (
	missingOnly  bool
	reportFormat string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List every recognised file with its related files",
	Long: `Walks the project, classifies every file and prints the related files that
exist. With --missing it prints the related files that don't exist instead,
e.g. components without tests.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return scan(cmd.OutOrStdout(), root, cfg, cache.NewHostCache())
	},
}

func scan(out io.Writer, root string, cfg *config.Config, hosts *cache.HostCache) error {
	w := walker.NewProjectWalker(finder.NewFinder(root, hosts), cfg.Exclude)
	files, err := w.Walk()
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	report := walker.Report{Files: files, MissingOnly: missingOnly}
	return report.Write(out, reportFormat)
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&missingOnly, "missing", false, "Report missing related files instead of existing ones")
	scanCmd.Flags().StringVar(&reportFormat, "format", walker.FormatText, "Output format: text or yaml")
}
