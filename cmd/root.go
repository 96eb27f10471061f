/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "related",
	Short: "Jump between related files of an Ember project.",
	Long: `Related maps a file of an Ember CLI project to the files that belong with it:
its template, styles, unit and integration tests, controller, route and so on.
It lists the ones that exist and opens the one you pick.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.SetWriterForAll(cmd.ErrOrStderr())
		if logfile == "" {
			return nil
		}

		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger.AddWriterForAll(f)
		logFile = f
		return nil
	},
}

var (
	logfile string
	verbose bool
	rootDir string
	logFile *os.File
)

func Execute() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (defaults to the working directory)")
}

func projectRoot() (string, error) {
	root := rootDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return abs, nil
}
