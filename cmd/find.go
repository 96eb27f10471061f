/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/cache"
	"github.com/tristendillon/related/core/config"
	"github.com/tristendillon/related/core/finder"
	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/opener"
	"github.com/tristendillon/related/core/picker"
)

var (
	alwaysPrompt bool
	preview      bool
	printPath    bool
	listOnly     bool
)

var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Find the files related to <file> and open one",
	Long: `Classifies <file> by the Ember CLI directory convention, lists the related files
that exist and opens the one you pick. A single match opens right away unless
--always-prompt is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("always-prompt") {
			cfg.AlwaysPrompt = alwaysPrompt
		}
		if cmd.Flags().Changed("preview") {
			cfg.Preview = preview
		}

		rel, err := relativeToRoot(root, args[0])
		if err != nil {
			return err
		}

		f := finder.NewFinder(root, cache.NewHostCache())

		if listOnly {
			_, candidates, _ := f.Candidates(rel)
			for _, related := range candidates {
				status := "missing"
				if f.Exists(f.Abs(related.Path)) {
					status = "exists"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", related.Label, related.Path, status)
			}
			return nil
		}

		var open finder.Opener = &opener.PrintOpener{Out: cmd.OutOrStdout()}
		if !printPath {
			open = opener.New(cfg.Editor, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		}

		nav := &finder.Navigator{
			Finder: f,
			Picker: picker.New(cfg.Accessible),
			Opener: open,
			Options: finder.Options{
				AlwaysPrompt: cfg.AlwaysPrompt,
				Preview:      cfg.Preview,
			},
		}
		return nav.Navigate(cmd.Context(), rel)
	},
}

// relativeToRoot turns a path given on the command line into the slash
// separated, root-relative form the classifier works on. Files outside the
// root yield "".
func relativeToRoot(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", abs, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		logger.Debug("%s is outside of %s", abs, root)
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().BoolVar(&alwaysPrompt, "always-prompt", false, "Show the picker even for a single related file")
	findCmd.Flags().BoolVar(&preview, "preview", false, "Pass the editor's preview arguments when opening")
	findCmd.Flags().BoolVar(&printPath, "print", false, "Print the chosen path instead of opening it")
	findCmd.Flags().BoolVar(&listOnly, "list", false, "List every related file with whether it exists, then exit")
}
