/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/cache"
	"github.com/tristendillon/related/core/config"
	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/walker"
	"github.com/tristendillon/related/core/watcher"
)

var debounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the scan report whenever the project changes",
	Long:  `Watches the project and prints the scan report again after every burst of changes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("debounce") {
			cfg.Watch.Debounce = debounce
		}

		hosts := cache.NewHostCache()
		rescan := func() error {
			defer hosts.LogStats()
			return scan(cmd.OutOrStdout(), root, cfg, hosts)
		}

		if err := rescan(); err != nil {
			return err
		}

		fw, err := watcher.NewFileWatcher(watcher.Config{
			RootDir:  root,
			Exclude:  cfg.Exclude,
			Debounce: cfg.Watch.Debounce,
			Hosts:    hosts,
			OnChange: rescan,
		})
		if err != nil {
			return err
		}
		defer fw.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching %s for changes", root)
		if err := fw.Watch(ctx); err != nil {
			return fmt.Errorf("watcher stopped: %w", err)
		}
		logger.Info("Stopped watching")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&missingOnly, "missing", false, "Report missing related files instead of existing ones")
	watchCmd.Flags().StringVar(&reportFormat, "format", walker.FormatText, "Output format: text or yaml")
	watchCmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Quiet period before rescanning")
}
