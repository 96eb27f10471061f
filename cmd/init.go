/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/config"
	"github.com/tristendillon/related/core/logger"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default related.yaml",
	Long:  `Creates related.yaml in the project root with the default settings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		root, err := projectRoot()
		if err != nil {
			return err
		}

		path, err := config.Write(root, config.Default(), force)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
