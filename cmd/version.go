/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/related/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of related",
	Long:  `Displays the version of related.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "related %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
