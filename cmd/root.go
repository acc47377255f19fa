// Package cmd implements the ingestor command-line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ingestor",
	Short: "Interview-question ingestion service",
	Long: `Ingestor crawls interview-question content from web pages, repositories,
and a curated dataset, classifies it, and stages it for review before
publishing into the question catalog.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.AddCommand(httpdCommand())
	rootCmd.AddCommand(ingestCommand())
	rootCmd.AddCommand(importCommand())
}
