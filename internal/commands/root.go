// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdkgen",
		Short: "Generate the Circular Protocol client SDKs from the canonical schema",
		Long: `sdkgen renders the Circular Protocol API schema into client SDKs for
every supported language, with one method per endpoint and an identical
helper surface everywhere.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("schema", "", "Schema directory (default: embedded schema)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit structured JSON logs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
