// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/circularlabs/sdkgen/internal/prompts"
	"github.com/circularlabs/sdkgen/internal/session"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the schema without generating",
		Long: `Load the schema, run every structural and contract check, and report
what the registry contains. Validation failures list every broken
definition, not just the first.`,
		Example: `  # Validate the embedded schema
  sdkgen validate

  # Validate a schema directory
  sdkgen validate --schema ./schema`,
		PreRunE: session.PreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runValidate(ctx)
		},
	}
	return cmd
}

func runValidate(ctx *session.Context) error {
	reg := ctx.Registry
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Types", Value: fmt.Sprintf("%d", len(reg.TypeNames()))},
		{Label: "Endpoints", Value: fmt.Sprintf("%d", len(reg.Endpoints()))},
		{Label: "Helpers", Value: fmt.Sprintf("%d", len(reg.Helpers()))},
		{Label: "Categories", Value: strings.Join(reg.Categories(), ", ")},
	}, "Schema is valid")
	return nil
}
