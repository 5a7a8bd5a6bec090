// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/prompts"
	"github.com/circularlabs/sdkgen/internal/session"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the schema contents: endpoints, helpers and languages",
		Long: `Show a summary of the loaded schema including the endpoint catalog
grouped by category, the shared helper modules, and the configured
language profiles.`,
		Example: `  # Describe the embedded schema
  sdkgen describe`,
		PreRunE: session.PreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runDescribe(ctx)
		},
	}
	return cmd
}

func runDescribe(ctx *session.Context) error {
	reg := ctx.Registry

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Types", Value: strings.Join(reg.TypeNames(), ", ")},
		{Label: "Endpoints", Value: fmt.Sprintf("%d", len(reg.Endpoints()))},
		{Label: "Helpers", Value: fmt.Sprintf("%d", len(reg.Helpers()))},
	}, "")

	prompts.PrintHeading("Endpoints")
	for _, category := range reg.Categories() {
		endpoints := reg.EndpointsByCategory(category)
		names := make([]string, len(endpoints))
		for i, ep := range endpoints {
			names[i] = ep.Name
		}
		prompts.PrintResult([]prompts.ResultField{
			{Label: category, Value: strings.Join(names, ", ")},
		}, "")
	}

	prompts.PrintHeading("Helpers")
	byCategory := map[string][]string{}
	var categories []string
	for _, h := range reg.Helpers() {
		cat := string(h.Category)
		if _, seen := byCategory[cat]; !seen {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], h.Name)
	}
	for _, cat := range categories {
		prompts.PrintResult([]prompts.ResultField{
			{Label: cat, Value: strings.Join(byCategory[cat], ", ")},
		}, "")
	}

	prompts.PrintHeading("Languages")
	fields := make([]prompts.ResultField, 0, len(profile.IDs()))
	for _, p := range profile.All() {
		fields = append(fields, prompts.ResultField{
			Label: p.ID,
			Value: fmt.Sprintf("%s (%s)", p.DisplayName, p.Layout.Dir),
		})
	}
	prompts.PrintResult(fields, "")
	return nil
}
