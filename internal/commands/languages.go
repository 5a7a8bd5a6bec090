// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/prompts"
)

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the supported target languages",
		Example: `  # List languages
  sdkgen languages`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make([]prompts.ResultField, 0, len(profile.IDs()))
			for _, p := range profile.All() {
				fields = append(fields, prompts.ResultField{
					Label: p.ID,
					Value: fmt.Sprintf("%s (%s)", p.DisplayName, p.Layout.Dir),
				})
			}
			prompts.PrintResult(fields, "")
			return nil
		},
	}
	return cmd
}
