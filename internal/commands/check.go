// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/circularlabs/sdkgen/internal/emit"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/prompts"
	"github.com/circularlabs/sdkgen/internal/session"
)

type checkOptions struct {
	out string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the output tree matches the schema",
		Long: `Regenerate every SDK in memory and byte-compare the result against the
files on disk. Generation is deterministic, so any difference means the
output tree has drifted from the schema. Intended for CI.`,
		Example: `  # Check the default output directory
  sdkgen check

  # Check a specific tree
  sdkgen check --out dist`,
		PreRunE: session.PreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory to compare against")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = ctx.Config.OutDir
	}

	res, err := emit.Generate(emit.Options{
		Registry: ctx.Registry,
		Profiles: profile.All(),
		Stamp: emit.Stamp{
			Version: ctx.Config.SDKVersion,
			NAGURL:  ctx.Config.NAGURL,
			MockURL: ctx.Config.MockURL,
		},
		Log: ctx.Log,
	})
	if err != nil {
		return err
	}

	var drifted []string
	for _, a := range res.Artifacts {
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(a.Path)))
		switch {
		case os.IsNotExist(err):
			drifted = append(drifted, a.Path+" (missing)")
		case err != nil:
			return err
		case string(data) != a.Text:
			drifted = append(drifted, a.Path)
		}
	}

	if len(drifted) > 0 {
		return fmt.Errorf("output tree %s has drifted from the schema:\n  %s",
			out, strings.Join(drifted, "\n  "))
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Artifacts", Value: fmt.Sprintf("%d", len(res.Artifacts))},
		{Label: "Output", Value: out},
	}, "Output tree is up to date")
	return nil
}
