// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/circularlabs/sdkgen/internal/emit"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/prompts"
	"github.com/circularlabs/sdkgen/internal/session"

	// Import backends to auto-register
	_ "github.com/circularlabs/sdkgen/internal/emit/dart"
	_ "github.com/circularlabs/sdkgen/internal/emit/golang"
	_ "github.com/circularlabs/sdkgen/internal/emit/java"
	_ "github.com/circularlabs/sdkgen/internal/emit/javascript"
	_ "github.com/circularlabs/sdkgen/internal/emit/php"
	_ "github.com/circularlabs/sdkgen/internal/emit/python"
	_ "github.com/circularlabs/sdkgen/internal/emit/typescript"
)

type generateOptions struct {
	langs string
	out   string
	yes   bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the client SDKs for the selected languages",
		Long: fmt.Sprintf(`Generate the client SDKs for the selected languages.

Available languages: %s`, strings.Join(profile.IDs(), ", ")),
		Example: `  # Interactive mode
  sdkgen generate

  # Generate every SDK
  sdkgen generate --lang all --out dist

  # Generate a subset
  sdkgen generate --lang go,python --out dist

  # Non-interactive (CI)
  sdkgen generate --yes`,
		PreRunE: session.PreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.langs, "lang", "", fmt.Sprintf("Languages, comma-separated, or \"all\" (%s)", strings.Join(profile.IDs(), ", ")))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip prompts, defaulting to all languages")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	selected, err := resolveLanguages(opts.langs, ctx.Config.Languages)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = ctx.Config.OutDir
	}

	if opts.yes {
		if len(selected) == 0 {
			selected = profile.IDs()
		}
	} else {
		err = prompts.RunGenerateForm(&selected, &out,
			!cmd.Flags().Changed("out") && ctx.Config.OutDir == out,
			profile.IDs())
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("no languages selected")
	}

	profiles := make([]*profile.Profile, 0, len(selected))
	for _, id := range selected {
		p, err := profile.Get(id)
		if err != nil {
			return err
		}
		profiles = append(profiles, p)
	}

	res, err := emit.Generate(emit.Options{
		Registry: ctx.Registry,
		Profiles: profiles,
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

	if err := emit.WriteAll(out, res.Artifacts); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Languages", Value: strings.Join(selected, ", ")},
		{Label: "Endpoints", Value: fmt.Sprintf("%d", len(ctx.Registry.Endpoints()))},
		{Label: "Artifacts", Value: fmt.Sprintf("%d", len(res.Artifacts))},
		{Label: "Output", Value: out},
	}, "SDKs generated")
	return nil
}

// resolveLanguages expands the --lang flag, falling back to the configured
// language list. An empty result means the caller should prompt.
func resolveLanguages(flag string, configured []string) ([]string, error) {
	if flag == "all" {
		return profile.IDs(), nil
	}

	var raw []string
	if flag != "" {
		raw = strings.Split(flag, ",")
	} else {
		raw = configured
	}

	var out []string
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, err := profile.Get(id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
