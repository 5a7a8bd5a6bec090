// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package session loads the shared run context for CLI commands: resolved
// configuration, the validated schema registry and the logger. Commands
// that operate on the IR attach PreRun and pull the context back out with
// RequireFromCommand.
package session

import (
	"context"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/circularlabs/sdkgen/internal/config"
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/logging"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/schema"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds everything a generation command needs: the resolved
// configuration, the loaded registry and the logger.
type Context struct {
	Config   *config.Config
	Registry *ir.Registry
	Log      *zap.Logger
}

// Load resolves configuration from the working directory, loads and
// validates the schema registry, and returns a context.Context carrying the
// result. schemaDir overrides the configured IR root; empty falls back to
// the config, and an empty config means the embedded schema.
func Load(ctx context.Context, schemaDir string, jsonLog, verbose bool) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolve working directory")
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if schemaDir != "" {
		cfg.SchemaDir = schemaDir
	}

	log := logging.New(jsonLog, verbose)

	reg, err := LoadRegistry(cfg.SchemaDir)
	if err != nil {
		return nil, err
	}

	sc := &Context{Config: cfg, Registry: reg, Log: log}
	return context.WithValue(ctx, contextKey{}, sc), nil
}

// LoadRegistry loads the IR from dir, or from the embedded schema when dir
// is empty, validated against the full built-in profile set.
func LoadRegistry(dir string) (*ir.Registry, error) {
	var fsys fs.FS = schema.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return ir.Load(fsys, ir.LoadOptions{
		Languages: profile.IDs(),
		Reserved:  profile.ReservedFor(profile.All()),
	})
}

// From extracts the session Context, or nil when none is stored.
func From(ctx context.Context) *Context {
	sc, _ := ctx.Value(contextKey{}).(*Context)
	return sc
}

// FromCommand extracts the session Context from a cobra command.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra command,
// failing when PreRun did not load one.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sc := FromCommand(cmd)
	if sc == nil {
		return nil, errors.New("session not loaded")
	}
	return sc, nil
}

// PreRun loads the session using the command's persistent flags and stores
// it in the command's context. Attach as PreRunE on commands that read the
// IR.
func PreRun(cmd *cobra.Command, _ []string) error {
	schemaDir, _ := cmd.Flags().GetString("schema")
	jsonLog, _ := cmd.Flags().GetBool("log-json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	ctx, err := Load(cmd.Context(), schemaDir, jsonLog, verbose)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
