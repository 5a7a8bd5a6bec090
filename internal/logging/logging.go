// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package logging constructs the zap logger used by the CLI commands.
//
// Default output is a quiet human-readable console; --log-json switches to
// machine-readable JSON lines. There is no package-level logger: commands
// build one and pass it down.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr. jsonOutput selects JSON lines
// over the console encoder; verbose lowers the level to debug.
func New(jsonOutput, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), level)
	return zap.New(core)
}
