// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package schema embeds the canonical IR documents describing the Circular
// Protocol API: declared types, the 24 endpoint definitions grouped by
// category, the shared helper modules, and the naming overrides for
// irregular endpoint names. The generator ships these as its default input;
// an alternate IR root can be supplied on the command line.
package schema

import "embed"

//go:embed types.yaml naming.yaml endpoints/*.yaml helpers/*.yaml
var FS embed.FS
