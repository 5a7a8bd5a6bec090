// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"strings"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/ident"
)

// Funcs is the template helper set shared by every backend. Backends extend
// it with their own literal renderer.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"indent": Indent,
		"pascal": func(s string) string { return ident.Render(ident.Split(s), ident.Pascal) },
		"camel":  func(s string) string { return ident.Render(ident.Split(s), ident.Camel) },
		"snake":  func(s string) string { return ident.Render(ident.Split(s), ident.Snake) },
		"upper":  strings.ToUpper,
		"trim":   strings.TrimSpace,
	}
}

// Indent prefixes every non-blank line of s with n spaces. Helper fragments
// are written flush left and indented to each language's class body level
// with this.
func Indent(n int, s string) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
