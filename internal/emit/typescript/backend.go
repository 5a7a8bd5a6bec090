// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package typescript emits the TypeScript client SDK: an async/await class
// over the global fetch API and interface declarations.
package typescript

import (
	"embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("typescript").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits TypeScript sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "typescript" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.ts.tmpl",
		emit.TypeDeclarations: "types.ts.tmpl",
		emit.TestScaffold:     "test.ts.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	// Type expressions are qualified "types.X" for the client module;
	// inside types.ts the declarations live unqualified.
	f["unqualify"] = func(t string) string { return strings.ReplaceAll(t, "types.", "") }
	return f
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "[]"
		}
		return "undefined"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "undefined"
	}
}
