// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package python emits the Python client SDK: a synchronous requests-based
// client and TypedDict declarations.
package python

import (
	"embed"
	"strconv"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("python").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits Python sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "python" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.py.tmpl",
		emit.TypeDeclarations: "types.py.tmpl",
		emit.TestScaffold:     "test.py.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	return f
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "[]"
		}
		return "None"
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "None"
	}
}
