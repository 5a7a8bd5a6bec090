// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package javascript emits the JavaScript client SDK: a Promise-returning
// CommonJS class with JSDoc type annotations backed by typedef
// declarations.
package javascript

import (
	"embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("javascript").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits JavaScript sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "javascript" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.js.tmpl",
		emit.TypeDeclarations: "types.js.tmpl",
		emit.TestScaffold:     "test.js.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	f["join"] = func(vs []string) string {
		quoted := make([]string, len(vs))
		for i, v := range vs {
			quoted[i] = strconv.Quote(v)
		}
		return strings.Join(quoted, "|")
	}
	return f
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "[]"
		}
		return "null"
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
		return "null"
	}
}
