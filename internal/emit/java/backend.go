// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package java emits the Java client SDK: CompletableFuture methods over
// java.net.http with Jackson-bound nested type classes.
package java

import (
	"embed"
	"strconv"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("java").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits Java sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "java" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.java.tmpl",
		emit.TypeDeclarations: "types.java.tmpl",
		emit.TestScaffold:     "test.java.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	f["boxed"] = boxed
	f["last"] = func(i int, vs []string) bool { return i == len(vs)-1 }
	return f
}

// boxed lifts primitive type expressions into their boxed forms for generic
// positions (CompletableFuture<long> is not a type).
func boxed(t string) string {
	switch t {
	case "long":
		return "Long"
	case "double":
		return "Double"
	case "boolean":
		return "Boolean"
	}
	return t
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "List.of()"
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
