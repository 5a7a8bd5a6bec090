// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package php emits the PHP client SDK: a synchronous curl-based client and
// typed value classes with fromArray decoders.
package php

import (
	"embed"
	"strconv"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("php").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits PHP sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "php" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.php.tmpl",
		emit.TypeDeclarations: "types.php.tmpl",
		emit.TestScaffold:     "test.php.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	f["decode"] = decode
	return f
}

// decode renders the fromArray assignment expression for one field.
func decode(f emit.FieldDecl) string {
	key := "$data['" + f.Wire + "']"
	switch f.Shape {
	case emit.ShapeRecord:
		expr := f.Elem + "::fromArray(" + key + ")"
		if f.Optional {
			return "isset(" + key + ") ? " + expr + " : null"
		}
		return expr
	case emit.ShapeEnum:
		expr := f.Elem + "::from(" + key + ")"
		if f.Optional {
			return "isset(" + key + ") ? " + expr + " : null"
		}
		return expr
	case emit.ShapeRecordArray:
		return "array_map(static fn (array $item) => " + f.Elem + "::fromArray($item), " + key + " ?? [])"
	default:
		if f.Optional {
			return key + " ?? null"
		}
		return key
	}
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "[]"
		}
		return "null"
	case string:
		return "'" + v + "'"
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
