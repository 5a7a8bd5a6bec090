// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package dart emits the Dart client SDK: Future-returning methods over
// package:http with immutable value classes and fromJson decoders.
package dart

import (
	"embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("dart").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits Dart sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "dart" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.dart.tmpl",
		emit.TypeDeclarations: "types.dart.tmpl",
		emit.TestScaffold:     "test.dart.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	f["decode"] = decode
	return f
}

// decode renders the fromJson expression for one field. JSON numbers decode
// as int unless the payload carries a fraction, so double fields go through
// num.toDouble.
func decode(f emit.FieldDecl) string {
	key := "json['" + f.Wire + "']"
	switch f.Shape {
	case emit.ShapeRecord:
		expr := f.Elem + ".fromJson(" + key + " as Map<String, dynamic>)"
		if f.Optional {
			return key + " == null ? null : " + expr
		}
		return expr
	case emit.ShapeEnum:
		expr := f.Elem + ".fromWire(" + key + " as String)"
		if f.Optional {
			return key + " == null ? null : " + expr
		}
		return expr
	case emit.ShapeRecordArray:
		expr := "(" + key + " as List).map((item) => " + f.Elem + ".fromJson(item as Map<String, dynamic>)).toList()"
		if f.Optional {
			return key + " == null ? null : " + expr
		}
		return expr
	case emit.ShapeScalarArray:
		elem := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSuffix(f.Type, "?"), "List<"), ">")
		expr := "(" + key + " as List).cast<" + elem + ">()"
		if f.Optional {
			return key + " == null ? null : " + expr
		}
		return expr
	default:
		if strings.TrimSuffix(f.Type, "?") == "double" {
			if f.Optional {
				return "(" + key + " as num?)?.toDouble()"
			}
			return "(" + key + " as num).toDouble()"
		}
		return key + " as " + f.Type
	}
}

func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		if f.Shape == emit.ShapeRecordArray || f.Shape == emit.ShapeScalarArray {
			return "const []"
		}
		return "null"
	case string:
		return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
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
