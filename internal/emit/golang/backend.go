// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package golang emits the Go client SDK. Endpoint methods are blocking and
// take a context.Context; response payloads decode through encoding/json
// into the generated struct types.
package golang

import (
	"embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/circularlabs/sdkgen/internal/emit"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpls = template.Must(template.New("golang").Funcs(funcs()).ParseFS(tmplFS, "*.tmpl"))

func init() {
	emit.Register(&Backend{})
}

// Backend emits Go sources.
type Backend struct{}

// Language implements emit.Backend.
func (*Backend) Language() string { return "go" }

// Emit implements emit.Backend.
func (*Backend) Emit(m *emit.Model) ([]emit.Artifact, error) {
	return emit.RenderAll(m, tmpls, map[emit.Kind]string{
		emit.ClientSource:     "client.go.tmpl",
		emit.TypeDeclarations: "types.go.tmpl",
		emit.TestScaffold:     "test.go.tmpl",
	})
}

func funcs() template.FuncMap {
	f := emit.Funcs()
	f["lit"] = literal
	f["importLines"] = importLines
	return f
}

// importLines renders the profile's import list as the body of a grouped
// import block, blanks separating groups.
func importLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("\t" + line + "\n")
	}
	return b.String()
}

// literal renders a scaffold argument as Go source.
func literal(f emit.FieldDecl) string {
	switch v := f.Example.(type) {
	case nil:
		return "nil"
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
		return "nil"
	}
}
