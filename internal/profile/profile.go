// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package profile holds the static configuration of each target language.
//
// A Profile tells the rest of the generator everything language-specific it
// needs to know: identifier conventions, the primitive type table, array and
// optional syntax, the async idiom, import lines, reserved words, and where
// the emitted files live. Profiles are built once at init by merging a shared
// base record with a per-language override record and are immutable after
// that; nothing derives profile state from the IR.
package profile

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
)

// Async names the calling convention of generated endpoint methods.
type Async string

// Supported async patterns.
const (
	// AsyncSync emits plain blocking methods.
	AsyncSync Async = "sync"
	// AsyncPromise emits Promise-returning methods.
	AsyncPromise Async = "promise"
	// AsyncAwait emits async methods awaited by the caller.
	AsyncAwait Async = "async-await"
	// AsyncFuture emits Future/CompletableFuture-returning methods.
	AsyncFuture Async = "future"
	// AsyncContext emits blocking methods taking a context argument.
	AsyncContext Async = "context"
)

// Layout names the artifact paths of one language, relative to the output
// root.
type Layout struct {
	Dir    string // SDK directory, e.g. "circular-go"
	Client string // ClientSource path inside Dir
	Types  string // TypeDeclarations path inside Dir
	Test   string // TestScaffold path inside Dir
}

// Profile is the static configuration of one target language.
type Profile struct {
	ID          string
	DisplayName string

	// Case is the identifier convention for methods (and for struct fields
	// in languages that rename them; dict/interface keys keep wire names).
	Case ident.Case
	// TypeCase is the convention for emitted type names.
	TypeCase ident.Case

	// Primitives maps scalar kinds to type expressions. A scalar kind
	// missing from the table is a hard generation error for this language.
	Primitives map[ir.ScalarKind]string
	// ArrayFormat renders an array type. "%s" is replaced by the element
	// type; a format without "%s" is used verbatim (PHP's bare "array").
	ArrayFormat string
	// OptionalFormat renders an optional type around its element.
	OptionalFormat string
	// OptionalBoxing substitutes the element type before OptionalFormat is
	// applied, for languages whose value types cannot be null (Java).
	OptionalBoxing map[string]string
	// RefFormat renders a reference to a named record or enum.
	RefFormat string

	Async Async

	// ClassName is the emitted client class. Every language uses the same
	// one so the SDKs present a uniform entry point.
	ClassName string
	// VersionConst is the identifier of the stamped library version
	// constant; the getVersion helper fragment of each language returns it.
	VersionConst string
	// Package is the package/namespace declaration of the emitted sources,
	// where the language has one.
	Package string

	// Imports are the verbatim import lines of the client source. An empty
	// entry renders as a separating blank line.
	Imports []string
	// TypesImports are the verbatim import lines of the type declarations.
	TypesImports []string

	Layout Layout

	// Reserved are the language's keywords. The schema registry rejects any
	// canonical name that lands on one after case conversion.
	Reserved []string

	// NameOverrides maps a canonical name to an explicit emitted name,
	// winning unconditionally over the token algorithm.
	NameOverrides map[string]string
}

// IdentifierCase implements ident.Convention.
func (p *Profile) IdentifierCase() ident.Case { return p.Case }

// NameOverride implements ident.Convention.
func (p *Profile) NameOverride(canonical string) (string, bool) {
	name, ok := p.NameOverrides[canonical]
	return name, ok
}

// Array renders an array type around elem.
func (p *Profile) Array(elem string) string { return applyFormat(p.ArrayFormat, elem) }

// Optional renders an optional type around elem, boxing it first when the
// language requires a nullable representation.
func (p *Profile) Optional(elem string) string {
	if boxed, ok := p.OptionalBoxing[elem]; ok {
		elem = boxed
	}
	return applyFormat(p.OptionalFormat, elem)
}

// Ref renders a reference to the named type.
func (p *Profile) Ref(name string) string { return applyFormat(p.RefFormat, name) }

func applyFormat(format, arg string) string {
	if strings.Contains(format, "%s") {
		return strings.ReplaceAll(format, "%s", arg)
	}
	return format
}

// merge builds a profile from base with every non-zero field of over winning.
// Map and slice fields are replaced whole, not merged element-wise.
func merge(base, over Profile) Profile {
	out := base
	if over.ID != "" {
		out.ID = over.ID
	}
	if over.DisplayName != "" {
		out.DisplayName = over.DisplayName
	}
	if over.Case != "" {
		out.Case = over.Case
	}
	if over.TypeCase != "" {
		out.TypeCase = over.TypeCase
	}
	if over.Primitives != nil {
		out.Primitives = over.Primitives
	}
	if over.ArrayFormat != "" {
		out.ArrayFormat = over.ArrayFormat
	}
	if over.OptionalFormat != "" {
		out.OptionalFormat = over.OptionalFormat
	}
	if over.OptionalBoxing != nil {
		out.OptionalBoxing = over.OptionalBoxing
	}
	if over.RefFormat != "" {
		out.RefFormat = over.RefFormat
	}
	if over.Async != "" {
		out.Async = over.Async
	}
	if over.ClassName != "" {
		out.ClassName = over.ClassName
	}
	if over.VersionConst != "" {
		out.VersionConst = over.VersionConst
	}
	if over.Package != "" {
		out.Package = over.Package
	}
	if over.Imports != nil {
		out.Imports = over.Imports
	}
	if over.TypesImports != nil {
		out.TypesImports = over.TypesImports
	}
	if over.Layout != (Layout{}) {
		out.Layout = over.Layout
	}
	if over.Reserved != nil {
		out.Reserved = over.Reserved
	}
	if over.NameOverrides != nil {
		out.NameOverrides = over.NameOverrides
	}
	return out
}

// All returns every built-in profile sorted by ID.
func All() []*Profile {
	out := make([]*Profile, 0, len(builtins))
	for _, p := range builtins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the IDs of every built-in profile, sorted.
func IDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the built-in profile with the given ID.
func Get(id string) (*Profile, error) {
	p, ok := builtins[id]
	if !ok {
		return nil, errors.Newf("unknown language profile %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return p, nil
}

// ReservedFor adapts the profiles' keyword lists into the form the schema
// registry checks canonical names against.
func ReservedFor(profiles []*Profile) []ir.ReservedWords {
	out := make([]ir.ReservedWords, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ir.ReservedWords{
			Language: p.ID,
			Case:     p.Case,
			Words:    p.Reserved,
		})
	}
	return out
}
