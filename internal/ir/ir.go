// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package ir holds the canonical intermediate representation of the Circular
// Protocol API: type definitions, endpoint definitions and shared helper
// modules. The IR is loaded from declarative YAML documents, validated once,
// and handed to the emitters as an immutable value. Nothing downstream
// mutates it.
package ir

import (
	"sort"

	"github.com/circularlabs/sdkgen/internal/ident"
)

// Kind classifies a TypeDef.
type Kind string

// TypeDef kinds.
const (
	KindScalar   Kind = "scalar"
	KindRecord   Kind = "record"
	KindEnum     Kind = "enum"
	KindArray    Kind = "array"
	KindOptional Kind = "optional"
)

// ScalarKind is the primitive base of a scalar TypeDef. Profiles map these
// to concrete target-language types.
type ScalarKind string

// Scalar bases.
const (
	ScalarString ScalarKind = "string"
	ScalarInt    ScalarKind = "int"
	ScalarFloat  ScalarKind = "float"
	ScalarBool   ScalarKind = "bool"
	ScalarAny    ScalarKind = "any"
)

// TypeDef is one node of the canonical type graph.
//
// Exactly one group of fields is populated depending on Kind: scalars carry
// Base and an optional Contract, records carry ordered Fields, enums carry
// Variants, arrays and optionals carry Elem. Name is empty for inline
// (anonymous) types; the structural deduplicator assigns those a
// deterministic emitted name per language.
type TypeDef struct {
	Name     string
	Kind     Kind
	Doc      string
	Base     ScalarKind
	Contract Contract
	Fields   []Field
	Variants []string
	Elem     *TypeDef
}

// Field is a single named member of a record. Order within TypeDef.Fields is
// the declaration order of the source document and is preserved through
// emission.
type Field struct {
	Name string
	Type *TypeDef
	Doc  string
}

// IsOptional reports whether the field's type is an optional wrapper.
func (f Field) IsOptional() bool {
	return f.Type != nil && f.Type.Kind == KindOptional
}

// FieldByName returns the field with the given name, if present.
func (t *TypeDef) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// EndpointDef describes one API endpoint. Request is always a record;
// Response is the payload carried inside the uniform {Result, Response}
// envelope and may be a record, array or scalar.
type EndpointDef struct {
	Name            string
	Category        string
	Method          string
	Path            string
	Doc             string
	Request         *TypeDef
	Response        *TypeDef
	ExampleRequest  map[string]any
	ExampleResponse any
}

// HelperCategory groups the shared helper modules.
type HelperCategory string

// Helper categories.
const (
	HelperCrypto        HelperCategory = "crypto"
	HelperEncoding      HelperCategory = "encoding"
	HelperConfig        HelperCategory = "config"
	HelperErrorHandling HelperCategory = "errorHandling"
	HelperUtility       HelperCategory = "utility"
)

// KnownHelperCategories lists every valid helper category.
var KnownHelperCategories = []HelperCategory{
	HelperConfig,
	HelperCrypto,
	HelperEncoding,
	HelperErrorHandling,
	HelperUtility,
}

// HelperModule is a shared client method with one hand-written source
// fragment per target language. Coverage of every configured language is
// enforced at composition time; a missing fragment fails that language's
// generation instead of silently shrinking its method surface.
type HelperModule struct {
	Name        string
	Category    HelperCategory
	Doc         string
	PerLanguage map[string]string
}

// Languages returns the sorted language ids the module implements.
func (m *HelperModule) Languages() []string {
	langs := make([]string, 0, len(m.PerLanguage))
	for id := range m.PerLanguage {
		langs = append(langs, id)
	}
	sort.Strings(langs)
	return langs
}

// Registry is the fully loaded, validated IR for one generation run.
// It is immutable after Load returns.
type Registry struct {
	types     map[string]*TypeDef
	typeNames []string
	endpoints []*EndpointDef
	helpers   []*HelperModule
	splitter  *ident.Splitter
}

// Type returns a declared type by name.
func (r *Registry) Type(name string) (*TypeDef, bool) {
	t, ok := r.types[name]
	return t, ok
}

// TypeNames returns the sorted names of all declared types.
func (r *Registry) TypeNames() []string {
	return r.typeNames
}

// Endpoints returns all endpoints sorted by canonical name.
func (r *Registry) Endpoints() []*EndpointDef {
	return r.endpoints
}

// Endpoint returns the endpoint with the given canonical name.
func (r *Registry) Endpoint(name string) (*EndpointDef, bool) {
	for _, e := range r.endpoints {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Categories returns the sorted endpoint categories.
func (r *Registry) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range r.endpoints {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// EndpointsByCategory returns the endpoints of one category, name-sorted.
func (r *Registry) EndpointsByCategory(category string) []*EndpointDef {
	var out []*EndpointDef
	for _, e := range r.endpoints {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Helpers returns all helper modules sorted by category then name.
func (r *Registry) Helpers() []*HelperModule {
	return r.helpers
}

// Splitter returns the identifier splitter primed with the token overrides
// declared in the naming document.
func (r *Registry) Splitter() *ident.Splitter {
	return r.splitter
}
