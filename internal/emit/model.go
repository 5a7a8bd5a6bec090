// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"github.com/circularlabs/sdkgen/internal/compose"
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/profile"
)

// Shape tells a backend how to decode a wire value into the declared type.
// Languages with structural typing ignore it; languages that materialize
// classes (Java, PHP, Dart) branch on it.
type Shape string

// Shapes.
const (
	ShapeScalar      Shape = "scalar"
	ShapeRecord      Shape = "record"
	ShapeEnum        Shape = "enum"
	ShapeRecordArray Shape = "recordArray"
	ShapeScalarArray Shape = "scalarArray"
)

// FieldDecl is one record field or method parameter, fully resolved for one
// language.
type FieldDecl struct {
	// Wire is the JSON key, the canonical field name.
	Wire string
	// Name is the field identifier in the language's convention.
	Name string
	// Param is the identifier used in parameter position (lowerCamel, or
	// snake_case where the language's methods are snake_case).
	Param string
	// Type is the mapped type expression, optional wrapper included.
	Type string

	Shape Shape
	// Elem is the declared type name behind record, enum and recordArray
	// shapes.
	Elem string

	Optional bool
	Doc      string

	// Example is the value the test scaffold calls the method with: the
	// endpoint's example payload where declared, a synthesized one
	// otherwise.
	Example any
}

// TypeDecl is one named record or enum every language declares.
type TypeDecl struct {
	Name     string
	Kind     ir.Kind
	Doc      string
	Fields   []FieldDecl
	Variants []string
}

// IsEnum reports whether the declaration is an enum. Exposed as a method so
// templates can branch on it.
func (t TypeDecl) IsEnum() bool { return t.Kind == ir.KindEnum }

// IsRecord reports whether the declaration is a record.
func (t TypeDecl) IsRecord() bool { return t.Kind == ir.KindRecord }

// Is reports whether the field decodes as the named shape.
func (f FieldDecl) Is(shape string) bool { return string(f.Shape) == shape }

// Method is one endpoint method resolved for a language.
type Method struct {
	// Canonical is the endpoint's canonical name.
	Canonical string
	// Name is the emitted method name.
	Name string

	HTTPMethod string
	Path       string
	Doc        string

	Params []FieldDecl

	// RequestType names the request record declaration, empty when the
	// endpoint takes no fields.
	RequestType string

	// ResponseType is the mapped response type expression; ResponseShape
	// and ResponseElem drive decoding.
	ResponseType  string
	ResponseShape Shape
	ResponseElem  string
}

// ResponseIs reports whether the response decodes as the named shape.
func (m Method) ResponseIs(shape string) bool { return string(m.ResponseShape) == shape }

// Model is the complete input of one backend: the profile, the stamped
// constants and every method and declaration already mapped into the
// language. Backends only format; all naming and typing decisions are made
// here.
type Model struct {
	Profile *profile.Profile

	// Version is the SDK version stamped into the client's version
	// constant.
	Version string
	// NAGURL is the default gateway baked into the client constructor.
	NAGURL string
	// MockURL is the base URL the test scaffold targets.
	MockURL string

	Types   []TypeDecl
	Methods []Method
	Helpers []compose.Method
}
