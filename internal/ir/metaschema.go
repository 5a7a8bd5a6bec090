// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Meta-schemas for the four IR document kinds. Documents are checked against
// these before any decoding, so shape defects (wrong YAML structure, unknown
// keys, mistyped values) surface with the document name attached and never
// reach the semantic validator. Semantic rules that need the whole graph —
// reference resolution, contract syntax, reserved-word collisions — stay in
// validate.go.

func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// typeExprDef is the recursive schema for one type expression: either the
// bare-string shorthand or the mapping form. "type" may be omitted in the
// mapping form when "fields" or "items" make the kind obvious; the loader
// infers record and array respectively.
func typeExprDef() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"type":     {Type: "string"},
					"items":    {Ref: "#/$defs/typeExpr"},
					"fields":   fieldsSchema(),
					"optional": {Type: "boolean"},
					"doc":      {Type: "string"},
				},
				AdditionalProperties: falseSchema(),
			},
		},
	}
}

func fieldsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Ref: "#/$defs/typeExpr"},
	}
}

var typesDocSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"types"},
	Properties: map[string]*jsonschema.Schema{
		"types": {
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"kind"},
				Properties: map[string]*jsonschema.Schema{
					"kind":     {Enum: []any{"scalar", "record", "enum", "array"}},
					"doc":      {Type: "string"},
					"base":     {Enum: []any{"string", "int", "float", "bool", "any"}},
					"contract": {Type: "string"},
					"fields":   fieldsSchema(),
					"variants": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"items":    {Ref: "#/$defs/typeExpr"},
				},
				AdditionalProperties: falseSchema(),
			},
		},
	},
	AdditionalProperties: falseSchema(),
	Defs:                 map[string]*jsonschema.Schema{"typeExpr": typeExprDef()},
}

func endpointSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"method": {Enum: []any{"GET", "POST"}},
			"path":   {Type: "string", Pattern: "^/"},
			"doc":    {Type: "string"},
			"request": {
				Type:                 "object",
				Required:             []string{"fields"},
				Properties:           map[string]*jsonschema.Schema{"fields": fieldsSchema()},
				AdditionalProperties: falseSchema(),
			},
			"response":        {Ref: "#/$defs/typeExpr"},
			"exampleRequest":  {Type: "object"},
			"exampleResponse": {},
		},
		AdditionalProperties: falseSchema(),
	}
}

var endpointsDocSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"category", "endpoints"},
	Properties: map[string]*jsonschema.Schema{
		"category": {Type: "string"},
		"defaults": endpointSchema(),
		"endpoints": {
			Type:                 "object",
			AdditionalProperties: endpointSchema(),
		},
	},
	AdditionalProperties: falseSchema(),
	Defs:                 map[string]*jsonschema.Schema{"typeExpr": typeExprDef()},
}

var helpersDocSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"category", "helpers"},
	Properties: map[string]*jsonschema.Schema{
		"category": {Enum: []any{"config", "crypto", "encoding", "errorHandling", "utility"}},
		"helpers": {
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"doc", "perLanguage"},
				Properties: map[string]*jsonschema.Schema{
					"doc": {Type: "string"},
					"perLanguage": {
						Type:                 "object",
						AdditionalProperties: &jsonschema.Schema{Type: "string"},
					},
				},
				AdditionalProperties: falseSchema(),
			},
		},
	},
	AdditionalProperties: falseSchema(),
}

var namingDocSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"tokens"},
	Properties: map[string]*jsonschema.Schema{
		"tokens": {
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
		},
	},
	AdditionalProperties: falseSchema(),
}

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}

var (
	typesDocResolved     = mustResolve(typesDocSchema)
	endpointsDocResolved = mustResolve(endpointsDocSchema)
	helpersDocResolved   = mustResolve(helpersDocSchema)
	namingDocResolved    = mustResolve(namingDocSchema)
)

// checkDocument validates a decoded YAML document against its meta-schema.
func checkDocument(resolved *jsonschema.Resolved, doc any, file string) *SchemaError {
	if err := resolved.Validate(doc); err != nil {
		return &SchemaError{
			Path:     file,
			Expected: "document matching the IR meta-schema",
			Actual:   err.Error(),
		}
	}
	return nil
}
