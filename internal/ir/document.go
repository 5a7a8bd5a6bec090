// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Raw document model. The loader decodes each YAML source into these types
// before meta-validation and graph building. Field mappings decode through
// rawFields so declaration order survives; plain maps are fine everywhere
// order is irrelevant (types and endpoints are sorted by name downstream).

type typesDoc struct {
	Types map[string]rawTypeDecl `yaml:"types"`
}

type rawTypeDecl struct {
	Kind     string       `yaml:"kind"`
	Doc      string       `yaml:"doc"`
	Base     string       `yaml:"base"`
	Contract string       `yaml:"contract"`
	Fields   rawFields    `yaml:"fields"`
	Variants []string     `yaml:"variants"`
	Items    *rawTypeExpr `yaml:"items"`
}

type endpointsDoc struct {
	Category  string                 `yaml:"category"`
	Defaults  *rawEndpoint           `yaml:"defaults"`
	Endpoints map[string]rawEndpoint `yaml:"endpoints"`
}

type rawEndpoint struct {
	Method          string         `yaml:"method"`
	Path            string         `yaml:"path"`
	Doc             string         `yaml:"doc"`
	Request         *rawShape      `yaml:"request"`
	Response        *rawTypeExpr   `yaml:"response"`
	ExampleRequest  map[string]any `yaml:"exampleRequest"`
	ExampleResponse any            `yaml:"exampleResponse"`
}

type rawShape struct {
	Fields rawFields `yaml:"fields"`
}

type helpersDoc struct {
	Category string               `yaml:"category"`
	Helpers  map[string]rawHelper `yaml:"helpers"`
}

type rawHelper struct {
	Doc         string            `yaml:"doc"`
	PerLanguage map[string]string `yaml:"perLanguage"`
}

type namingDoc struct {
	Tokens map[string][]string `yaml:"tokens"`
}

// rawTypeExpr is one type expression node. It accepts either the mapping
// form ({type: ..., items: ..., fields: ..., optional: ...}) or, as a
// shorthand, a bare scalar naming the type:
//
//	Address: Address
//	Address: { type: Address, doc: Wallet address to look up. }
type rawTypeExpr struct {
	Type     string       `yaml:"type"`
	Items    *rawTypeExpr `yaml:"items"`
	Fields   rawFields    `yaml:"fields"`
	Optional bool         `yaml:"optional"`
	Doc      string       `yaml:"doc"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *rawTypeExpr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Type = node.Value
		return nil
	}
	type plain rawTypeExpr
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = rawTypeExpr(p)
	return nil
}

// rawFields is an order-preserving field mapping. yaml.v3 decodes mappings
// into Go maps with the order lost, so this decodes straight off the node's
// key/value pairs instead.
type rawFields []rawFieldEntry

type rawFieldEntry struct {
	Name string
	Expr rawTypeExpr
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *rawFields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Newf("fields must be a mapping, got yaml kind %d", node.Kind)
	}
	out := make(rawFields, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		var expr rawTypeExpr
		if err := node.Content[i+1].Decode(&expr); err != nil {
			return errors.Wrapf(err, "field %q", key.Value)
		}
		out = append(out, rawFieldEntry{Name: key.Value, Expr: expr})
	}
	*f = out
	return nil
}

// get returns the entry index for name, or -1.
func (f rawFields) index(name string) int {
	for i, e := range f {
		if e.Name == name {
			return i
		}
	}
	return -1
}
