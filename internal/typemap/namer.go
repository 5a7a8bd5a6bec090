// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package typemap names the record and enum shapes reachable from endpoint
// schemas and renders canonical types as target-language type expressions.
//
// Naming runs once per generation and is shared by every language: a shape
// keeps the same PascalCase name in all seven outputs. Two structurally
// identical shapes under different paths are named independently; only a
// collision of generated names is an error.
package typemap

import (
	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
)

// Named is one type declaration every language's output must carry.
type Named struct {
	Name string
	Path string // IR path the shape came from, for collision reports
	Def  *ir.TypeDef
}

// Namer assigns deterministic names to declared and endpoint-derived record
// and enum shapes. Definitions are keyed by identity: the loader shares one
// *ir.TypeDef per declaration, so a declared type referenced from many
// endpoints resolves to a single name.
type Namer struct {
	splitter *ident.Splitter
	names    map[*ir.TypeDef]string
	paths    map[string]string // generated name -> first path
	decls    []Named
}

// NewNamer walks the registry and names every shape the emitters must
// declare: declared records and enums first, then request and response
// shapes per endpoint in sorted order. A request shape is named
// <Endpoint>Request, a response shape <Endpoint>Response, a nested record
// appends the PascalCase field path, and an anonymous array element appends
// Item.
func NewNamer(reg *ir.Registry) (*Namer, error) {
	n := &Namer{
		splitter: reg.Splitter(),
		names:    make(map[*ir.TypeDef]string),
		paths:    make(map[string]string),
	}

	for _, typeName := range reg.TypeNames() {
		def, _ := reg.Type(typeName)
		if def.Kind != ir.KindRecord && def.Kind != ir.KindEnum {
			continue
		}
		if err := n.register(def.Name, "types."+def.Name, def); err != nil {
			return nil, err
		}
		if def.Kind == ir.KindRecord {
			if err := n.walkFields(def, def.Name, "types."+def.Name); err != nil {
				return nil, err
			}
		}
	}

	for _, ep := range reg.Endpoints() {
		base := n.pascal(ep.Name)
		epPath := ep.Category + "." + ep.Name

		if ep.Request != nil && len(ep.Request.Fields) > 0 {
			name := base + "Request"
			if err := n.register(name, epPath+".request", ep.Request); err != nil {
				return nil, err
			}
			if err := n.walkFields(ep.Request, name, epPath+".request"); err != nil {
				return nil, err
			}
		}

		if ep.Response != nil {
			if err := n.walkShape(ep.Response, base+"Response", epPath+".response"); err != nil {
				return nil, err
			}
		}
	}

	return n, nil
}

// walkShape names def when it is an anonymous record and recurses through
// arrays and optionals. Declared shapes are already named and are not
// revisited.
func (n *Namer) walkShape(def *ir.TypeDef, name, path string) error {
	switch def.Kind {
	case ir.KindRecord:
		if _, ok := n.names[def]; ok {
			return nil
		}
		if err := n.register(name, path, def); err != nil {
			return err
		}
		return n.walkFields(def, name, path)
	case ir.KindArray:
		return n.walkShape(def.Elem, name+"Item", path+"[]")
	case ir.KindOptional:
		return n.walkShape(def.Elem, name, path)
	}
	return nil
}

func (n *Namer) walkFields(def *ir.TypeDef, owner, path string) error {
	for _, f := range def.Fields {
		name := owner + n.pascal(f.Name)
		if err := n.walkShape(f.Type, name, path+"."+f.Name); err != nil {
			return err
		}
	}
	return nil
}

func (n *Namer) register(name, path string, def *ir.TypeDef) error {
	if first, taken := n.paths[name]; taken {
		return &NameCollisionError{Name: name, Path1: first, Path2: path}
	}
	n.paths[name] = path
	n.names[def] = name
	n.decls = append(n.decls, Named{Name: name, Path: path, Def: def})
	return nil
}

func (n *Namer) pascal(name string) string {
	return ident.Render(n.splitter.Tokens(name), ident.Pascal)
}

// Name returns the generated name of def, if it has one.
func (n *Namer) Name(def *ir.TypeDef) (string, bool) {
	name, ok := n.names[def]
	return name, ok
}

// Declarations returns every named shape in declaration order: declared
// types first, then endpoint shapes in endpoint order.
func (n *Namer) Declarations() []Named {
	out := make([]Named, len(n.decls))
	copy(out, n.decls)
	return out
}
