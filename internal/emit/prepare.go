// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/circularlabs/sdkgen/internal/compose"
	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/typemap"
)

// Stamp carries the run constants baked into every generated client.
type Stamp struct {
	Version string
	NAGURL  string
	MockURL string
}

// Prepare resolves the registry into one language's model: helper methods
// composed, every type mapped, every endpoint method named. Mapping and
// composition errors are collected across the whole surface so one run
// reports every gap for the language at once.
func Prepare(reg *ir.Registry, namer *typemap.Namer, p *profile.Profile, stamp Stamp) (*Model, error) {
	mapper := typemap.NewMapper(p, namer)
	pr := &preparer{reg: reg, mapper: mapper, p: p}

	m := &Model{
		Profile: p,
		Version: stamp.Version,
		NAGURL:  stamp.NAGURL,
		MockURL: stamp.MockURL,
	}

	for _, decl := range namer.Declarations() {
		m.Types = append(m.Types, pr.typeDecl(decl))
	}
	for _, ep := range reg.Endpoints() {
		m.Methods = append(m.Methods, pr.method(ep))
	}

	helpers, err := compose.Compose(reg, p)
	if err != nil {
		pr.errs = append(pr.errs, err)
	}
	m.Helpers = helpers

	if len(pr.errs) > 0 {
		return nil, errors.Join(pr.errs...)
	}
	return m, nil
}

type preparer struct {
	reg    *ir.Registry
	mapper *typemap.Mapper
	p      *profile.Profile
	errs   []error
}

func (pr *preparer) typeDecl(decl typemap.Named) TypeDecl {
	out := TypeDecl{
		Name:     decl.Name,
		Kind:     decl.Def.Kind,
		Doc:      decl.Def.Doc,
		Variants: decl.Def.Variants,
	}
	for _, f := range decl.Def.Fields {
		out.Fields = append(out.Fields, pr.fieldDecl(f, nil))
	}
	return out
}

func (pr *preparer) method(ep *ir.EndpointDef) Method {
	m := Method{
		Canonical:  ep.Name,
		Name:       pr.reg.Splitter().Transform(ep.Name, pr.p),
		HTTPMethod: ep.Method,
		Path:       ep.Path,
		Doc:        ep.Doc,
	}

	for _, f := range ep.Request.Fields {
		m.Params = append(m.Params, pr.fieldDecl(f, ep.ExampleRequest))
	}
	if name, ok := pr.mapper.Namer().Name(ep.Request); ok {
		m.RequestType = name
	}

	if ep.Response != nil {
		m.ResponseType = pr.typeExpr(ep.Response)
		m.ResponseShape, m.ResponseElem = pr.shape(ep.Response)
	} else {
		m.ResponseType = pr.p.Primitives[ir.ScalarAny]
		m.ResponseShape = ShapeScalar
	}
	return m
}

func (pr *preparer) fieldDecl(f ir.Field, examples map[string]any) FieldDecl {
	tokens := pr.reg.Splitter().Tokens(f.Name)
	shape, elem := pr.shape(f.Type)

	example, ok := examples[f.Name]
	if !ok {
		example = exampleValue(f.Type)
	}

	return FieldDecl{
		Wire:     f.Name,
		Name:     ident.Render(tokens, pr.p.Case),
		Param:    ident.Render(tokens, paramCase(pr.p)),
		Type:     pr.typeExpr(f.Type),
		Shape:    shape,
		Elem:     elem,
		Optional: f.IsOptional(),
		Doc:      f.Doc,
		Example:  example,
	}
}

func (pr *preparer) typeExpr(def *ir.TypeDef) string {
	expr, err := pr.mapper.TypeExpr(def)
	if err != nil {
		pr.errs = append(pr.errs, err)
		return ""
	}
	return expr
}

// shape classifies def for decoding, looking through optional wrappers.
func (pr *preparer) shape(def *ir.TypeDef) (Shape, string) {
	base := unwrap(def)
	switch base.Kind {
	case ir.KindRecord:
		name, _ := pr.mapper.Namer().Name(base)
		return ShapeRecord, name
	case ir.KindEnum:
		name, _ := pr.mapper.Namer().Name(base)
		return ShapeEnum, name
	case ir.KindArray:
		elem := unwrap(base.Elem)
		if elem.Kind == ir.KindRecord {
			name, _ := pr.mapper.Namer().Name(elem)
			return ShapeRecordArray, name
		}
		return ShapeScalarArray, ""
	}
	return ShapeScalar, ""
}

func unwrap(def *ir.TypeDef) *ir.TypeDef {
	for def != nil && def.Kind == ir.KindOptional {
		def = def.Elem
	}
	return def
}

// paramCase picks the convention for parameter identifiers: snake where the
// language's methods are snake_case, lowerCamel everywhere else (including
// Go, whose exported-method case does not apply to locals).
func paramCase(p *profile.Profile) ident.Case {
	if p.Case == ident.Snake {
		return ident.Snake
	}
	return ident.Camel
}

// exampleValue synthesizes a plausible wire value for a parameter the
// endpoint declares no example for. Hex-constrained scalars get a 64-char
// hex string so generated scaffold calls satisfy the type's contract.
func exampleValue(def *ir.TypeDef) any {
	base := unwrap(def)
	switch base.Kind {
	case ir.KindScalar:
		return scalarExample(base)
	case ir.KindEnum:
		if len(base.Variants) > 0 {
			return base.Variants[0]
		}
		return ""
	case ir.KindArray, ir.KindRecord:
		return nil
	}
	return nil
}

func scalarExample(def *ir.TypeDef) any {
	switch def.Base {
	case ir.ScalarInt:
		return 1
	case ir.ScalarFloat:
		return 10.5
	case ir.ScalarBool:
		return true
	}
	switch def.Contract.(type) {
	case ir.HexLen:
		return strings.Repeat("ab", 32)
	case ir.Pattern:
		if def.Name == "Timestamp" {
			return "2025:06:01-12:00:00"
		}
		return "0xab"
	}
	return "test"
}
