// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package typemap

import (
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/profile"
)

// Mapper renders canonical types as one language's type expressions.
type Mapper struct {
	profile *profile.Profile
	namer   *Namer
}

// NewMapper returns a mapper for the given profile backed by the shared
// namer.
func NewMapper(p *profile.Profile, n *Namer) *Mapper {
	return &Mapper{profile: p, namer: n}
}

// TypeExpr renders def as a type expression of the mapper's language.
//
// Scalars map through the profile's primitive table and fail hard when the
// table has no entry. Records and enums resolve to their registered names.
// Arrays and optionals wrap their element per the profile's syntax.
func (m *Mapper) TypeExpr(def *ir.TypeDef) (string, error) {
	switch def.Kind {
	case ir.KindScalar:
		prim, ok := m.profile.Primitives[def.Base]
		if !ok {
			return "", &UnmappableScalarError{
				Language: m.profile.ID,
				Type:     def.Name,
				Scalar:   string(def.Base),
			}
		}
		return prim, nil
	case ir.KindRecord, ir.KindEnum:
		name, ok := m.namer.Name(def)
		if !ok {
			return "", &UnmappableRecordError{Language: m.profile.ID, Kind: string(def.Kind)}
		}
		return m.profile.Ref(name), nil
	case ir.KindArray:
		elem, err := m.TypeExpr(def.Elem)
		if err != nil {
			return "", err
		}
		return m.profile.Array(elem), nil
	case ir.KindOptional:
		elem, err := m.TypeExpr(def.Elem)
		if err != nil {
			return "", err
		}
		return m.profile.Optional(elem), nil
	}
	return "", &UnmappableRecordError{Language: m.profile.ID, Kind: string(def.Kind)}
}

// Profile returns the mapper's language profile.
func (m *Mapper) Profile() *profile.Profile { return m.profile }

// Namer returns the shared name registry.
func (m *Mapper) Namer() *Namer { return m.namer }
