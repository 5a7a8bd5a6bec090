// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package typemap

import "fmt"

// UnmappableScalarError reports a scalar kind missing from a profile's
// primitive table. Mapping fails hard rather than falling back to an untyped
// emission.
type UnmappableScalarError struct {
	Language string
	Type     string // declared scalar name, when the scalar has one
	Scalar   string // scalar kind
}

func (e *UnmappableScalarError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: no primitive mapping for scalar %s (kind %s)", e.Language, e.Type, e.Scalar)
	}
	return fmt.Sprintf("%s: no primitive mapping for scalar kind %s", e.Language, e.Scalar)
}

// UnmappableRecordError reports a record or enum shape that reached the
// mapper without a registered name.
type UnmappableRecordError struct {
	Language string
	Kind     string
}

func (e *UnmappableRecordError) Error() string {
	return fmt.Sprintf("%s: no name registered for inline %s shape", e.Language, e.Kind)
}

// NameCollisionError reports two distinct shapes resolving to the same
// generated type name. The IR or the naming rules must change; generation
// cannot proceed for any language.
type NameCollisionError struct {
	Name  string
	Path1 string
	Path2 string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("type name %s generated for both %s and %s", e.Name, e.Path1, e.Path2)
}
