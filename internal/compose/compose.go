// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package compose assembles the helper method surface of one generated
// client. Helper modules carry a hand-written fragment per language; compose
// resolves the fragment for a profile, derives the emitted method name, and
// checks that the fragment actually declares that name so the naming tables
// and the hand-written sources cannot drift apart.
package compose

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/profile"
)

// Method is one helper resolved for a target language, ready for an emitter
// to splice into the client class body.
type Method struct {
	// Name is the canonical helper name, e.g. "getNAGURL".
	Name string

	// Emitted is the method name in the target language, e.g. "get_nag_url".
	Emitted string

	Category ir.HelperCategory
	Doc      string

	// Source is the flush-left fragment as written in the helper module.
	// Emitters re-indent it to their class body level.
	Source string
}

// MissingHelperError reports a helper module with no fragment for a language.
// A single missing fragment fails the whole language rather than silently
// shrinking its method surface.
type MissingHelperError struct {
	Helper   string
	Language string
}

func (e *MissingHelperError) Error() string {
	return fmt.Sprintf("helper %s has no %s implementation", e.Helper, e.Language)
}

// Compose resolves every helper module in the registry for one profile,
// in the registry's category-then-name order. Errors are collected across
// all helpers and joined, so one run reports every gap at once.
func Compose(reg *ir.Registry, p *profile.Profile) ([]Method, error) {
	helpers := reg.Helpers()
	methods := make([]Method, 0, len(helpers))
	var errs []error

	for _, h := range helpers {
		fragment, ok := h.PerLanguage[p.ID]
		if !ok || strings.TrimSpace(fragment) == "" {
			errs = append(errs, &MissingHelperError{Helper: h.Name, Language: p.ID})
			continue
		}

		emitted := reg.Splitter().Transform(h.Name, p)
		if !strings.Contains(fragment, emitted) {
			errs = append(errs, errors.Newf("helper %s: %s fragment does not declare %s", h.Name, p.ID, emitted))
			continue
		}

		methods = append(methods, Method{
			Name:     h.Name,
			Emitted:  emitted,
			Category: h.Category,
			Doc:      h.Doc,
			Source:   fragment,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return methods, nil
}
