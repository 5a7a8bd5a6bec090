// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"bytes"
	"path"
	"text/template"

	"github.com/cockroachdb/errors"
)

// RenderAll executes the backend's three templates against the model and
// binds the results to the profile's layout paths. Template names are given
// per kind; rendering stops at the first template error since a broken
// template invalidates the whole backend.
func RenderAll(m *Model, t *template.Template, names map[Kind]string) ([]Artifact, error) {
	layout := m.Profile.Layout
	paths := map[Kind]string{
		ClientSource:     path.Join(layout.Dir, layout.Client),
		TypeDeclarations: path.Join(layout.Dir, layout.Types),
		TestScaffold:     path.Join(layout.Dir, layout.Test),
	}

	out := make([]Artifact, 0, len(names))
	for _, kind := range []Kind{ClientSource, TypeDeclarations, TestScaffold} {
		var buf bytes.Buffer
		if err := t.ExecuteTemplate(&buf, names[kind], m); err != nil {
			return nil, errors.Wrapf(err, "render %s", kind)
		}
		out = append(out, Artifact{
			Language: m.Profile.ID,
			Kind:     kind,
			Path:     paths[kind],
			Text:     buf.String(),
		})
	}
	return out, nil
}
