// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package emit turns the prepared per-language model into SDK source text.
//
// Each target language registers a Backend; the driver prepares one Model
// per language from the shared immutable registry, runs every backend in
// parallel, cross-checks the emitted surfaces for parity and writes the
// artifacts atomically. A backend is a pure function of its model: same IR,
// same bytes.
package emit

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Kind classifies a generated artifact.
type Kind string

// Artifact kinds. Every language emits exactly one of each.
const (
	ClientSource     Kind = "client"
	TypeDeclarations Kind = "types"
	TestScaffold     Kind = "test"
)

// Artifact is one generated file, with a path relative to the output root
// in slash form.
type Artifact struct {
	Language string
	Kind     Kind
	Path     string
	Text     string
}

// Backend emits the artifacts of one target language.
type Backend interface {
	// Language returns the backend's profile id (e.g. "python").
	Language() string

	// Emit renders the client source, type declarations and test scaffold
	// for the model. Emission is all-or-nothing: any endpoint or helper
	// that cannot be rendered fails the language.
	Emit(m *Model) ([]Artifact, error)
}

var backends = make(map[string]Backend)

// Register adds a backend to the registry. Backends register themselves
// in init.
func Register(b Backend) {
	backends[b.Language()] = b
}

// Get retrieves a backend by language id.
func Get(language string) (Backend, error) {
	b, ok := backends[language]
	if !ok {
		return nil, errors.Newf("no backend registered for language %q", language)
	}
	return b, nil
}

// Available returns the sorted registered language ids.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
