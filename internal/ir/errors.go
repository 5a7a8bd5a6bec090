// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// SchemaError reports a malformed or inconsistent IR document. It aborts the
// whole run: generation never starts from a registry that failed to load.
type SchemaError struct {
	// Path locates the offending node, e.g.
	// "endpoints/wallet.yaml: endpoints.checkWallet.request.fields.Address.type".
	Path     string
	Expected string
	Actual   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func schemaErrorf(path, expected, actualFormat string, args ...any) *SchemaError {
	return &SchemaError{
		Path:     path,
		Expected: expected,
		Actual:   fmt.Sprintf(actualFormat, args...),
	}
}

// errorList accumulates schema errors so one load pass can report every
// defect in the documents instead of the first.
type errorList struct {
	errs []error
}

func (l *errorList) add(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *errorList) addf(path, expected, actualFormat string, args ...any) {
	l.errs = append(l.errs, schemaErrorf(path, expected, actualFormat, args...))
}

func (l *errorList) empty() bool { return len(l.errs) == 0 }

func (l *errorList) combined() error {
	return errors.Join(l.errs...)
}
