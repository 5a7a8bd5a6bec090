// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package parity cross-checks the emitted SDK surfaces. Every language must
// expose the same endpoint methods and the same helpers; a language that
// silently drops one ships a client that cannot reach part of the network.
//
// Ledger entries are canonical comparison keys (ident.Canonical output), so
// surfaces compare across languages regardless of local naming convention:
// "GetTransactionByID", "get_transaction_by_id" and "getTransactionbyID" all
// reduce to the same key.
package parity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Ledger records the method surface one language actually emitted.
type Ledger struct {
	Language string
	Methods  []string
	Helpers  []string
}

// Surface returns the pooled method set. Helpers are client methods too, so
// endpoint methods and helpers validate as one surface.
func (l Ledger) Surface() map[string]bool {
	s := make(map[string]bool, len(l.Methods)+len(l.Helpers))
	for _, m := range l.Methods {
		s[m] = true
	}
	for _, h := range l.Helpers {
		s[h] = true
	}
	return s
}

// Error reports one language whose surface is missing entries that at least
// one other language emitted.
type Error struct {
	Language string
	Missing  []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parity: %s is missing %s", e.Language, strings.Join(e.Missing, ", "))
}

// Validate compares every ledger against the union of all ledgers and
// returns one Error per deficient language, joined. The union baseline
// catches a dropped method no matter which language dropped it.
func Validate(ledgers []Ledger) error {
	union := map[string]bool{}
	for _, l := range ledgers {
		for name := range l.Surface() {
			union[name] = true
		}
	}

	var errs []error
	for _, l := range ledgers {
		have := l.Surface()
		var missing []string
		for name := range union {
			if !have[name] {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			errs = append(errs, &Error{Language: l.Language, Missing: missing})
		}
	}
	return errors.Join(errs...)
}
