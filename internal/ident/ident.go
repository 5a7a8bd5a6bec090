// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package ident converts canonical endpoint and helper names into the
// identifier conventions of each target language.
//
// Canonical names are camelCase-ish compounds as they appear in the IR
// ("checkWallet", "getNAGURL"). They are split into lexical tokens on case
// and digit boundaries, then recomposed per convention. Some endpoint names
// are not mechanically splittable ("getTransactionbyID" hides a lowercase
// "by" mid-compound); those carry an explicit token override in the IR's
// naming document, consulted through a Splitter.
package ident

import (
	"strings"
	"unicode"
)

// Case is an identifier convention of a target language.
type Case string

// Supported identifier conventions.
const (
	Pascal Case = "pascal"
	Camel  Case = "camel"
	Snake  Case = "snake"
)

// Valid reports whether c is a known convention.
func (c Case) Valid() bool {
	switch c {
	case Pascal, Camel, Snake:
		return true
	}
	return false
}

// Convention describes how one target language names identifiers.
// It is implemented by profile.Profile.
type Convention interface {
	// IdentifierCase returns the language's convention for method names.
	IdentifierCase() Case

	// NameOverride returns an explicit emitted name for a canonical name.
	// When present it wins unconditionally over the algorithmic result.
	NameOverride(canonical string) (string, bool)
}

// Splitter tokenizes canonical names, consulting an override table for the
// irregular ones. The override table comes from the schema registry so that
// naming stays part of the single source of truth.
type Splitter struct {
	overrides map[string][]string
}

// NewSplitter returns a Splitter with the given token overrides.
// A nil map is allowed and yields purely algorithmic splitting.
func NewSplitter(overrides map[string][]string) *Splitter {
	return &Splitter{overrides: overrides}
}

// Tokens returns the lexical tokens of a canonical name. Overridden names
// return their declared token list; all others are split algorithmically.
func (s *Splitter) Tokens(name string) []string {
	if s != nil && s.overrides != nil {
		if tokens, ok := s.overrides[name]; ok {
			out := make([]string, len(tokens))
			copy(out, tokens)
			return out
		}
	}
	return Split(name)
}

// Transform converts a canonical name into the convention of conv.
// An explicit per-language name override wins over the token algorithm.
func (s *Splitter) Transform(name string, conv Convention) string {
	if emitted, ok := conv.NameOverride(name); ok {
		return emitted
	}
	return Render(s.Tokens(name), conv.IdentifierCase())
}

// Split tokenizes a name on case and digit/letter boundaries.
//
// Boundaries are: lower→upper ("checkWallet" → check, Wallet), the end of an
// uppercase run followed by a lowercase letter ("NAGKey" → NAG, Key), and
// letter↔digit transitions ("sha256" → sha, 256). An uppercase run with no
// following lowercase stays one token ("getNAGURL" → get, NAGURL), which is
// exactly why irregular names need the override table.
func Split(name string) []string {
	var tokens []string
	runes := []rune(name)
	start := 0

	flush := func(end int) {
		if end > start {
			tokens = append(tokens, string(runes[start:end]))
			start = end
		}
	}

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case isSeparator(cur):
			flush(i)
			start = i + 1
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			flush(i)
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
		case unicode.IsDigit(cur) != unicode.IsDigit(prev):
			flush(i)
		}
	}
	flush(len(runes))

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// Render recomposes tokens per the given convention.
//
// Acronym tokens (all uppercase, like "ID" or "NAG") keep their form in
// pascal and camel output, except that a leading acronym in camel output is
// fully lowercased. Snake output lowercases everything.
func Render(tokens []string, c Case) string {
	if len(tokens) == 0 {
		return ""
	}

	switch c {
	case Snake:
		parts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if tok != "" {
				parts = append(parts, strings.ToLower(tok))
			}
		}
		return strings.Join(parts, "_")
	case Camel:
		var sb strings.Builder
		wroteFirst := false
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			if !wroteFirst {
				sb.WriteString(strings.ToLower(tok))
				wroteFirst = true
				continue
			}
			sb.WriteString(titleToken(tok))
		}
		return sb.String()
	default: // Pascal
		var sb strings.Builder
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			sb.WriteString(titleToken(tok))
		}
		return sb.String()
	}
}

// titleToken capitalizes a token, preserving acronyms.
func titleToken(tok string) string {
	if isAcronym(tok) {
		return tok
	}
	runes := []rune(tok)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func isAcronym(tok string) bool {
	hasUpper := false
	for _, r := range tok {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// Canonical reduces an emitted identifier to its canonical comparison key:
// lowercase with every separator removed. Any convention applied to the same
// token sequence squashes to the same key, so parity checks can compare
// method sets across languages without knowing which language emitted them.
func Canonical(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
