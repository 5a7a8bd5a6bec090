// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cockroachdb/errors"
)

// Contract is a value-level predicate attached to a scalar type, written in
// a small expression language:
//
//	hex(64|66)          hex string of 64 or 66 characters
//	len(1..64)          length between 1 and 64 inclusive
//	len(8)              exact length
//	regexp("^pat$")     regular-expression match
//	oneOf("a","b")      closed set of values
//	and(e1, e2, ...)    all sub-predicates hold
//
// Contracts are kept as a closed set of inspectable variants rather than
// opaque closures so emitters can render them into documentation and derive
// static constraints, and the validator can evaluate them against example
// payloads.
type Contract interface {
	// Validate reports whether value satisfies the predicate.
	Validate(value string) error
	// String renders the canonical source form of the predicate.
	String() string

	sealedContract()
}

// LengthRange requires len(value) within [Min, Max]. Min == Max expresses an
// exact length.
type LengthRange struct {
	Min int
	Max int
}

func (c LengthRange) sealedContract() {}

func (c LengthRange) String() string {
	if c.Min == c.Max {
		return fmt.Sprintf("len(%d)", c.Min)
	}
	return fmt.Sprintf("len(%d..%d)", c.Min, c.Max)
}

// Validate implements Contract.
func (c LengthRange) Validate(value string) error {
	n := len(value)
	if n < c.Min || n > c.Max {
		return errors.Newf("length %d outside %s", n, c.String())
	}
	return nil
}

// Pattern requires the value to match a regular expression.
type Pattern struct {
	Source string
	re     *regexp.Regexp
}

// NewPattern compiles source into a Pattern contract.
func NewPattern(source string) (Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "regexp %q", source)
	}
	return Pattern{Source: source, re: re}, nil
}

func (c Pattern) sealedContract() {}

func (c Pattern) String() string { return fmt.Sprintf("regexp(%q)", c.Source) }

// Validate implements Contract.
func (c Pattern) Validate(value string) error {
	if !c.re.MatchString(value) {
		return errors.Newf("%q does not match %s", value, c.String())
	}
	return nil
}

// OneOf requires the value to be a member of a closed set.
type OneOf struct {
	Values []string
}

func (c OneOf) sealedContract() {}

func (c OneOf) String() string {
	quoted := make([]string, len(c.Values))
	for i, v := range c.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("oneOf(%s)", strings.Join(quoted, ","))
}

// Validate implements Contract.
func (c OneOf) Validate(value string) error {
	for _, v := range c.Values {
		if v == value {
			return nil
		}
	}
	return errors.Newf("%q not in %s", value, c.String())
}

// HexLen requires a hexadecimal string whose total length is one of Lens.
// An optional 0x prefix counts toward the length, which is how the protocol
// distinguishes prefixed (66) from bare (64) addresses.
type HexLen struct {
	Lens []int
}

func (c HexLen) sealedContract() {}

func (c HexLen) String() string {
	parts := make([]string, len(c.Lens))
	for i, n := range c.Lens {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("hex(%s)", strings.Join(parts, "|"))
}

// Validate implements Contract.
func (c HexLen) Validate(value string) error {
	ok := false
	for _, n := range c.Lens {
		if len(value) == n {
			ok = true
			break
		}
	}
	if !ok {
		return errors.Newf("length %d outside %s", len(value), c.String())
	}
	body := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	for _, r := range body {
		if !isHexDigit(r) {
			return errors.Newf("%q is not hexadecimal", value)
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// And requires every sub-predicate to hold.
type And struct {
	Terms []Contract
}

func (c And) sealedContract() {}

func (c And) String() string {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("and(%s)", strings.Join(parts, ", "))
}

// Validate implements Contract.
func (c And) Validate(value string) error {
	for _, t := range c.Terms {
		if err := t.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// ---- parsing ----

type contractExpr struct {
	Hex    *hexExpr    `  @@`
	Len    *lenExpr    `| @@`
	Regexp *regexpExpr `| @@`
	OneOf  *oneOfExpr  `| @@`
	And    *andExpr    `| @@`
}

type hexExpr struct {
	Lens []int `"hex" "(" @Int ( "|" @Int )* ")"`
}

type lenExpr struct {
	Min int  `"len" "(" @Int`
	Max *int `( ".." @Int )? ")"`
}

type regexpExpr struct {
	Pattern string `"regexp" "(" @String ")"`
}

type oneOfExpr struct {
	Values []string `"oneOf" "(" @String ( "," @String )* ")"`
}

type andExpr struct {
	Terms []*contractExpr `"and" "(" @@ ( "," @@ )* ")"`
}

var contractLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
	{Name: "Punct", Pattern: `[(),|]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var contractParser = participle.MustBuild[contractExpr](
	participle.Lexer(contractLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// ParseContract parses a contract expression into its variant form.
func ParseContract(src string) (Contract, error) {
	expr, err := contractParser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrapf(err, "contract %q", src)
	}
	return buildContract(expr)
}

func buildContract(expr *contractExpr) (Contract, error) {
	switch {
	case expr.Hex != nil:
		if len(expr.Hex.Lens) == 0 {
			return nil, errors.New("hex() needs at least one length")
		}
		return HexLen{Lens: expr.Hex.Lens}, nil
	case expr.Len != nil:
		lo, hi := expr.Len.Min, expr.Len.Min
		if expr.Len.Max != nil {
			hi = *expr.Len.Max
		}
		if hi < lo {
			return nil, errors.Newf("len(%d..%d) is an empty range", lo, hi)
		}
		return LengthRange{Min: lo, Max: hi}, nil
	case expr.Regexp != nil:
		return NewPattern(expr.Regexp.Pattern)
	case expr.OneOf != nil:
		return OneOf{Values: expr.OneOf.Values}, nil
	case expr.And != nil:
		terms := make([]Contract, 0, len(expr.And.Terms))
		for _, t := range expr.And.Terms {
			built, err := buildContract(t)
			if err != nil {
				return nil, err
			}
			terms = append(terms, built)
		}
		return And{Terms: terms}, nil
	}
	return nil, errors.New("empty contract expression")
}
