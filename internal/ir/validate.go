// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"fmt"

	"github.com/circularlabs/sdkgen/internal/ident"
)

// validate runs the semantic checks that need the fully built graph:
// endpoints are complete, the type graph is finite, example payloads honor
// their contracts, helper fragments target known languages, and no canonical
// name lands on a reserved identifier once transformed for a target
// language. All violations are collected before reporting.
func validate(reg *Registry, opts LoadOptions) error {
	v := &validator{reg: reg, opts: opts}
	v.checkEndpoints()
	v.checkCycles()
	v.checkHelpers()
	v.checkReserved()
	if v.errs.empty() {
		return nil
	}
	return v.errs.combined()
}

type validator struct {
	reg  *Registry
	opts LoadOptions
	errs errorList
}

func (v *validator) checkEndpoints() {
	for _, ep := range v.reg.endpoints {
		path := ep.Category + "." + ep.Name
		if ep.Method == "" {
			v.errs.addf(path+".method", "an HTTP method", "nothing")
		}
		if ep.Path == "" {
			v.errs.addf(path+".path", "a request path", "nothing")
		}
		if ep.Doc == "" {
			v.errs.addf(path+".doc", "a documentation line", "nothing")
		}
		if ep.Response == nil {
			v.errs.addf(path+".response", "a response type", "nothing")
		}
		if ep.ExampleRequest != nil && ep.Request != nil {
			v.checkExample(ep.ExampleRequest, ep.Request, path+".exampleRequest")
		}
	}
}

// checkExample evaluates scalar contracts against example payload values, so
// a contract like hex(64|66) on Address rejects a bad sample before it ends
// up in generated test scaffolds.
func (v *validator) checkExample(example map[string]any, shape *TypeDef, path string) {
	for _, f := range shape.Fields {
		raw, ok := example[f.Name]
		if !ok {
			continue
		}
		t := f.Type
		if t != nil && t.Kind == KindOptional {
			t = t.Elem
		}
		if t == nil || t.Kind != KindScalar || t.Contract == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}
		if err := t.Contract.Validate(value); err != nil {
			v.errs.addf(path+"."+f.Name, fmt.Sprintf("a value satisfying %s", t.Contract), "%v", err)
		}
	}
}

// checkCycles requires every record reachable from a declared type to
// terminate in scalars and enums within a finite unrolling.
func (v *validator) checkCycles() {
	const (
		stateActive = 1
		stateDone   = 2
	)
	state := map[*TypeDef]int{}

	var visit func(t *TypeDef, path string)
	visit = func(t *TypeDef, path string) {
		if t == nil {
			return
		}
		switch state[t] {
		case stateActive:
			name := t.Name
			if name == "" {
				name = path
			}
			v.errs.addf(path, "a finite type graph", "cycle through %s", name)
			return
		case stateDone:
			return
		}
		state[t] = stateActive
		for _, f := range t.Fields {
			visit(f.Type, path+"."+f.Name)
		}
		visit(t.Elem, path)
		state[t] = stateDone
	}

	for _, name := range v.reg.typeNames {
		visit(v.reg.types[name], "types."+name)
	}
	for _, ep := range v.reg.endpoints {
		visit(ep.Request, ep.Category+"."+ep.Name+".request")
		visit(ep.Response, ep.Category+"."+ep.Name+".response")
	}
}

func (v *validator) checkHelpers() {
	known := map[string]bool{}
	for _, id := range v.opts.Languages {
		known[id] = true
	}
	for _, h := range v.reg.helpers {
		path := "helpers." + h.Name
		if len(h.PerLanguage) == 0 {
			v.errs.addf(path+".perLanguage", "at least one language fragment", "none")
			continue
		}
		for _, id := range h.Languages() {
			if h.PerLanguage[id] == "" {
				v.errs.addf(path+".perLanguage."+id, "a non-empty source fragment", "empty string")
			}
			if len(known) > 0 && !known[id] {
				v.errs.addf(path+".perLanguage."+id, "a configured language id", "%q", id)
			}
		}
	}
}

// checkReserved transforms every canonical field and endpoint name with each
// language's case convention and rejects names that land on a reserved
// identifier. Generated code never escapes or mangles; the canonical name
// has to change instead.
func (v *validator) checkReserved() {
	if len(v.opts.Reserved) == 0 {
		return
	}
	sets := make([]reservedSet, 0, len(v.opts.Reserved))
	for _, r := range v.opts.Reserved {
		words := make(map[string]bool, len(r.Words))
		for _, w := range r.Words {
			words[w] = true
		}
		sets = append(sets, reservedSet{language: r.Language, conv: caseOnly(r.Case), words: words})
	}

	check := func(name, path string) {
		for _, set := range sets {
			emitted := v.reg.splitter.Transform(name, set.conv)
			if set.words[emitted] {
				v.errs.addf(path, "a name clear of reserved identifiers",
					"%q becomes reserved word %q in %s", name, emitted, set.language)
			}
		}
	}

	for _, name := range v.reg.typeNames {
		t := v.reg.types[name]
		for _, f := range t.Fields {
			check(f.Name, "types."+name+".fields."+f.Name)
		}
	}
	for _, ep := range v.reg.endpoints {
		path := ep.Category + "." + ep.Name
		check(ep.Name, path)
		if ep.Request != nil {
			for _, f := range ep.Request.Fields {
				check(f.Name, path+".request.fields."+f.Name)
			}
		}
		for t := range Walk(ep.Response) {
			for _, f := range t.Fields {
				check(f.Name, path+".response."+f.Name)
			}
		}
	}
}

type reservedSet struct {
	language string
	conv     ident.Convention
	words    map[string]bool
}

// caseOnly adapts a bare case convention into an ident.Convention with no
// explicit overrides, for reserved-word probing.
type caseOnly ident.Case

func (c caseOnly) IdentifierCase() ident.Case         { return ident.Case(c) }
func (c caseOnly) NameOverride(string) (string, bool) { return "", false }
