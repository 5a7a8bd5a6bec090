// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"io/fs"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/circularlabs/sdkgen/internal/ident"
)

// Document layout under the IR root:
//
//	types.yaml        declared types (scalars, records, enums)
//	naming.yaml       token overrides for irregular canonical names
//	endpoints/*.yaml  one document per endpoint category
//	helpers/*.yaml    one document per helper category
const (
	typesFile     = "types.yaml"
	namingFile    = "naming.yaml"
	endpointsGlob = "endpoints/*.yaml"
	helpersGlob   = "helpers/*.yaml"
)

// ReservedWords carries one target language's reserved identifiers so the
// semantic validator can reject canonical names that would transform into
// them. The registry stays ignorant of language profiles; callers hand the
// word lists in.
type ReservedWords struct {
	Language string
	Case     ident.Case
	Words    []string
}

// LoadOptions tune registry validation.
type LoadOptions struct {
	// Languages is the full set of configured language ids. When set,
	// helper perLanguage keys outside this set are schema errors, which
	// catches misspelled language ids at load time instead of leaving an
	// orphan fragment nothing ever composes.
	Languages []string
	// Reserved lists per-language reserved identifiers to check canonical
	// field and endpoint names against.
	Reserved []ReservedWords
}

// Load reads, merges and validates every IR document under fsys and returns
// the immutable registry. Any defect — unreadable YAML, meta-schema
// violation, unresolved type reference, malformed contract, reserved-word
// collision — aborts the load; errors are collected across all documents so
// one pass reports every problem.
func Load(fsys fs.FS, opts LoadOptions) (*Registry, error) {
	l := &loader{
		fsys:  fsys,
		types: map[string]*TypeDef{},
	}
	l.loadNaming()
	l.loadTypes()
	l.loadEndpoints()
	l.loadHelpers()
	if !l.errs.empty() {
		return nil, l.errs.combined()
	}
	reg := l.registry()
	if err := validate(reg, opts); err != nil {
		return nil, err
	}
	return reg, nil
}

type loader struct {
	fsys fs.FS
	errs errorList

	types     map[string]*TypeDef
	endpoints []*EndpointDef
	helpers   []*HelperModule
	tokens    map[string][]string
}

// readDoc loads one YAML file, meta-validates it and decodes it into out.
func (l *loader) readDoc(file string, resolved *jsonschema.Resolved, out any) bool {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		l.errs.add(errors.Wrapf(err, "read IR document %s", file))
		return false
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		l.errs.addf(file, "well-formed YAML", "%v", err)
		return false
	}
	if serr := checkDocument(resolved, doc, file); serr != nil {
		l.errs.add(serr)
		return false
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		l.errs.addf(file, "decodable IR document", "%v", err)
		return false
	}
	return true
}

func (l *loader) loadNaming() {
	if _, err := fs.Stat(l.fsys, namingFile); errors.Is(err, fs.ErrNotExist) {
		return
	}
	var doc namingDoc
	if !l.readDoc(namingFile, namingDocResolved, &doc) {
		return
	}
	for name, tokens := range doc.Tokens {
		if len(tokens) == 0 {
			l.errs.addf(namingFile+": tokens."+name, "at least one token", "empty list")
		}
	}
	l.tokens = doc.Tokens
}

func (l *loader) loadTypes() {
	var doc typesDoc
	if !l.readDoc(typesFile, typesDocResolved, &doc) {
		return
	}

	// Stub every declared name first so bodies can reference each other
	// regardless of declaration order.
	names := make([]string, 0, len(doc.Types))
	for name := range doc.Types {
		names = append(names, name)
		l.types[name] = &TypeDef{Name: name}
	}
	sort.Strings(names)

	for _, name := range names {
		decl := doc.Types[name]
		path := typesFile + ": types." + name
		t := l.types[name]
		t.Kind = Kind(decl.Kind)
		t.Doc = decl.Doc
		switch t.Kind {
		case KindScalar:
			if decl.Base == "" {
				l.errs.addf(path+".base", "a scalar base kind", "nothing")
				continue
			}
			t.Base = ScalarKind(decl.Base)
			if decl.Contract != "" {
				contract, err := ParseContract(decl.Contract)
				if err != nil {
					l.errs.addf(path+".contract", "a well-formed contract expression", "%v", err)
					continue
				}
				t.Contract = contract
			}
		case KindRecord:
			t.Fields = l.buildFields(decl.Fields, path+".fields")
		case KindEnum:
			if len(decl.Variants) == 0 {
				l.errs.addf(path+".variants", "at least one variant", "none")
				continue
			}
			t.Variants = decl.Variants
		case KindArray:
			if decl.Items == nil {
				l.errs.addf(path+".items", "an element type", "nothing")
				continue
			}
			t.Elem = l.buildExpr(*decl.Items, path+".items")
		}
		if decl.Contract != "" && t.Kind != KindScalar {
			l.errs.addf(path+".contract", "contract only on scalar types", "kind %s", t.Kind)
		}
	}
}

func (l *loader) loadEndpoints() {
	files, err := fs.Glob(l.fsys, endpointsGlob)
	if err != nil {
		l.errs.add(errors.Wrap(err, "list endpoint documents"))
		return
	}
	seen := map[string]string{}
	for _, file := range files {
		var doc endpointsDoc
		if !l.readDoc(file, endpointsDocResolved, &doc) {
			continue
		}
		names := make([]string, 0, len(doc.Endpoints))
		for name := range doc.Endpoints {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			path := doc.Category + "." + name
			if prev, dup := seen[name]; dup {
				l.errs.addf(path, "a unique endpoint name", "already declared in %s", prev)
				continue
			}
			seen[name] = file
			merged := mergeEndpoint(doc.Defaults, doc.Endpoints[name])
			l.endpoints = append(l.endpoints, l.buildEndpoint(doc.Category, name, merged, path))
		}
	}
	sort.Slice(l.endpoints, func(i, j int) bool { return l.endpoints[i].Name < l.endpoints[j].Name })
}

func (l *loader) buildEndpoint(category, name string, raw rawEndpoint, path string) *EndpointDef {
	ep := &EndpointDef{
		Name:           name,
		Category:       category,
		Method:         raw.Method,
		Path:           raw.Path,
		Doc:            raw.Doc,
		ExampleRequest: raw.ExampleRequest,
	}
	ep.ExampleResponse = raw.ExampleResponse
	if raw.Request != nil {
		ep.Request = &TypeDef{
			Kind:   KindRecord,
			Fields: l.buildFields(raw.Request.Fields, path+".request.fields"),
		}
	} else {
		ep.Request = &TypeDef{Kind: KindRecord}
	}
	if raw.Response != nil {
		ep.Response = l.buildExpr(*raw.Response, path+".response")
	}
	return ep
}

func (l *loader) loadHelpers() {
	files, err := fs.Glob(l.fsys, helpersGlob)
	if err != nil {
		l.errs.add(errors.Wrap(err, "list helper documents"))
		return
	}
	seen := map[string]string{}
	for _, file := range files {
		var doc helpersDoc
		if !l.readDoc(file, helpersDocResolved, &doc) {
			continue
		}
		names := make([]string, 0, len(doc.Helpers))
		for name := range doc.Helpers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if prev, dup := seen[name]; dup {
				l.errs.addf("helpers."+name, "a unique helper name", "already declared in %s", prev)
				continue
			}
			seen[name] = file
			raw := doc.Helpers[name]
			l.helpers = append(l.helpers, &HelperModule{
				Name:        name,
				Category:    HelperCategory(doc.Category),
				Doc:         raw.Doc,
				PerLanguage: raw.PerLanguage,
			})
		}
	}
	sort.Slice(l.helpers, func(i, j int) bool {
		if l.helpers[i].Category != l.helpers[j].Category {
			return l.helpers[i].Category < l.helpers[j].Category
		}
		return l.helpers[i].Name < l.helpers[j].Name
	})
}

// buildExpr lowers a raw type expression to a TypeDef node. Declared names
// resolve to the shared definition; everything else allocates an anonymous
// node. Unknown names become schema errors here, with the field path.
func (l *loader) buildExpr(e rawTypeExpr, path string) *TypeDef {
	if e.Type == "" {
		switch {
		case len(e.Fields) > 0:
			e.Type = "record"
		case e.Items != nil:
			e.Type = "array"
		default:
			l.errs.addf(path+".type", "a type name", "nothing")
			return nil
		}
	}
	if e.Type != "record" && len(e.Fields) > 0 {
		l.errs.addf(path, "fields only on record types", "type %q with fields", e.Type)
		return nil
	}
	if e.Type != "array" && e.Items != nil {
		l.errs.addf(path, "items only on array types", "type %q with items", e.Type)
		return nil
	}

	var t *TypeDef
	switch e.Type {
	case "record":
		t = &TypeDef{Kind: KindRecord, Doc: e.Doc, Fields: l.buildFields(e.Fields, path+".fields")}
	case "array":
		if e.Items == nil {
			l.errs.addf(path+".items", "an element type", "nothing")
			return nil
		}
		t = &TypeDef{Kind: KindArray, Elem: l.buildExpr(*e.Items, path+".items")}
	case string(ScalarString), string(ScalarInt), string(ScalarFloat), string(ScalarBool), string(ScalarAny):
		t = &TypeDef{Kind: KindScalar, Base: ScalarKind(e.Type)}
	default:
		decl, ok := l.types[e.Type]
		if !ok {
			l.errs.addf(path+".type", "a declared type or scalar kind", "%q", e.Type)
			return nil
		}
		t = decl
	}
	if e.Optional {
		t = &TypeDef{Kind: KindOptional, Elem: t}
	}
	return t
}

func (l *loader) buildFields(fields rawFields, path string) []Field {
	out := make([]Field, 0, len(fields))
	for _, e := range fields {
		ft := l.buildExpr(e.Expr, path+"."+e.Name)
		out = append(out, Field{Name: e.Name, Type: ft, Doc: e.Expr.Doc})
	}
	return out
}

func (l *loader) registry() *Registry {
	names := make([]string, 0, len(l.types))
	for name := range l.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Registry{
		types:     l.types,
		typeNames: names,
		endpoints: l.endpoints,
		helpers:   l.helpers,
		splitter:  ident.NewSplitter(l.tokens),
	}
}
