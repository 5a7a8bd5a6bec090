// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

// mergeEndpoint composes a category's defaults record with one endpoint's
// own record, last write wins per field. Request fields merge by name: a
// field the endpoint redeclares replaces the default in place (keeping the
// default's position), new fields append after the defaults in declaration
// order. The merge runs once at load time; downstream code only ever sees
// the flattened result.
func mergeEndpoint(defaults *rawEndpoint, ep rawEndpoint) rawEndpoint {
	if defaults == nil {
		return ep
	}
	out := ep
	if out.Method == "" {
		out.Method = defaults.Method
	}
	if out.Path == "" {
		out.Path = defaults.Path
	}
	if out.Doc == "" {
		out.Doc = defaults.Doc
	}
	out.Request = mergeShape(defaults.Request, ep.Request)
	if out.Response == nil {
		out.Response = defaults.Response
	}
	return out
}

func mergeShape(base, override *rawShape) *rawShape {
	switch {
	case base == nil:
		return override
	case override == nil:
		return &rawShape{Fields: append(rawFields(nil), base.Fields...)}
	}
	merged := append(rawFields(nil), base.Fields...)
	for _, e := range override.Fields {
		if i := merged.index(e.Name); i >= 0 {
			merged[i] = e
			continue
		}
		merged = append(merged, e)
	}
	return &rawShape{Fields: merged}
}
