// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import "iter"

// Walk returns an iterator over every TypeDef reachable from root,
// pre-order, each node yielded once. Shared declared types are visited a
// single time even when referenced from many fields, and cycles are
// tolerated so the validator can report them instead of spinning.
func Walk(root *TypeDef) iter.Seq[*TypeDef] {
	return func(yield func(*TypeDef) bool) {
		visited := make(map[*TypeDef]struct{})
		walkVisited(root, yield, visited)
	}
}

func walkVisited(t *TypeDef, yield func(*TypeDef) bool, visited map[*TypeDef]struct{}) bool {
	if t == nil {
		return true
	}
	if _, ok := visited[t]; ok {
		return true
	}
	visited[t] = struct{}{}

	if !yield(t) {
		return false
	}
	for _, f := range t.Fields {
		if !walkVisited(f.Type, yield, visited) {
			return false
		}
	}
	return walkVisited(t.Elem, yield, visited)
}
