// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nestedset

import "slices"

// A Set stores elements collected from transitive dependencies without
// copying them. It is a DAG of Set nodes, each with some direct elements
// and a list of child Sets.  Flattening walks the DAG in stable order:
// a node's direct elements first, left to right, then each child in the
// order it was added, keeping the first copy of any duplicate.  A Set is
// immutable once created, so children can be shared between parents
// freely and flattening one parent never re-flattens another.
type Set[T comparable] struct {
	handle *node[T]
}

type node[T comparable] struct {
	direct     []T
	transitive []Set[T]
}

// New returns an immutable Set with the given direct and transitive
// contents.  Empty child sets are elided so that an empty Set is always
// the zero value.
func New[T comparable](direct []T, transitive []Set[T]) Set[T] {
	n := 0
	for _, t := range transitive {
		if t.handle != nil {
			n++
		}
	}
	if len(direct) == 0 && n == 0 {
		return Set[T]{}
	}

	var transitiveCopy []Set[T]
	if n > 0 {
		transitiveCopy = make([]Set[T], 0, n)
		for _, t := range transitive {
			if t.handle != nil {
				transitiveCopy = append(transitiveCopy, t)
			}
		}
	}

	return Set[T]{&node[T]{
		direct:     slices.Clone(direct),
		transitive: transitiveCopy,
	}}
}

// Of returns a Set with only direct contents.
func Of[T comparable](elements ...T) Set[T] {
	return New(elements, nil)
}

// IsEmpty reports whether the set has no elements at all.
func (s Set[T]) IsEmpty() bool {
	return s.handle == nil
}

// walk visits the direct elements of each node reachable from s exactly
// once, parents before children, children left to right.
func (s Set[T]) walk(visit func([]T)) {
	visited := make(map[*node[T]]bool)

	var dfs func(n *node[T])
	dfs = func(n *node[T]) {
		visited[n] = true
		visit(n.direct)
		for _, child := range n.transitive {
			if !visited[child.handle] {
				dfs(child.handle)
			}
		}
	}

	dfs(s.handle)
}

// ToList flattens the set to a slice, keeping the first copy of each
// duplicated element.  The order is deterministic for a given DAG shape,
// so repeated flattening of equal sets yields equal slices.
func (s Set[T]) ToList() []T {
	if s.handle == nil {
		return nil
	}
	var list []T
	s.walk(func(elements []T) {
		list = append(list, elements...)
	})
	return firstUnique(list)
}

// Contains reports whether element appears anywhere in the set.
func (s Set[T]) Contains(element T) bool {
	if s.handle == nil {
		return false
	}
	found := false
	s.walk(func(elements []T) {
		if !found && slices.Contains(elements, element) {
			found = true
		}
	})
	return found
}

// A Builder accumulates direct elements and child Sets and produces an
// immutable Set.  The Builder retains its contents after Build, so it can
// be used to create a series of growing sets.
type Builder[T comparable] struct {
	direct     []T
	transitive []Set[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T comparable]() *Builder[T] {
	return &Builder[T]{}
}

// Direct adds direct elements, to the right of any existing ones.
func (b *Builder[T]) Direct(elements ...T) *Builder[T] {
	b.direct = append(b.direct, elements...)
	return b
}

// Transitive adds child sets, to the right of any existing ones.
func (b *Builder[T]) Transitive(sets ...Set[T]) *Builder[T] {
	b.transitive = append(b.transitive, sets...)
	return b
}

// Build returns the Set accumulated so far.
func (b *Builder[T]) Build() Set[T] {
	return New(b.direct, b.transitive)
}

// firstUnique returns the unique elements of in, keeping the first copy
// of each.  It modifies in and returns a subslice of it.
func firstUnique[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	writeIndex := 0
	for readIndex := 0; readIndex < len(in); readIndex++ {
		if seen[in[readIndex]] {
			continue
		}
		seen[in[readIndex]] = true
		if readIndex != writeIndex {
			in[writeIndex] = in[readIndex]
		}
		writeIndex++
	}
	return in[:writeIndex]
}
