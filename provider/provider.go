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

// Package provider implements typed capability descriptors that a target
// exposes to its dependents and to the surrounding build framework.
//
// A descriptor kind is declared once as a package-level key, either a
// Key[T] for kinds that may appear at most once per target, or a
// ListKey[T] for open-ended kinds that accumulate by concatenation.  Keys
// compare by identity, so two keys with the same name declared in
// different packages do not collide.
package provider

import "fmt"

type key struct {
	name string
	list bool
}

// Key identifies a descriptor kind of which a target may carry at most
// one value.
type Key[T any] struct {
	k *key
}

// NewKey returns a new single-valued descriptor key.  The name is used in
// diagnostics only.
func NewKey[T any](name string) Key[T] {
	return Key[T]{&key{name: name}}
}

// Name returns the name the key was declared with.
func (k Key[T]) Name() string { return k.k.name }

// ListKey identifies a descriptor kind that accumulates zero or more
// values in order.
type ListKey[T any] struct {
	k *key
}

// NewListKey returns a new list-valued descriptor key.
func NewListKey[T any](name string) ListKey[T] {
	return ListKey[T]{&key{name: name, list: true}}
}

// Name returns the name the key was declared with.
func (k ListKey[T]) Name() string { return k.k.name }

// A DuplicateError reports that a single-valued descriptor kind was
// supplied twice.  It indicates a bug in whatever assembled the bags, not
// a user error.
type DuplicateError struct {
	Kind string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("capability descriptor %q supplied more than once", e.Kind)
}

// A Bag holds the descriptors attached to one target or contributed by
// one subsystem.  The zero Bag is not usable; use NewBag.  Iteration
// order is the order kinds were first inserted, which keeps downstream
// output deterministic.
type Bag struct {
	values map[*key]any
	order  []*key
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{values: make(map[*key]any)}
}

func (b *Bag) insert(k *key, v any) {
	if _, exists := b.values[k]; !exists {
		b.order = append(b.order, k)
	}
	b.values[k] = v
}

// Set stores the value for a single-valued kind.  It returns a
// *DuplicateError if the kind is already present in the bag.
func Set[T any](b *Bag, k Key[T], v T) error {
	if _, exists := b.values[k.k]; exists {
		return &DuplicateError{Kind: k.k.name}
	}
	b.insert(k.k, v)
	return nil
}

// Get returns the value stored for a single-valued kind.
func Get[T any](b *Bag, k Key[T]) (T, bool) {
	v, ok := b.values[k.k]
	if !ok {
		return *new(T), false
	}
	return v.(T), true
}

// Append adds values to a list-valued kind, after any already present.
func Append[T any](b *Bag, k ListKey[T], values ...T) {
	if len(values) == 0 {
		return
	}
	existing, _ := b.values[k.k].([]any)
	for _, v := range values {
		existing = append(existing, v)
	}
	b.insert(k.k, existing)
}

// All returns every value stored for a list-valued kind, in insertion
// order.
func All[T any](b *Bag, k ListKey[T]) []T {
	boxed, _ := b.values[k.k].([]any)
	if len(boxed) == 0 {
		return nil
	}
	out := make([]T, len(boxed))
	for i, v := range boxed {
		out[i] = v.(T)
	}
	return out
}

// Merge adds the contents of src to b.  List-valued kinds concatenate,
// with src's values after b's.  A single-valued kind present in both bags
// yields a *DuplicateError, and b is left unchanged.
func (b *Bag) Merge(src *Bag) error {
	if src == nil {
		return nil
	}
	for _, k := range src.order {
		if _, exists := b.values[k]; exists && !k.list {
			return &DuplicateError{Kind: k.name}
		}
	}
	for _, k := range src.order {
		if k.list {
			existing, _ := b.values[k].([]any)
			b.insert(k, append(existing, src.values[k].([]any)...))
		} else {
			b.insert(k, src.values[k])
		}
	}
	return nil
}

// Kinds returns the names of the kinds present in the bag, in insertion
// order.
func (b *Bag) Kinds() []string {
	names := make([]string, len(b.order))
	for i, k := range b.order {
		names[i] = k.name
	}
	return names
}

// Len returns the number of distinct kinds present in the bag.
func (b *Bag) Len() int {
	return len(b.order)
}
