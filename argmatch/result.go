// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import "sort"

// Result is the outcome of one successful parse: a mapping from declared
// argument names to the text that matched them. After a successful parse
// every positional name is present; flag and switch names are present
// only if they appeared in the token stream.
//
// A Result is detached from the Parser that produced it and from any
// other parse. The zero Result is empty.
type Result struct {
	values map[string]string
}

// Get returns the matched text for the named argument. A switch that
// appeared reads as "true"; use [Result.Has] when only presence matters.
// Names that never matched, including names that were never declared,
// fail with a *LookupError.
func (r Result) Get(name string) (string, error) {
	value, exists := r.values[name]
	if !exists {
		return "", &LookupError{Name: name}
	}
	return value, nil
}

// Has reports whether the named argument matched.
func (r Result) Has(name string) bool {
	_, exists := r.values[name]
	return exists
}

// Len reports the number of matched arguments.
func (r Result) Len() int {
	return len(r.values)
}

// Names returns the matched argument names in sorted order.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns a copy of the full name-to-text mapping.
func (r Result) Values() map[string]string {
	values := make(map[string]string, len(r.values))
	for name, value := range r.values {
		values[name] = value
	}
	return values
}
