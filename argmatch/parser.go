// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import "fmt"

// Parser holds the declared arguments and matches token streams against
// them. Declarations are append-only: specs are registered one at a time
// through [Parser.Register] and never removed, and the declaration order
// of positionals is the order bare tokens fill them.
//
// Registration happens once, up front. After that a Parser is read-only:
// [Parser.Parse] never mutates it, so a single Parser can serve any
// number of parses, including concurrent ones.
type Parser struct {
	// specs holds every declaration in registration order.
	specs []Spec
	// positionals indexes the KindPositional entries of specs in
	// declaration order.
	positionals []int
	// byName, byShort, and byLong index specs for lookup. byShort and
	// byLong only cover flags and switches.
	byName  map[string]int
	byShort map[string]int
	byLong  map[string]int
}

// NewParser returns a Parser with no declarations.
func NewParser() *Parser {
	return &Parser{
		byName:  make(map[string]int),
		byShort: make(map[string]int),
		byLong:  make(map[string]int),
	}
}

// Register adds one argument declaration. It fails with a *ConfigError
// if the spec is malformed (ErrCodeInvalidSpec), its name is already
// registered (ErrCodeDuplicateName), or one of its flag identifiers is
// already taken by an earlier flag or switch (ErrCodeDuplicateFlag).
// A failed registration leaves the Parser unchanged.
func (p *Parser) Register(spec Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}

	if other, exists := p.byName[spec.Name]; exists {
		return &ConfigError{
			Code: ErrCodeDuplicateName,
			Name: spec.Name,
			Message: fmt.Sprintf("argument %q is already declared as a %s",
				spec.Name, p.specs[other].Kind),
		}
	}
	if spec.Short != "" {
		if other, exists := p.byShort[spec.Short]; exists {
			return &ConfigError{
				Code: ErrCodeDuplicateFlag,
				Name: spec.Name,
				Message: fmt.Sprintf("short identifier -%s is already used by %q",
					spec.Short, p.specs[other].Name),
			}
		}
	}
	if spec.Long != "" {
		if other, exists := p.byLong[spec.Long]; exists {
			return &ConfigError{
				Code: ErrCodeDuplicateFlag,
				Name: spec.Name,
				Message: fmt.Sprintf("long identifier --%s is already used by %q",
					spec.Long, p.specs[other].Name),
			}
		}
	}

	index := len(p.specs)
	p.specs = append(p.specs, spec)
	p.byName[spec.Name] = index
	if spec.Kind == KindPositional {
		p.positionals = append(p.positionals, index)
		return nil
	}
	if spec.Short != "" {
		p.byShort[spec.Short] = index
	}
	if spec.Long != "" {
		p.byLong[spec.Long] = index
	}
	return nil
}

// RegisterAll registers specs in order and stops at the first failure.
// Specs registered before the failure remain in effect.
func (p *Parser) RegisterAll(specs ...Spec) error {
	for _, spec := range specs {
		if err := p.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// Specs returns a copy of the declarations in registration order.
func (p *Parser) Specs() []Spec {
	specs := make([]Spec, len(p.specs))
	copy(specs, p.specs)
	return specs
}

// Len reports the number of registered declarations.
func (p *Parser) Len() int {
	return len(p.specs)
}

// Positionals returns the names of the required positional arguments in
// declaration order.
func (p *Parser) Positionals() []string {
	names := make([]string, 0, len(p.positionals))
	for _, index := range p.positionals {
		names = append(names, p.specs[index].Name)
	}
	return names
}
