// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind selects how an argument is matched against the token stream.
type Kind int

const (
	// KindPositional is a required argument. Bare tokens fill positionals
	// in declaration order, and a parse fails if any remain unfilled.
	KindPositional Kind = iota

	// KindFlag is an optional argument invoked by flag reference (-x or
	// --xxx). The token following the reference is consumed as its value.
	KindFlag

	// KindSwitch is an optional argument invoked by flag reference that
	// takes no value. Only its presence is recorded.
	KindSwitch
)

// String returns the kind's name as used in definition files.
func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindFlag:
		return "flag"
	case KindSwitch:
		return "switch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Spec declares one expected argument. The zero value is not useful;
// build specs with [Positional], [Flag], or [Switch] and the With*
// methods, or as struct literals.
type Spec struct {
	// Name keys the parse result. It must be non-empty and is unique
	// within a Parser.
	Name string

	// Short is the single-character identifier for flags and switches,
	// invoked as -x. Empty means no short form. Positionals must leave
	// it empty.
	Short string

	// Long is the multi-character identifier for flags and switches,
	// invoked as --xxx. Empty means no long form. Positionals must leave
	// it empty.
	Long string

	// Kind selects the matching behavior.
	Kind Kind

	// Help is the one-line description shown in usage output.
	Help string
}

// Positional declares a required argument filled from bare tokens in
// declaration order.
func Positional(name string) Spec {
	return Spec{Name: name, Kind: KindPositional}
}

// Flag declares an optional argument whose value is the token following
// its flag reference. The long identifier defaults to the name.
func Flag(name string) Spec {
	return Spec{Name: name, Long: name, Kind: KindFlag}
}

// Switch declares an optional argument recorded by presence alone. The
// long identifier defaults to the name.
func Switch(name string) Spec {
	return Spec{Name: name, Long: name, Kind: KindSwitch}
}

// WithShort returns a copy of the spec with the short identifier set.
func (s Spec) WithShort(short string) Spec {
	s.Short = short
	return s
}

// WithLong returns a copy of the spec with the long identifier set.
// Passing "" removes the long form, for flags that should only answer
// to their short identifier.
func (s Spec) WithLong(long string) Spec {
	s.Long = long
	return s
}

// WithHelp returns a copy of the spec with the usage description set.
func (s Spec) WithHelp(help string) Spec {
	s.Help = help
	return s
}

// validate returns a *ConfigError with code ErrCodeInvalidSpec if the
// spec is structurally malformed, independent of what else is registered.
func (s Spec) validate() error {
	if s.Name == "" {
		return &ConfigError{
			Code:    ErrCodeInvalidSpec,
			Message: "argument name must not be empty",
		}
	}

	switch s.Kind {
	case KindPositional:
		if s.Short != "" || s.Long != "" {
			return &ConfigError{
				Code:    ErrCodeInvalidSpec,
				Name:    s.Name,
				Message: fmt.Sprintf("positional %q must not declare flag identifiers", s.Name),
			}
		}

	case KindFlag, KindSwitch:
		if s.Short == "" && s.Long == "" {
			return &ConfigError{
				Code:    ErrCodeInvalidSpec,
				Name:    s.Name,
				Message: fmt.Sprintf("%s %q needs a short or long identifier", s.Kind, s.Name),
			}
		}
		if s.Short != "" {
			if utf8.RuneCountInString(s.Short) != 1 {
				return &ConfigError{
					Code:    ErrCodeInvalidSpec,
					Name:    s.Name,
					Message: fmt.Sprintf("short identifier %q of %q must be a single character", s.Short, s.Name),
				}
			}
			if first, _ := utf8.DecodeRuneInString(s.Short); first == '-' || first == '=' || unicode.IsSpace(first) {
				return &ConfigError{
					Code:    ErrCodeInvalidSpec,
					Name:    s.Name,
					Message: fmt.Sprintf("short identifier %q of %q is not a valid flag character", s.Short, s.Name),
				}
			}
		}
		if s.Long != "" {
			if strings.HasPrefix(s.Long, "-") {
				return &ConfigError{
					Code:    ErrCodeInvalidSpec,
					Name:    s.Name,
					Message: fmt.Sprintf("long identifier %q of %q must not start with a dash", s.Long, s.Name),
				}
			}
			if strings.ContainsFunc(s.Long, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }) {
				return &ConfigError{
					Code:    ErrCodeInvalidSpec,
					Name:    s.Name,
					Message: fmt.Sprintf("long identifier %q of %q must not contain '=' or whitespace", s.Long, s.Name),
				}
			}
		}

	default:
		return &ConfigError{
			Code:    ErrCodeInvalidSpec,
			Name:    s.Name,
			Message: fmt.Sprintf("argument %q has unknown kind %d", s.Name, int(s.Kind)),
		}
	}

	return nil
}
