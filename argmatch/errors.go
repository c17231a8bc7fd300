// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"errors"
	"fmt"
)

// ConfigError reports a declaration that the parser rejected at
// registration time. Callers can use errors.As to extract the structured
// information:
//
//	var configErr *ConfigError
//	if errors.As(err, &configErr) {
//	    if configErr.Code == ErrCodeDuplicateName { ... }
//	}
type ConfigError struct {
	// Code is the machine-readable rejection code (e.g., "duplicate_name").
	Code string
	// Name is the name of the spec that was rejected.
	Name string
	// Message is the human-readable description of the problem.
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("argmatch: %s: %s", e.Code, e.Message)
}

// Registration rejection codes.
const (
	// ErrCodeDuplicateName: the spec's name is already registered.
	ErrCodeDuplicateName = "duplicate_name"
	// ErrCodeDuplicateFlag: a short or long identifier collides with a
	// previously registered flag or switch.
	ErrCodeDuplicateFlag = "duplicate_flag"
	// ErrCodeInvalidSpec: the spec is structurally malformed (empty name,
	// positional with flag identifiers, flag without identifiers, bad
	// identifier characters).
	ErrCodeInvalidSpec = "invalid_spec"
)

// IsConfigError checks whether err is a *ConfigError with the given code.
func IsConfigError(err error, code string) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Code == code
	}
	return false
}

// ParseError reports why a token stream failed to match the declared
// arguments. Exactly one of Token or Name is meaningful for each code:
// Token carries the offending input token as typed, Name carries the name
// of the declared argument involved.
type ParseError struct {
	// Code is the machine-readable failure code (e.g., "unknown_flag").
	Code string
	// Token is the input token that triggered the failure, including its
	// dash prefix for flag references.
	Token string
	// Name is the name of the declared argument involved, when one is.
	Name string
}

func (e *ParseError) Error() string {
	switch e.Code {
	case ErrCodeUnknownFlag:
		return fmt.Sprintf("argmatch: unknown flag %q", e.Token)
	case ErrCodeMissingValue:
		return fmt.Sprintf("argmatch: flag %q expects a value", e.Token)
	case ErrCodeUnexpectedPositional:
		return fmt.Sprintf("argmatch: unexpected argument %q", e.Token)
	case ErrCodeMissingRequired:
		return fmt.Sprintf("argmatch: missing required argument %q", e.Name)
	}
	return fmt.Sprintf("argmatch: %s", e.Code)
}

// Match failure codes.
const (
	// ErrCodeUnknownFlag: a flag-shaped token matched no declared short or
	// long identifier.
	ErrCodeUnknownFlag = "unknown_flag"
	// ErrCodeMissingValue: a value-taking flag was the final token, so no
	// value token exists for it.
	ErrCodeMissingValue = "missing_value"
	// ErrCodeUnexpectedPositional: a bare token arrived after every
	// declared positional was already filled.
	ErrCodeUnexpectedPositional = "unexpected_positional"
	// ErrCodeMissingRequired: the stream ended with at least one declared
	// positional unfilled.
	ErrCodeMissingRequired = "missing_required"
)

// IsParseError checks whether err is a *ParseError with the given code.
func IsParseError(err error, code string) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Code == code
	}
	return false
}

// LookupError reports a result lookup for a name that has no matched
// value, either because it was never declared or because an optional
// argument did not appear in the token stream.
type LookupError struct {
	// Name is the name that was looked up.
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("argmatch: no value for argument %q", e.Name)
}
