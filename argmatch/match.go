// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import "strings"

// Parse matches the token stream against the declared arguments in a
// single left-to-right pass and returns the name-to-text result.
//
// Tokens starting with "--" are long flag references and tokens starting
// with "-" (other than a lone "-") are short flag references; everything
// else is a bare token that fills the next positional in declaration
// order. A value-taking flag consumes the token after it verbatim, even
// when that token starts with a dash. If the same flag appears more than
// once, the last occurrence wins.
//
// Parse stops at the first failure and returns a *ParseError: an
// unrecognized flag reference (ErrCodeUnknownFlag), a value-taking flag
// at the end of the stream (ErrCodeMissingValue), a bare token with no
// positional left to fill (ErrCodeUnexpectedPositional), or a stream
// that ends with positionals unfilled (ErrCodeMissingRequired). An empty
// stream succeeds when no positionals are declared.
//
// Parse never mutates the Parser; each call builds a fresh Result.
func (p *Parser) Parse(tokens []string) (Result, error) {
	values := make(map[string]string, len(p.specs))
	nextPositional := 0

	for cursor := 0; cursor < len(tokens); cursor++ {
		token := tokens[cursor]

		if !isFlagToken(token) {
			if nextPositional == len(p.positionals) {
				return Result{}, &ParseError{Code: ErrCodeUnexpectedPositional, Token: token}
			}
			values[p.specs[p.positionals[nextPositional]].Name] = token
			nextPositional++
			continue
		}

		spec, known := p.lookupFlag(token)
		if !known {
			return Result{}, &ParseError{Code: ErrCodeUnknownFlag, Token: token}
		}
		if spec.Kind == KindSwitch {
			values[spec.Name] = switchValue
			continue
		}
		if cursor == len(tokens)-1 {
			return Result{}, &ParseError{Code: ErrCodeMissingValue, Token: token, Name: spec.Name}
		}
		cursor++
		values[spec.Name] = tokens[cursor]
	}

	if nextPositional < len(p.positionals) {
		return Result{}, &ParseError{
			Code: ErrCodeMissingRequired,
			Name: p.specs[p.positionals[nextPositional]].Name,
		}
	}

	return Result{values: values}, nil
}

// switchValue is the text recorded for a switch that appeared in the
// stream, so that switch presence survives in a string-valued result and
// [Result.Bool] reads it back.
const switchValue = "true"

// isFlagToken reports whether the token is a flag reference rather than
// a bare value. A lone "-" is a bare value.
func isFlagToken(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

// lookupFlag resolves a flag token to its declaration. Long references
// (--xxx) resolve through the long identifiers and short references (-x)
// through the short identifiers; the two namespaces never mix. A bare
// "--" resolves to nothing, as do bundled shorts like "-abc".
func (p *Parser) lookupFlag(token string) (Spec, bool) {
	var index int
	var exists bool
	if strings.HasPrefix(token, "--") {
		index, exists = p.byLong[token[2:]]
	} else {
		index, exists = p.byShort[token[1:]]
	}
	if !exists {
		return Spec{}, false
	}
	return p.specs[index], true
}
