// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argdef

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks a Definition for structural issues. Returns a list of
// human-readable issue descriptions. An empty list means the definition
// is valid and Build will accept it.
//
// Structural checks include:
//   - Each arg must have a non-empty name, unique across the definition
//   - Kind must be "positional", "flag", or "switch"
//   - Positionals must not declare short or long identifiers
//   - Flags and switches must declare at least one identifier
//   - Short identifiers are single characters other than "-" and "="
//   - Long identifiers must not start with "-" or contain "=" or whitespace
//   - Identifiers must be unique within their namespace (short or long)
func Validate(definition *Definition) []string {
	var issues []string

	// Duplicate names would make later declarations silently shadow
	// earlier ones in the parse result.
	argNames := make(map[string]int, len(definition.Args))
	shortNames := make(map[string]int)
	longNames := make(map[string]int)

	for index, arg := range definition.Args {
		prefix := fmt.Sprintf("args[%d]", index)
		if arg.Name == "" {
			issues = append(issues, fmt.Sprintf("%s: name is required", prefix))
		} else {
			prefix = fmt.Sprintf("%s %q", prefix, arg.Name)
			if firstIndex, exists := argNames[arg.Name]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s: duplicate argument name (first used at args[%d])",
					prefix, firstIndex,
				))
			} else {
				argNames[arg.Name] = index
			}
		}

		switch arg.Kind {
		case "positional":
			if arg.Short != "" || arg.Long != "" {
				issues = append(issues, fmt.Sprintf(
					"%s: a positional must not declare short or long identifiers", prefix,
				))
			}
		case "flag", "switch":
			if arg.Short == "" && arg.Long == "" {
				issues = append(issues, fmt.Sprintf(
					"%s: a %s needs a short or long identifier", prefix, arg.Kind,
				))
			}
		case "":
			issues = append(issues, fmt.Sprintf(
				"%s: kind is required (positional, flag, or switch)", prefix,
			))
		default:
			issues = append(issues, fmt.Sprintf(
				"%s: unknown kind %q (want positional, flag, or switch)", prefix, arg.Kind,
			))
		}

		if arg.Short != "" {
			if utf8.RuneCountInString(arg.Short) != 1 {
				issues = append(issues, fmt.Sprintf(
					"%s: short identifier %q must be a single character", prefix, arg.Short,
				))
			} else if first, _ := utf8.DecodeRuneInString(arg.Short); first == '-' || first == '=' || unicode.IsSpace(first) {
				issues = append(issues, fmt.Sprintf(
					"%s: short identifier %q is not a valid flag character", prefix, arg.Short,
				))
			}
			if firstIndex, exists := shortNames[arg.Short]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s: short identifier -%s already used at args[%d]",
					prefix, arg.Short, firstIndex,
				))
			} else {
				shortNames[arg.Short] = index
			}
		}

		if arg.Long != "" {
			if strings.HasPrefix(arg.Long, "-") {
				issues = append(issues, fmt.Sprintf(
					"%s: long identifier %q must not start with a dash", prefix, arg.Long,
				))
			}
			if strings.ContainsFunc(arg.Long, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }) {
				issues = append(issues, fmt.Sprintf(
					"%s: long identifier %q must not contain '=' or whitespace", prefix, arg.Long,
				))
			}
			if firstIndex, exists := longNames[arg.Long]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s: long identifier --%s already used at args[%d]",
					prefix, arg.Long, firstIndex,
				))
			} else {
				longNames[arg.Long] = index
			}
		}
	}

	return issues
}
