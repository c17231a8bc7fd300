// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import "strings"

// Suggest returns the candidate closest to the unknown input, or "" if
// nothing is close enough. "Close enough" means an edit distance of at
// most 3, which catches common typos (transpositions, dropped
// characters, extra characters).
func Suggest(unknown string, candidates []string) string {
	bestCandidate := ""
	bestDistance := 4 // threshold: only suggest if distance <= 3

	for _, candidate := range candidates {
		distance := levenshtein(unknown, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestCandidate = candidate
		}
	}

	return bestCandidate
}

// SuggestFlag returns the declared identifier closest to an unknown flag
// token, formatted with the appropriate prefix (-- or -). Returns "" if
// no good suggestion is found. The engine itself reports unknown flags
// without suggestions; callers use this to decorate the message.
func (p *Parser) SuggestFlag(token string) string {
	name := strings.TrimLeft(token, "-")
	if index := strings.IndexByte(name, '='); index >= 0 {
		name = name[:index]
	}

	defined := make([]string, 0, 2*len(p.specs))
	for _, spec := range p.specs {
		if spec.Long != "" {
			defined = append(defined, spec.Long)
		}
		if spec.Short != "" {
			defined = append(defined, spec.Short)
		}
	}

	best := Suggest(name, defined)
	if best == "" {
		return ""
	}
	if _, isShort := p.byShort[best]; isShort {
		return "-" + best
	}
	return "--" + best
}

// levenshtein computes the Levenshtein edit distance between two strings.
// This is the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one string into the
// other.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Use a single row of the distance matrix, updated in place.
	// This is O(min(m,n)) space instead of O(m*n).
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, min(insertion, substitution))
		}

		previous = current
	}

	return previous[len(a)]
}
