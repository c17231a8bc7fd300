// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"errors"
	"testing"
	"time"
)

// parseOne builds a throwaway parser around the given specs and parses
// the tokens, failing the test on any error.
func parseOne(t *testing.T, specs []Spec, tokens []string) Result {
	t.Helper()
	result, err := newTestParser(t, specs...).Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", tokens, err)
	}
	return result
}

func TestTypedReaders(t *testing.T) {
	t.Parallel()

	// The negative offset rides behind a flag reference: a bare token
	// starting with a dash would read as a flag, but a flag value is
	// consumed verbatim.
	result := parseOne(t,
		[]Spec{
			Positional("count"),
			Positional("ratio"),
			Positional("timeout"),
			Flag("offset").WithShort("o"),
			Switch("verbose").WithShort("v"),
		},
		[]string{"42", "--offset", "-9223372036854775808", "2.5", "1h30m", "-v"},
	)

	if got, err := result.Int("count"); err != nil || got != 42 {
		t.Errorf("Int(count) = %d, %v; want 42, nil", got, err)
	}
	if got, err := result.Int64("offset"); err != nil || got != -9223372036854775808 {
		t.Errorf("Int64(offset) = %d, %v; want min int64, nil", got, err)
	}
	if got, err := result.Float64("ratio"); err != nil || got != 2.5 {
		t.Errorf("Float64(ratio) = %v, %v; want 2.5, nil", got, err)
	}
	if got, err := result.Duration("timeout"); err != nil || got != 90*time.Minute {
		t.Errorf("Duration(timeout) = %v, %v; want 1h30m, nil", got, err)
	}
	if got, err := result.Bool("verbose"); err != nil || !got {
		t.Errorf("Bool(verbose) = %t, %v; want true, nil (switch presence)", got, err)
	}
}

func TestTypedReadersRejectMalformedText(t *testing.T) {
	t.Parallel()

	result := parseOne(t, []Spec{Positional("value")}, []string{"not-a-number"})

	if _, err := result.Int("value"); err == nil {
		t.Errorf("Int(not-a-number) succeeded")
	}
	if _, err := result.Int64("value"); err == nil {
		t.Errorf("Int64(not-a-number) succeeded")
	}
	if _, err := result.Float64("value"); err == nil {
		t.Errorf("Float64(not-a-number) succeeded")
	}
	if _, err := result.Bool("value"); err == nil {
		t.Errorf("Bool(not-a-number) succeeded")
	}
	if _, err := result.Duration("value"); err == nil {
		t.Errorf("Duration(not-a-number) succeeded")
	}

	// Malformed text is a conversion failure, not a lookup failure.
	_, err := result.Int("value")
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		t.Errorf("Int() on malformed text reported *LookupError: %v", err)
	}
}

func TestTypedReadersPropagateLookupFailure(t *testing.T) {
	t.Parallel()

	result := parseOne(t, nil, nil)

	_, err := result.Int("absent")
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Int(absent) returned %T (%v), want *LookupError", err, err)
	}
	if lookupErr.Name != "absent" {
		t.Errorf("LookupError.Name = %q, want %q", lookupErr.Name, "absent")
	}
}
