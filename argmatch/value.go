// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"fmt"
	"strconv"
	"time"
)

// Typed readers over [Result.Get]. The match engine stores text only and
// never interprets it; these helpers parse on demand and report both
// missing arguments (*LookupError) and malformed text (wrapped strconv
// and time errors, with the argument name as context).

// Int returns the matched text parsed as a decimal integer.
func (r Result) Int(name string) (int, error) {
	text, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, nil
}

// Int64 returns the matched text parsed as a decimal 64-bit integer.
func (r Result) Int64(name string) (int64, error) {
	text, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, nil
}

// Float64 returns the matched text parsed as a floating-point number.
func (r Result) Float64(name string) (float64, error) {
	text, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, nil
}

// Bool returns the matched text parsed as a boolean. A switch that
// appeared reads as true.
func (r Result) Bool(name string) (bool, error) {
	text, err := r.Get(name)
	if err != nil {
		return false, err
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		return false, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, nil
}

// Duration returns the matched text parsed with [time.ParseDuration].
func (r Result) Duration(name string) (time.Duration, error) {
	text, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	value, err := time.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, nil
}
