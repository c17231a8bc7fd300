// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"strings"
	"testing"
)

func TestWriteUsage(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t,
		Positional("input").WithHelp("path to read"),
		Positional("output").WithHelp("path to write"),
		Flag("mode").WithShort("m").WithHelp("processing mode"),
		Flag("level").WithHelp("verbosity level"),
		Switch("force").WithShort("f").WithHelp("overwrite the output"),
	)

	var rendered strings.Builder
	parser.WriteUsage(&rendered, "proc")
	help := rendered.String()

	wantSubstrings := []string{
		"Usage:",
		"proc <input> <output> [flags]",
		"Arguments:",
		"input",
		"path to read",
		"Flags:",
		"-m, --mode value",
		"--level value",
		"-f, --force",
		"overwrite the output",
	}
	for _, want := range wantSubstrings {
		if !strings.Contains(help, want) {
			t.Errorf("usage output missing %q:\n%s", want, help)
		}
	}

	// A switch takes no value, so its row must not advertise one.
	for _, line := range strings.Split(help, "\n") {
		if strings.Contains(line, "--force") && strings.Contains(line, "value") {
			t.Errorf("switch row advertises a value: %q", line)
		}
	}
}

func TestWriteUsagePositionalOrder(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t,
		Positional("first"),
		Positional("second"),
		Positional("third"),
	)

	var rendered strings.Builder
	parser.WriteUsage(&rendered, "proc")
	help := rendered.String()

	if !strings.Contains(help, "proc <first> <second> <third>") {
		t.Errorf("usage line does not list positionals in declaration order:\n%s", help)
	}
	if strings.Contains(help, "[flags]") {
		t.Errorf("usage line advertises flags with none declared:\n%s", help)
	}
	if strings.Contains(help, "Flags:") {
		t.Errorf("flag section present with no flags declared:\n%s", help)
	}
}

func TestWriteUsageFlagsOnly(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t, Switch("verbose").WithShort("v"))

	var rendered strings.Builder
	parser.WriteUsage(&rendered, "proc")
	help := rendered.String()

	if !strings.Contains(help, "proc [flags]") {
		t.Errorf("usage line = %q, want flags marker without positionals", help)
	}
	if strings.Contains(help, "Arguments:") {
		t.Errorf("positional section present with none declared:\n%s", help)
	}
}

func TestWriteUsageEmptyParser(t *testing.T) {
	t.Parallel()

	var rendered strings.Builder
	NewParser().WriteUsage(&rendered, "proc")
	help := rendered.String()

	if !strings.Contains(help, "proc") {
		t.Errorf("usage output missing program name:\n%s", help)
	}
	if strings.Contains(help, "Arguments:") || strings.Contains(help, "Flags:") {
		t.Errorf("sections present for empty parser:\n%s", help)
	}
}
