// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/rafesholler/argv/argdef"
)

func TestUsageRendersDefinition(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, "resize.jsonc", `{
  "program": "resize",
  "args": [
    {"name": "input", "kind": "positional", "help": "image to resize"},
    {"name": "scale", "kind": "flag", "short": "s", "long": "scale", "help": "scale factor"},
  ]
}`)

	if err := usageCommand().Execute([]string{path}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestUsageProgramOverride(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, "resize.json", `{
  "args": [{"name": "input", "kind": "positional"}]
}`)

	if err := usageCommand().Execute([]string{"--program", "convert", path}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestUsageRejectsPassthroughTokens(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, "ok.json", `{
  "args": [{"name": "input", "kind": "positional"}]
}`)

	err := usageCommand().Execute([]string{path, "--", "photo.png"})
	if err == nil {
		t.Fatal("expected error for tokens after the separator")
	}
	if !strings.Contains(err.Error(), "unexpected arguments") {
		t.Errorf("error = %q, should mention the unexpected arguments", err.Error())
	}
}

func TestProgramName(t *testing.T) {
	t.Parallel()

	named := &argdef.Definition{Program: "resize"}
	unnamed := &argdef.Definition{}

	tests := []struct {
		name       string
		definition *argdef.Definition
		override   string
		path       string
		want       string
	}{
		{"override wins", named, "convert", "/etc/argv/resize.jsonc", "convert"},
		{"definition field", named, "", "/etc/argv/other.jsonc", "resize"},
		{"file name fallback", unnamed, "", "/etc/argv/crop.jsonc", "crop"},
		{"fallback strips one extension", unnamed, "", "crop.args.yaml", "crop.args"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := programName(test.definition, test.override, test.path)
			if got != test.want {
				t.Errorf("programName() = %q, want %q", got, test.want)
			}
		})
	}
}
