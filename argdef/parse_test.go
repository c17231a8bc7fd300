// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argdef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wantDefinition is the definition that every fixture below encodes,
// once per supported format.
var wantDefinition = &Definition{
	Program:     "resize",
	Description: "Resizes an image",
	Args: []Arg{
		{Name: "input", Kind: "positional", Help: "path to read"},
		{Name: "scale", Kind: "flag", Short: "s", Long: "scale", Help: "scale factor"},
		{Name: "verbose", Kind: "switch", Short: "v", Long: "verbose"},
	},
}

const jsoncFixture = `{
	// The program name shown in usage lines.
	"program": "resize",
	"description": "Resizes an image",
	"args": [
		{"name": "input", "kind": "positional", "help": "path to read"},
		/* value-taking flag */
		{"name": "scale", "kind": "flag", "short": "s", "long": "scale", "help": "scale factor"},
		{"name": "verbose", "kind": "switch", "short": "v", "long": "verbose"},
	],
}`

const yamlFixture = `program: resize
description: Resizes an image
args:
  - name: input
    kind: positional
    help: path to read
  - name: scale
    kind: flag
    short: s
    long: scale
    help: scale factor
  - name: verbose
    kind: switch
    short: v
    long: verbose
`

const tomlFixture = `program = "resize"
description = "Resizes an image"

[[args]]
name = "input"
kind = "positional"
help = "path to read"

[[args]]
name = "scale"
kind = "flag"
short = "s"
long = "scale"
help = "scale factor"

[[args]]
name = "verbose"
kind = "switch"
short = "v"
long = "verbose"
`

func TestParse(t *testing.T) {
	t.Parallel()

	definition, err := Parse([]byte(jsoncFixture))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if diff := cmp.Diff(wantDefinition, definition); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"args": [}`))
	if err == nil {
		t.Fatal("Parse() accepted malformed JSON")
	}
	if !strings.Contains(err.Error(), "parsing definition") {
		t.Errorf("error = %q, want parsing context", err)
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	definition, err := ParseYAML([]byte(yamlFixture))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if diff := cmp.Diff(wantDefinition, definition); diff != "" {
		t.Errorf("ParseYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	definition, err := ParseTOML([]byte(tomlFixture))
	if err != nil {
		t.Fatalf("ParseTOML() failed: %v", err)
	}
	if diff := cmp.Diff(wantDefinition, definition); diff != "" {
		t.Errorf("ParseTOML() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	fixtures := map[string]string{
		"resize.jsonc": jsoncFixture,
		"resize.json":  jsoncFixture,
		"resize.yaml":  yamlFixture,
		"resize.yml":   yamlFixture,
		"resize.toml":  tomlFixture,
	}

	dir := t.TempDir()
	for name, content := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}

	for name := range fixtures {
		t.Run(name, func(t *testing.T) {
			definition, err := ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", name, err)
			}
			if diff := cmp.Diff(wantDefinition, definition); diff != "" {
				t.Errorf("ReadFile(%s) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestReadFileRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resize.ini")
	if err := os.WriteFile(path, []byte("args = nope"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("ReadFile() accepted an unknown extension")
	}
	if !strings.Contains(err.Error(), "unsupported definition format") {
		t.Errorf("error = %q, want unsupported format message", err)
	}
}

func TestReadFileMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.jsonc")
	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("ReadFile() succeeded on a missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %q, want it to name %s", err, path)
	}
}

func TestProgramFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"resize.jsonc", "resize"},
		{"tools/defs/resize.yaml", "resize"},
		{"/abs/path/convert.toml", "convert"},
		{"noext", "noext"},
	}
	for _, test := range tests {
		if got := ProgramFromPath(test.path); got != test.want {
			t.Errorf("ProgramFromPath(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}
