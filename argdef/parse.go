// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argdef loads declarative argument definitions for the
// argmatch engine. A definition file names a program and lists its
// expected arguments (positionals, flags, switches) so that tools can
// lint a declaration, render its usage, and parse token streams against
// it without writing Go code.
//
// Definitions are authored as JSONC (JSON extended with comments and
// trailing commas), YAML, or TOML; ReadFile picks the format from the
// file extension.
//
// The typical flow:
//
//  1. ReadFile or Parse: definition bytes → Definition
//  2. Validate: structural checks (names, kinds, identifier rules)
//  3. Definition.Build: checked declarations → *argmatch.Parser
//  4. Parser.Parse: token stream → name-to-value result
package argdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Definition. The input format is JSON
// extended with // line comments, /* block comments */, and trailing
// commas.
func Parse(data []byte) (*Definition, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return &definition, nil
}

// ParseYAML unmarshals a YAML definition.
func ParseYAML(data []byte) (*Definition, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return &definition, nil
}

// ParseTOML unmarshals a TOML definition.
func ParseTOML(data []byte) (*Definition, error) {
	var definition Definition
	if err := toml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return &definition, nil
}

// ReadFile reads a definition file from disk, picking the parser from
// the file extension: .json and .jsonc parse as JSONC, .yaml and .yml
// as YAML, .toml as TOML. Returns a descriptive error if the file
// cannot be read, the extension is unknown, or the content is
// malformed.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var definition *Definition
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".json", ".jsonc":
		definition, err = Parse(data)
	case ".yaml", ".yml":
		definition, err = ParseYAML(data)
	case ".toml":
		definition, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("%s: unsupported definition format %q", path, extension)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return definition, nil
}

// ProgramFromPath derives a program name from a definition file path by
// stripping the directory prefix and the file extension. For example,
// "tools/defs/resize.jsonc" returns "resize". Used when a definition
// does not set Program.
func ProgramFromPath(path string) string {
	base := filepath.Base(path)
	extension := filepath.Ext(base)
	return strings.TrimSuffix(base, extension)
}
