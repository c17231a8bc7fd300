// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argdef

// Definition is the on-disk declaration of a program's arguments.
type Definition struct {
	// Program is the program name used in usage lines. Optional; tools
	// fall back to the definition file's base name.
	Program string `json:"program,omitempty" yaml:"program,omitempty" toml:"program,omitempty"`

	// Description is a one-line summary of the program.
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Args declares the arguments. Order matters for positionals: bare
	// tokens fill them in the order they appear here.
	Args []Arg `json:"args" yaml:"args" toml:"args"`
}

// Arg is one argument declaration in a definition file.
type Arg struct {
	// Name keys the parse result. Required, unique per definition.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Kind is "positional", "flag", or "switch".
	Kind string `json:"kind" yaml:"kind" toml:"kind"`

	// Short is the single-character identifier for flags and switches,
	// written without its dash.
	Short string `json:"short,omitempty" yaml:"short,omitempty" toml:"short,omitempty"`

	// Long is the multi-character identifier for flags and switches,
	// written without its dashes.
	Long string `json:"long,omitempty" yaml:"long,omitempty" toml:"long,omitempty"`

	// Help is the one-line description shown in usage output.
	Help string `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`
}
