// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argmatch declares expected command-line arguments and matches
// them against raw token streams.
//
// The central type is [Parser]: a declared set of argument [Spec] values
// built up with [Parser.Register] or [Parser.RegisterAll]. A declaration
// is one of three kinds: a required positional, filled by bare tokens in
// declaration order; a value-taking flag (-x or --xxx followed by its
// value); or a switch, a flag recorded by presence alone. Specs are
// built with the [Positional], [Flag], and [Switch] constructors plus
// the With* methods, or as plain struct literals:
//
//	parser := argmatch.NewParser()
//	err := parser.RegisterAll(
//	    argmatch.Positional("input").WithHelp("path to read"),
//	    argmatch.Flag("output").WithShort("o").WithHelp("path to write"),
//	    argmatch.Switch("verbose").WithShort("v"),
//	)
//
// [Parser.Parse] walks the token stream once, left to right, with one
// token of lookahead for flag values, and returns a [Result] mapping
// names to matched text:
//
//	result, err := parser.Parse(os.Args[1:])
//	input, err := result.Get("input")
//	verbose := result.Has("verbose")
//
// The engine stores text and never interprets it; [Result.Int],
// [Result.Bool], and the other typed readers parse on demand. Parsing is
// strict: the first unknown flag, missing value, surplus bare token, or
// unfilled positional aborts the parse with a *[ParseError] carrying a
// machine-readable code. Registration problems surface the same way as
// *[ConfigError]. Both support errors.As and the [IsParseError] and
// [IsConfigError] helpers.
//
// A Parser is append-only and is never mutated by Parse, so one Parser
// can be declared at startup and shared by concurrent parses.
//
// For error messages, [Suggest] and [Parser.SuggestFlag] compute the
// closest declared name by Levenshtein edit distance (threshold:
// distance <= 3), and [Parser.WriteUsage] renders a usage summary from
// the declarations.
package argmatch
