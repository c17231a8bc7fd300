// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the argv tool.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], declared arguments, and a
// Run function. Commands are assembled into a tree in cmd/argv/main.go
// and dispatched via [Command.Execute], which handles argument
// matching, subcommand routing, and structured help output with
// examples.
//
// Per-command arguments are declared as an [argmatch.Parser] on
// [Command.Args]; the framework itself runs on the same matching engine
// the tool exposes. Tokens after a "--" separator bypass matching and
// reach the Run function verbatim, which is how "argv parse" receives
// the token stream to match against a definition.
//
// When a user types an unknown subcommand or flag, the framework asks
// [argmatch.Suggest] for the closest known name (Levenshtein distance
// <= 3) and folds it into the error message.
package cli
