// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rafesholler/argv/argdef"
	"github.com/rafesholler/argv/argmatch"
	"github.com/rafesholler/argv/cmd/argv/cli"
)

// lintReport is the machine-readable lint verdict emitted in --json mode.
type lintReport struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// lintCommand returns the "lint" subcommand for checking definition files.
func lintCommand() *cli.Command {
	return &cli.Command{
		Name:    "lint",
		Summary: "Check a definition file for structural problems",
		Description: `Check a local argument definition file. Verifies that the file is
well-formed and that the declaration is coherent: every argument has
a name and a known kind, flags and switches carry at least one
identifier, short identifiers are single characters, and no name or
identifier is declared twice.

Does not match any tokens. Use "argv parse" to try a definition
against a real token stream.

JSON definitions may use JSONC: JSON extended with // line comments,
/* block comments */, and trailing commas. Comments are stripped
before parsing.`,
		Args: cli.MustArgs(
			argmatch.Positional("definition").WithHelp("definition file to check"),
			argmatch.Switch("json").WithHelp("emit the verdict as JSON"),
		),
		Examples: []cli.Example{
			{
				Description: "Check a definition",
				Command:     "argv lint resize.jsonc",
			},
			{
				Description: "Emit the verdict as JSON (for editors and CI)",
				Command:     "argv lint --json resize.yaml",
			},
		},
		Run: func(result argmatch.Result, rest []string) error {
			if len(rest) > 0 {
				return fmt.Errorf("unexpected arguments after \"--\": %s", strings.Join(rest, " "))
			}

			path, err := result.Get("definition")
			if err != nil {
				return err
			}

			definition, err := argdef.ReadFile(path)
			if err != nil {
				return err
			}

			issues := argdef.Validate(definition)

			if result.Has("json") {
				report := lintReport{Path: path, Valid: len(issues) == 0, Issues: issues}
				// Ensure empty array in JSON output, not null.
				if report.Issues == nil {
					report.Issues = []string{}
				}
				if err := cli.WriteJSON(report); err != nil {
					return err
				}
				if !report.Valid {
					return &cli.ExitError{Code: 1}
				}
				return nil
			}

			if len(issues) > 0 {
				for _, issue := range issues {
					fmt.Fprintf(os.Stderr, "  - %s\n", issue)
				}
				fmt.Fprintf(os.Stderr, "%s: %s: %d issue(s) found\n", path, color.RedString("invalid"), len(issues))
				return &cli.ExitError{Code: 1}
			}

			if len(definition.Args) == 0 {
				logger := cli.NewCommandLogger().With("command", "lint")
				logger.Warn("definition declares no arguments", "path", path)
			}

			fmt.Fprintf(os.Stdout, "%s: %s\n", path, color.GreenString("valid"))
			return nil
		},
	}
}
