// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/rafesholler/argv/argmatch"
	"github.com/rafesholler/argv/cmd/argv/cli"
	"github.com/rafesholler/argv/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like lint) return an
		// ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

// rootCommand builds the complete argv command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "argv",
		Description: `argv: declarative command-line argument matching.

Declare a program's arguments once in a definition file (JSONC, YAML,
or TOML), then check the declaration for structural problems, render
the usage text it implies, and match real token streams against it.`,
		Subcommands: []*cli.Command{
			lintCommand(),
			parseCommand(),
			usageCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ argmatch.Result, _ []string) error {
					fmt.Printf("argv %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check a definition for structural problems",
				Command:     "argv lint resize.jsonc",
			},
			{
				Description: "Match a token stream against a definition",
				Command:     "argv parse resize.jsonc -- photo.png --scale 0.5",
			},
			{
				Description: "Render the usage text a program would print",
				Command:     "argv usage resize.jsonc",
			},
		},
	}
}
