// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rafesholler/argv/argdef"
	"github.com/rafesholler/argv/argmatch"
	"github.com/rafesholler/argv/cmd/argv/cli"
)

// usageCommand returns the "usage" subcommand for rendering a
// definition's usage text.
func usageCommand() *cli.Command {
	return &cli.Command{
		Name:    "usage",
		Summary: "Print the usage text for a definition",
		Description: `Render the usage text a program would print for an argument
definition: the usage line, the positional arguments in declaration
order, and the flag table.

The program name shown in the usage line comes from the --program
flag, the definition's "program" field, or the definition's file
name, in that order of preference.`,
		Args: cli.MustArgs(
			argmatch.Positional("definition").WithHelp("definition file to render"),
			argmatch.Flag("program").WithHelp("program name to show in the usage line"),
		),
		Examples: []cli.Example{
			{
				Description: "Render the usage text",
				Command:     "argv usage resize.jsonc",
			},
			{
				Description: "Render with an explicit program name",
				Command:     "argv usage --program convert resize.jsonc",
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
			parser, err := definition.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			override, _ := result.Get("program")
			parser.WriteUsage(os.Stdout, programName(definition, override, path))
			return nil
		},
	}
}

// programName picks the name shown in the usage line: the --program
// override, then the definition's own program field, then the file name.
func programName(definition *argdef.Definition, override, path string) string {
	if override != "" {
		return override
	}
	if definition.Program != "" {
		return definition.Program
	}
	return argdef.ProgramFromPath(path)
}
