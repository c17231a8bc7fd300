// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rafesholler/argv/argdef"
	"github.com/rafesholler/argv/argmatch"
	"github.com/rafesholler/argv/cmd/argv/cli"
)

// parseCommand returns the "parse" subcommand for matching token
// streams against a definition.
func parseCommand() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Summary: "Match a token stream against a definition",
		Description: `Match a token stream against an argument definition and print the
matched values. The tokens for the target program go after a "--"
separator so they are never mistaken for flags of argv itself.

Matching follows the declaration: positional arguments fill in
declaration order, flags may appear anywhere and consume the next
token as their value, switches take no value. The first token that
cannot be matched aborts the whole parse.`,
		Args: cli.MustArgs(
			argmatch.Positional("definition").WithHelp("definition file to match against"),
			argmatch.Switch("json").WithHelp("emit the matched values as JSON"),
		),
		Examples: []cli.Example{
			{
				Description: "Match a token stream",
				Command:     "argv parse resize.jsonc -- photo.png --scale 0.5 -v",
			},
			{
				Description: "Emit the matched values as JSON",
				Command:     "argv parse --json resize.jsonc -- photo.png --scale 0.5",
			},
		},
		Run: func(result argmatch.Result, rest []string) error {
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

			matched, err := parser.Parse(rest)
			if err != nil {
				// An unknown flag in the token stream gets the same
				// "did you mean" treatment as argv's own flags.
				var parseErr *argmatch.ParseError
				if errors.As(err, &parseErr) && parseErr.Code == argmatch.ErrCodeUnknownFlag {
					if suggestion := parser.SuggestFlag(parseErr.Token); suggestion != "" {
						return fmt.Errorf("%w (did you mean %s?)", err, suggestion)
					}
				}
				return err
			}

			if result.Has("json") {
				return cli.WriteJSON(matched.Values())
			}

			if matched.Len() == 0 {
				fmt.Fprintf(os.Stderr, "no arguments matched\n")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(writer, "ARGUMENT\tVALUE\n")
			for _, name := range matched.Names() {
				value, _ := matched.Get(name)
				fmt.Fprintf(writer, "%s\t%s\n", name, value)
			}
			return writer.Flush()
		},
	}
}
