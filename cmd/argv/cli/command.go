// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rafesholler/argv/argmatch"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "lint", "parse").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is a detailed multi-line description shown in the command's
	// own help output.
	Description string

	// Usage is the usage string (e.g., "argv parse <definition> [flags]").
	// If empty, it is synthesized from the command path, subcommands, and
	// declared arguments.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Args declares the command's arguments. Execute matches the tokens
	// before any "--" separator against it. If nil, the command accepts
	// no arguments.
	Args *argmatch.Parser

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes the command with its matched arguments. rest holds the
	// tokens after a "--" separator, untouched; commands that have no use
	// for pass-through tokens should reject a non-empty rest. Exactly one
	// of Run or Subcommands should be set.
	Run func(result argmatch.Result, rest []string) error

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute matches args and dispatches to the appropriate subcommand or Run
// function. This is the main entry point for the command tree.
func (c *Command) Execute(args []string) error {
	// Check for help flags before anything else.
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	// If we have subcommands, try to dispatch.
	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		for _, sub := range c.Subcommands {
			if sub.Name == name {
				sub.parent = c
				return sub.Execute(args[1:])
			}
		}

		// Unknown subcommand, suggest the closest match.
		names := make([]string, 0, len(c.Subcommands))
		for _, sub := range c.Subcommands {
			names = append(names, sub.Name)
		}
		if suggestion := argmatch.Suggest(name, names); suggestion != "" {
			return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
				name, suggestion, c.fullName())
		}
		return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.",
			name, c.fullName())
	}

	// Subcommands but nothing to dispatch on.
	if len(c.Subcommands) > 0 && c.Run == nil {
		if len(args) == 0 {
			c.PrintHelp(os.Stderr)
			return fmt.Errorf("subcommand required")
		}
		c.PrintHelp(os.Stderr)
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	// Tokens after "--" bypass matching and go to Run verbatim.
	declared, rest := splitAtDoubleDash(args)

	parser := c.Args
	if parser == nil {
		parser = argmatch.NewParser()
	}
	result, err := parser.Parse(declared)
	if err != nil {
		// Build a helpful error message: error line, suggestion if
		// applicable, then a pointer to --help for full usage.
		var parseErr *argmatch.ParseError
		if errors.As(err, &parseErr) && parseErr.Code == argmatch.ErrCodeUnknownFlag {
			if suggestion := parser.SuggestFlag(parseErr.Token); suggestion != "" {
				return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
					err, suggestion, c.fullName())
			}
		}
		return fmt.Errorf("%s\n\nRun '%s --help' for usage.", err, c.fullName())
	}

	if c.Run != nil {
		return c.Run(result, rest)
	}

	// No Run, no subcommands matched, show help.
	c.PrintHelp(os.Stderr)
	return fmt.Errorf("no action defined for %q", c.fullName())
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	// Description or summary.
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	// Usage line, plus argument tables when the command declares its
	// arguments through the matcher.
	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	case c.Args != nil:
		c.Args.WriteUsage(w, name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s\n", name)
	}

	// Subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// Examples.
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	// Footer: help hint for subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "argv parse").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// splitAtDoubleDash splits args at the first "--" separator. Tokens
// before it belong to the command; tokens after it pass through to Run
// untouched. The separator itself is consumed.
func splitAtDoubleDash(args []string) (declared, rest []string) {
	for index, arg := range args {
		if arg == "--" {
			return args[:index], args[index+1:]
		}
	}
	return args, nil
}

// MustArgs builds an argument parser from specs, panicking on
// registration failure. Commands declare their arguments with literal
// specs at construction time, so a failure here is a programmer error.
func MustArgs(specs ...argmatch.Spec) *argmatch.Parser {
	parser := argmatch.NewParser()
	if err := parser.RegisterAll(specs...); err != nil {
		panic(fmt.Sprintf("cli: invalid argument specs: %v", err))
	}
	return parser
}
