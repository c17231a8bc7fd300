// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argdef

import (
	"fmt"

	"github.com/rafesholler/argv/argmatch"
)

// Build registers the declared arguments into a fresh parser, in
// definition order. The first bad declaration aborts the build with the
// underlying *argmatch.ConfigError wrapped with its position; Validate
// reports the same problems as a full list without building anything.
func (d *Definition) Build() (*argmatch.Parser, error) {
	parser := argmatch.NewParser()

	for index, arg := range d.Args {
		kind, known := kindFromName(arg.Kind)
		if !known {
			return nil, fmt.Errorf("args[%d] %q: unknown kind %q (want positional, flag, or switch)",
				index, arg.Name, arg.Kind)
		}

		spec := argmatch.Spec{
			Name:  arg.Name,
			Short: arg.Short,
			Long:  arg.Long,
			Kind:  kind,
			Help:  arg.Help,
		}
		if err := parser.Register(spec); err != nil {
			return nil, fmt.Errorf("args[%d] %q: %w", index, arg.Name, err)
		}
	}

	return parser, nil
}

// kindFromName maps the kind names used in definition files to argmatch
// kinds.
func kindFromName(name string) (argmatch.Kind, bool) {
	switch name {
	case "positional":
		return argmatch.KindPositional, true
	case "flag":
		return argmatch.KindFlag, true
	case "switch":
		return argmatch.KindSwitch, true
	}
	return 0, false
}
