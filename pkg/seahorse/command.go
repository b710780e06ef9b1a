// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import "fmt"

// Action is the function invoked for an app or command with its resolved
// Context.
type Action func(c *Context) error

// Command is one named subcommand of an App.
type Command struct {
	// Name is the token that selects this command.
	Name string
	// Usage is one-line help text.
	Usage string
	// Flags declares the flags resolved from the tokens after the name.
	Flags []Flag
	// Action runs when the command is selected.
	Action Action
}

// run resolves the command's flags from args and invokes its action. args
// holds only the tokens after the command name.
func (c *Command) run(args []string) error {
	if c.Action == nil {
		return fmt.Errorf("command %q has no action", c.Name)
	}
	return c.Action(NewContext(args, c.Flags))
}
