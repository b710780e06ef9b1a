// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import (
	"fmt"
	"io"
	"os"
)

// App is a command-line application. Populate the fields and call Run with
// the process argument vector.
type App struct {
	// Name is the binary name shown in help and version output.
	Name string
	// Author is shown in help output.
	Author string
	// Version is shown by -v/--version and in help output.
	Version string
	// Usage is a one-line description of the application.
	Usage string
	// Action runs when no command name matches. Optional when Commands is
	// set.
	Action Action
	// Flags declares the app-level flags resolved for Action.
	Flags []Flag
	// Commands holds the named subcommands, matched against the first
	// argument token.
	Commands []Command
	// Writer receives help and version output. Defaults to os.Stdout.
	Writer io.Writer
}

// Run executes the application with the given argument vector, conventionally
// os.Args. The first element is the program name and is never interpreted.
//
// Dispatch order: a bare invocation runs Action (or prints help without one);
// "help", -h, and --help print help; -v and --version print the version; a
// first token matching a command name runs that command with the tokens after
// it; anything else goes to Action with all tokens after the program name.
// Run never exits the process, so exit codes stay with the caller.
func (a *App) Run(args []string) error {
	if len(args) <= 1 {
		if a.Action != nil {
			return a.Action(NewContext(nil, a.Flags))
		}
		a.printHelp()
		return nil
	}

	switch args[1] {
	case "help", "-h", "--help":
		a.printHelp()
		return nil
	case "-v", "--version":
		a.printVersion()
		return nil
	}

	if cmd, ok := a.command(args[1]); ok {
		return cmd.run(args[2:])
	}

	if a.Action != nil {
		return a.Action(NewContext(args[1:], a.Flags))
	}

	a.printHelp()
	return fmt.Errorf("unknown command %q", args[1])
}

// command returns the command matching name, if any.
func (a *App) command(name string) (*Command, bool) {
	for i := range a.Commands {
		if a.Commands[i].Name == name {
			return &a.Commands[i], true
		}
	}
	return nil, false
}

func (a *App) writer() io.Writer {
	if a.Writer != nil {
		return a.Writer
	}
	return os.Stdout
}
