// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seahorse is a minimal command-line application framework built
// around typed flag resolution.
//
// An App declares its flags and optional subcommands, and Run dispatches the
// process argument vector to the matching Action. Each Action receives a
// Context holding the positional arguments that survived flag extraction
// plus typed access to every flag that appeared in the input:
//   - Flags are declared with a name, usage text, and a FlagType
//   - Resolution removes each flag's trigger token (--name) and, for
//     non-Bool flags, the single token that follows it
//   - Conversion failures never abort resolution; they are recorded per
//     flag and returned by the typed accessor for that flag
//
// # Basic Usage
//
// A single-action app:
//
//	app := &seahorse.App{
//	    Name:    "repeat",
//	    Usage:   "print each argument a number of times",
//	    Version: "0.1.0",
//	    Flags: []seahorse.Flag{
//	        seahorse.NewFlag("count", "how many times to print", seahorse.Int),
//	        seahorse.NewFlag("upper", "print in upper case", seahorse.Bool),
//	    },
//	    Action: func(c *seahorse.Context) error {
//	        count, err := c.IntFlag("count")
//	        if err != nil {
//	            count = 1
//	        }
//	        for _, arg := range c.Args {
//	            if c.BoolFlag("upper") {
//	                arg = strings.ToUpper(arg)
//	            }
//	            for i := 0; i < count; i++ {
//	                fmt.Println(arg)
//	            }
//	        }
//	        return nil
//	    },
//	}
//
//	if err := app.Run(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//
// # Subcommands
//
// Apps with Commands match the first argument token against each command
// name and run that command with the tokens after it:
//
//	app := &seahorse.App{
//	    Name: "store",
//	    Commands: []seahorse.Command{
//	        {
//	            Name:  "put",
//	            Usage: "store a value under a key",
//	            Flags: []seahorse.Flag{
//	                seahorse.NewFlag("ttl", "seconds to keep the value", seahorse.Int),
//	            },
//	            Action: put,
//	        },
//	    },
//	}
//
// "help", -h, and --help print the generated help text; -v and --version
// print the version line. Both go to App.Writer (os.Stdout by default), and
// Run never exits the process.
//
// # Flag Syntax
//
// A flag is triggered by the exact token "--" + name. Bool flags stand
// alone; String, Int, and Float flags consume the immediately following
// token as their value, whatever it looks like. Combined short clusters and
// "=" forms are not recognized, and removed tokens are not restored.
//
// # Direct Context Use
//
// The resolver is usable without an App for callers that own their argument
// vector:
//
//	c := seahorse.NewContext(os.Args[1:], []seahorse.Flag{
//	    seahorse.NewFlag("verbose", "log every step", seahorse.Bool),
//	})
//	if c.BoolFlag("verbose") {
//	    log.Printf("args: %v", c.Args)
//	}
//
// Accessors for flags that never appeared report ErrFlagNotFound; accessors
// asking for the wrong type report ErrFlagTypeMismatch. BoolFlag reports
// false for every miss.
package seahorse
