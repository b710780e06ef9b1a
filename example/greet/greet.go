// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The greet command prints a greeting for each name given on the command
// line. Flag defaults come from the file named by GREET_CONFIG and from
// GREET_* environment variables; explicit flags win over both.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jhilmer/seahorse/pkg/flagfile"
	"github.com/jhilmer/seahorse/pkg/seahorse"
)

var greetings = map[string]string{
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
}

func main() {
	flags := []seahorse.Flag{
		seahorse.NewFlag("lang", "greeting language (en, es, fr)", seahorse.String),
		seahorse.NewFlag("times", "number of times to greet each name", seahorse.Int),
		seahorse.NewFlag("shout", "print the greeting uppercased", seahorse.Bool),
		seahorse.NewFlag("pitch", "exclamation marks per greeting, fractional allowed", seahorse.Float),
	}

	app := &seahorse.App{
		Name:    "greet",
		Author:  "seahorse authors",
		Version: "0.1.0",
		Usage:   "print a greeting for each name given",
		Flags:   flags,
		Action:  greet,
	}

	defaults, err := loadDefaults(flags)
	if err != nil {
		log.Fatal(err)
	}
	argv := append([]string{os.Args[0]}, flagfile.Apply(os.Args[1:], flags, defaults)...)

	if err := app.Run(argv); err != nil {
		log.Fatal(err)
	}
}

// loadDefaults merges file defaults with GREET_* environment overrides.
func loadDefaults(flags []seahorse.Flag) (flagfile.Values, error) {
	defaults := flagfile.Values{}
	if path := os.Getenv("GREET_CONFIG"); path != "" {
		loaded, err := flagfile.Load(path)
		if err != nil {
			return nil, err
		}
		defaults = loaded
	}
	return defaults.Merge(flagfile.FromEnv("GREET", flags)), nil
}

func greet(c *seahorse.Context) error {
	lang, err := c.StringFlag("lang")
	if err != nil {
		lang = "en"
	}
	word, ok := greetings[lang]
	if !ok {
		return fmt.Errorf("unknown language %q", lang)
	}

	times, err := c.IntFlag("times")
	if err != nil || times < 1 {
		times = 1
	}
	marks := 1
	if pitch, err := c.FloatFlag("pitch"); err == nil && pitch > 0 {
		marks = int(pitch + 0.5)
	}

	names := c.Args
	if len(names) == 0 {
		names = []string{"world"}
	}
	for _, name := range names {
		line := fmt.Sprintf("%s, %s%s", word, name, strings.Repeat("!", marks))
		if c.BoolFlag("shout") {
			line = strings.ToUpper(line)
		}
		for i := 0; i < times; i++ {
			fmt.Println(line)
		}
	}
	return nil
}
