// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	isTerminalFn = term.IsTerminal
	termSizeFn   = term.GetSize
)

// fallbackWidth is used when the writer is not a terminal or its size is
// unknown.
const fallbackWidth = 80

// printHelp writes the NAME/USAGE/VERSION/AUTHOR/COMMANDS/FLAGS sections to
// the app writer. Section headers are bold when the writer is a terminal.
func (a *App) printHelp() {
	w := a.writer()
	header := sectionHeader(w)
	width := helpWidth(w)

	fmt.Fprintln(w, header("NAME:"))
	name := a.Name
	if a.Usage != "" {
		name += " - " + a.Usage
	}
	fmt.Fprintf(w, "%s\n\n", wrap(name, width, "   "))

	fmt.Fprintln(w, header("USAGE:"))
	usage := a.Name + " [flags] [arguments]"
	if len(a.Commands) > 0 {
		usage = a.Name + " [command] [flags] [arguments]"
	}
	fmt.Fprintf(w, "%s\n\n", wrap(usage, width, "   "))

	if a.Version != "" {
		fmt.Fprintln(w, header("VERSION:"))
		fmt.Fprintf(w, "   %s\n\n", a.Version)
	}

	if a.Author != "" {
		fmt.Fprintln(w, header("AUTHOR:"))
		fmt.Fprintf(w, "   %s\n\n", a.Author)
	}

	if len(a.Commands) > 0 {
		fmt.Fprintln(w, header("COMMANDS:"))
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, c := range a.Commands {
			fmt.Fprintf(tw, "   %s\t%s\n", c.Name, c.Usage)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(a.Flags) > 0 {
		fmt.Fprintln(w, header("FLAGS:"))
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, f := range a.Flags {
			fmt.Fprintf(tw, "   %s\t%s\n", flagColumn(f), f.Usage)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}

// printVersion writes the app name and version to the app writer.
func (a *App) printVersion() {
	fmt.Fprintf(a.writer(), "%s version %s\n", a.Name, a.Version)
}

// flagColumn renders the left help column for a flag. Bool flags show the
// bare trigger; typed flags show a value placeholder.
func flagColumn(f Flag) string {
	if f.Type == Bool {
		return f.Trigger()
	}
	return fmt.Sprintf("%s <%s>", f.Trigger(), f.Type)
}

// sectionHeader returns the renderer for section headers: bold when w is a
// terminal, plain otherwise.
func sectionHeader(w io.Writer) func(...any) string {
	if f, ok := w.(*os.File); ok && isTerminalFn(int(f.Fd())) {
		return color.New(color.Bold).Sprint
	}
	return fmt.Sprint
}

// helpWidth returns the text width for help output: the terminal width when
// w is a terminal, fallbackWidth otherwise.
func helpWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return fallbackWidth
	}
	cols, _, err := termSizeFn(int(f.Fd()))
	if err != nil || cols <= 0 {
		return fallbackWidth
	}
	return cols
}

// wrap indents text and breaks it on spaces so no line exceeds width. A
// single word longer than width gets its own line rather than being split.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}
	var b strings.Builder
	line := indent + words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			b.WriteString(line)
			b.WriteByte('\n')
			line = indent + word
			continue
		}
		line += " " + word
	}
	b.WriteString(line)
	return b.String()
}
