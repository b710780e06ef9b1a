// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The fetch command checks URLs over HTTP. Its get subcommand fetches every
// URL concurrently and prints a colorized per-URL status line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jhilmer/seahorse/pkg/seahorse"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &seahorse.App{
		Name:    "fetch",
		Author:  "seahorse authors",
		Version: "0.1.0",
		Usage:   "check URLs over HTTP",
		Commands: []seahorse.Command{
			{
				Name:  "get",
				Usage: "fetch each URL and print its status",
				Flags: []seahorse.Flag{
					seahorse.NewFlag("timeout", "per-request timeout in seconds", seahorse.Int),
					seahorse.NewFlag("yes", "skip the confirmation prompt", seahorse.Bool),
				},
				Action: runGet,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runGet(c *seahorse.Context) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("no URLs given")
	}
	if !c.BoolFlag("yes") {
		ok, err := confirm(os.Stdin, os.Stdout, fmt.Sprintf("Fetch %d URL(s)?", len(c.Args)))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	timeout := 10
	if n, err := c.IntFlag("timeout"); err == nil && n > 0 {
		timeout = n
	}
	client := &http.Client{Timeout: time.Duration(timeout) * time.Second}

	var g errgroup.Group
	for _, url := range c.Args {
		url := url // per-iteration copy; go.mod predates Go 1.22 loop semantics
		g.Go(func() error {
			resp, err := client.Get(url)
			if err != nil {
				color.Red("%s: %v", url, err)
				return err
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)
			if resp.StatusCode >= 400 {
				color.Red("%s: %s", url, resp.Status)
				return fmt.Errorf("%s: %s", url, resp.Status)
			}
			color.Green("%s: %s", url, resp.Status)
			return nil
		})
	}
	return g.Wait()
}

// confirm prompts for a y/N answer on r.
func confirm(r io.Reader, w io.Writer, msg string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", msg)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
