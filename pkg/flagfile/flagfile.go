// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagfile supplies default flag values from config files and the
// environment.
//
// Defaults never override tokens already on the command line: Apply only
// appends trigger and value tokens for declared flags that are absent from
// the argument vector, so the resolver sees them as ordinary input.
package flagfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jhilmer/seahorse/pkg/seahorse"
	"gopkg.in/yaml.v3"
)

// Values maps flag names to raw token text.
type Values map[string]string

// Load reads flag defaults from the file at path. The format is picked by
// extension: .toml, .yaml, or .yml. Values must be scalars; tables and
// arrays are rejected.
func Load(path string) (Values, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported flag file extension %q", filepath.Ext(path))
	}
	return stringify(raw)
}

// stringify converts scalar values to their command-line token form.
func stringify(raw map[string]any) (Values, error) {
	v := make(Values, len(raw))
	for key, val := range raw {
		switch t := val.(type) {
		case string:
			v[key] = t
		case bool:
			v[key] = strconv.FormatBool(t)
		case int:
			v[key] = strconv.Itoa(t)
		case int64:
			v[key] = strconv.FormatInt(t, 10)
		case float64:
			v[key] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("flag %q: unsupported value type %T", key, val)
		}
	}
	return v, nil
}

// FromEnv returns values for the declared flags read from environment
// variables named prefix_NAME, with the flag name uppercased and dashes
// mapped to underscores (flag dry-run under prefix GREET reads
// GREET_DRY_RUN).
func FromEnv(prefix string, flags []seahorse.Flag) Values {
	v := make(Values)
	for _, f := range flags {
		key := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if prefix != "" {
			key = prefix + "_" + key
		}
		if val, ok := os.LookupEnv(key); ok {
			v[f.Name] = val
		}
	}
	return v
}

// Merge returns a copy of v with entries from over taking precedence.
func (v Values) Merge(over Values) Values {
	merged := make(Values, len(v)+len(over))
	for key, val := range v {
		merged[key] = val
	}
	for key, val := range over {
		merged[key] = val
	}
	return merged
}

// Apply returns args extended with tokens for declared flags that have a
// value in v and whose trigger is absent from args. Bool defaults append the
// bare trigger, and only when the value parses true; other types append the
// trigger and the raw value token.
func Apply(args []string, flags []seahorse.Flag, v Values) []string {
	out := slices.Clone(args)
	for _, f := range flags {
		raw, ok := v[f.Name]
		if !ok {
			continue
		}
		if slices.Contains(out, f.Trigger()) {
			continue
		}
		if f.Type == seahorse.Bool {
			if on, err := strconv.ParseBool(raw); err == nil && on {
				out = append(out, f.Trigger())
			}
			continue
		}
		out = append(out, f.Trigger(), raw)
	}
	return out
}
