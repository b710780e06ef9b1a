// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import "slices"

// flagOutcome records the result of resolving one declared flag. Exactly one
// of value and err is set.
type flagOutcome struct {
	value FlagValue
	err   error
}

// Context carries the resolved command line for one action invocation: the
// positional arguments that survived flag extraction plus the per-flag
// outcomes. A Context is built once by NewContext and is read-only
// afterward, so it is safe for concurrent reads.
type Context struct {
	// Args holds the positional arguments, in input order, after every
	// declared flag's trigger and value tokens have been removed.
	Args []string

	// flags maps a flag name to its recorded outcome. It is nil when the
	// declaration list was nil and omits declared flags whose trigger never
	// appeared in the input.
	flags map[string]flagOutcome
}

// NewContext resolves args against the declared flags.
//
// Flags are processed in declaration order against a single shrinking copy
// of args: each flag found has its trigger token removed and, for non-Bool
// flags, the token now at the trigger's position removed and converted as
// its value. A non-Bool trigger in final position records a missing-value
// error instead of reading past the end. Declared flags whose trigger is not
// present record nothing; a duplicate declaration overwrites the earlier
// name's outcome.
//
// Resolution itself never fails. Conversion errors are recorded per flag and
// surface later through the typed accessors.
func NewContext(args []string, flags []Flag) *Context {
	parsed := slices.Clone(args)
	var outcomes map[string]flagOutcome
	if flags != nil {
		outcomes = make(map[string]flagOutcome, len(flags))
		for _, flag := range flags {
			index, ok := flag.optionIndex(parsed)
			if !ok {
				continue
			}
			parsed = slices.Delete(parsed, index, index+1)

			raw, captured := "", false
			if flag.Type != Bool && index < len(parsed) {
				raw, captured = parsed[index], true
				parsed = slices.Delete(parsed, index, index+1)
			}
			value, err := flag.value(raw, captured)
			outcomes[flag.Name] = flagOutcome{value: value, err: err}
		}
	}
	return &Context{Args: parsed, flags: outcomes}
}

// BoolFlag reports whether the named Bool flag was present in the input.
// Missing, mistyped, and failed outcomes all report false.
func (c *Context) BoolFlag(name string) bool {
	out, ok := c.flags[name]
	if !ok || out.err != nil {
		return false
	}
	v, ok := out.value.(BoolValue)
	return ok && bool(v)
}

// StringFlag returns the value of the named String flag. It returns
// ErrFlagNotFound when no outcome was recorded for the name and
// ErrFlagTypeMismatch when the recorded value is not a string. A conversion
// failure recorded during resolution is returned as is.
func (c *Context) StringFlag(name string) (string, error) {
	out, ok := c.flags[name]
	if !ok {
		return "", ErrFlagNotFound
	}
	if out.err != nil {
		return "", out.err
	}
	v, ok := out.value.(StringValue)
	if !ok {
		return "", ErrFlagTypeMismatch
	}
	return string(v), nil
}

// IntFlag returns the value of the named Int flag, with the same error
// contract as StringFlag.
func (c *Context) IntFlag(name string) (int, error) {
	out, ok := c.flags[name]
	if !ok {
		return 0, ErrFlagNotFound
	}
	if out.err != nil {
		return 0, out.err
	}
	v, ok := out.value.(IntValue)
	if !ok {
		return 0, ErrFlagTypeMismatch
	}
	return int(v), nil
}

// FloatFlag returns the value of the named Float flag, with the same error
// contract as StringFlag.
func (c *Context) FloatFlag(name string) (float64, error) {
	out, ok := c.flags[name]
	if !ok {
		return 0, ErrFlagNotFound
	}
	if out.err != nil {
		return 0, out.err
	}
	v, ok := out.value.(FloatValue)
	if !ok {
		return 0, ErrFlagTypeMismatch
	}
	return float64(v), nil
}
