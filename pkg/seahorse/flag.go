// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import (
	"fmt"
	"slices"
	"strconv"
)

// FlagType declares how a flag's value token is interpreted.
type FlagType int

const (
	// Bool flags take no value token; presence alone means true.
	Bool FlagType = iota
	// String flags consume the token following the trigger verbatim.
	String
	// Int flags consume and parse the following token as a signed integer.
	Int
	// Float flags consume and parse the following token as a 64-bit float.
	Float
)

func (t FlagType) String() string {
	switch t {
	case Bool:
		return "bool"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("FlagType(%d)", int(t))
}

// Flag declares a named command-line flag. Declarations are read-only during
// resolution; the same Flag value can be shared across apps and commands.
type Flag struct {
	// Name identifies the flag in accessor lookups.
	Name string
	// Usage is one-line help text.
	Usage string
	// Type determines whether and how the token following the trigger is
	// consumed.
	Type FlagType
}

// NewFlag returns a flag declaration with the given name, usage text, and type.
func NewFlag(name, usage string, t FlagType) Flag {
	return Flag{Name: name, Usage: usage, Type: t}
}

// Trigger returns the token that marks this flag on the command line.
func (f Flag) Trigger() string {
	return "--" + f.Name
}

// optionIndex reports the position of the flag's trigger token in args.
// Matching is exact; combined short clusters and "=" forms are not recognized.
func (f Flag) optionIndex(args []string) (int, bool) {
	i := slices.Index(args, f.Trigger())
	return i, i >= 0
}

// FlagValue is a typed value produced by resolving one flag. The concrete
// type is one of BoolValue, StringValue, IntValue, or FloatValue, matching
// the flag's declared FlagType.
type FlagValue interface {
	flagValue()
}

type (
	BoolValue   bool
	StringValue string
	IntValue    int
	FloatValue  float64
)

func (BoolValue) flagValue()   {}
func (StringValue) flagValue() {}
func (IntValue) flagValue()    {}
func (FloatValue) flagValue()  {}

// value converts a captured raw token into the flag's declared type. ok
// reports whether a token was captured at all; Bool flags are valued by
// presence alone and never look at raw.
func (f Flag) value(raw string, ok bool) (FlagValue, error) {
	if f.Type == Bool {
		return BoolValue(true), nil
	}
	if !ok {
		return nil, fmt.Errorf("flag %s: %w", f.Trigger(), ErrMissingValue)
	}
	switch f.Type {
	case String:
		return StringValue(raw), nil
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q: %w", raw, err)
		}
		return IntValue(n), nil
	case Float:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q: %w", raw, err)
		}
		return FloatValue(n), nil
	}
	return nil, fmt.Errorf("flag %s: unknown flag type %v", f.Trigger(), f.Type)
}
