// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestNewContext(t *testing.T) {
	args := []string{"cli", "command", "args", "--bool", "--string", "test", "--int", "100", "--float", "1.23"}
	flags := []Flag{
		NewFlag("bool", "bool flag", Bool),
		NewFlag("string", "string flag", String),
		NewFlag("int", "int flag", Int),
		NewFlag("float", "float flag", Float),
	}
	c := NewContext(args, flags)

	if want := []string{"cli", "command", "args"}; !reflect.DeepEqual(c.Args, want) {
		t.Fatalf("Args = %#v, want %#v", c.Args, want)
	}
	if !c.BoolFlag("bool") {
		t.Fatal("BoolFlag(bool) = false, want true")
	}
	s, err := c.StringFlag("string")
	if err != nil {
		t.Fatalf("StringFlag(string) error: %v", err)
	}
	if s != "test" {
		t.Fatalf("StringFlag(string) = %q, want %q", s, "test")
	}
	n, err := c.IntFlag("int")
	if err != nil {
		t.Fatalf("IntFlag(int) error: %v", err)
	}
	if n != 100 {
		t.Fatalf("IntFlag(int) = %d, want %d", n, 100)
	}
	f, err := c.FloatFlag("float")
	if err != nil {
		t.Fatalf("FloatFlag(float) error: %v", err)
	}
	if f != 1.23 {
		t.Fatalf("FloatFlag(float) = %v, want %v", f, 1.23)
	}
}

func TestNewContextValueFlagLast(t *testing.T) {
	args := []string{"cli", "command", "args", "--bool", "--string"}
	flags := []Flag{
		NewFlag("bool", "bool flag", Bool),
		NewFlag("string", "string flag", String),
	}
	c := NewContext(args, flags)

	if want := []string{"cli", "command", "args"}; !reflect.DeepEqual(c.Args, want) {
		t.Fatalf("Args = %#v, want %#v", c.Args, want)
	}
	if !c.BoolFlag("bool") {
		t.Fatal("BoolFlag(bool) = false, want true")
	}
	if _, err := c.StringFlag("string"); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("StringFlag(string) error = %v, want ErrMissingValue", err)
	}
}

func TestNewContextValueFlagAlone(t *testing.T) {
	c := NewContext([]string{"--int"}, []Flag{NewFlag("int", "int flag", Int)})

	if len(c.Args) != 0 {
		t.Fatalf("Args = %#v, want empty", c.Args)
	}
	if _, err := c.IntFlag("int"); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("IntFlag(int) error = %v, want ErrMissingValue", err)
	}
}

func TestNewContextInterleavedFlags(t *testing.T) {
	args := []string{"a", "--verbose", "b", "--name", "x", "c"}
	flags := []Flag{
		NewFlag("verbose", "verbose flag", Bool),
		NewFlag("name", "name flag", String),
	}
	c := NewContext(args, flags)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(c.Args, want) {
		t.Fatalf("Args = %#v, want %#v", c.Args, want)
	}
	if !c.BoolFlag("verbose") {
		t.Fatal("BoolFlag(verbose) = false, want true")
	}
	name, err := c.StringFlag("name")
	if err != nil {
		t.Fatalf("StringFlag(name) error: %v", err)
	}
	if name != "x" {
		t.Fatalf("StringFlag(name) = %q, want %q", name, "x")
	}
}

func TestBoolFlag(t *testing.T) {
	flags := []Flag{NewFlag("dry-run", "skip writes", Bool)}

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"present", []string{"sync", "--dry-run"}, true},
		{"leading", []string{"--dry-run", "sync"}, true},
		{"absent", []string{"sync"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext(tt.args, flags)
			if got := c.BoolFlag("dry-run"); got != tt.want {
				t.Fatalf("BoolFlag(dry-run) = %v, want %v", got, tt.want)
			}
			if want := []string{"sync"}; !reflect.DeepEqual(c.Args, want) {
				t.Fatalf("Args = %#v, want %#v", c.Args, want)
			}
		})
	}
}

func TestAccessorLookupMiss(t *testing.T) {
	c := NewContext([]string{"--count", "3"}, []Flag{NewFlag("count", "count flag", Int)})

	if c.BoolFlag("missing") {
		t.Fatal("BoolFlag(missing) = true, want false")
	}
	if _, err := c.StringFlag("missing"); !errors.Is(err, ErrFlagNotFound) {
		t.Fatalf("StringFlag(missing) error = %v, want ErrFlagNotFound", err)
	}
	if _, err := c.IntFlag("missing"); !errors.Is(err, ErrFlagNotFound) {
		t.Fatalf("IntFlag(missing) error = %v, want ErrFlagNotFound", err)
	}
	if _, err := c.FloatFlag("missing"); !errors.Is(err, ErrFlagNotFound) {
		t.Fatalf("FloatFlag(missing) error = %v, want ErrFlagNotFound", err)
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	c := NewContext([]string{"--count", "3"}, []Flag{NewFlag("count", "count flag", Int)})

	if c.BoolFlag("count") {
		t.Fatal("BoolFlag(count) = true, want false")
	}
	if _, err := c.StringFlag("count"); !errors.Is(err, ErrFlagTypeMismatch) {
		t.Fatalf("StringFlag(count) error = %v, want ErrFlagTypeMismatch", err)
	}
	if _, err := c.FloatFlag("count"); !errors.Is(err, ErrFlagTypeMismatch) {
		t.Fatalf("FloatFlag(count) error = %v, want ErrFlagTypeMismatch", err)
	}
	n, err := c.IntFlag("count")
	if err != nil {
		t.Fatalf("IntFlag(count) error: %v", err)
	}
	if n != 3 {
		t.Fatalf("IntFlag(count) = %d, want %d", n, 3)
	}
}

func TestIntFlagInvalidValue(t *testing.T) {
	c := NewContext([]string{"--port", "http"}, []Flag{NewFlag("port", "listen port", Int)})

	_, err := c.IntFlag("port")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("IntFlag(port) error = %v, want strconv.ErrSyntax", err)
	}
	if want := `invalid int value "http"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("IntFlag(port) error = %q, want contains %q", err, want)
	}
	if len(c.Args) != 0 {
		t.Fatalf("Args = %#v, want empty", c.Args)
	}

	// The recorded failure surfaces through every typed accessor for the
	// name, not only the matching one.
	if _, err := c.StringFlag("port"); !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("StringFlag(port) error = %v, want strconv.ErrSyntax", err)
	}
	if c.BoolFlag("port") {
		t.Fatal("BoolFlag(port) = true, want false")
	}
}

func TestFloatFlagInvalidValue(t *testing.T) {
	c := NewContext([]string{"--ratio", "half"}, []Flag{NewFlag("ratio", "sampling ratio", Float)})

	_, err := c.FloatFlag("ratio")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("FloatFlag(ratio) error = %v, want strconv.ErrSyntax", err)
	}
	if want := `invalid float value "half"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("FloatFlag(ratio) error = %q, want contains %q", err, want)
	}
}

func TestNewContextNoDeclarations(t *testing.T) {
	args := []string{"run", "--verbose"}

	tests := []struct {
		name  string
		flags []Flag
	}{
		{"nil", nil},
		{"empty", []Flag{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext(args, tt.flags)
			if !reflect.DeepEqual(c.Args, args) {
				t.Fatalf("Args = %#v, want %#v", c.Args, args)
			}
			if c.BoolFlag("verbose") {
				t.Fatal("BoolFlag(verbose) = true, want false")
			}
			if _, err := c.StringFlag("verbose"); !errors.Is(err, ErrFlagNotFound) {
				t.Fatalf("StringFlag(verbose) error = %v, want ErrFlagNotFound", err)
			}
		})
	}
}

func TestNewContextDuplicateNames(t *testing.T) {
	flags := []Flag{
		NewFlag("n", "first declaration", Int),
		NewFlag("n", "second declaration", String),
	}
	c := NewContext([]string{"--n", "5", "--n", "x"}, flags)

	// Each declaration scans the live list in turn, so the second --n feeds
	// the second declaration and its outcome overwrites the first.
	if _, err := c.IntFlag("n"); !errors.Is(err, ErrFlagTypeMismatch) {
		t.Fatalf("IntFlag(n) error = %v, want ErrFlagTypeMismatch", err)
	}
	s, err := c.StringFlag("n")
	if err != nil {
		t.Fatalf("StringFlag(n) error: %v", err)
	}
	if s != "x" {
		t.Fatalf("StringFlag(n) = %q, want %q", s, "x")
	}
	if len(c.Args) != 0 {
		t.Fatalf("Args = %#v, want empty", c.Args)
	}
}

func TestStringFlagConsumesFollowingTrigger(t *testing.T) {
	flags := []Flag{
		NewFlag("out", "output path", String),
		NewFlag("force", "overwrite the output", Bool),
	}
	c := NewContext([]string{"--out", "--force"}, flags)

	// --force sits right after --out, so it is consumed as out's value and
	// never seen as a flag of its own.
	s, err := c.StringFlag("out")
	if err != nil {
		t.Fatalf("StringFlag(out) error: %v", err)
	}
	if s != "--force" {
		t.Fatalf("StringFlag(out) = %q, want %q", s, "--force")
	}
	if c.BoolFlag("force") {
		t.Fatal("BoolFlag(force) = true, want false")
	}
	if len(c.Args) != 0 {
		t.Fatalf("Args = %#v, want empty", c.Args)
	}
}

func TestNewContextCopiesArgs(t *testing.T) {
	args := []string{"keep", "--level", "3"}
	c := NewContext(args, []Flag{NewFlag("level", "level flag", Int)})

	args[0] = "mutated"
	if want := []string{"keep"}; !reflect.DeepEqual(c.Args, want) {
		t.Fatalf("Args = %#v, want %#v", c.Args, want)
	}
}
