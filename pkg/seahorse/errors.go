// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seahorse

import "errors"

// Sentinel errors returned by the typed flag accessors
var (
	// ErrFlagNotFound is returned when no value was recorded for a flag,
	// either because it was never declared or never appeared in the input.
	ErrFlagNotFound = errors.New("flag not found")

	// ErrFlagTypeMismatch is returned when a flag's recorded value holds a
	// different type than the accessor asks for.
	ErrFlagTypeMismatch = errors.New("flag type mismatch")

	// ErrMissingValue is recorded for a flag that requires a value when no
	// token follows its trigger.
	ErrMissingValue = errors.New("missing flag value")
)
