// Package types defines the pluggable value typing layer shared by flags
// and positional arguments. A Validator pairs a validity check with a
// coercion from the raw token to the typed domain value. Validators are
// stateless strategy objects so the same type can back both a flag and a
// positional argument, and new types plug in without touching the parser.
package types

import (
	"math"
	"strconv"
	"strings"
)

// Validator is the contract implemented by all value types.
//
// Coerce is only defined on input IsValid has accepted - implementations
// may assume pre-validated input and callers must not rely on Coerce to
// validate.
type Validator interface {
	// Name returns the stable type tag, e.g. "bool", "int" or "enum".
	Name() string
	// Description returns a human-readable description of accepted input.
	Description() string
	// IsValid reports whether raw can be coerced.
	IsValid(raw string) bool
	// Coerce converts raw to its typed value.
	Coerce(raw string) any
}

// Built-in stateless validators.
var (
	Bool   Validator = boolValidator{}
	Number Validator = numberValidator{}
	Int    Validator = intValidator{}
	String Validator = stringValidator{}
	Glob   Validator = globValidator{}
	Date   Validator = dateValidator{}
)

type boolValidator struct{}

func (boolValidator) Name() string        { return "bool" }
func (boolValidator) Description() string { return "true, false, 1 or 0" }

func (boolValidator) IsValid(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "false", "1", "0":
		return true
	}

	return false
}

func (boolValidator) Coerce(raw string) any {
	switch strings.ToLower(raw) {
	case "false", "0":
		return false
	}

	return true
}

type numberValidator struct{}

func (numberValidator) Name() string        { return "number" }
func (numberValidator) Description() string { return "a decimal number" }

func (numberValidator) IsValid(raw string) bool {
	f, err := strconv.ParseFloat(raw, 64)

	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (numberValidator) Coerce(raw string) any {
	f, _ := strconv.ParseFloat(raw, 64)

	return f
}

type intValidator struct{}

func (intValidator) Name() string        { return "int" }
func (intValidator) Description() string { return "a whole number" }

// IsValid accepts any numeric form whose value is mathematically integral,
// so "3" and "3.0" pass while "3.5" does not.
func (intValidator) IsValid(raw string) bool {
	f, err := strconv.ParseFloat(raw, 64)

	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

func (intValidator) Coerce(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	f, _ := strconv.ParseFloat(raw, 64)

	return int64(f)
}

type stringValidator struct{}

func (stringValidator) Name() string          { return "string" }
func (stringValidator) Description() string   { return "any text" }
func (stringValidator) IsValid(string) bool   { return true }
func (stringValidator) Coerce(raw string) any { return raw }
