package cmdkit

import (
	"fmt"

	"github.com/cmdkit/cmdkit/types"
)

// Argument describes a named, typed positional parameter. Definitions are
// built once at command-tree construction time and never mutated afterwards;
// the same definition is shared by every parse.
type Argument struct {
	name         string
	description  string
	validator    types.Validator
	defaultValue any
}

// NewArgument creates a positional argument definition. The name is
// normalized with DefaultNameConverter. An argument without a default is
// required.
func NewArgument(name string, validator types.Validator, configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{
		name:      DefaultNameConverter(name),
		validator: validator,
	}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument with the provided ConfigureArgumentFunc(s)
// and returns an error if a configuration fails.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Name returns the normalized argument name.
func (a *Argument) Name() string {
	return a.name
}

// Description returns the argument description.
func (a *Argument) Description() string {
	return a.description
}

// Validator returns the argument's value type.
func (a *Argument) Validator() types.Validator {
	return a.validator
}

// DefaultValue returns the declared default, nil when the argument is
// required.
func (a *Argument) DefaultValue() any {
	return a.defaultValue
}

// IsRequired reports whether the argument must be supplied, i.e. has no
// default value.
func (a *Argument) IsRequired() bool {
	return a.defaultValue == nil
}

// Enforce resolves a raw token against this definition. A nil raw yields
// the declared default and fails when the argument is required. A non-nil
// raw must pass the validator before coercion.
func (a *Argument) Enforce(raw *string) (any, error) {
	if raw == nil {
		if a.defaultValue != nil {
			return a.defaultValue, nil
		}

		return nil, fmt.Errorf(FmtErrorWithString, ErrRequiredArgumentMissing, a.name)
	}

	if !a.validator.IsValid(*raw) {
		return nil, fmt.Errorf("%w for %s: %q", ErrInvalidArgumentValue, a.name, *raw)
	}

	return a.validator.Coerce(*raw), nil
}

// String returns the help display form: <name:type> when required,
// [name:type] when optional.
func (a *Argument) String() string {
	if a.IsRequired() {
		return "<" + a.name + ":" + a.validator.Name() + ">"
	}

	return "[" + a.name + ":" + a.validator.Name() + "]"
}
