package cmdkit

import (
	"github.com/cmdkit/cmdkit/types"
)

// Flag describes a command-line switch addressable by a long and/or short
// alias, distinct from positional arguments. Lookup identity is the *Flag
// pointer itself: the same definition may be indexed under several keys in
// several scopes yet resolves to a single entry in the result map.
type Flag struct {
	Argument
	long       string
	short      string
	valueBased bool
}

// NewFlag creates a value-based flag definition. The name is normalized
// with DefaultNameConverter.
func NewFlag(name string, validator types.Validator, configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{
		Argument: Argument{
			name:      DefaultNameConverter(name),
			validator: validator,
		},
		valueBased: true,
	}
	for _, config := range configs {
		config(flag, nil)
	}

	return flag
}

// NewBoolFlag creates a presence flag: it takes no value, defaults to false
// and is therefore never required - presence is the value.
func NewBoolFlag(name string, configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{
		Argument: Argument{
			name:         DefaultNameConverter(name),
			validator:    types.Bool,
			defaultValue: false,
		},
	}
	for _, config := range configs {
		config(flag, nil)
	}

	return flag
}

// Set configures the Flag with the provided ConfigureFlagFunc(s) and
// returns an error if a configuration fails.
func (f *Flag) Set(configs ...ConfigureFlagFunc) error {
	var err error
	for _, config := range configs {
		config(f, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Long returns the long alias, "" when none is set.
func (f *Flag) Long() string {
	return f.long
}

// Short returns the single-character short alias, "" when none is set.
func (f *Flag) Short() string {
	return f.short
}

// IsValueBased reports whether the flag carries a value. Boolean presence
// flags return false.
func (f *Flag) IsValueBased() bool {
	return f.valueBased
}
