package cmdkit

import "fmt"

// WithLong sets the long alias under which the flag is addressable as
// --alias. Normalized with DefaultNameConverter.
func WithLong(long string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.long = DefaultNameConverter(long)
	}
}

// WithShort sets the single-character short alias under which the flag is
// addressable as -a.
func WithShort(short string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		if len(short) != 1 {
			if err != nil {
				*err = fmt.Errorf("short alias must be a single character, got %q", short)
			}
			return
		}
		flag.short = DefaultNameConverter(short)
	}
}

// WithFlagDescription sets the flag description shown in help output.
func WithFlagDescription(description string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.description = description
	}
}

// WithFlagDefault sets the default value, which marks a value-based flag
// optional. The value must already be of the coerced type for the flag's
// validator.
func WithFlagDefault(value any) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.defaultValue = value
	}
}
