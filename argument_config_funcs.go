package cmdkit

// WithDescription sets the argument description shown in help output.
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.description = description
	}
}

// WithDefault sets the default value, which marks the argument optional.
// The value must already be of the coerced type for the argument's
// validator - defaults bypass validation at parse time.
func WithDefault(value any) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.defaultValue = value
	}
}
