package cmdkit

// useDefault is the sentinel recorded when a value-based flag is supplied
// bare but carries a usable default. GetValue maps it back to the declared
// default at read time.
type useDefault struct{}

// ParseResult is the outcome of a successful parse: the resolved command,
// the coerced positional values and the identity-keyed flag map. A fresh
// result is built per parse and, apart from the recursive merge step during
// the unwind, never mutated after it is returned.
type ParseResult struct {
	command Command
	args    []any
	flags   map[*Flag]any
}

func newParseResult(cmd Command, args []any, flags map[*Flag]any) *ParseResult {
	if flags == nil {
		flags = map[*Flag]any{}
	}

	return &ParseResult{
		command: cmd,
		args:    args,
		flags:   flags,
	}
}

// Command returns the resolved command node.
func (r *ParseResult) Command() Command {
	return r.command
}

// Args returns the coerced positional values in declaration order; surplus
// tokens beyond the declared parameter count follow as raw strings.
func (r *ParseResult) Args() []any {
	return r.args
}

// Has reports whether the flag was supplied or defaulted during this parse.
func (r *ParseResult) Has(f *Flag) bool {
	_, ok := r.flags[f]

	return ok
}

// GetValue returns the resolved value for f, falling back to the flag's own
// declared default when f is absent from the result or was invoked bare.
func (r *ParseResult) GetValue(f *Flag) any {
	if v, ok := r.flags[f]; ok {
		if _, bare := v.(useDefault); !bare {
			return v
		}
	}

	return f.DefaultValue()
}

// HelpRequested reports whether a help flag resolved true anywhere along
// the resolved command's ancestor chain.
func (r *ParseResult) HelpRequested() bool {
	return helpRequested(r.command, r.flags)
}

// Executable binds the resolved command's handler to this result. The
// second return value is false when there is nothing to run: the command
// has no handler, or help was requested - callers should render help
// instead of executing.
func (r *ParseResult) Executable() (func() error, bool) {
	if r.HelpRequested() {
		return nil, false
	}

	switch c := r.command.(type) {
	case *ActionCommand:
		if c.handler != nil {
			return func() error { return c.handler(r, r.args) }, true
		}
	case *GroupCommand:
		if c.handler != nil {
			return func() error { return c.handler(r) }, true
		}
	}

	return nil, false
}

// mergeDefaults copies every entry of outer not already present. Outer
// flags resolved before a subcommand token act as defaults the inner scope
// may override.
func (r *ParseResult) mergeDefaults(outer map[*Flag]any) {
	for f, v := range outer {
		if _, ok := r.flags[f]; !ok {
			r.flags[f] = v
		}
	}
}

// helpRequested walks cmd's ancestor chain checking each node's help-flag
// identity against the resolved flag set. Inherited resolution may record
// the value under an ancestor's flag object, so a single node check is not
// enough.
func helpRequested(cmd Command, flags map[*Flag]any) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if v, ok := flags[c.HelpFlag()]; ok {
			if b, isBool := v.(bool); isBool && b {
				return true
			}
		}
	}

	return false
}
