package cmdkit

import "fmt"

// WithCommandDescription sets the command description shown in help output.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(cmd Command) {
		cmd.node().description = description
	}
}

// WithFlags registers flags into the command's own scope. Flags registered
// on a group are visible to every descendant through scope chaining.
func WithFlags(flags ...*Flag) ConfigureCommandFunc {
	return func(cmd Command) {
		for _, f := range flags {
			if err := cmd.Scope().Register(f); err != nil {
				cmd.node().recordErr(err)
			}
		}
	}
}

// WithCommands registers subcommands. Only valid on a GroupCommand.
func WithCommands(subcommands ...Command) ConfigureCommandFunc {
	return func(cmd Command) {
		group, ok := cmd.(*GroupCommand)
		if !ok {
			cmd.node().recordErr(fmt.Errorf(FmtErrorWithString, ErrUnsupportedCommandType,
				"WithCommands requires a group command"))
			return
		}
		for _, sub := range subcommands {
			if err := group.AddCommand(sub); err != nil {
				group.recordErr(err)
			}
		}
	}
}

// WithArguments declares positional parameters in order. Only valid on an
// ActionCommand.
func WithArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(cmd Command) {
		action, ok := cmd.(*ActionCommand)
		if !ok {
			cmd.node().recordErr(fmt.Errorf(FmtErrorWithString, ErrUnsupportedCommandType,
				"WithArguments requires an action command"))
			return
		}
		for _, argument := range arguments {
			if err := action.AddArgument(argument); err != nil {
				action.recordErr(err)
			}
		}
	}
}

// WithHandler binds the handler run when the action is resolved.
func WithHandler(handler ActionHandler) ConfigureCommandFunc {
	return func(cmd Command) {
		action, ok := cmd.(*ActionCommand)
		if !ok {
			cmd.node().recordErr(fmt.Errorf(FmtErrorWithString, ErrUnsupportedCommandType,
				"WithHandler requires an action command"))
			return
		}
		action.handler = handler
	}
}

// WithGroupHandler binds the handler run when the group is resolved without
// a subcommand token.
func WithGroupHandler(handler GroupHandler) ConfigureCommandFunc {
	return func(cmd Command) {
		group, ok := cmd.(*GroupCommand)
		if !ok {
			cmd.node().recordErr(fmt.Errorf(FmtErrorWithString, ErrUnsupportedCommandType,
				"WithGroupHandler requires a group command"))
			return
		}
		group.handler = handler
	}
}
