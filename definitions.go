package cmdkit

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ActionHandler is the callback bound to an ActionCommand. It receives the
// parse result and the coerced positional values in declaration order.
type ActionHandler func(result *ParseResult, args []any) error

// GroupHandler is the callback bound to a GroupCommand, invoked when the
// group is resolved directly, i.e. without a subcommand token.
type GroupHandler func(result *ParseResult) error

// ConfigureArgumentFunc is used when defining positional arguments.
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureFlagFunc is used when defining flags.
type ConfigureFlagFunc func(flag *Flag, err *error)

// ConfigureCommandFunc is used when assembling command nodes.
type ConfigureCommandFunc func(cmd Command)

// ConfigureRendererFunc is used when configuring a help Renderer.
type ConfigureRendererFunc func(r *Renderer)

// NameConversionFunc normalizes a user-supplied command, flag or argument
// name before registration and lookup.
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myCommandName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	// DefaultNameConverter is applied to every name at registration and at
	// parse time, which is what makes matching case-insensitive.
	DefaultNameConverter NameConversionFunc = ToLowerCase
)
