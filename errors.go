package cmdkit

import (
	"errors"
	"fmt"
)

var (
	ErrExpectedSubcommand      = errors.New("expected subcommand name")
	ErrUnknownSubcommand       = errors.New("unknown subcommand")
	ErrUnknownFlag             = errors.New("unknown flag")
	ErrFlagValueRequired       = errors.New("flag requires an explicit value")
	ErrInvalidFlagValue        = errors.New("incorrect type for flag")
	ErrFlagValueNotAllowed     = errors.New("flag does not support values")
	ErrRequiredArgumentMissing = errors.New("required argument missing")
	ErrInvalidArgumentValue    = errors.New("invalid value")
	ErrDuplicateSubcommand     = errors.New("duplicate subcommand")
	ErrDuplicateArgument       = errors.New("duplicate argument")
	ErrDuplicateFlag           = errors.New("flag already registered")
	ErrUnsupportedCommandType  = errors.New("unsupported command node type")
)

const FmtErrorWithString = "%w: %s"

// ParserError is the single failure carrier for a parse attempt. It records
// the command active at the failure point, the original token array, the
// cursor index and every flag resolved along the descent before the
// failure, so callers have maximum context for diagnostics and help.
// A ParserError is terminal for its parse; nothing is retried internally.
type ParserError struct {
	command Command
	tokens  []string
	pos     int
	flags   map[*Flag]any
	err     error
}

func newParserError(cmd Command, sentinel error, detail string, tokens []string, pos int) *ParserError {
	return wrapParserError(cmd, fmt.Errorf(FmtErrorWithString, sentinel, detail), tokens, pos)
}

func wrapParserError(cmd Command, err error, tokens []string, pos int) *ParserError {
	return &ParserError{
		command: cmd,
		tokens:  tokens,
		pos:     pos,
		flags:   map[*Flag]any{},
		err:     err,
	}
}

func (e *ParserError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the wrapped sentinel so errors.Is can classify the failure.
func (e *ParserError) Unwrap() error {
	return e.err
}

// Command returns the command node active when the failure occurred.
func (e *ParserError) Command() Command {
	return e.command
}

// Tokens returns the original token array of the failed parse.
func (e *ParserError) Tokens() []string {
	return e.tokens
}

// Pos returns the cursor index at the failure point.
func (e *ParserError) Pos() int {
	return e.pos
}

// FlagValue returns the value a flag had resolved to before the failure.
func (e *ParserError) FlagValue(f *Flag) (any, bool) {
	v, ok := e.flags[f]

	return v, ok
}

// HelpRequested reports whether the failed parse had already resolved a
// help flag. Callers conventionally suppress the error message in that
// case and only render help.
func (e *ParserError) HelpRequested() bool {
	return helpRequested(e.command, e.flags)
}

// mergeFlags copies every entry of outer the error does not already carry.
// Called during the recursive unwind so the error accumulates the union of
// everything resolved along the path.
func (e *ParserError) mergeFlags(outer map[*Flag]any) {
	for f, v := range outer {
		if _, ok := e.flags[f]; !ok {
			e.flags[f] = v
		}
	}
}
