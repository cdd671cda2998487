// Package cmdkit turns a flat token sequence into a resolved command,
// typed positional arguments and typed flag values, then hands off to a
// user-supplied handler.
//
// A command tree is built once from two node variants: GroupCommand, which
// branches into named subcommands, and ActionCommand, a leaf with an
// ordered, typed positional parameter list. Every node owns a FlagScope
// chained to its parent's, so flags registered on an ancestor are visible
// (and resolvable) below it. Flags follow the forms --name, --name=value,
// -n, -nVALUE and -n=value; matching is case-insensitive.
//
// Parse walks the tree against the tokens and returns either a ParseResult
// or a *ParserError carrying everything resolved up to the failure point.
// Every node auto-registers a help flag (--help, -h, -?); when it resolves
// true, callers are expected to render help instead of executing.
package cmdkit

import (
	"github.com/cmdkit/cmdkit/parse"
)

// Parse resolves tokens against the command tree rooted at root. On
// success the returned error is nil; on failure it is a *ParserError. The
// tree is only read, so the same root can serve concurrent parses.
func Parse(root Command, tokens []string) (*ParseResult, error) {
	if err := treeConfigError(root); err != nil {
		return nil, err
	}

	p := &Parser{state: parse.NewState(tokens)}
	result, perr := p.parseCommand(root)
	if perr != nil {
		return nil, perr
	}

	return result, nil
}

// ParseString splits argString shell-style and parses the resulting tokens.
func ParseString(root Command, argString string) (*ParseResult, error) {
	tokens, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return Parse(root, tokens)
}
