package cmdkit

import (
	"errors"
	"fmt"

	"github.com/cmdkit/cmdkit/parse"
)

// Parser drives a single synchronous descent over the token array. Each
// Parse call owns its own Parser, cursor included; no state crosses parse
// invocations.
type Parser struct {
	state parse.State
}

func (p *Parser) parseCommand(cmd Command) (*ParseResult, *ParserError) {
	switch c := cmd.(type) {
	case *GroupCommand:
		return p.parseGroup(c)
	case *ActionCommand:
		return p.parseAction(c)
	}

	return nil, p.failAt(cmd, ErrUnsupportedCommandType, fmt.Sprintf("%T", cmd), p.state.Pos())
}

// parseGroup resolves leading flags against the group's scope, then
// dispatches on the first non-flag token as a subcommand name. The flag
// phase ends permanently at the first non-flag token: flags must precede
// the subcommand name contiguously.
func (p *Parser) parseGroup(group *GroupCommand) (*ParseResult, *ParserError) {
	local := map[*Flag]any{}

	if _, ok := p.state.Peek(); !ok {
		if group.handler != nil {
			return newParseResult(group, nil, local), nil
		}

		return nil, p.failAt(group, ErrExpectedSubcommand, group.Path(), p.state.Pos()+1)
	}

	var token string
	for {
		next, ok := p.state.Peek()
		if !ok {
			// tokens exhausted during the flag phase: succeed with
			// whatever was collected, no args
			return newParseResult(group, nil, local), nil
		}
		if !parse.IsFlag(next) {
			token = next
			break
		}

		p.state.Skip()
		f, value, usedNext, rerr := p.resolveFlag(group, group.Scope())
		if rerr != nil {
			rerr.mergeFlags(local)
			return nil, rerr
		}
		local[f] = value
		if usedNext {
			p.state.Skip()
		}
	}

	sub, found := group.Subcommand(token)
	if !found {
		perr := p.failAt(group, ErrUnknownSubcommand, token, p.state.Pos()+1)
		perr.mergeFlags(local)

		return nil, perr
	}

	p.state.Skip() // past the subcommand name
	inner, perr := p.parseCommand(sub)
	if perr != nil {
		perr.mergeFlags(local)
		return nil, perr
	}
	inner.mergeDefaults(local)

	return inner, nil
}

// parseAction consumes every remaining token, splitting the stream into
// flags and positional value tokens, then enforces the declared parameter
// list in order. Surplus positional tokens are appended verbatim, which
// allows variadic trailing arguments without a dedicated parameter type.
func (p *Parser) parseAction(action *ActionCommand) (*ParseResult, *ParserError) {
	local := map[*Flag]any{}
	var positional []string

	for p.state.Advance() {
		token := p.state.CurrentArg()
		if parse.IsFlag(token) {
			f, value, usedNext, rerr := p.resolveFlag(action, action.Scope())
			if rerr != nil {
				if errors.Is(rerr, ErrUnknownFlag) {
					// not a flag this scope knows: treat as positional
					positional = append(positional, token)
					continue
				}
				rerr.mergeFlags(local)

				return nil, rerr
			}
			local[f] = value
			if usedNext {
				p.state.Skip()
			}
			continue
		}

		positional = append(positional, token)
	}

	args := make([]any, 0, len(positional))
	for i, argument := range action.arguments {
		var raw *string
		if i < len(positional) {
			raw = &positional[i]
		}
		value, err := argument.Enforce(raw)
		if err != nil {
			perr := p.failWith(action, err, p.state.Pos())
			perr.mergeFlags(local)

			return nil, perr
		}
		args = append(args, value)
	}
	for i := len(action.arguments); i < len(positional); i++ {
		args = append(args, positional[i])
	}

	return newParseResult(action, args, local), nil
}

// resolveFlag resolves the token at the current position against scope,
// walking the parent chain. An unrecognized name is a soft failure wrapping
// ErrUnknownFlag - the caller decides whether that aborts the parse or
// demotes the token. Everything else is fatal: a value-based flag missing a
// value with no usable default, a value failing its validator, or a value
// forced onto a boolean flag.
//
// usedNext reports that the flag's value was taken from the following token
// and the caller must skip it.
func (p *Parser) resolveFlag(cmd Command, scope *FlagScope) (f *Flag, value any, usedNext bool, perr *ParserError) {
	token := p.state.CurrentArg()
	pos := p.state.Pos()

	ft, ok := parse.SplitFlag(token)
	if !ok {
		return nil, nil, false, p.failAt(cmd, ErrUnknownFlag, token, pos)
	}

	if ft.Long {
		f = scope.LookupLong(ft.Name)
	} else {
		f = scope.LookupShort(ft.Name)
	}
	if f == nil {
		return nil, nil, false, p.failAt(cmd, ErrUnknownFlag, token, pos)
	}

	if !f.IsValueBased() {
		if ft.Value != nil {
			return nil, nil, false, p.failAt(cmd, ErrFlagValueNotAllowed, f.Name(), pos)
		}

		// presence signals truth; absence is handled by the false
		// default at read time, never here
		return f, true, false, nil
	}

	raw := ft.Value
	if raw == nil {
		if next, ok := p.state.Peek(); ok {
			raw = &next
			usedNext = true
		}
	}
	if raw == nil {
		if usableDefault(f) {
			// bare invocation of an optional value flag degrades to
			// the declared default, resolved at read time
			return f, useDefault{}, false, nil
		}

		return nil, nil, false, p.failAt(cmd, ErrFlagValueRequired, f.Name(), pos)
	}

	if !f.Validator().IsValid(*raw) {
		detail := fmt.Sprintf("%s: %q is not a valid %s", f.Name(), *raw, f.Validator().Name())
		return nil, nil, false, p.failAt(cmd, ErrInvalidFlagValue, detail, pos)
	}

	return f, f.Validator().Coerce(*raw), usedNext, nil
}

// usableDefault reports whether f carries a default a bare invocation can
// fall back to: non-nil and not the boolean false zero.
func usableDefault(f *Flag) bool {
	d := f.DefaultValue()

	return d != nil && d != any(false)
}

func (p *Parser) failAt(cmd Command, sentinel error, detail string, pos int) *ParserError {
	return newParserError(cmd, sentinel, detail, p.state.Args(), pos)
}

func (p *Parser) failWith(cmd Command, err error, pos int) *ParserError {
	return wrapParserError(cmd, err, p.state.Args(), pos)
}
