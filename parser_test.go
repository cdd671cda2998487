package cmdkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmdkit/cmdkit/types"
)

func TestParse_ActionWithValueFlag(t *testing.T) {
	name := NewFlag("name", types.String, WithLong("name"), WithShort("n"))
	run := NewActionCommand("run", WithFlags(name))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run", "--name=Hello"})
	assert.NoError(t, err)
	assert.Same(t, Command(run), result.Command())
	assert.Equal(t, "Hello", result.GetValue(name))
	assert.True(t, result.Has(name))
}

func TestParse_FlagFormEquivalence(t *testing.T) {
	forms := [][]string{
		{"run", "--name=Hello"},
		{"run", "--name", "Hello"},
		{"run", "-nHello"},
		{"run", "-n", "Hello"},
		{"run", "-n=Hello"},
	}
	for _, tokens := range forms {
		name := NewFlag("name", types.String, WithLong("name"), WithShort("n"))
		run := NewActionCommand("run", WithFlags(name))
		app := NewGroupCommand("app", WithCommands(run))

		result, err := Parse(app, tokens)
		assert.NoError(t, err, "tokens %v should parse", tokens)
		assert.Equal(t, "Hello", result.GetValue(name), "tokens %v should resolve the same value", tokens)
	}
}

func TestParse_OmittedOptionalFlagReadsDefault(t *testing.T) {
	mode := NewFlag("mode", types.String, WithLong("mode"), WithFlagDefault("fast"))
	run := NewActionCommand("run", WithFlags(mode))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run"})
	assert.NoError(t, err)
	assert.False(t, result.Has(mode), "an omitted flag is not part of the result set")
	assert.Equal(t, "fast", result.GetValue(mode), "reads fall back to the declared default")
}

func TestParse_BareValueFlagUsesDefault(t *testing.T) {
	mode := NewFlag("mode", types.String, WithLong("mode"), WithFlagDefault("fast"))
	run := NewActionCommand("run", WithFlags(mode))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run", "--mode"})
	assert.NoError(t, err, "a bare optional value flag degrades to its default")
	assert.True(t, result.Has(mode))
	assert.Equal(t, "fast", result.GetValue(mode))
}

func TestParse_ValueFlagRequiresValue(t *testing.T) {
	name := NewFlag("name", types.String, WithLong("name"))
	run := NewActionCommand("run", WithFlags(name))
	app := NewGroupCommand("app", WithCommands(run))

	_, err := Parse(app, []string{"run", "--name"})
	assert.ErrorIs(t, err, ErrFlagValueRequired)
}

func TestParse_ValueConsumesNextTokenUnconditionally(t *testing.T) {
	name := NewFlag("name", types.String, WithLong("name"))
	verbose := NewBoolFlag("verbose", WithLong("verbose"))
	run := NewActionCommand("run", WithFlags(name, verbose))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run", "--name", "--verbose"})
	assert.NoError(t, err)
	assert.Equal(t, "--verbose", result.GetValue(name),
		"the next token is consumed as the value even when it looks like a flag")
	assert.Equal(t, false, result.GetValue(verbose))
}

func TestParse_BooleanFlagRejectsInlineValue(t *testing.T) {
	force := NewBoolFlag("force", WithLong("force"))
	run := NewActionCommand("run", WithFlags(force))
	app := NewGroupCommand("app", WithCommands(run))

	_, err := Parse(app, []string{"run", "--force=yes"})
	assert.ErrorIs(t, err, ErrFlagValueNotAllowed)
}

func TestParse_InvalidFlagValue(t *testing.T) {
	count := NewFlag("count", types.Int, WithLong("count"))
	run := NewActionCommand("run", WithFlags(count))
	app := NewGroupCommand("app", WithCommands(run))

	_, err := Parse(app, []string{"run", "--count=abc"})
	assert.ErrorIs(t, err, ErrInvalidFlagValue)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestParse_PositionalArguments(t *testing.T) {
	copyCmd := NewActionCommand("copy", WithArguments(
		NewArgument("source", types.String),
		NewArgument("dest", types.String, WithDefault("output")),
	))
	app := NewGroupCommand("app", WithCommands(copyCmd))

	result, err := Parse(app, []string{"copy", "source.txt"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"source.txt", "output"},
		result.Args(), "omitted optional positionals fill in their defaults")

	result, err = Parse(app, []string{"copy", "source.txt", "dest.txt"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"source.txt", "dest.txt"}, result.Args())
}

func TestParse_MissingRequiredPositional(t *testing.T) {
	copyCmd := NewActionCommand("copy", WithArguments(
		NewArgument("source", types.String),
	))
	app := NewGroupCommand("app", WithCommands(copyCmd))

	_, err := Parse(app, []string{"copy"})
	assert.ErrorIs(t, err, ErrRequiredArgumentMissing)

	var perr *ParserError
	assert.True(t, errors.As(err, &perr))
	assert.Same(t, Command(copyCmd), perr.Command(), "the error names the failing command")
}

func TestParse_SurplusPositionalsKeptVerbatim(t *testing.T) {
	copyCmd := NewActionCommand("copy", WithArguments(
		NewArgument("source", types.String),
	))
	app := NewGroupCommand("app", WithCommands(copyCmd))

	result, err := Parse(app, []string{"copy", "a.txt", "b.txt", "c.txt"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"a.txt", "b.txt", "c.txt"}, result.Args(),
		"tokens beyond the declared parameters are appended as raw strings")
}

func TestParse_CoercedPositionalTypes(t *testing.T) {
	repeat := NewActionCommand("repeat", WithArguments(
		NewArgument("count", types.Int),
	))
	app := NewGroupCommand("app", WithCommands(repeat))

	result, err := Parse(app, []string{"repeat", "3"})
	assert.NoError(t, err)
	assert.Equal(t, []any{int64(3)}, result.Args())

	_, err = Parse(app, []string{"repeat", "three"})
	assert.ErrorIs(t, err, ErrInvalidArgumentValue)
}

func TestParse_CaseInsensitiveMatching(t *testing.T) {
	name := NewFlag("name", types.String, WithLong("name"), WithShort("n"))
	run := NewActionCommand("run", WithFlags(name))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"RUN", "--NAME=Test"})
	assert.NoError(t, err, "command and flag matching is case-insensitive")
	assert.Same(t, Command(run), result.Command())
	assert.Equal(t, "Test", result.GetValue(name), "the value keeps its original casing")

	result, err = Parse(app, []string{"run", "-N", "Test"})
	assert.NoError(t, err)
	assert.Equal(t, "Test", result.GetValue(name))
}

func TestParse_NestedGroups(t *testing.T) {
	set := NewActionCommand("set", WithArguments(
		NewArgument("key", types.String),
		NewArgument("value", types.String),
	))
	config := NewGroupCommand("config", WithCommands(set))
	app := NewGroupCommand("app", WithCommands(config))

	result, err := Parse(app, []string{"config", "set", "color", "red"})
	assert.NoError(t, err)
	assert.Equal(t, "set", result.Command().Name())
	assert.Equal(t, "app config set", result.Command().Path())
	assert.Equal(t, []any{"color", "red"}, result.Args())
}

func TestParse_GroupFlagsInherited(t *testing.T) {
	verbose := NewBoolFlag("verbose", WithLong("verbose"), WithShort("v"))
	set := NewActionCommand("set")
	config := NewGroupCommand("config", WithCommands(set))
	app := NewGroupCommand("app", WithFlags(verbose), WithCommands(config))

	result, err := Parse(app, []string{"--verbose", "config", "set"})
	assert.NoError(t, err)
	assert.Equal(t, true, result.GetValue(verbose),
		"flags resolved on an outer group survive into the final result")

	result, err = Parse(app, []string{"config", "set", "--verbose"})
	assert.NoError(t, err, "an inherited flag resolves from a descendant scope too")
	assert.Equal(t, true, result.GetValue(verbose))
}

func TestParse_InnerFlagOverridesOuter(t *testing.T) {
	level := NewFlag("level", types.Int, WithLong("level"))
	set := NewActionCommand("set")
	config := NewGroupCommand("config", WithCommands(set))
	app := NewGroupCommand("app", WithFlags(level), WithCommands(config))

	result, err := Parse(app, []string{"--level=1", "config", "set", "--level=2"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.GetValue(level),
		"a value resolved deeper in the tree wins over the outer one")
}

func TestParse_GroupFlagPhaseEndsAtFirstNonFlag(t *testing.T) {
	verbose := NewBoolFlag("verbose", WithLong("verbose"))
	copyCmd := NewActionCommand("copy", WithArguments(
		NewArgument("source", types.String),
	))
	app := NewGroupCommand("app", WithFlags(verbose), WithCommands(copyCmd))

	result, err := Parse(app, []string{"copy", "--verbose", "src.txt"})
	assert.NoError(t, err)
	assert.Equal(t, true, result.GetValue(verbose),
		"after dispatch the flag still resolves through scope inheritance")
	assert.Equal(t, []any{"src.txt"}, result.Args())
}

func TestParse_UnknownSubcommand(t *testing.T) {
	app := NewGroupCommand("app", WithCommands(NewActionCommand("run")))

	_, err := Parse(app, []string{"walk"})
	assert.ErrorIs(t, err, ErrUnknownSubcommand)

	var perr *ParserError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, perr.Pos(), "the error points at the offending token")
	assert.Equal(t, []string{"walk"}, perr.Tokens())
}

func TestParse_UnknownFlagFatalAtGroupLevel(t *testing.T) {
	app := NewGroupCommand("app", WithCommands(NewActionCommand("run")))

	_, err := Parse(app, []string{"--wat", "run"})
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestParse_UnknownFlagDemotedAtActionLevel(t *testing.T) {
	run := NewActionCommand("run")
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run", "--wat"})
	assert.NoError(t, err, "an action treats unrecognized flag-shaped tokens as positionals")
	assert.Equal(t, []any{"--wat"}, result.Args())
}

func TestParse_EmptyTokens(t *testing.T) {
	app := NewGroupCommand("app", WithCommands(NewActionCommand("run")))

	_, err := Parse(app, nil)
	assert.ErrorIs(t, err, ErrExpectedSubcommand)
}

func TestParse_GroupDirectHandler(t *testing.T) {
	called := false
	app := NewGroupCommand("app",
		WithCommands(NewActionCommand("run")),
		WithGroupHandler(func(result *ParseResult) error {
			called = true
			return nil
		}),
	)

	result, err := Parse(app, nil)
	assert.NoError(t, err, "a group with a direct handler accepts an empty token array")
	assert.Same(t, Command(app), result.Command())

	exec, ok := result.Executable()
	assert.True(t, ok)
	assert.NoError(t, exec())
	assert.True(t, called)
}

func TestParse_GroupFlagsThenExhaustion(t *testing.T) {
	verbose := NewBoolFlag("verbose", WithLong("verbose"))
	app := NewGroupCommand("app",
		WithFlags(verbose),
		WithCommands(NewActionCommand("run")),
	)

	result, err := Parse(app, []string{"--verbose"})
	assert.NoError(t, err, "exhausting the tokens during the flag phase is not an error")
	assert.Same(t, Command(app), result.Command())
	assert.Equal(t, true, result.GetValue(verbose))

	_, ok := result.Executable()
	assert.False(t, ok, "there is nothing to run without a handler")
}

func TestParse_HelpFlagAtAnyPosition(t *testing.T) {
	run := NewActionCommand("run")
	app := NewGroupCommand("app", WithCommands(run))

	for _, tokens := range [][]string{
		{"--help"},
		{"--help", "run"},
		{"run", "--help"},
		{"run", "-h"},
		{"run", "-?"},
	} {
		result, err := Parse(app, tokens)
		assert.NoError(t, err, "tokens %v should parse", tokens)
		assert.True(t, result.HelpRequested(), "tokens %v should request help", tokens)

		_, ok := result.Executable()
		assert.False(t, ok, "help requests short-circuit execution")
	}
}

func TestParse_ErrorCarriesOuterFlags(t *testing.T) {
	verbose := NewBoolFlag("verbose", WithLong("verbose"))
	count := NewFlag("count", types.Int, WithLong("count"))
	run := NewActionCommand("run", WithFlags(count))
	app := NewGroupCommand("app", WithFlags(verbose), WithCommands(run))

	_, err := Parse(app, []string{"--verbose", "run", "--count=abc"})
	assert.ErrorIs(t, err, ErrInvalidFlagValue)

	var perr *ParserError
	assert.True(t, errors.As(err, &perr))
	value, ok := perr.FlagValue(verbose)
	assert.True(t, ok, "flags resolved before the failure travel with the error")
	assert.Equal(t, true, value)
}

func TestParse_HandlerReceivesArgs(t *testing.T) {
	var got []any
	greet := NewActionCommand("greet",
		WithArguments(NewArgument("who", types.String)),
		WithHandler(func(result *ParseResult, args []any) error {
			got = args
			return nil
		}),
	)
	app := NewGroupCommand("app", WithCommands(greet))

	result, err := Parse(app, []string{"greet", "world"})
	assert.NoError(t, err)

	exec, ok := result.Executable()
	assert.True(t, ok)
	assert.NoError(t, exec())
	assert.Equal(t, []any{"world"}, got)
}

func TestParse_RootActionCommand(t *testing.T) {
	name := NewFlag("name", types.String, WithLong("name"))
	run := NewActionCommand("run", WithFlags(name))

	result, err := Parse(run, []string{"--name=solo"})
	assert.NoError(t, err, "a tree may consist of a single action node")
	assert.Equal(t, "solo", result.GetValue(name))
}

func TestParseString(t *testing.T) {
	copyCmd := NewActionCommand("copy", WithArguments(
		NewArgument("source", types.String),
	))
	app := NewGroupCommand("app", WithCommands(copyCmd))

	result, err := ParseString(app, `copy "my file.txt"`)
	assert.NoError(t, err)
	assert.Equal(t, []any{"my file.txt"}, result.Args(), "quoting survives tokenization")

	_, err = ParseString(app, `copy "unterminated`)
	assert.Error(t, err)
}

func TestParse_EnumFlag(t *testing.T) {
	colors := types.MustEnum("red", "green", "blue")
	color := NewFlag("color", colors, WithLong("color"))
	run := NewActionCommand("run", WithFlags(color))
	app := NewGroupCommand("app", WithCommands(run))

	result, err := Parse(app, []string{"run", "--color=GREEN"})
	assert.NoError(t, err)
	assert.Equal(t, "green", result.GetValue(color), "enum values coerce to their declared form")

	_, err = Parse(app, []string{"run", "--color=yellow"})
	assert.ErrorIs(t, err, ErrInvalidFlagValue)
}
