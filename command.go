package cmdkit

import (
	"fmt"

	"github.com/cmdkit/cmdkit/types/orderedmap"
)

// Command is the sealed node contract of the command tree. Exactly two
// implementations exist: GroupCommand, which branches into subcommands, and
// ActionCommand, which is a leaf with positional parameters and a handler.
// Trees are built once, top-down, before any parsing; parsing only reads
// them, so one tree can serve repeated and concurrent parses.
type Command interface {
	// Name returns the normalized command name.
	Name() string
	// Description returns the command description.
	Description() string
	// Scope returns the node's flag scope, chained to the parent's.
	Scope() *FlagScope
	// Parent returns the owning parent node, nil at the root. The
	// reference is non-owning and is used for path reconstruction and
	// flag-inheritance bubbling only.
	Parent() Command
	// Path returns the full space-separated command path, e.g. "git remote add".
	Path() string
	// HelpFlag returns the node's auto-registered help flag.
	HelpFlag() *Flag

	node() *commandNode
}

// commandNode carries the state common to both node variants.
type commandNode struct {
	name        string
	description string
	scope       *FlagScope
	parent      Command
	helpFlag    *Flag
	configErr   error
}

// newCommandNode initializes the shared node state and auto-registers the
// built-in help flag (long "help", short "h", alias "?").
func newCommandNode(name string) commandNode {
	scope := NewFlagScope(nil)
	helpFlag := NewBoolFlag("help",
		WithLong("help"),
		WithShort("h"),
		WithFlagDescription("display help"),
	)
	_ = scope.Register(helpFlag)
	_ = scope.RegisterShortAlias(helpFlag, "?")

	return commandNode{
		name:     DefaultNameConverter(name),
		scope:    scope,
		helpFlag: helpFlag,
	}
}

func (n *commandNode) Name() string {
	return n.name
}

func (n *commandNode) Description() string {
	return n.description
}

func (n *commandNode) Scope() *FlagScope {
	return n.scope
}

func (n *commandNode) Parent() Command {
	return n.parent
}

func (n *commandNode) Path() string {
	if n.parent == nil {
		return n.name
	}

	return n.parent.Path() + " " + n.name
}

func (n *commandNode) HelpFlag() *Flag {
	return n.helpFlag
}

func (n *commandNode) node() *commandNode {
	return n
}

// recordErr keeps the first construction error; Parse surfaces it.
func (n *commandNode) recordErr(err error) {
	if n.configErr == nil {
		n.configErr = err
	}
}

// adopt wires a child's parent pointer and chains its scope under parent's.
func (n *commandNode) adopt(parent Command) {
	n.parent = parent
	n.scope.parent = parent.Scope()
}

// GroupCommand is a branching tree node dispatching to a named subcommand.
// Subcommand registration order is preserved for help display. A group may
// carry a direct handler, invoked when no subcommand token is given.
type GroupCommand struct {
	commandNode
	subcommands *orderedmap.OrderedMap[string, Command]
	handler     GroupHandler
}

// NewGroupCommand creates a group node.
func NewGroupCommand(name string, configs ...ConfigureCommandFunc) *GroupCommand {
	group := &GroupCommand{
		commandNode: newCommandNode(name),
		subcommands: orderedmap.New[string, Command](),
	}
	for _, config := range configs {
		config(group)
	}

	return group
}

// AddCommand registers sub under this group, wiring its parent pointer and
// chaining its flag scope to this group's scope.
func (g *GroupCommand) AddCommand(sub Command) error {
	if g.subcommands.Has(sub.Name()) {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateSubcommand, sub.Name())
	}
	sub.node().adopt(g)
	g.subcommands.Set(sub.Name(), sub)

	return nil
}

// Subcommand resolves a subcommand by name, case-insensitively.
func (g *GroupCommand) Subcommand(name string) (Command, bool) {
	return g.subcommands.Get(DefaultNameConverter(name))
}

// Subcommands returns the registered subcommands in registration order.
func (g *GroupCommand) Subcommands() []Command {
	commands := make([]Command, 0, g.subcommands.Count())
	next := g.subcommands.Iterator()
	for _, sub, ok := next(); ok; _, sub, ok = next() {
		commands = append(commands, sub)
	}

	return commands
}

// Handler returns the group's direct handler, nil when none is set.
func (g *GroupCommand) Handler() GroupHandler {
	return g.handler
}

// ActionCommand is a leaf tree node: an ordered positional parameter list
// and an optional handler executed with the resolved values.
type ActionCommand struct {
	commandNode
	arguments []*Argument
	handler   ActionHandler
}

// NewActionCommand creates an action node.
func NewActionCommand(name string, configs ...ConfigureCommandFunc) *ActionCommand {
	action := &ActionCommand{
		commandNode: newCommandNode(name),
	}
	for _, config := range configs {
		config(action)
	}

	return action
}

// AddArgument appends a positional parameter. Parameter names are unique
// within the list.
func (a *ActionCommand) AddArgument(argument *Argument) error {
	for _, existing := range a.arguments {
		if existing.Name() == argument.Name() {
			return fmt.Errorf(FmtErrorWithString, ErrDuplicateArgument, argument.Name())
		}
	}
	a.arguments = append(a.arguments, argument)

	return nil
}

// Arguments returns the declared positional parameters in order.
func (a *ActionCommand) Arguments() []*Argument {
	arguments := make([]*Argument, len(a.arguments))
	copy(arguments, a.arguments)

	return arguments
}

// Handler returns the action handler, nil when none is set.
func (a *ActionCommand) Handler() ActionHandler {
	return a.handler
}

// treeConfigError returns the first construction error recorded anywhere in
// the tree rooted at cmd.
func treeConfigError(cmd Command) error {
	if err := cmd.node().configErr; err != nil {
		return err
	}
	if group, ok := cmd.(*GroupCommand); ok {
		for _, sub := range group.Subcommands() {
			if err := treeConfigError(sub); err != nil {
				return err
			}
		}
	}

	return nil
}
