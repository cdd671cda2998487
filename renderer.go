package cmdkit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/cmdkit/cmdkit/util"
)

// DefaultHelpWidth bounds help wrapping when the terminal width is unknown.
const DefaultHelpWidth = 80

// Renderer writes help text for command nodes. Output is wrapped to the
// terminal width; section headings are emphasized when the writer is a
// color-capable terminal.
type Renderer struct {
	writer  io.Writer
	width   int
	heading *color.Color
	errText *color.Color
}

// NewRenderer creates a Renderer writing to stdout at the detected terminal
// width.
func NewRenderer(configs ...ConfigureRendererFunc) *Renderer {
	r := &Renderer{
		writer:  os.Stdout,
		width:   util.TerminalWidth(DefaultHelpWidth),
		heading: color.New(color.Bold),
		errText: color.New(color.FgRed),
	}
	for _, config := range configs {
		config(r)
	}

	return r
}

// WithWriter redirects the renderer's output.
func WithWriter(w io.Writer) ConfigureRendererFunc {
	return func(r *Renderer) {
		r.writer = w
	}
}

// WithWidth overrides the wrapping width.
func WithWidth(width int) ConfigureRendererFunc {
	return func(r *Renderer) {
		r.width = width
	}
}

// HelpLines returns a generator over the help text of cmd. Each call
// produces an independent generator; iterating one does not disturb
// another.
func HelpLines(cmd Command) func() (string, bool) {
	var lines []string
	built := false
	i := 0

	return func() (string, bool) {
		if !built {
			lines = buildHelpLines(cmd)
			built = true
		}
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++

		return line, true
	}
}

func buildHelpLines(cmd Command) []string {
	lines := []string{usageLine(cmd)}
	if d := cmd.Description(); d != "" {
		lines = append(lines, d)
	}

	if group, ok := cmd.(*GroupCommand); ok && group.subcommands.Count() > 0 {
		lines = append(lines, "", "commands:")
		for _, sub := range group.Subcommands() {
			line := "  " + sub.Name()
			if sub.Description() != "" {
				line += " \"" + sub.Description() + "\""
			}
			lines = append(lines, line)
		}
	}

	if action, ok := cmd.(*ActionCommand); ok && len(action.arguments) > 0 {
		lines = append(lines, "", "arguments:")
		for _, argument := range action.arguments {
			line := "  " + argument.String()
			if argument.Description() != "" {
				line += " \"" + argument.Description() + "\""
			}
			lines = append(lines, line)
		}
	}

	if visible := cmd.Scope().VisibleFlags(); len(visible) > 0 {
		lines = append(lines, "", "flags:")
		for _, f := range visible {
			lines = append(lines, "  "+flagUsage(f))
		}
	}

	return lines
}

func usageLine(cmd Command) string {
	usage := "usage: " + cmd.Path()
	if action, ok := cmd.(*ActionCommand); ok {
		for _, argument := range action.arguments {
			usage += " " + argument.String()
		}

		return usage
	}

	return usage + " <command>"
}

// flagUsage renders one flag line: aliases, description, default and
// whether a value is expected.
func flagUsage(f *Flag) string {
	long := f.Long()
	if long == "" {
		long = f.Name()
	}
	usage := "--" + long
	if f.Short() != "" {
		usage += " or -" + f.Short()
	}
	if f.IsValueBased() {
		usage += " <" + f.Validator().Name() + ">"
	}
	if d := f.Description(); d != "" {
		usage += " \"" + d + "\""
	}
	if f.IsValueBased() {
		if f.IsRequired() {
			return usage + " (required)"
		}
		if d := f.DefaultValue(); d != nil {
			usage += fmt.Sprintf(" (defaults to: %v)", d)
		}
	}

	return usage + " (optional)"
}

// PrintHelp writes the help text of cmd.
func (r *Renderer) PrintHelp(cmd Command) {
	next := HelpLines(cmd)
	for line, ok := next(); ok; line, ok = next() {
		if strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " ") {
			line = r.heading.Sprint(line)
		}
		for _, wrapped := range wrapLine(line, r.width) {
			fmt.Fprintln(r.writer, wrapped)
		}
	}
}

// PrintParserError writes err's message followed by the help text of the
// command active at the failure. The message is suppressed when the failed
// parse had already resolved a help flag - help-driven short circuits are
// not reported as errors.
func (r *Renderer) PrintParserError(err *ParserError) {
	if !err.HelpRequested() {
		fmt.Fprintln(r.writer, r.errText.Sprint("error: "+err.Error()))
	}
	r.PrintHelp(err.Command())
}

// wrapLine breaks line on spaces to fit width, indenting continuations to
// the original leading whitespace plus two.
func wrapLine(line string, width int) []string {
	if width <= 0 || len(line) <= width {
		return []string{line}
	}

	lead := line[:len(line)-len(strings.TrimLeft(line, " "))]
	indent := lead + "  "
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var wrapped []string
	current := lead + words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			wrapped = append(wrapped, current)
			current = indent + word
			continue
		}
		current += " " + word
	}

	return append(wrapped, current)
}
