package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand. Build defines its flags on a fresh FlagSet and
// returns the function run once those flags are parsed.
type Command struct {
	Name    string
	Summary string
	Build   func(fs *flag.FlagSet, out io.Writer) func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
	out  io.Writer
}

// NewRegistry returns an empty command registry that writes command output to out.
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = io.Discard
	}
	r := &Registry{cmds: make(map[string]*Command), out: out}
	r.Register("help", "list commands", func(_ *flag.FlagSet, out io.Writer) func() error {
		return func() error {
			for _, name := range r.Names() {
				fmt.Fprintf(out, "%-16s %s\n", name, r.cmds[name].Summary)
			}
			return nil
		}
	})
	return r
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "gizmos").
func (r *Registry) Register(name, summary string, build func(fs *flag.FlagSet, out io.Writer) func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, Build: build}
}

// Names returns the registered subcommands in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var usage bytes.Buffer
	fs.SetOutput(&usage)
	run := cmd.Build(fs, r.out)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = r.out.Write(usage.Bytes())
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}

// ExecuteLine parses and runs line. Lines without the "cmd " prefix are
// ignored and report false.
func (r *Registry) ExecuteLine(line string) (bool, error) {
	args, ok := Parse(strings.TrimRight(line, "\r\n"))
	if !ok {
		return false, nil
	}
	return true, r.Execute(args)
}
