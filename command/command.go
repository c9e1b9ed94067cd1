// Copyright (C) 2017 ScyllaDB

package command

import (
	"context"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/varjoranta/cassandra-reaper/reaperclient"
)

// Args holds raw command arguments keyed by field name. An absent key and an
// empty value are treated the same, both mean the argument was not given.
type Args map[string]string

// Kind tells the CLI front end how to expose an optional argument.
type Kind int

// Kind enumeration.
const (
	String Kind = iota
	Bool
	Float
)

// Optional describes an optional argument with its default. An empty default
// means the argument is omitted from the request when not given, so the
// service applies its own default.
type Optional struct {
	Name    string
	Default string
	Usage   string
	Kind    Kind
}

// Command maps a name to an HTTP request shape. Commands are immutable and
// registered once at startup, the registry table is read-only afterwards.
type Command struct {
	Name  string
	Usage string

	Method string
	// Path is the endpoint template relative to the base URL, {name}
	// segments are substituted from the arguments.
	Path string

	// Positional lists argument names filled from bare CLI arguments in
	// order. Every positional is also listed in Required.
	Positional []string
	Required   []string
	Optional   []Optional
	// Local lists arguments that steer the client and are never forwarded
	// to the service.
	Local []string

	// Validate runs after the required-argument check and before any
	// network call.
	Validate func(args Args) error
	// Run overrides the generic verb/path call when the request needs to
	// be built by domain logic.
	Run func(ctx context.Context, client *reaperclient.Client, args Args) (reaperclient.Value, error)
	// FollowUp runs after a successful call, for confirmation lines and
	// chained requests. Its error does not undo what the rendered output
	// already reports.
	FollowUp func(ctx context.Context, client *reaperclient.Client, args Args, v reaperclient.Value, w io.Writer) error
}

func (c Command) local(name string) bool {
	for _, l := range c.Local {
		if l == name {
			return true
		}
	}
	return false
}

// params assembles the request parameters from arguments and defaults. Unset
// optionals without a default are omitted entirely, never sent as empty or
// null. Arguments consumed by the path template travel in the path only.
func (c Command) params(args Args, consumed map[string]bool) url.Values {
	params := url.Values{}

	set := func(name, value string) {
		if value == "" || consumed[name] || c.local(name) {
			return
		}
		params.Set(name, value)
	}

	for _, o := range c.Optional {
		v := o.Default
		if explicit := args[o.Name]; explicit != "" {
			v = explicit
		}
		set(o.Name, v)
	}
	for _, name := range c.Required {
		set(name, args[name])
	}

	return params
}

// expandPath substitutes {name} segments of a path template and reports
// which arguments it consumed.
func expandPath(tmpl string, args Args) (string, map[string]bool) {
	consumed := make(map[string]bool)

	segs := strings.Split(tmpl, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			name := seg[1 : len(seg)-1]
			segs[i] = url.PathEscape(args[name])
			consumed[name] = true
		}
	}

	return strings.Join(segs, "/"), consumed
}

// Registry is the process-wide command table. It is built once at startup
// and read-only afterwards, dispatch needs no synchronization.
type Registry struct {
	client   *reaperclient.Client
	commands map[string]Command
}

// NewRegistry builds the command table. The owner is the default for the
// owner argument of creation commands, typically the current user.
func NewRegistry(client *reaperclient.Client, owner string) *Registry {
	r := &Registry{
		client:   client,
		commands: make(map[string]Command),
	}
	for _, c := range Commands(owner) {
		if _, ok := r.commands[c.Name]; ok {
			panic("duplicate command " + c.Name)
		}
		r.commands[c.Name] = c
	}
	return r
}

// Commands returns the registered commands sorted by name.
func (r *Registry) Commands() []Command {
	v := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		v = append(v, c)
	}
	sort.Slice(v, func(i, j int) bool {
		return v[i].Name < v[j].Name
	})
	return v
}

// Dispatch resolves a command by exact name, validates its arguments,
// performs the call and returns the rendered result. When a follow-up call
// fails the output rendered so far is returned together with the error, a
// chained failure never hides the primary success.
func (r *Registry) Dispatch(ctx context.Context, name string, args Args) (string, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return "", UnknownCommandError{Name: name}
	}

	for _, req := range cmd.Required {
		if args[req] == "" {
			return "", MissingArgumentError{Command: name, Argument: req}
		}
	}
	if cmd.Validate != nil {
		if err := cmd.Validate(args); err != nil {
			return "", err
		}
	}

	var (
		v   reaperclient.Value
		err error
	)
	if cmd.Run != nil {
		v, err = cmd.Run(ctx, r.client, args)
	} else {
		path, consumed := expandPath(cmd.Path, args)
		v, err = r.client.Call(ctx, cmd.Method, path, cmd.params(args, consumed))
	}
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	d, err := v.Decode()
	if err != nil {
		return "", err
	}
	if err := render(&buf, d); err != nil {
		return "", err
	}

	if cmd.FollowUp != nil {
		if err := cmd.FollowUp(ctx, r.client, args, v, &buf); err != nil {
			return buf.String(), err
		}
	}

	return buf.String(), nil
}
