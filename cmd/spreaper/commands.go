// Copyright (C) 2017 ScyllaDB

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/varjoranta/cassandra-reaper/command"
	"github.com/varjoranta/cassandra-reaper/reaperclient"
)

func init() {
	for _, c := range command.Commands(currentUser()) {
		rootCmd.AddCommand(newCommand(c))
	}
}

// newCommand exposes a registry command as a cobra command. Positionals come
// from bare arguments, everything else from flags. Flags the operator did
// not set stay out of the argument map so the registry can tell unset from
// explicit.
func newCommand(c command.Command) *cobra.Command {
	use := c.Name
	for _, p := range c.Positional {
		use += " <" + p + ">"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: c.Usage,
		Args:  cobra.MaximumNArgs(len(c.Positional)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			args := command.Args{}
			for i, name := range c.Positional {
				if i < len(argv) {
					args[name] = argv[i]
				}
			}
			collectFlags(cmd.Flags(), c, args)

			out, err := registry.Dispatch(context.Background(), c.Name, args)
			// output rendered before a chained failure is still shown
			fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	initFlags(cmd.Flags(), c)

	return cmd
}

func initFlags(fs *pflag.FlagSet, c command.Command) {
	for _, name := range c.Required {
		if positional(c, name) {
			continue
		}
		fs.String(flagName(name), "", "required")
	}
	for _, o := range c.Optional {
		switch o.Kind {
		case command.Bool:
			d, _ := strconv.ParseBool(o.Default)
			fs.Bool(flagName(o.Name), d, o.Usage)
		case command.Float:
			fs.Float64(flagName(o.Name), 0, o.Usage)
		default:
			fs.String(flagName(o.Name), o.Default, o.Usage)
		}
	}
}

func collectFlags(fs *pflag.FlagSet, c command.Command, args command.Args) {
	for _, name := range c.Required {
		if positional(c, name) {
			continue
		}
		if fs.Changed(flagName(name)) {
			args[name], _ = fs.GetString(flagName(name))
		}
	}
	for _, o := range c.Optional {
		if !fs.Changed(flagName(o.Name)) {
			continue
		}
		switch o.Kind {
		case command.Bool:
			v, _ := fs.GetBool(flagName(o.Name))
			args[o.Name] = strconv.FormatBool(v)
		case command.Float:
			v, _ := fs.GetFloat64(flagName(o.Name))
			args[o.Name] = reaperclient.FormatFloat(v)
		default:
			args[o.Name], _ = fs.GetString(flagName(o.Name))
		}
	}
}

func positional(c command.Command, name string) bool {
	for _, p := range c.Positional {
		if p == name {
			return true
		}
	}
	return false
}

func flagName(arg string) string {
	return strings.ReplaceAll(arg, "_", "-")
}
