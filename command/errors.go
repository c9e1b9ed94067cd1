// Copyright (C) 2017 ScyllaDB

package command

import "fmt"

// UnknownCommandError marks error as caused by a command name that is not in
// the registry. Lookup is exact and case-sensitive.
type UnknownCommandError struct {
	Name string
}

// Error implements error.
func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// MissingArgumentError marks error as caused by a required argument that was
// not given. It is raised before any network call.
type MissingArgumentError struct {
	Command  string
	Argument string
}

// Error implements error.
func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("command %q requires argument %q", e.Command, e.Argument)
}
