// Copyright (C) 2017 ScyllaDB

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/varjoranta/cassandra-reaper/reaperclient"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.OutOrStderr(), err)
		os.Exit(exitCode(err))
	}

	os.Exit(0)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}

// exitCode maps an error to the process exit code, 1 for usage and
// validation failures, 2 for remote and transport failures.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var (
		httpErr      reaperclient.HTTPError
		transportErr reaperclient.TransportError
	)
	if errors.As(err, &httpErr) || errors.As(err, &transportErr) {
		return 2
	}
	return 1
}
