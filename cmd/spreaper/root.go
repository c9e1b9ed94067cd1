// Copyright (C) 2017 ScyllaDB

package main

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"github.com/pkg/errors"
	"github.com/scylladb/go-log"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/varjoranta/cassandra-reaper/command"
	"github.com/varjoranta/cassandra-reaper/reaperclient"
)

var (
	cfgHost    string
	cfgPort    int
	cfgVerbose bool

	registry *command.Registry
)

var rootCmd = &cobra.Command{
	Use:   "spreaper",
	Short: "Cassandra Reaper control client",

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Usage()
		return errors.New("no command specified")
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.IsAdditionalHelpTopicCommand() || cmd.Hidden {
			return nil
		}

		level := zapcore.InfoLevel
		if cfgVerbose {
			level = zapcore.DebugLevel
		}
		logger := log.NewDevelopmentWithLevel(level)

		c, err := reaperclient.NewClient(reaperclient.Config{
			BaseURL: fmt.Sprintf("http://%s:%d", cfgHost, cfgPort),
		}, logger)
		if err != nil {
			return err
		}

		registry = command.NewRegistry(c, currentUser())
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()

	host := os.Getenv("REAPER_HOST")
	if host == "" {
		host = "localhost"
	}
	port := 8080
	if s := os.Getenv("REAPER_PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil {
			port = p
		}
	}

	f.StringVar(&cfgHost, "reaper-host", host, "`hostname` of the reaper service")
	f.IntVar(&cfgPort, "reaper-port", port, "`port` of the reaper service")
	f.BoolVarP(&cfgVerbose, "verbose", "v", false, "increase log detail")
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
