// Copyright (C) 2017 ScyllaDB

package command

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/varjoranta/cassandra-reaper/reaperclient"
	"github.com/varjoranta/cassandra-reaper/repair"
	"github.com/varjoranta/cassandra-reaper/sched"
)

// Commands is the full command table. It is the only place a command name is
// bound to a request shape. The owner is the default for the owner argument
// of creation commands.
func Commands(owner string) []Command {
	return []Command{
		{
			Name:   "ping",
			Usage:  "Checks that the service is alive",
			Method: http.MethodGet,
			Path:   "ping",
		},
		{
			Name:   "list-clusters",
			Usage:  "Lists clusters registered in the service",
			Method: http.MethodGet,
			Path:   "cluster",
		},
		{
			Name:       "list-schedules",
			Usage:      "Lists repair schedules of a cluster",
			Method:     http.MethodGet,
			Path:       "repair_schedule/cluster/{cluster_name}",
			Positional: []string{"cluster_name"},
			Required:   []string{"cluster_name"},
		},
		{
			Name:       "status-cluster",
			Usage:      "Shows the state of a cluster",
			Method:     http.MethodGet,
			Path:       "cluster/{cluster_name}",
			Positional: []string{"cluster_name"},
			Required:   []string{"cluster_name"},
		},
		{
			Name:       "status-keyspace",
			Usage:      "Shows the state of a keyspace",
			Method:     http.MethodGet,
			Path:       "cluster/{cluster_name}/{keyspace_name}",
			Positional: []string{"cluster_name", "keyspace_name"},
			Required:   []string{"cluster_name", "keyspace_name"},
		},
		{
			Name:       "status-repair",
			Usage:      "Shows the state of a repair run",
			Method:     http.MethodGet,
			Path:       "repair_run/{run_id}",
			Positional: []string{"run_id"},
			Required:   []string{"run_id"},
		},
		{
			Name:       "status-schedule",
			Usage:      "Shows the state of a repair schedule",
			Method:     http.MethodGet,
			Path:       "repair_schedule/{schedule_id}",
			Positional: []string{"schedule_id"},
			Required:   []string{"schedule_id"},
			FollowUp:   scheduleActivations,
		},
		{
			Name:       "add-cluster",
			Usage:      "Registers a cluster in the service",
			Method:     http.MethodPost,
			Path:       "cluster",
			Positional: []string{"seed_host"},
			Required:   []string{"seed_host"},
		},
		{
			Name:       "repair",
			Usage:      "Creates a repair run for a keyspace",
			Method:     http.MethodPost,
			Path:       "repair_run",
			Positional: []string{"cluster_name", "keyspace_name"},
			Required:   []string{"cluster_name", "keyspace_name"},
			Optional: []Optional{
				{Name: "tables", Usage: "comma-separated list of tables to repair, all when empty"},
				{Name: "owner", Default: owner, Usage: "owner of the repair run"},
				{Name: "cause", Default: "manual run", Usage: "cause recorded for the repair run"},
				{Name: "segment_count", Usage: "number of repair segments, service default when empty"},
				{Name: "repair_parallelism", Usage: "repair parallelism, service default when empty"},
				{Name: "intensity", Usage: "repair intensity between 0.0 and 1.0, service default when empty", Kind: Float},
				{Name: "start_repair", Default: "false", Usage: "start the repair run right after creating it", Kind: Bool},
			},
			Local:    []string{"start_repair"},
			FollowUp: repairCreated,
		},
		{
			Name:       "schedule",
			Usage:      "Creates a recurring repair schedule for a keyspace",
			Method:     http.MethodPost,
			Path:       "repair_schedule",
			Positional: []string{"cluster_name", "keyspace_name"},
			Required:   []string{"cluster_name", "keyspace_name", "schedule_days_between"},
			Optional: []Optional{
				{Name: "tables", Usage: "comma-separated list of tables to repair, all when empty"},
				{Name: "owner", Default: owner, Usage: "owner of the schedule"},
				{Name: "segment_count", Usage: "number of repair segments, service default when empty"},
				{Name: "repair_parallelism", Usage: "repair parallelism, service default when empty"},
				{Name: "intensity", Usage: "repair intensity between 0.0 and 1.0, service default when empty", Kind: Float},
				{Name: "schedule_trigger_time", Usage: "first activation time, service picks one when empty"},
			},
			Validate: func(args Args) error {
				return sched.ValidateParams(args["schedule_days_between"], args["schedule_trigger_time"])
			},
			FollowUp: scheduleCreated,
		},
		stateChangeCommand("start", repair.StateRunning, "Starts a repair run"),
		stateChangeCommand("resume", repair.StateRunning, "Resumes a paused repair run"),
		stateChangeCommand("pause", repair.StatePaused, "Pauses a running repair run"),
	}
}

// stateChangeCommand builds a command asking the service to move a run to
// target. The request shape comes from the state machine, refusal by the
// service surfaces as RemoteRejectedTransitionError.
func stateChangeCommand(name string, target repair.State, usage string) Command {
	return Command{
		Name:       name,
		Usage:      usage,
		Method:     http.MethodPut,
		Path:       "repair_run/{run_id}",
		Positional: []string{"run_id"},
		Required:   []string{"run_id"},
		Run: func(ctx context.Context, client *reaperclient.Client, args Args) (reaperclient.Value, error) {
			return requestStateChange(ctx, client, args["run_id"], target)
		},
	}
}

func requestStateChange(ctx context.Context, client *reaperclient.Client, runID string, target repair.State) (reaperclient.Value, error) {
	change, err := repair.BuildStateChangeRequest(runID, target)
	if err != nil {
		return nil, err
	}

	v, err := client.Call(ctx, http.MethodPut, change.Path(), change.Params())
	if err != nil {
		var httpErr reaperclient.HTTPError
		if errors.As(err, &httpErr) {
			return nil, reaperclient.RemoteRejectedTransitionError{
				RunID:  runID,
				Target: target.String(),
				Cause:  httpErr,
			}
		}
		return nil, err
	}
	return v, nil
}

// repairCreated confirms the created run and optionally chains an immediate
// start. A failed start is reported on its own, the creation stays reported.
func repairCreated(ctx context.Context, client *reaperclient.Client, args Args, v reaperclient.Value, w io.Writer) error {
	id := v.Get("id")
	if !id.Exists() {
		if args["start_repair"] == "true" {
			return errors.New("cannot determine id of the created repair run")
		}
		return nil
	}

	fmt.Fprintf(w, "created repair run %s\n", id.String())

	if args["start_repair"] != "true" {
		return nil
	}
	if _, err := requestStateChange(ctx, client, id.String(), repair.StateRunning); err != nil {
		return errors.Wrap(err, "start created repair run")
	}
	fmt.Fprintf(w, "started repair run %s\n", id.String())
	return nil
}

func scheduleCreated(ctx context.Context, client *reaperclient.Client, args Args, v reaperclient.Value, w io.Writer) error {
	if id := v.Get("id"); id.Exists() {
		fmt.Fprintf(w, "created repair schedule %s\n", id.String())
	}
	return nil
}

// scheduleActivations derives the following activation for a schedule status
// payload. Payloads without activation fields render as is.
func scheduleActivations(ctx context.Context, client *reaperclient.Client, args Args, v reaperclient.Value, w io.Writer) error {
	d, err := v.Decode()
	if err != nil {
		return nil
	}
	s, ok := sched.StatusFrom(d)
	if !ok {
		return nil
	}

	next, following, err := s.Activations()
	if err != nil {
		return nil
	}
	fmt.Fprintf(w, "next activation %s, following activation %s\n",
		next.Format(time.RFC3339), following.Format(time.RFC3339))
	return nil
}
