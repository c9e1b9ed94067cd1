// Copyright (C) 2017 ScyllaDB

package repair

import (
	"fmt"
	"net/url"
)

// State specifies the state of a repair run as reported by the service.
type State string

// State enumeration.
const (
	StateNotStarted State = "NOT_STARTED"
	StateRunning    State = "RUNNING"
	StatePaused     State = "PAUSED"
	StateDone       State = "DONE"
	StateError      State = "ERROR"
)

func (s State) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch State(text) {
	case StateNotStarted:
		*s = StateNotStarted
	case StateRunning:
		*s = StateRunning
	case StatePaused:
		*s = StatePaused
	case StateDone:
		*s = StateDone
	case StateError:
		*s = StateError
	default:
		return fmt.Errorf("unrecognized State %q", text)
	}
	return nil
}

// CanRequest reports whether the client may ask the service to move a run
// from s to target. Only start, resume and pause are requestable, everything
// else is the service's call and its refusal is surfaced as is.
func (s State) CanRequest(target State) bool {
	switch {
	case s == StateNotStarted && target == StateRunning: // start
		return true
	case s == StatePaused && target == StateRunning: // resume
		return true
	case s == StateRunning && target == StatePaused: // pause
		return true
	}
	return false
}

// StateChange is a request for the service to transition a run. It never
// mutates local state, the service reports the terminal state back.
type StateChange struct {
	RunID  string
	Target State
}

// BuildStateChangeRequest builds the request shape for asking the service to
// move a run to target. Only RUNNING and PAUSED exist as request targets.
func BuildStateChangeRequest(runID string, target State) (StateChange, error) {
	switch target {
	case StateRunning, StatePaused:
	default:
		return StateChange{}, fmt.Errorf("state %q is not a requestable target", target)
	}
	return StateChange{RunID: runID, Target: target}, nil
}

// Path returns the request path relative to the service base URL.
func (c StateChange) Path() string {
	return "repair_run/" + url.PathEscape(c.RunID)
}

// Params returns the request parameters.
func (c StateChange) Params() url.Values {
	return url.Values{"state": []string{c.Target.String()}}
}
