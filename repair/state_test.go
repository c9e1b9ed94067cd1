// Copyright (C) 2017 ScyllaDB

package repair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateUnmarshalText(t *testing.T) {
	t.Parallel()

	for _, k := range []State{StateNotStarted, StateRunning, StatePaused, StateDone, StateError} {
		b, err := k.MarshalText()
		if err != nil {
			t.Error(k, err)
		}
		var v State
		if err := v.UnmarshalText(b); err != nil {
			t.Error(k, err)
		}
		if v != k {
			t.Error(k, v)
		}
	}

	var v State
	if err := v.UnmarshalText([]byte("SLEEPING")); err == nil {
		t.Error("expected error")
	}
}

func TestStateCanRequest(t *testing.T) {
	t.Parallel()

	table := []struct {
		From   State
		Target State
		OK     bool
	}{
		{From: StateNotStarted, Target: StateRunning, OK: true},
		{From: StatePaused, Target: StateRunning, OK: true},
		{From: StateRunning, Target: StatePaused, OK: true},
		{From: StateDone, Target: StateRunning},
		{From: StateError, Target: StateRunning},
		{From: StateNotStarted, Target: StatePaused},
		{From: StateRunning, Target: StateDone},
	}

	for i, test := range table {
		if v := test.From.CanRequest(test.Target); v != test.OK {
			t.Error(i, test.From, "->", test.Target, v)
		}
	}
}

func TestBuildStateChangeRequest(t *testing.T) {
	t.Parallel()

	c, err := BuildStateChangeRequest("7", StatePaused)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.Path(), "repair_run/7"); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(c.Params().Encode(), "state=PAUSED"); diff != "" {
		t.Error(diff)
	}

	if _, err := BuildStateChangeRequest("7", StateDone); err == nil {
		t.Error("expected error")
	}
	if _, err := BuildStateChangeRequest("7", StateNotStarted); err == nil {
		t.Error("expected error")
	}
}
