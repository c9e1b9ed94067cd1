// Copyright (C) 2017 ScyllaDB

package sched

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// InvalidScheduleError marks error as caused by malformed schedule
// parameters, interval below one day or an unparsable trigger time.
type InvalidScheduleError struct {
	Cause error
}

// Error implements error.
func (e InvalidScheduleError) Error() string {
	if e.Cause == nil {
		return "invalid schedule"
	}
	return "invalid schedule: " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e InvalidScheduleError) Unwrap() error {
	return e.Cause
}

// FollowingActivation returns next advanced by daysBetween calendar days.
// This is wall-clock day arithmetic, a schedule firing at 02:00 keeps firing
// at 02:00 across DST transitions.
func FollowingActivation(next time.Time, daysBetween int) (time.Time, error) {
	if daysBetween < 1 {
		return time.Time{}, InvalidScheduleError{
			Cause: errors.Errorf("days between runs must be at least 1, got %d", daysBetween),
		}
	}
	return next.AddDate(0, 0, daysBetween), nil
}

// Schedule is a read snapshot of a recurring repair definition. The
// authoritative copy lives in the service, modifiers return copies and never
// touch the original.
type Schedule struct {
	ID             string
	RepairUnitID   string
	LastActivation time.Time // zero before the first firing
	NextActivation time.Time
	DaysBetween    int
}

// WithLastActivation returns a copy with LastActivation set.
func (s Schedule) WithLastActivation(t time.Time) Schedule {
	s.LastActivation = t
	return s
}

// WithNextActivation returns a copy with NextActivation set.
func (s Schedule) WithNextActivation(t time.Time) Schedule {
	s.NextActivation = t
	return s
}

// FollowingActivation derives the activation after the next one. It is
// recomputed on every call, never cached.
func (s Schedule) FollowingActivation() (time.Time, error) {
	return FollowingActivation(s.NextActivation, s.DaysBetween)
}

// Validate checks if the schedule snapshot is coherent.
func (s Schedule) Validate() (err error) {
	if s.DaysBetween < 1 {
		err = multierr.Append(err, fmt.Errorf("days between runs must be at least 1, got %d", s.DaysBetween))
	}
	if s.NextActivation.IsZero() {
		err = multierr.Append(err, errors.New("missing next activation"))
	}
	if err != nil {
		return InvalidScheduleError{Cause: err}
	}
	return nil
}
