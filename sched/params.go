// Copyright (C) 2017 ScyllaDB

package sched

import (
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Time formats accepted for schedule trigger times. The service emits
// RFC3339, operators tend to type the zone-less form. No timezone
// normalization is done, the service is the source of truth.
var triggerTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTime parses a schedule trigger time.
func ParseTime(s string) (time.Time, error) {
	var err error
	for _, f := range triggerTimeFormats {
		var t time.Time
		if t, err = time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ValidateParams checks the client-side schedule parameters before they are
// sent to the service. daysBetween comes in as the raw CLI string,
// triggerTime may be empty.
func ValidateParams(daysBetween, triggerTime string) error {
	var err error

	d, e := strconv.Atoi(daysBetween)
	if e != nil {
		err = multierr.Append(err, errors.Wrapf(e, "days between runs %q", daysBetween))
	} else if d < 1 {
		err = multierr.Append(err, errors.Errorf("days between runs must be at least 1, got %d", d))
	}

	if triggerTime != "" {
		if _, e := ParseTime(triggerTime); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "trigger time %q", triggerTime))
		}
	}

	if err != nil {
		return InvalidScheduleError{Cause: err}
	}
	return nil
}

// Status is a loosely typed view of the service's schedule status payload,
// just the fields needed to derive activations client-side.
type Status struct {
	ID             interface{} `mapstructure:"id"`
	NextActivation string      `mapstructure:"next_activation"`
	DaysBetween    int         `mapstructure:"scheduled_days_between"`
}

// StatusFrom decodes a schedule status payload. It returns false when the
// payload does not look like a schedule, an activation cannot be derived
// from it then.
func StatusFrom(v interface{}) (Status, bool) {
	var s Status
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Status{}, false
	}
	if err := d.Decode(v); err != nil {
		return Status{}, false
	}
	if s.NextActivation == "" || s.DaysBetween == 0 {
		return Status{}, false
	}
	return s, true
}

// Activations returns the next and following activation for a decoded
// schedule status.
func (s Status) Activations() (next, following time.Time, err error) {
	next, err = ParseTime(s.NextActivation)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "next activation")
	}
	following, err = FollowingActivation(next, s.DaysBetween)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return next, following, nil
}
