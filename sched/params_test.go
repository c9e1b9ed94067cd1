// Copyright (C) 2017 ScyllaDB

package sched

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	table := []struct {
		S      string
		Golden time.Time
		Err    bool
	}{
		{
			S:      "2018-06-01T02:00:00Z",
			Golden: time.Date(2018, 6, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			S:      "2018-06-01T02:00:00",
			Golden: time.Date(2018, 6, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			S:   "next tuesday",
			Err: true,
		},
		{
			S:   "",
			Err: true,
		},
	}

	for i, test := range table {
		v, err := ParseTime(test.S)
		if test.Err {
			if err == nil {
				t.Error(i, "expected error")
			}
			continue
		}
		if err != nil {
			t.Error(i, err)
		}
		if !v.Equal(test.Golden) {
			t.Error(i, v)
		}
	}
}

func TestValidateParams(t *testing.T) {
	t.Parallel()

	table := []struct {
		DaysBetween string
		TriggerTime string
		Valid       bool
	}{
		{DaysBetween: "7", Valid: true},
		{DaysBetween: "1", TriggerTime: "2018-06-01T02:00:00Z", Valid: true},
		{DaysBetween: "0"},
		{DaysBetween: "-1"},
		{DaysBetween: "weekly"},
		{DaysBetween: "7", TriggerTime: "not a time"},
	}

	for i, test := range table {
		err := ValidateParams(test.DaysBetween, test.TriggerTime)
		if test.Valid && err != nil {
			t.Error(i, err)
		}
		if !test.Valid {
			if _, ok := err.(InvalidScheduleError); !ok {
				t.Errorf("%d: expected InvalidScheduleError, got %v", i, err)
			}
		}
	}
}

func TestStatusFrom(t *testing.T) {
	t.Parallel()

	v := map[string]interface{}{
		"id":                     float64(12),
		"cluster_name":           "prod",
		"next_activation":        "2018-06-01T02:00:00Z",
		"scheduled_days_between": float64(7),
	}

	s, ok := StatusFrom(v)
	if !ok {
		t.Fatal("expected schedule status")
	}

	next, following, err := s.Activations()
	if err != nil {
		t.Fatal(err)
	}
	if !next.Equal(time.Date(2018, 6, 1, 2, 0, 0, 0, time.UTC)) {
		t.Error(next)
	}
	if !following.Equal(time.Date(2018, 6, 8, 2, 0, 0, 0, time.UTC)) {
		t.Error(following)
	}

	if _, ok := StatusFrom(map[string]interface{}{"id": float64(1)}); ok {
		t.Error("payload without activation fields accepted")
	}
	if _, ok := StatusFrom([]interface{}{"x"}); ok {
		t.Error("non-object payload accepted")
	}
}
