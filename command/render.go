// Copyright (C) 2017 ScyllaDB

package command

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/varjoranta/cassandra-reaper/reaperclient"
)

// Map keys are sorted on marshal, rendered objects are stable and
// script-friendly.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// render writes a decoded JSON value for the operator. Lists report a count
// followed by the enumerated items, scalar text is printed as is.
func render(w io.Writer, v interface{}) error {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(w, t)
		return err
	case []interface{}:
		if _, err := fmt.Fprintf(w, "found %d items\n", len(t)); err != nil {
			return err
		}
		for _, item := range t {
			if err := renderJSON(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderJSON(w, v)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(formatFloats(v), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// formatFloats applies the fixed-precision serialization policy to every
// floating-point number of a decoded value. Integers pass through intact.
func formatFloats(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = formatFloats(e)
		}
		return t
	case []interface{}:
		for i, e := range t {
			t[i] = formatFloats(e)
		}
		return t
	case stdjson.Number:
		if !strings.ContainsAny(string(t), ".eE") {
			return t
		}
		f, err := t.Float64()
		if err != nil {
			return t
		}
		return stdjson.RawMessage(reaperclient.FormatFloat(f))
	default:
		return t
	}
}
